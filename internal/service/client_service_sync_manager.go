// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-atlas-keeper/internal/adapter"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/store"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

// statusBroadcaster fans SyncStatus transitions out to subscribers. Sends
// are non-blocking: a subscriber that stops draining loses transitions
// instead of stalling the sync round.
type statusBroadcaster struct {
	mu          sync.Mutex
	current     models.SyncStatus
	subscribers map[chan models.SyncStatus]struct{}
}

func newStatusBroadcaster() *statusBroadcaster {
	return &statusBroadcaster{
		current:     models.SyncStatus{Phase: models.SyncIdle},
		subscribers: make(map[chan models.SyncStatus]struct{}),
	}
}

func (b *statusBroadcaster) publish(status models.SyncStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = status
	for ch := range b.subscribers {
		select {
		case ch <- status:
		default:
		}
	}
}

func (b *statusBroadcaster) status() models.SyncStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *statusBroadcaster) subscribe() (<-chan models.SyncStatus, func()) {
	ch := make(chan models.SyncStatus, 8)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subscribers[ch]; ok {
			delete(b.subscribers, ch)
			close(ch)
		}
	}
	return ch, cancel
}

type syncManager struct {
	metadata  store.SyncMetadataRepository
	adapter   adapter.ServerAdapter
	monitor   adapter.NetworkMonitor
	ops       SyncOperations
	conflicts ConflictService

	deviceID string
	debounce time.Duration

	inFlight atomic.Bool
	status   *statusBroadcaster
	logger   *logger.Logger
}

// NewSyncManager constructs the sync state machine. debounce is how long the
// manager waits after connectivity returns before firing an automatic round.
func NewSyncManager(
	metadata store.SyncMetadataRepository,
	serverAdapter adapter.ServerAdapter,
	monitor adapter.NetworkMonitor,
	ops SyncOperations,
	conflicts ConflictService,
	deviceID string,
	debounce time.Duration,
	log *logger.Logger,
) SyncManager {
	if debounce <= 0 {
		debounce = 3 * time.Second
	}
	return &syncManager{
		metadata:  metadata,
		adapter:   serverAdapter,
		monitor:   monitor,
		ops:       ops,
		conflicts: conflicts,
		deviceID:  deviceID,
		debounce:  debounce,
		status:    newStatusBroadcaster(),
		logger:    log,
	}
}

// PerformFullSync implements [SyncManager].
func (m *syncManager) PerformFullSync(ctx context.Context) (models.SyncSummary, error) {
	if !m.inFlight.CompareAndSwap(false, true) {
		return models.SyncSummary{}, ErrSyncInProgress
	}
	defer m.inFlight.Store(false)

	if state := m.monitor.State(); state != adapter.Connected {
		m.logger.Debug().Str("state", string(state)).Msg("skipping sync round, server unreachable")
		return models.SyncSummary{}, m.fail(fmt.Errorf("%w: connectivity is %s", ErrNoNetwork, state))
	}

	m.status.publish(models.SyncStatus{Phase: models.SyncInProgress, Message: "collecting local changes"})

	local, err := m.ops.CollectLocalChanges(ctx)
	if err != nil {
		return models.SyncSummary{}, m.fail(fmt.Errorf("collect local changes: %w", err))
	}

	m.status.publish(models.SyncStatus{Phase: models.SyncInProgress, Message: "syncing with server"})

	response, err := m.adapter.PerformSync(ctx, m.deviceID, local)
	if err != nil {
		return models.SyncSummary{}, m.fail(fmt.Errorf("delta sync: %w", err))
	}

	m.status.publish(models.SyncStatus{Phase: models.SyncInProgress, Message: "applying remote changes"})

	manualConflicts := m.intakeConflicts(ctx, response.Conflicts)

	applied, err := m.ops.ApplyRemoteChanges(ctx, response.RemoteChanges)
	if err != nil {
		return models.SyncSummary{}, m.fail(fmt.Errorf("apply remote changes: %w", err))
	}

	if err = m.ops.UpdateSyncMetadata(ctx, response); err != nil {
		return models.SyncSummary{}, m.fail(fmt.Errorf("reconcile acknowledgments: %w", err))
	}

	// The cursor advances only after the whole response has been applied
	// and reconciled. An interrupted round keeps the old cursor, so the
	// next round re-downloads and re-applies the same window.
	if err = m.metadata.SetLastSyncVersion(ctx, response.SyncVersion); err != nil {
		return models.SyncSummary{}, m.fail(fmt.Errorf("persist sync cursor: %w", err))
	}

	summary := models.SyncSummary{
		Uploaded:    response.Accepted.Count(),
		Downloaded:  applied,
		Conflicts:   manualConflicts,
		SyncVersion: response.SyncVersion,
		FinishedAt:  time.Now().UTC(),
	}

	m.logger.Info().
		Int("uploaded", summary.Uploaded).
		Int("downloaded", summary.Downloaded).
		Int("conflicts", summary.Conflicts).
		Int64("sync_version", summary.SyncVersion).
		Msg("sync round completed")

	m.status.publish(models.SyncStatus{Phase: models.SyncCompleted, Summary: &summary})
	m.idle()

	return summary, nil
}

func (m *syncManager) fail(err error) error {
	m.status.publish(models.SyncStatus{Phase: models.SyncFailed, Err: err})
	m.idle()
	return err
}

// idle publishes the trailing transition back to the resting state once a
// round has ended. The terminal Completed/Failed status stays observable on
// the subscription channel and in PerformFullSync's return values.
func (m *syncManager) idle() {
	m.status.publish(models.SyncStatus{Phase: models.SyncIdle})
}

// intakeConflicts persists every conflict the server detected and applies
// the suggested resolution to all but the MANUAL ones. An auto-resolution
// that fails leaves the conflict persisted, demoting it to manual handling.
// Returns the number of conflicts left pending.
func (m *syncManager) intakeConflicts(ctx context.Context, conflicts []models.SyncConflict) int {
	pending := 0

	for _, conflict := range conflicts {
		log := m.logger.With().
			Str("conflict_id", conflict.ConflictID).
			Str("entity_type", string(conflict.EntityType)).
			Str("entity_id", conflict.EntityID).
			Logger()

		if err := m.conflicts.Save(ctx, conflict); err != nil {
			log.Error().Err(err).Msg("failed to persist conflict")
			pending++
			continue
		}

		var err error
		switch conflict.SuggestedResolution {
		case models.ResolutionKeepLocal:
			err = m.conflicts.ResolveKeepLocal(ctx, conflict.ConflictID)
		case models.ResolutionKeepRemote:
			err = m.conflicts.ResolveKeepRemote(ctx, conflict.ConflictID)
		case models.ResolutionMerge:
			err = m.conflicts.ResolveMerge(ctx, conflict.ConflictID)
		default:
			log.Info().Msg("conflict requires manual resolution")
			pending++
			continue
		}

		if err != nil {
			log.Warn().Err(err).
				Str("suggested", string(conflict.SuggestedResolution)).
				Msg("auto-resolution failed, conflict kept for manual handling")
			pending++
			continue
		}

		log.Debug().
			Str("resolution", string(conflict.SuggestedResolution)).
			Msg("conflict auto-resolved")
	}

	return pending
}

// MarkForSync implements [SyncManager].
func (m *syncManager) MarkForSync(ctx context.Context, entityID string, entityType models.EntityType, deleted bool) error {
	now := time.Now().UTC()

	meta, err := m.metadata.Get(ctx, entityID, entityType)
	switch {
	case errors.Is(err, store.ErrMetadataNotFound):
		meta = models.SyncMetadata{
			EntityID:   entityID,
			EntityType: entityType,
			DeviceID:   m.deviceID,
		}
	case err != nil:
		return fmt.Errorf("get metadata %s/%s: %w", entityType, entityID, err)
	}

	meta.LocalVersion++
	meta.LastModified = now
	meta.IsPendingSync = true
	meta.IsPendingDelete = deleted

	if err = m.metadata.Upsert(ctx, meta); err != nil {
		return fmt.Errorf("upsert metadata %s/%s: %w", entityType, entityID, err)
	}
	return nil
}

// Status implements [SyncManager].
func (m *syncManager) Status() models.SyncStatus {
	return m.status.status()
}

// SubscribeStatus implements [SyncManager].
func (m *syncManager) SubscribeStatus() (<-chan models.SyncStatus, func()) {
	return m.status.subscribe()
}

// WatchConnectivity implements [SyncManager].
func (m *syncManager) WatchConnectivity(ctx context.Context) {
	events, cancel := m.monitor.Subscribe()
	defer cancel()

	debounce := time.NewTimer(m.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return

		case state, ok := <-events:
			if !ok {
				return
			}
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			if state == adapter.Connected {
				m.logger.Debug().Dur("debounce", m.debounce).Msg("connectivity restored, scheduling sync")
				debounce.Reset(m.debounce)
			}

		case <-debounce.C:
			if _, err := m.PerformFullSync(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
				m.logger.Warn().Err(err).Msg("automatic sync after reconnect failed")
			}
		}
	}
}
