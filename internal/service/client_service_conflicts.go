// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-atlas-keeper/internal/adapter"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/store"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

type conflictService struct {
	conflicts store.ConflictRepository
	adapter   adapter.ServerAdapter
	deviceID  string
	resolved  atomic.Int64
	logger    *logger.Logger
}

// NewConflictService constructs the conflict resolution flow over the local
// conflict store and the server adapter.
func NewConflictService(conflicts store.ConflictRepository, serverAdapter adapter.ServerAdapter, deviceID string, log *logger.Logger) ConflictService {
	return &conflictService{
		conflicts: conflicts,
		adapter:   serverAdapter,
		deviceID:  deviceID,
		logger:    log,
	}
}

// Save implements [ConflictService].
func (c *conflictService) Save(ctx context.Context, conflict models.SyncConflict) error {
	if err := c.conflicts.Save(ctx, conflict); err != nil {
		return fmt.Errorf("save conflict %s: %w", conflict.ConflictID, err)
	}
	return nil
}

// Pending implements [ConflictService].
func (c *conflictService) Pending(ctx context.Context) ([]models.SyncConflict, error) {
	conflicts, err := c.conflicts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conflicts: %w", err)
	}
	return conflicts, nil
}

// Next implements [ConflictService].
func (c *conflictService) Next(ctx context.Context) (models.SyncConflict, error) {
	conflicts, err := c.conflicts.List(ctx)
	if err != nil {
		return models.SyncConflict{}, fmt.Errorf("list conflicts: %w", err)
	}
	if len(conflicts) == 0 {
		return models.SyncConflict{}, ErrNoPendingConflicts
	}
	return conflicts[0], nil
}

// ResolveKeepLocal implements [ConflictService].
func (c *conflictService) ResolveKeepLocal(ctx context.Context, conflictID string) error {
	return c.resolve(ctx, conflictID, models.ResolutionKeepLocal)
}

// ResolveKeepRemote implements [ConflictService].
func (c *conflictService) ResolveKeepRemote(ctx context.Context, conflictID string) error {
	return c.resolve(ctx, conflictID, models.ResolutionKeepRemote)
}

// ResolveMerge implements [ConflictService].
func (c *conflictService) ResolveMerge(ctx context.Context, conflictID string) error {
	return c.resolve(ctx, conflictID, models.ResolutionMerge)
}

// resolve computes the resolved field set for the strategy, submits it to
// the server and deletes the local conflict record only once the server has
// accepted the resolution. A failed submission keeps the record so the user
// can retry.
func (c *conflictService) resolve(ctx context.Context, conflictID string, resolution models.ConflictResolution) error {
	conflict, err := c.conflicts.Get(ctx, conflictID)
	if err != nil {
		if errors.Is(err, store.ErrConflictNotFound) {
			return err
		}
		return fmt.Errorf("get conflict %s: %w", conflictID, err)
	}

	resolvedFields, err := resolutionFields(conflict, resolution)
	if err != nil {
		return err
	}

	err = c.adapter.ResolveConflict(ctx, models.ResolveConflictRequest{
		ConflictID:     conflict.ConflictID,
		EntityType:     conflict.EntityType,
		EntityID:       conflict.EntityID,
		Resolution:     resolution,
		ResolvedFields: resolvedFields,
		DeviceID:       c.deviceID,
	})
	if err != nil {
		return fmt.Errorf("submit resolution of %s: %w", conflictID, err)
	}

	if err = c.conflicts.Delete(ctx, conflictID); err != nil {
		return fmt.Errorf("delete resolved conflict %s: %w", conflictID, err)
	}

	c.resolved.Add(1)
	c.logger.Info().
		Str("conflict_id", conflictID).
		Str("entity_type", string(conflict.EntityType)).
		Str("entity_id", conflict.EntityID).
		Str("resolution", string(resolution)).
		Msg("conflict resolved")

	return nil
}

// resolutionFields maps a strategy to the field snapshot sent to the server.
// MERGE is the union of both snapshots with the local value winning whenever
// the same key appears on both sides.
func resolutionFields(conflict models.SyncConflict, resolution models.ConflictResolution) (map[string]any, error) {
	switch resolution {
	case models.ResolutionKeepLocal:
		return conflict.LocalFields, nil
	case models.ResolutionKeepRemote:
		return conflict.RemoteFields, nil
	case models.ResolutionMerge:
		return mergeFields(conflict.LocalFields, conflict.RemoteFields), nil
	default:
		return nil, fmt.Errorf("resolution %q cannot be computed client-side", resolution)
	}
}

func mergeFields(local, remote map[string]any) map[string]any {
	merged := make(map[string]any, len(local)+len(remote))
	for key, value := range remote {
		merged[key] = value
	}
	// Local assignment runs last so a colliding key keeps the local value
	// even when that value is a zero like "", false or 0.
	for key, value := range local {
		merged[key] = value
	}
	return merged
}

// Skip implements [ConflictService].
func (c *conflictService) Skip(ctx context.Context, conflictID string) error {
	if _, err := c.conflicts.Get(ctx, conflictID); err != nil {
		if errors.Is(err, store.ErrConflictNotFound) {
			return err
		}
		return fmt.Errorf("get conflict %s: %w", conflictID, err)
	}

	c.logger.Debug().Str("conflict_id", conflictID).Msg("conflict skipped, stays pending")
	return nil
}

// ResolvedCount implements [ConflictService].
func (c *conflictService) ResolvedCount() int64 {
	return c.resolved.Load()
}
