// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	manager SyncManager
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClientSyncJob constructs the periodic background sync worker.
func NewClientSyncJob(manager SyncManager, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{manager: manager, logger: log}
}

// Start implements [ClientSyncJob].
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	j.mu.Lock()
	j.cancel = cancel
	j.done = done
	j.mu.Unlock()

	j.logger.Info().Dur("interval", interval).Msg("background sync started")

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				j.logger.Info().Msg("background sync stopped")
				return
			case <-ticker.C:
				j.runOnce(ctx)
			}
		}
	}()
}

func (j *clientSyncJob) runOnce(ctx context.Context) {
	_, err := j.manager.PerformFullSync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInProgress):
		j.logger.Debug().Msg("periodic sync skipped, a round is already running")
	case errors.Is(err, ErrNoNetwork):
		j.logger.Debug().Msg("periodic sync skipped, no connectivity")
	default:
		j.logger.Warn().Err(err).Msg("periodic sync failed")
	}
}

// Stop implements [ClientSyncJob].
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
