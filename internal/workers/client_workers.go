// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-atlas-keeper/internal/service"
)

// NewClientWorkers composes the client agent's background workers: the
// connectivity monitor, the reconnect watcher that schedules a sync when the
// server becomes reachable again, and the periodic sync job. The workers
// stop when ctx is cancelled.
func NewClientWorkers(ctx context.Context, monitor Worker, manager service.SyncManager, job service.ClientSyncJob, syncInterval time.Duration) *Workers {
	return New(
		monitor,
		FuncWorker(func() {
			go manager.WatchConnectivity(ctx)
		}),
		FuncWorker(func() {
			job.Start(ctx, syncInterval)
		}),
	)
}
