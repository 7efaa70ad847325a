// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-atlas-keeper/internal/adapter"
	"github.com/MKhiriev/go-atlas-keeper/internal/config"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/store"
)

// ClientServices aggregates every client-side service behind one value,
// wired from the storages, the server adapter and the connectivity monitor.
type ClientServices struct {
	Auth      ClientAuthService
	SyncOps   SyncOperations
	Sync      SyncManager
	Conflicts ConflictService
	SyncJob   ClientSyncJob
}

// NewClientServices wires the full client service graph.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	monitor adapter.NetworkMonitor,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	ops := NewSyncOperations(storages, cfg.App.DeviceID, cfg.Workers.BatchLimit, log)
	conflicts := NewConflictService(storages.Conflicts, serverAdapter, cfg.App.DeviceID, log)
	manager := NewSyncManager(
		storages.SyncMetadata,
		serverAdapter,
		monitor,
		ops,
		conflicts,
		cfg.App.DeviceID,
		cfg.Workers.ReconnectDebounce,
		log,
	)

	return &ClientServices{
		Auth:      NewClientAuthService(serverAdapter, log),
		SyncOps:   ops,
		Sync:      manager,
		Conflicts: conflicts,
		SyncJob:   NewClientSyncJob(manager, log),
	}
}
