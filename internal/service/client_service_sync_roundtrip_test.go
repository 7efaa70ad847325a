// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-atlas-keeper/internal/config"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/store"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

// newRoundTripStorages — хелпер для создания настоящего SQLite-хранилища во
// временном файле (с миграциями), без моков.
func newRoundTripStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
	}
	storages, err := store.NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	return storages
}

// TestSyncOperations_SecondRoundCollectsNothing runs two consecutive
// collect→accept rounds against the real store: once every upload of the
// first round is acknowledged, the second round must collect an empty batch
// and the pending count must reach zero.
func TestSyncOperations_SecondRoundCollectsNothing(t *testing.T) {
	ctx := context.Background()
	storages := newRoundTripStorages(t)
	ops := NewSyncOperations(storages, "device-1", 0, logger.Nop())

	// локальное создание + надгробие удаления
	location := models.Location{
		ID:         "loc-1",
		Latitude:   55.7558,
		Longitude:  37.6173,
		Accuracy:   5,
		RecordedAt: time.Now().UTC(),
	}
	require.NoError(t, storages.Locations.Upsert(ctx, location))
	require.NoError(t, storages.SyncMetadata.Upsert(ctx, models.SyncMetadata{
		EntityID:      "loc-1",
		EntityType:    models.EntityLocation,
		LocalVersion:  1,
		LastModified:  time.Now().UTC(),
		IsPendingSync: true,
		DeviceID:      "device-1",
	}))
	require.NoError(t, storages.SyncMetadata.Upsert(ctx, models.SyncMetadata{
		EntityID:        "trip-1",
		EntityType:      models.EntityTrip,
		LocalVersion:    3,
		ServerVersion:   2,
		LastModified:    time.Now().UTC(),
		IsPendingSync:   true,
		IsPendingDelete: true,
		DeviceID:        "device-1",
	}))

	// ── первый раунд ──
	first, err := ops.CollectLocalChanges(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, first.Count())
	require.Len(t, first.Locations, 1)
	require.Equal(t, []string{"trip-1"}, first.DeletedIDs.Trips)

	response := models.DeltaSyncResponse{
		SyncVersion: 7,
		Accepted: models.AcceptedIDs{
			Locations: []string{"loc-1"},
			Trips:     []string{"trip-1"},
		},
	}
	require.NoError(t, ops.UpdateSyncMetadata(ctx, response))

	// ── второй раунд ──
	second, err := ops.CollectLocalChanges(ctx)
	require.NoError(t, err)
	assert.True(t, second.IsEmpty())

	pending, err := storages.SyncMetadata.PendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)

	// принятое изменение закреплено на версии сервера
	meta, err := storages.SyncMetadata.Get(ctx, "loc-1", models.EntityLocation)
	require.NoError(t, err)
	assert.False(t, meta.IsPendingSync)
	assert.Equal(t, int64(7), meta.ServerVersion)
	require.NotNil(t, meta.LastSynced)

	// принятое удаление сняло надгробие целиком
	_, err = storages.SyncMetadata.Get(ctx, "trip-1", models.EntityTrip)
	assert.ErrorIs(t, err, store.ErrMetadataNotFound)
}
