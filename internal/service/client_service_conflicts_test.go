// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-atlas-keeper/internal/adapter"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/mock"
	"github.com/MKhiriev/go-atlas-keeper/internal/store"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

// newTestConflictSvc — хелпер для создания conflictService с моками
func newTestConflictSvc(t *testing.T, ctrl *gomock.Controller) (*conflictService, *mock.MockConflictRepository, *mock.MockServerAdapter) {
	t.Helper()

	repo := mock.NewMockConflictRepository(ctrl)
	srv := mock.NewMockServerAdapter(ctrl)
	svc := NewConflictService(repo, srv, "device-1", logger.Nop()).(*conflictService)
	return svc, repo, srv
}

// ── mergeFields ──────────────────────────────────────────────────────────────

func TestMergeFields_LocalWinsOnCollision(t *testing.T) {
	local := map[string]any{"name": "A", "notes": "x"}
	remote := map[string]any{"name": "B", "tags": []string{"t"}}

	merged := mergeFields(local, remote)

	assert.Equal(t, map[string]any{
		"name":  "A",
		"notes": "x",
		"tags":  []string{"t"},
	}, merged)
}

// TestMergeFields_ZeroValueLocalWinsOnCollision verifies that a local field
// legitimately holding a zero value ("", false, 0) still beats the remote
// value for the same key.
func TestMergeFields_ZeroValueLocalWinsOnCollision(t *testing.T) {
	local := map[string]any{"notes": "", "trackingEnabled": false, "sampleInterval": 0}
	remote := map[string]any{"notes": "remote-note", "trackingEnabled": true, "sampleInterval": 60, "units": "metric"}

	merged := mergeFields(local, remote)

	assert.Equal(t, map[string]any{
		"notes":           "",
		"trackingEnabled": false,
		"sampleInterval":  0,
		"units":           "metric",
	}, merged)
}

func TestMergeFields_EmptySides(t *testing.T) {
	merged := mergeFields(nil, map[string]any{"k": "v"})
	assert.Equal(t, map[string]any{"k": "v"}, merged)

	merged = mergeFields(map[string]any{"k": "v"}, nil)
	assert.Equal(t, map[string]any{"k": "v"}, merged)
}

// ── Resolve ──────────────────────────────────────────────────────────────────

func TestConflictService_ResolveMerge_SubmitsUnion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, srv := newTestConflictSvc(t, ctrl)
	ctx := context.Background()

	conflict := models.SyncConflict{
		ConflictID:   "c-1",
		EntityType:   models.EntityPlaceVisit,
		EntityID:     "visit-1",
		LocalFields:  map[string]any{"placeName": "Home", "notes": "mine"},
		RemoteFields: map[string]any{"placeName": "House", "latitude": 55.75},
	}

	repo.EXPECT().Get(ctx, "c-1").Return(conflict, nil)
	srv.EXPECT().ResolveConflict(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.ResolveConflictRequest) error {
			assert.Equal(t, "c-1", req.ConflictID)
			assert.Equal(t, models.ResolutionMerge, req.Resolution)
			assert.Equal(t, "device-1", req.DeviceID)
			// Локальное значение побеждает при совпадении ключей.
			assert.Equal(t, map[string]any{
				"placeName": "Home",
				"notes":     "mine",
				"latitude":  55.75,
			}, req.ResolvedFields)
			return nil
		},
	)
	repo.EXPECT().Delete(ctx, "c-1").Return(nil)

	require.NoError(t, svc.ResolveMerge(ctx, "c-1"))
	assert.Equal(t, int64(1), svc.ResolvedCount())
}

func TestConflictService_ResolveKeepRemote_SubmitsRemoteSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, srv := newTestConflictSvc(t, ctrl)
	ctx := context.Background()

	conflict := models.SyncConflict{
		ConflictID:   "c-2",
		LocalFields:  map[string]any{"notes": "local"},
		RemoteFields: map[string]any{"notes": "remote"},
	}

	repo.EXPECT().Get(ctx, "c-2").Return(conflict, nil)
	srv.EXPECT().ResolveConflict(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.ResolveConflictRequest) error {
			assert.Equal(t, models.ResolutionKeepRemote, req.Resolution)
			assert.Equal(t, conflict.RemoteFields, req.ResolvedFields)
			return nil
		},
	)
	repo.EXPECT().Delete(ctx, "c-2").Return(nil)

	require.NoError(t, svc.ResolveKeepRemote(ctx, "c-2"))
}

func TestConflictService_Resolve_SubmitFailureKeepsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, srv := newTestConflictSvc(t, ctrl)
	ctx := context.Background()

	conflict := models.SyncConflict{ConflictID: "c-3", LocalFields: map[string]any{"k": "v"}}

	repo.EXPECT().Get(ctx, "c-3").Return(conflict, nil)
	srv.EXPECT().ResolveConflict(ctx, gomock.Any()).Return(adapter.ErrTransport)
	// Delete не вызывается — конфликт остаётся для повторной попытки.

	err := svc.ResolveKeepLocal(ctx, "c-3")
	require.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, int64(0), svc.ResolvedCount())
}

func TestConflictService_Resolve_UnknownConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestConflictSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "missing").Return(models.SyncConflict{}, store.ErrConflictNotFound)

	err := svc.ResolveKeepLocal(ctx, "missing")
	require.ErrorIs(t, err, store.ErrConflictNotFound)
}

// ── Pending / Next / Skip ────────────────────────────────────────────────────

func TestConflictService_Next_OldestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestConflictSvc(t, ctrl)
	ctx := context.Background()

	oldest := models.SyncConflict{ConflictID: "c-old", DetectedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	newest := models.SyncConflict{ConflictID: "c-new", DetectedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)}

	repo.EXPECT().List(ctx).Return([]models.SyncConflict{oldest, newest}, nil)

	next, err := svc.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c-old", next.ConflictID)
}

func TestConflictService_Next_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestConflictSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return(nil, nil)

	_, err := svc.Next(ctx)
	require.ErrorIs(t, err, ErrNoPendingConflicts)
}

func TestConflictService_Skip_LeavesConflictPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestConflictSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "c-1").Return(models.SyncConflict{ConflictID: "c-1"}, nil)

	require.NoError(t, svc.Skip(ctx, "c-1"))
}
