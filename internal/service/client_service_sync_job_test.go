// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/mock"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

func TestClientSyncJob_RunsPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)
	job := NewClientSyncJob(manager, logger.Nop())

	synced := make(chan struct{}, 4)
	manager.EXPECT().PerformFullSync(gomock.Any()).DoAndReturn(
		func(context.Context) (models.SyncSummary, error) {
			synced <- struct{}{}
			return models.SyncSummary{}, nil
		},
	).MinTimes(1)

	job.Start(context.Background(), 20*time.Millisecond)
	defer job.Stop()

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("periodic sync did not run")
	}
}

func TestClientSyncJob_StopTerminatesWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)
	manager.EXPECT().PerformFullSync(gomock.Any()).Return(models.SyncSummary{}, ErrSyncInProgress).AnyTimes()

	job := NewClientSyncJob(manager, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)

	// Stop блокируется до полного завершения горутины.
	job.Stop()

	// Повторный Stop без запущенной горутины безопасен.
	job.Stop()
}

func TestClientSyncJob_RestartReplacesWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockSyncManager(ctrl)
	manager.EXPECT().PerformFullSync(gomock.Any()).Return(models.SyncSummary{}, nil).AnyTimes()

	job := NewClientSyncJob(manager, logger.Nop()).(*clientSyncJob)

	job.Start(context.Background(), time.Hour)
	first := job.done

	job.Start(context.Background(), time.Hour)
	second := job.done

	require.NotEqual(t, first, second)

	// Первая горутина остановлена при перезапуске.
	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("previous worker was not stopped on restart")
	}

	job.Stop()
}

func TestClientSyncJob_StopWithoutStart(t *testing.T) {
	manager := mock.NewMockSyncManager(gomock.NewController(t))
	job := NewClientSyncJob(manager, logger.Nop())

	job.Stop()
}
