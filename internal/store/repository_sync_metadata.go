// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

// syncMetadataRepository is the SQLite-backed implementation of
// [SyncMetadataRepository].
//
// Every operation is serialized through a single mutex: metadata writes are
// small read-modify-write cycles invoked concurrently from the manual
// trigger, the reconnect trigger and the periodic job, and SQLite tolerates
// only one writer at a time. The lock is never held across a network call.
type syncMetadataRepository struct {
	*DB
	logger *logger.Logger

	mu sync.Mutex
}

// NewSyncMetadataRepository constructs a [SyncMetadataRepository] backed by
// the given database handle.
func NewSyncMetadataRepository(db *DB, logger *logger.Logger) SyncMetadataRepository {
	return &syncMetadataRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncMetadataRepository) Upsert(ctx context.Context, meta models.SyncMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var lastSynced sql.NullTime
	if meta.LastSynced != nil {
		lastSynced = sql.NullTime{Time: *meta.LastSynced, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, upsertSyncMetadata,
		meta.EntityID,
		string(meta.EntityType),
		meta.LocalVersion,
		meta.ServerVersion,
		meta.LastModified,
		lastSynced,
		meta.IsPendingSync,
		meta.IsPendingDelete,
		meta.DeviceID,
		meta.SyncAttempts,
		meta.LastSyncError,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.Upsert").
			Str("entity_id", meta.EntityID).
			Str("entity_type", string(meta.EntityType)).
			Msg("failed to upsert sync metadata")
		return fmt.Errorf("failed to upsert sync metadata (entity_id=%s): %w", meta.EntityID, err)
	}

	return nil
}

func (r *syncMetadataRepository) Get(ctx context.Context, entityID string, entityType models.EntityType) (models.SyncMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := r.DB.QueryRowContext(ctx, getSyncMetadata, entityID, string(entityType))
	meta, err := scanSyncMetadata(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncMetadata{}, ErrMetadataNotFound
		}
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.Get").
			Str("entity_id", entityID).
			Msg("failed to scan sync metadata row")
		return models.SyncMetadata{}, fmt.Errorf("failed to get sync metadata: %w", err)
	}

	return meta, nil
}

func (r *syncMetadataRepository) GetPendingSync(ctx context.Context, entityType models.EntityType, limit int) ([]models.SyncMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = -1 // SQLite: negative LIMIT selects all rows
	}

	rows, err := r.DB.QueryContext(ctx, getPendingSyncMetadata, string(entityType), limit)
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.GetPendingSync").
			Str("entity_type", string(entityType)).
			Msg("failed to query pending sync metadata")
		return nil, fmt.Errorf("failed to query pending sync metadata: %w", err)
	}
	defer rows.Close()

	return collectSyncMetadata(rows)
}

func (r *syncMetadataRepository) GetPendingDelete(ctx context.Context, entityType models.EntityType) ([]models.SyncMetadata, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.DB.QueryContext(ctx, getPendingDeleteMetadata, string(entityType))
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.GetPendingDelete").
			Str("entity_type", string(entityType)).
			Msg("failed to query pending delete metadata")
		return nil, fmt.Errorf("failed to query pending delete metadata: %w", err)
	}
	defer rows.Close()

	return collectSyncMetadata(rows)
}

func (r *syncMetadataRepository) MarkSynced(ctx context.Context, entityID string, entityType models.EntityType, serverVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.DB.ExecContext(ctx, markSyncedMetadata,
		serverVersion,
		time.Now().UTC(),
		entityID,
		string(entityType),
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.MarkSynced").
			Str("entity_id", entityID).
			Msg("failed to mark entity synced")
		return fmt.Errorf("failed to mark entity synced (entity_id=%s): %w", entityID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrMetadataNotFound
	}

	return nil
}

func (r *syncMetadataRepository) MarkFailed(ctx context.Context, entityID string, entityType models.EntityType, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.DB.ExecContext(ctx, markFailedMetadata,
		reason,
		entityID,
		string(entityType),
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.MarkFailed").
			Str("entity_id", entityID).
			Msg("failed to mark entity failed")
		return fmt.Errorf("failed to mark entity failed (entity_id=%s): %w", entityID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrMetadataNotFound
	}

	return nil
}

func (r *syncMetadataRepository) PendingCount(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	if err := r.DB.QueryRowContext(ctx, countPendingMetadata).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending metadata: %w", err)
	}

	return count, nil
}

func (r *syncMetadataRepository) Delete(ctx context.Context, entityID string, entityType models.EntityType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.DB.ExecContext(ctx, deleteSyncMetadata, entityID, string(entityType))
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.Delete").
			Str("entity_id", entityID).
			Msg("failed to delete sync metadata")
		return fmt.Errorf("failed to delete sync metadata (entity_id=%s): %w", entityID, err)
	}

	return nil
}

func (r *syncMetadataRepository) LastSyncVersion(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var version int64
	err := r.DB.QueryRowContext(ctx, getSyncCursor).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read sync cursor: %w", err)
	}

	return version, nil
}

func (r *syncMetadataRepository) SetLastSyncVersion(ctx context.Context, version int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.DB.ExecContext(ctx, setSyncCursor, version); err != nil {
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.SetLastSyncVersion").
			Int64("version", version).
			Msg("failed to persist sync cursor")
		return fmt.Errorf("failed to persist sync cursor: %w", err)
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncMetadata(row rowScanner) (models.SyncMetadata, error) {
	var (
		meta       models.SyncMetadata
		entityType string
		lastSynced sql.NullTime
	)

	err := row.Scan(
		&meta.EntityID,
		&entityType,
		&meta.LocalVersion,
		&meta.ServerVersion,
		&meta.LastModified,
		&lastSynced,
		&meta.IsPendingSync,
		&meta.IsPendingDelete,
		&meta.DeviceID,
		&meta.SyncAttempts,
		&meta.LastSyncError,
	)
	if err != nil {
		return models.SyncMetadata{}, err
	}

	meta.EntityType = models.EntityType(entityType)
	if lastSynced.Valid {
		t := lastSynced.Time
		meta.LastSynced = &t
	}

	return meta, nil
}

func collectSyncMetadata(rows *sql.Rows) ([]models.SyncMetadata, error) {
	var items []models.SyncMetadata
	for rows.Next() {
		meta, err := scanSyncMetadata(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync metadata rows: %w", err)
		}
		items = append(items, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sync metadata rows: %w", err)
	}

	return items, nil
}
