// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

// conflictRepository is the SQLite-backed implementation of
// [ConflictRepository]. Field snapshots are stored as JSON text columns.
// Operations share one mutex for the same reason as the metadata repository.
type conflictRepository struct {
	*DB
	logger *logger.Logger

	mu sync.Mutex
}

// NewConflictRepository constructs a [ConflictRepository] backed by the
// given database handle.
func NewConflictRepository(db *DB, logger *logger.Logger) ConflictRepository {
	return &conflictRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *conflictRepository) Save(ctx context.Context, conflict models.SyncConflict) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	localFields, err := json.Marshal(conflict.LocalFields)
	if err != nil {
		return fmt.Errorf("failed to encode local fields: %w", err)
	}
	remoteFields, err := json.Marshal(conflict.RemoteFields)
	if err != nil {
		return fmt.Errorf("failed to encode remote fields: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, saveSyncConflict,
		conflict.ConflictID,
		string(conflict.EntityType),
		conflict.EntityID,
		string(conflict.Type),
		string(localFields),
		string(remoteFields),
		string(conflict.SuggestedResolution),
		conflict.DetectedAt,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "conflictRepository.Save").
			Str("conflict_id", conflict.ConflictID).
			Msg("failed to save sync conflict")
		return fmt.Errorf("failed to save sync conflict (conflict_id=%s): %w", conflict.ConflictID, err)
	}

	return nil
}

func (r *conflictRepository) Get(ctx context.Context, conflictID string) (models.SyncConflict, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := r.DB.QueryRowContext(ctx, getSyncConflict, conflictID)
	conflict, err := scanSyncConflict(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncConflict{}, ErrConflictNotFound
		}
		r.logger.Err(err).
			Str("func", "conflictRepository.Get").
			Str("conflict_id", conflictID).
			Msg("failed to scan sync conflict row")
		return models.SyncConflict{}, fmt.Errorf("failed to get sync conflict: %w", err)
	}

	return conflict, nil
}

func (r *conflictRepository) List(ctx context.Context) ([]models.SyncConflict, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.DB.QueryContext(ctx, listSyncConflicts)
	if err != nil {
		r.logger.Err(err).
			Str("func", "conflictRepository.List").
			Msg("failed to query sync conflicts")
		return nil, fmt.Errorf("failed to query sync conflicts: %w", err)
	}
	defer rows.Close()

	var conflicts []models.SyncConflict
	for rows.Next() {
		conflict, err := scanSyncConflict(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync conflict rows: %w", err)
		}
		conflicts = append(conflicts, conflict)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sync conflict rows: %w", err)
	}

	return conflicts, nil
}

func (r *conflictRepository) Delete(ctx context.Context, conflictID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.DB.ExecContext(ctx, deleteSyncConflict, conflictID)
	if err != nil {
		r.logger.Err(err).
			Str("func", "conflictRepository.Delete").
			Str("conflict_id", conflictID).
			Msg("failed to delete sync conflict")
		return fmt.Errorf("failed to delete sync conflict (conflict_id=%s): %w", conflictID, err)
	}

	return nil
}

func (r *conflictRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	if err := r.DB.QueryRowContext(ctx, countSyncConflicts).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sync conflicts: %w", err)
	}

	return count, nil
}

func scanSyncConflict(row rowScanner) (models.SyncConflict, error) {
	var (
		conflict     models.SyncConflict
		entityType   string
		conflictType string
		resolution   string
		localFields  string
		remoteFields string
	)

	err := row.Scan(
		&conflict.ConflictID,
		&entityType,
		&conflict.EntityID,
		&conflictType,
		&localFields,
		&remoteFields,
		&resolution,
		&conflict.DetectedAt,
	)
	if err != nil {
		return models.SyncConflict{}, err
	}

	conflict.EntityType = models.EntityType(entityType)
	conflict.Type = models.ConflictType(conflictType)
	conflict.SuggestedResolution = models.ConflictResolution(resolution)

	if err = json.Unmarshal([]byte(localFields), &conflict.LocalFields); err != nil {
		return models.SyncConflict{}, fmt.Errorf("failed to decode local fields: %w", err)
	}
	if err = json.Unmarshal([]byte(remoteFields), &conflict.RemoteFields); err != nil {
		return models.SyncConflict{}, fmt.Errorf("failed to decode remote fields: %w", err)
	}

	return conflict, nil
}
