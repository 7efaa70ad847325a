package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

type photoRepository struct {
	*DB
	logger *logger.Logger
}

// NewPhotoRepository constructs a SQLite-backed [PhotoRepository].
func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	return &photoRepository{DB: db, logger: logger}
}

func (r *photoRepository) Upsert(ctx context.Context, photo models.Photo) error {
	_, err := r.DB.ExecContext(ctx, upsertPhoto,
		photo.ID,
		photo.FileName,
		photo.CapturedAt,
		photo.Latitude,
		photo.Longitude,
		photo.PlaceVisitID,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "photoRepository.Upsert").
			Str("id", photo.ID).
			Msg("failed to upsert photo metadata")
		return fmt.Errorf("failed to upsert photo metadata (id=%s): %w", photo.ID, err)
	}

	return nil
}

func (r *photoRepository) Get(ctx context.Context, id string) (models.Photo, error) {
	var photo models.Photo
	err := r.DB.QueryRowContext(ctx, getPhoto, id).Scan(
		&photo.ID,
		&photo.FileName,
		&photo.CapturedAt,
		&photo.Latitude,
		&photo.Longitude,
		&photo.PlaceVisitID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Photo{}, ErrEntityNotFound
	}
	if err != nil {
		return models.Photo{}, fmt.Errorf("failed to get photo metadata (id=%s): %w", id, err)
	}

	return photo, nil
}

func (r *photoRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, deletePhoto, id); err != nil {
		return fmt.Errorf("failed to delete photo metadata (id=%s): %w", id, err)
	}
	return nil
}

func (r *photoRepository) ListIDsByVisit(ctx context.Context, placeVisitID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, listPhotoIDsByVisit, placeVisitID)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos of visit (id=%s): %w", placeVisitID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan photo id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate photo ids: %w", err)
	}

	return ids, nil
}

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a SQLite-backed [SettingsRepository].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{DB: db, logger: logger}
}

func (r *settingsRepository) Upsert(ctx context.Context, settings models.Settings) error {
	if settings.ID == "" {
		settings.ID = models.SettingsID
	}

	_, err := r.DB.ExecContext(ctx, upsertSettings,
		settings.ID,
		settings.TrackingEnabled,
		settings.SampleIntervalSeconds,
		settings.DistanceUnit,
		settings.Theme,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "settingsRepository.Upsert").
			Msg("failed to upsert settings")
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}

func (r *settingsRepository) Get(ctx context.Context, id string) (models.Settings, error) {
	var settings models.Settings
	err := r.DB.QueryRowContext(ctx, getSettings, id).Scan(
		&settings.ID,
		&settings.TrackingEnabled,
		&settings.SampleIntervalSeconds,
		&settings.DistanceUnit,
		&settings.Theme,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Settings{}, ErrEntityNotFound
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (r *settingsRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, deleteSettings, id); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}
	return nil
}
