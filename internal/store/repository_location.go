package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

type locationRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocationRepository constructs a SQLite-backed [LocationRepository].
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	return &locationRepository{DB: db, logger: logger}
}

func (r *locationRepository) Upsert(ctx context.Context, location models.Location) error {
	_, err := r.DB.ExecContext(ctx, upsertLocation,
		location.ID,
		location.Latitude,
		location.Longitude,
		location.Altitude,
		location.Accuracy,
		location.RecordedAt,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "locationRepository.Upsert").
			Str("id", location.ID).
			Msg("failed to upsert location")
		return fmt.Errorf("failed to upsert location (id=%s): %w", location.ID, err)
	}

	return nil
}

func (r *locationRepository) Get(ctx context.Context, id string) (models.Location, error) {
	var location models.Location
	err := r.DB.QueryRowContext(ctx, getLocation, id).Scan(
		&location.ID,
		&location.Latitude,
		&location.Longitude,
		&location.Altitude,
		&location.Accuracy,
		&location.RecordedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Location{}, ErrEntityNotFound
	}
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to get location (id=%s): %w", id, err)
	}

	return location, nil
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, deleteLocation, id); err != nil {
		return fmt.Errorf("failed to delete location (id=%s): %w", id, err)
	}
	return nil
}
