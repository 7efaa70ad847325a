package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/models"
)

type placeVisitRepository struct {
	*DB
	logger *logger.Logger
}

// NewPlaceVisitRepository constructs a SQLite-backed [PlaceVisitRepository].
func NewPlaceVisitRepository(db *DB, logger *logger.Logger) PlaceVisitRepository {
	return &placeVisitRepository{DB: db, logger: logger}
}

func (r *placeVisitRepository) Upsert(ctx context.Context, visit models.PlaceVisit) error {
	var departure sql.NullTime
	if visit.DepartureTime != nil {
		departure = sql.NullTime{Time: *visit.DepartureTime, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, upsertPlaceVisit,
		visit.ID,
		visit.PlaceName,
		visit.Latitude,
		visit.Longitude,
		visit.ArrivalTime,
		departure,
		visit.Notes,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "placeVisitRepository.Upsert").
			Str("id", visit.ID).
			Msg("failed to upsert place visit")
		return fmt.Errorf("failed to upsert place visit (id=%s): %w", visit.ID, err)
	}

	return nil
}

func (r *placeVisitRepository) Get(ctx context.Context, id string) (models.PlaceVisit, error) {
	var (
		visit     models.PlaceVisit
		departure sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, getPlaceVisit, id).Scan(
		&visit.ID,
		&visit.PlaceName,
		&visit.Latitude,
		&visit.Longitude,
		&visit.ArrivalTime,
		&departure,
		&visit.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PlaceVisit{}, ErrEntityNotFound
	}
	if err != nil {
		return models.PlaceVisit{}, fmt.Errorf("failed to get place visit (id=%s): %w", id, err)
	}

	if departure.Valid {
		t := departure.Time
		visit.DepartureTime = &t
	}

	return visit, nil
}

func (r *placeVisitRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, deletePlaceVisit, id); err != nil {
		return fmt.Errorf("failed to delete place visit (id=%s): %w", id, err)
	}
	return nil
}

type tripRepository struct {
	*DB
	logger *logger.Logger
}

// NewTripRepository constructs a SQLite-backed [TripRepository].
func NewTripRepository(db *DB, logger *logger.Logger) TripRepository {
	return &tripRepository{DB: db, logger: logger}
}

func (r *tripRepository) Upsert(ctx context.Context, trip models.Trip) error {
	_, err := r.DB.ExecContext(ctx, upsertTrip,
		trip.ID,
		trip.Name,
		trip.StartTime,
		trip.EndTime,
		trip.DistanceMeters,
		trip.Notes,
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "tripRepository.Upsert").
			Str("id", trip.ID).
			Msg("failed to upsert trip")
		return fmt.Errorf("failed to upsert trip (id=%s): %w", trip.ID, err)
	}

	return nil
}

func (r *tripRepository) Get(ctx context.Context, id string) (models.Trip, error) {
	var trip models.Trip
	err := r.DB.QueryRowContext(ctx, getTrip, id).Scan(
		&trip.ID,
		&trip.Name,
		&trip.StartTime,
		&trip.EndTime,
		&trip.DistanceMeters,
		&trip.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, ErrEntityNotFound
	}
	if err != nil {
		return models.Trip{}, fmt.Errorf("failed to get trip (id=%s): %w", id, err)
	}

	return trip, nil
}

func (r *tripRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.DB.ExecContext(ctx, deleteTrip, id); err != nil {
		return fmt.Errorf("failed to delete trip (id=%s): %w", id, err)
	}
	return nil
}
