package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-atlas-keeper/internal/config"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// SyncMetadata is the per-entity sync bookkeeping store.
	SyncMetadata SyncMetadataRepository

	// Conflicts holds detected conflicts awaiting manual resolution.
	Conflicts ConflictRepository

	// Domain repositories the sync engine reads from and writes into.
	Locations   LocationRepository
	PlaceVisits PlaceVisitRepository
	Trips       TripRepository
	Photos      PhotoRepository
	Settings    SettingsRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing the same handle.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SyncMetadata: NewSyncMetadataRepository(db, logger),
		Conflicts:    NewConflictRepository(db, logger),
		Locations:    NewLocationRepository(db, logger),
		PlaceVisits:  NewPlaceVisitRepository(db, logger),
		Trips:        NewTripRepository(db, logger),
		Photos:       NewPhotoRepository(db, logger),
		Settings:     NewSettingsRepository(db, logger),
	}, nil
}
