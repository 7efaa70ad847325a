package store

import (
	"context"

	"github.com/MKhiriev/go-atlas-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncMetadataRepository is the per-entity sync bookkeeping store. Exactly
// one row exists per (entityID, entityType); an entity leaves the pending
// state only through MarkSynced or Delete.
type SyncMetadataRepository interface {
	// Upsert inserts or replaces the metadata row for (EntityID, EntityType).
	Upsert(ctx context.Context, meta models.SyncMetadata) error

	// Get returns the metadata row for the entity, or ErrMetadataNotFound.
	Get(ctx context.Context, entityID string, entityType models.EntityType) (models.SyncMetadata, error)

	// GetPendingSync returns up to limit pending rows of the given type,
	// excluding pending deletions. limit <= 0 means no limit.
	GetPendingSync(ctx context.Context, entityType models.EntityType, limit int) ([]models.SyncMetadata, error)

	// GetPendingDelete returns the pending deletion tombstones of the given type.
	GetPendingDelete(ctx context.Context, entityType models.EntityType) ([]models.SyncMetadata, error)

	// MarkSynced clears the pending flags, stores the acknowledged server
	// version, resets the attempt counter and error, and stamps last_synced.
	MarkSynced(ctx context.Context, entityID string, entityType models.EntityType, serverVersion int64) error

	// MarkFailed increments the attempt counter and records the rejection
	// reason. The pending flag is left untouched so the entity is retried.
	MarkFailed(ctx context.Context, entityID string, entityType models.EntityType, reason string) error

	// PendingCount returns the number of rows still awaiting acknowledgment,
	// deletions included.
	PendingCount(ctx context.Context) (int64, error)

	// Delete removes the metadata row entirely (acknowledged deletions).
	Delete(ctx context.Context, entityID string, entityType models.EntityType) error

	// LastSyncVersion returns the persisted server cursor, 0 before the
	// first successful round.
	LastSyncVersion(ctx context.Context) (int64, error)

	// SetLastSyncVersion persists the server cursor after a fully
	// reconciled round.
	SetLastSyncVersion(ctx context.Context, version int64) error
}

// ConflictRepository persists conflicts awaiting manual resolution.
type ConflictRepository interface {
	Save(ctx context.Context, conflict models.SyncConflict) error
	Get(ctx context.Context, conflictID string) (models.SyncConflict, error)
	// List returns pending conflicts ordered oldest first.
	List(ctx context.Context) ([]models.SyncConflict, error)
	Delete(ctx context.Context, conflictID string) error
	Count(ctx context.Context) (int64, error)
}

// LocationRepository stores location samples.
type LocationRepository interface {
	Upsert(ctx context.Context, location models.Location) error
	Get(ctx context.Context, id string) (models.Location, error)
	Delete(ctx context.Context, id string) error
}

// PlaceVisitRepository stores detected place visits.
type PlaceVisitRepository interface {
	Upsert(ctx context.Context, visit models.PlaceVisit) error
	Get(ctx context.Context, id string) (models.PlaceVisit, error)
	Delete(ctx context.Context, id string) error
}

// TripRepository stores detected trips.
type TripRepository interface {
	Upsert(ctx context.Context, trip models.Trip) error
	Get(ctx context.Context, id string) (models.Trip, error)
	Delete(ctx context.Context, id string) error
}

// PhotoRepository stores photo metadata.
type PhotoRepository interface {
	Upsert(ctx context.Context, photo models.Photo) error
	Get(ctx context.Context, id string) (models.Photo, error)
	Delete(ctx context.Context, id string) error

	// ListIDsByVisit returns the ids of photos attached to a place visit,
	// used to enrich outgoing place-visit deltas.
	ListIDsByVisit(ctx context.Context, placeVisitID string) ([]string, error)
}

// SettingsRepository stores the single settings record.
type SettingsRepository interface {
	Upsert(ctx context.Context, settings models.Settings) error
	Get(ctx context.Context, id string) (models.Settings, error)
	Delete(ctx context.Context, id string) error
}
