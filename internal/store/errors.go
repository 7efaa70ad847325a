package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMetadataNotFound is returned when a query targets a sync metadata
	// row (identified by entity_id and entity_type) that does not exist.
	ErrMetadataNotFound = errors.New("sync metadata was not found")

	// ErrConflictNotFound is returned when a resolution targets a conflict
	// that is no longer persisted (already resolved or never stored).
	ErrConflictNotFound = errors.New("sync conflict was not found")

	// ErrEntityNotFound is returned by domain repositories when the entity
	// with the requested id does not exist locally.
	ErrEntityNotFound = errors.New("entity was not found")
)
