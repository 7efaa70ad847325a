package service

import "errors"

var (
	// ErrNoNetwork is returned by PerformFullSync when connectivity is
	// Disconnected or Limited. No network attempt was made and no metadata
	// was mutated; the round becomes retryable once connectivity returns.
	ErrNoNetwork = errors.New("no network connectivity")

	// ErrSyncInProgress is returned when a sync trigger fires while another
	// round is still running. Overlapping rounds are coalesced, never run
	// concurrently, so pending entities are not double counted.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrNoPendingConflicts is returned by ConflictService.Next when every
	// persisted conflict has been resolved or skipped.
	ErrNoPendingConflicts = errors.New("no pending conflicts")

	// ErrUnknownEntityType is returned when a wire delta or metadata row
	// names an entity type this client does not know.
	ErrUnknownEntityType = errors.New("unknown entity type")
)
