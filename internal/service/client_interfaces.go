// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-atlas-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for user registration
// and authentication against the sync server.
type ClientAuthService interface {
	// Register creates a new account on the server for the given user and
	// stores the returned bearer token in the server adapter.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user against the server and stores the
	// returned bearer token in the server adapter. Returns the
	// server-assigned user id.
	Login(ctx context.Context, user models.User) (int64, error)
}

// SyncOperations turns pending local mutations into a wire batch, applies a
// received remote batch to the local repositories, and reconciles server
// acknowledgments back into the metadata store. It performs no network calls.
type SyncOperations interface {
	// CollectLocalChanges walks every entity type, loads the pending
	// metadata rows, resolves each row to a live entity in its domain
	// repository and builds the outgoing batch. A pending entity whose
	// repository lookup returns nothing is silently skipped: it was deleted
	// without a tracked tombstone. Pending deletions are reported through
	// the batch's DeletedIDs.
	CollectLocalChanges(ctx context.Context) (models.ChangeSet, error)

	// ApplyRemoteChanges writes the server's deltas into the local
	// repositories and records the acknowledged metadata rows. Every entity
	// is applied independently; a failure while applying one entity is
	// logged and must never abort the rest of the batch. Returns the number
	// of entities applied.
	ApplyRemoteChanges(ctx context.Context, remote models.ChangeSet) (int, error)

	// UpdateSyncMetadata reconciles the server's accepted/rejected verdicts:
	// accepted ids are marked synced at response.SyncVersion (tombstones of
	// accepted deletions are dropped), rejected ids are marked failed with
	// the rejection reason and stay pending for the next round.
	UpdateSyncMetadata(ctx context.Context, response models.DeltaSyncResponse) error
}

// SyncManager orchestrates one full sync cycle, gates on connectivity,
// publishes progress, and triggers auto-sync on reconnect. At most one sync
// round runs at a time; overlapping triggers are rejected with
// [ErrSyncInProgress].
type SyncManager interface {
	// PerformFullSync runs one collect→transmit→apply→reconcile round and
	// returns its summary. It fails fast with [ErrNoNetwork] when the
	// connectivity monitor does not report Connected, without spending a
	// network attempt. On any failure the pending metadata state is left
	// untouched so the next attempt retries exactly the same set.
	PerformFullSync(ctx context.Context) (models.SyncSummary, error)

	// MarkForSync upserts a pending metadata row for an entity mutated by a
	// collaborator repository. This is the only write path into the engine
	// from the rest of the application. deleted marks the mutation as a
	// deletion tombstone.
	MarkForSync(ctx context.Context, entityID string, entityType models.EntityType, deleted bool) error

	// Status returns the current state machine value.
	Status() models.SyncStatus

	// SubscribeStatus registers an observer of state transitions. The
	// returned cancel function removes the subscription.
	SubscribeStatus() (<-chan models.SyncStatus, func())

	// WatchConnectivity consumes the network monitor's transition stream
	// and schedules an automatic sync after the debounce window whenever
	// connectivity returns. Blocks until ctx is cancelled.
	WatchConnectivity(ctx context.Context)
}

// ConflictService drives the sequential, user-facing resolution of pending
// conflicts, and the automatic strategies applied during a sync round.
type ConflictService interface {
	// Save persists a conflict reported by the server so it survives until
	// a resolution is applied.
	Save(ctx context.Context, conflict models.SyncConflict) error

	// Pending returns the persisted conflicts ordered oldest first.
	Pending(ctx context.Context) ([]models.SyncConflict, error)

	// Next returns the oldest pending conflict, or ErrNoPendingConflicts.
	Next(ctx context.Context) (models.SyncConflict, error)

	// ResolveKeepLocal submits the conflict's local field snapshot.
	ResolveKeepLocal(ctx context.Context, conflictID string) error

	// ResolveKeepRemote submits the conflict's remote field snapshot.
	ResolveKeepRemote(ctx context.Context, conflictID string) error

	// ResolveMerge submits the union of the two snapshots with local values
	// winning on key collision.
	ResolveMerge(ctx context.Context, conflictID string) error

	// Skip advances past the conflict without resolving it; the conflict
	// stays pending for a later session.
	Skip(ctx context.Context, conflictID string) error

	// ResolvedCount reports how many conflicts were resolved since startup.
	ResolvedCount() int64
}

// ClientSyncJob defines the contract for a background worker that
// periodically runs a full sync round.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
