// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConflictType classifies why the server flagged an entity as conflicted.
type ConflictType string

const (
	// ConflictConcurrentModification means both sides edited the entity
	// since the last common version.
	ConflictConcurrentModification ConflictType = "CONCURRENT_MODIFICATION"

	// ConflictDeletion means one side deleted the entity while the other
	// side edited it.
	ConflictDeletion ConflictType = "DELETION_CONFLICT"

	// ConflictVersionMismatch means the client presented a base version the
	// server does not recognize.
	ConflictVersionMismatch ConflictType = "VERSION_MISMATCH"
)

// ConflictResolution names a strategy for settling a conflict.
type ConflictResolution string

const (
	ResolutionKeepLocal  ConflictResolution = "KEEP_LOCAL"
	ResolutionKeepRemote ConflictResolution = "KEEP_REMOTE"
	ResolutionMerge      ConflictResolution = "MERGE"
	ResolutionManual     ConflictResolution = "MANUAL"
)

// SyncConflict is a divergent concurrent edit detected by the server during
// a sync round. It is persisted locally until a resolution is applied, then
// deleted.
type SyncConflict struct {
	// ConflictID is the server-assigned identifier of the conflict.
	ConflictID string `json:"conflictId"`

	EntityType EntityType   `json:"entityType"`
	EntityID   string       `json:"entityId"`
	Type       ConflictType `json:"conflictType"`

	// LocalFields and RemoteFields are field→value snapshots of the two
	// divergent versions as the server saw them.
	LocalFields  map[string]any `json:"localVersion"`
	RemoteFields map[string]any `json:"remoteVersion"`

	// SuggestedResolution is the server's hint. Anything other than MANUAL
	// is applied automatically during the sync round.
	SuggestedResolution ConflictResolution `json:"suggestedResolution"`

	DetectedAt time.Time `json:"detectedAt"`
}
