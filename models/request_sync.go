// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeltaSyncRequest is sent by the client to run one synchronization round.
// The server uses LastSyncVersion to compute which of its own changes the
// client has not yet seen.
type DeltaSyncRequest struct {
	// DeviceID identifies the device the pending changes originate from.
	DeviceID string `json:"deviceId"`

	// LastSyncVersion is the cursor of the last round the client has fully
	// processed, 0 on first sync.
	LastSyncVersion int64 `json:"lastSyncVersion"`

	// LocalChanges is the batch of pending local mutations.
	LocalChanges ChangeSet `json:"localChanges"`
}

// ResolveConflictRequest submits the outcome of a conflict resolution.
type ResolveConflictRequest struct {
	ConflictID string             `json:"conflictId"`
	EntityType EntityType         `json:"entityType"`
	EntityID   string             `json:"entityId"`
	Resolution ConflictResolution `json:"resolution"`

	// ResolvedFields is the field→value map the entity should end up with.
	ResolvedFields map[string]any `json:"resolvedFields"`

	DeviceID string `json:"deviceId"`
}
