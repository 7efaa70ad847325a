// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncMetadata is the per-entity sync bookkeeping row, keyed by
// (EntityID, EntityType). Exactly one row exists per entity the engine has
// ever tracked; an entity is pending until the server acknowledges its
// current local version.
type SyncMetadata struct {
	// EntityID is the stable identifier of the tracked entity.
	EntityID string `json:"entityId"`

	// EntityType identifies which domain repository owns the entity.
	EntityType EntityType `json:"entityType"`

	// LocalVersion increases by one on every local mutation of the entity.
	LocalVersion int64 `json:"localVersion"`

	// ServerVersion is the last version acknowledged by the server,
	// 0 until the first successful sync.
	ServerVersion int64 `json:"serverVersion"`

	// LastModified is when the entity was last mutated locally.
	LastModified time.Time `json:"lastModified"`

	// LastSynced is when the server last acknowledged this entity.
	LastSynced *time.Time `json:"lastSynced,omitempty"`

	// IsPendingSync is true while the local state has not been acknowledged.
	IsPendingSync bool `json:"isPendingSync"`

	// IsPendingDelete is true when the unacknowledged local mutation is a
	// deletion. The row acts as a tombstone until the server accepts it.
	IsPendingDelete bool `json:"isPendingDelete"`

	// DeviceID is the device that produced the pending mutation.
	DeviceID string `json:"deviceId"`

	// SyncAttempts counts failed attempts since the last acknowledgment.
	SyncAttempts int `json:"syncAttempts"`

	// LastSyncError holds the most recent per-entity rejection reason.
	LastSyncError string `json:"lastSyncError,omitempty"`
}

// Action derives the wire sync action for the current metadata state.
func (m SyncMetadata) Action() SyncAction {
	switch {
	case m.IsPendingDelete:
		return ActionDelete
	case m.ServerVersion == 0:
		return ActionCreate
	default:
		return ActionUpdate
	}
}
