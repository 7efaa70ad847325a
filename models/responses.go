// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AcceptedIDs lists, per entity type, the ids the server accepted in this
// round. Accepted entities are acknowledged at the response's SyncVersion.
type AcceptedIDs struct {
	Locations   []string `json:"locations,omitempty"`
	PlaceVisits []string `json:"placeVisits,omitempty"`
	Trips       []string `json:"trips,omitempty"`
	Photos      []string `json:"photos,omitempty"`
	Settings    []string `json:"settings,omitempty"`
}

// ForType returns the accepted ids for one entity type.
func (a AcceptedIDs) ForType(t EntityType) []string {
	switch t {
	case EntityLocation:
		return a.Locations
	case EntityPlaceVisit:
		return a.PlaceVisits
	case EntityTrip:
		return a.Trips
	case EntityPhoto:
		return a.Photos
	case EntitySettings:
		return a.Settings
	}
	return nil
}

// Count returns the total number of accepted ids across all types.
func (a AcceptedIDs) Count() int {
	n := 0
	for _, t := range AllEntityTypes {
		n += len(a.ForType(t))
	}
	return n
}

// RejectedEntity is a per-entity rejection. The entity stays pending on the
// client and is retried on the next round.
type RejectedEntity struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`

	// ConflictID links the rejection to a conflict in the same response,
	// when the rejection was caused by one.
	ConflictID string `json:"conflictId,omitempty"`
}

// DeltaSyncResponse is the server's answer to a DeltaSyncRequest.
type DeltaSyncResponse struct {
	// SyncVersion is the new cursor issued for this round. The client
	// persists it only after the whole response has been reconciled.
	SyncVersion int64 `json:"syncVersion"`

	// SyncTimestamp is the server-side time of the round.
	SyncTimestamp string `json:"syncTimestamp"`

	// Conflicts are the divergent edits detected while processing
	// LocalChanges.
	Conflicts []SyncConflict `json:"conflicts,omitempty"`

	// RemoteChanges are the server-side deltas since LastSyncVersion.
	RemoteChanges ChangeSet `json:"remoteChanges"`

	// Accepted and Rejected report the fate of each uploaded entity.
	Accepted AcceptedIDs                     `json:"accepted"`
	Rejected map[EntityType][]RejectedEntity `json:"rejected,omitempty"`
}
