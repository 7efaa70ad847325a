// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncEnvelope carries the sync bookkeeping fields every wire delta is
// stamped with. Values are taken from the entity's SyncMetadata row at
// collection time.
type SyncEnvelope struct {
	ID            string     `json:"id"`
	SyncAction    SyncAction `json:"syncAction"`
	LocalVersion  int64      `json:"localVersion"`
	ServerVersion int64      `json:"serverVersion"`
	DeviceID      string     `json:"deviceId"`
	LastModified  time.Time  `json:"lastModified"`
}

// LocationDelta is the wire representation of a location sample change.
type LocationDelta struct {
	SyncEnvelope
	Location Location `json:"location"`
}

// PlaceVisitDelta is the wire representation of a place-visit change. It
// additionally carries the ids of photos attached to the visit so the server
// can keep the association without a separate round.
type PlaceVisitDelta struct {
	SyncEnvelope
	PlaceVisit PlaceVisit `json:"placeVisit"`
	PhotoIDs   []string   `json:"photoIds,omitempty"`
}

// TripDelta is the wire representation of a trip change.
type TripDelta struct {
	SyncEnvelope
	Trip Trip `json:"trip"`
}

// PhotoDelta is the wire representation of a photo-metadata change.
type PhotoDelta struct {
	SyncEnvelope
	Photo Photo `json:"photo"`
}

// SettingsDelta is the wire representation of a settings change.
type SettingsDelta struct {
	SyncEnvelope
	Settings Settings `json:"settings"`
}

// DeletedIDs lists, per entity type, ids removed since the last cursor.
type DeletedIDs struct {
	Locations   []string `json:"locations,omitempty"`
	PlaceVisits []string `json:"placeVisits,omitempty"`
	Trips       []string `json:"trips,omitempty"`
	Photos      []string `json:"photos,omitempty"`
}

// Count returns the total number of listed ids.
func (d DeletedIDs) Count() int {
	return len(d.Locations) + len(d.PlaceVisits) + len(d.Trips) + len(d.Photos)
}

// ChangeSet is a batch of entity deltas grouped by type. The same shape is
// used in both directions: as localChanges in the request and as
// remoteChanges in the response.
type ChangeSet struct {
	Locations   []LocationDelta   `json:"locations,omitempty"`
	PlaceVisits []PlaceVisitDelta `json:"placeVisits,omitempty"`
	Trips       []TripDelta       `json:"trips,omitempty"`
	Photos      []PhotoDelta      `json:"photos,omitempty"`
	Settings    *SettingsDelta    `json:"settings,omitempty"`
	DeletedIDs  DeletedIDs        `json:"deletedIds"`
}

// Count returns the number of entity deltas in the batch, deletions included.
func (c ChangeSet) Count() int {
	n := len(c.Locations) + len(c.PlaceVisits) + len(c.Trips) + len(c.Photos)
	if c.Settings != nil {
		n++
	}
	return n + c.DeletedIDs.Count()
}

// IsEmpty reports whether the batch carries no changes at all.
func (c ChangeSet) IsEmpty() bool {
	return c.Count() == 0
}
