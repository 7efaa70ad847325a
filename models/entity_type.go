// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntityType identifies the kind of syncable domain object a metadata row,
// conflict, or wire delta refers to. The string codes are stored in the local
// database and sent over the wire, so they must remain stable.
type EntityType string

const (
	// EntityLocation is a raw location sample recorded by the tracking
	// pipeline.
	EntityLocation EntityType = "location"

	// EntityPlaceVisit is a detected stay at a place, with arrival and
	// departure times.
	EntityPlaceVisit EntityType = "place_visit"

	// EntityTrip is a detected movement between places.
	EntityTrip EntityType = "trip"

	// EntityPhoto is photo metadata attached to a place visit. Binary photo
	// content is transferred out of band and never passes through the sync
	// engine.
	EntityPhoto EntityType = "photo"

	// EntitySettings is the user's application settings record.
	EntitySettings EntityType = "settings"
)

// AllEntityTypes lists every syncable entity type in the order the sync
// engine collects and applies them.
var AllEntityTypes = []EntityType{
	EntityLocation,
	EntityPlaceVisit,
	EntityTrip,
	EntityPhoto,
	EntitySettings,
}

// SyncAction describes what happened to an entity since its last
// acknowledged state.
type SyncAction string

const (
	ActionCreate SyncAction = "CREATE"
	ActionUpdate SyncAction = "UPDATE"
	ActionDelete SyncAction = "DELETE"
)
