package models

import "time"

// Photo is photo metadata linked to a place visit. Only metadata is synced;
// the binary content lives in platform storage and is uploaded separately.
type Photo struct {
	ID           string    `json:"id"`
	FileName     string    `json:"fileName"`
	CapturedAt   time.Time `json:"capturedAt"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	PlaceVisitID string    `json:"placeVisitId,omitempty"`
}

// SettingsID is the fixed identifier of the single settings record. Settings
// sync through the same engine as any other entity, keyed by this id.
const SettingsID = "settings"

// Settings is the user's application settings record.
type Settings struct {
	ID                    string `json:"id"`
	TrackingEnabled       bool   `json:"trackingEnabled"`
	SampleIntervalSeconds int    `json:"sampleIntervalSeconds"`
	DistanceUnit          string `json:"distanceUnit"`
	Theme                 string `json:"theme"`
}
