package models

import "time"

// PlaceVisit is a detected stay at a place between arrival and departure.
type PlaceVisit struct {
	ID            string     `json:"id"`
	PlaceName     string     `json:"placeName"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	ArrivalTime   time.Time  `json:"arrivalTime"`
	DepartureTime *time.Time `json:"departureTime,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// Trip is a detected movement between two places.
type Trip struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	DistanceMeters float64   `json:"distanceMeters"`
	Notes          string    `json:"notes,omitempty"`
}
