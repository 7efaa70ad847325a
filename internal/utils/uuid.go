// Package utils provides general-purpose helpers used across the client:
// identifier generation for entities and devices.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for entities and devices.
// UUIDv7 keeps locally created ids roughly sortable by creation time, which
// keeps the SQLite primary-key index append-mostly.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random UUIDv4 if
// the system clock refuses to cooperate.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
