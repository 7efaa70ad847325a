// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-atlas-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the device identity.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network settings for the sync server transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background sync jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// jsonFilePath is the optional path to a JSON configuration file,
	// populated via the CONFIG environment variable or the -c / -config
	// flag. When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceID identifies this device in sync requests. Generated and
	// persisted on first run when left empty.
	// Env: APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// Login is the account login used for authentication with the sync
	// server.
	// Env: APP_LOGIN
	Login string `env:"LOGIN"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "/home/user/.atlas-keeper/client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds network settings for the outbound sync transport.
type Adapter struct {
	// HTTPAddress is the base URL of the sync server
	// (e.g. "https://sync.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryMaxElapsed caps the total time spent retrying a transient
	// delta-sync failure with exponential backoff.
	// Env: ADAPTER_RETRY_MAX_ELAPSED
	RetryMaxElapsed time.Duration `env:"RETRY_MAX_ELAPSED"`

	// ProbeInterval is how often the connectivity monitor polls the server
	// health endpoint.
	// Env: ADAPTER_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// Workers holds configuration for background sync jobs.
type Workers struct {
	// SyncInterval defines how often the periodic sync job runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ReconnectDebounce is the quiet window after a Disconnected→Connected
	// transition before an automatic sync is triggered, guarding against
	// flapping connectivity.
	// Env: WORKERS_RECONNECT_DEBOUNCE
	ReconnectDebounce time.Duration `env:"RECONNECT_DEBOUNCE"`

	// BatchLimit caps how many pending entities of one type are collected
	// into a single sync round. Zero means no limit.
	// Env: WORKERS_BATCH_LIMIT
	BatchLimit int `env:"BATCH_LIMIT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
