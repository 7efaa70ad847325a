package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a sync server base URL (e.g. "https://sync.example.com")
//	-d local database path
//	-device-id device identifier used in sync requests
//	-login account login
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-retry-max-elapsed total retry budget for a delta-sync call
//	-probe-interval connectivity probe interval
//	-sync-interval periodic sync interval
//	-reconnect-debounce debounce window before auto-sync on reconnect
//	-batch-limit max pending entities per type per round
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var deviceID string
	var login string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var retryMaxElapsed time.Duration
	var probeInterval time.Duration
	var syncInterval time.Duration
	var reconnectDebounce time.Duration
	var batchLimit int

	flag.StringVar(&serverAddress, "a", "", "Sync server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&deviceID, "device-id", "", "Device identifier")
	flag.StringVar(&login, "login", "", "Account login")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&retryMaxElapsed, "retry-max-elapsed", 0, "Total retry budget for a sync call")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval")
	flag.DurationVar(&reconnectDebounce, "reconnect-debounce", 0, "Debounce before auto-sync on reconnect")
	flag.IntVar(&batchLimit, "batch-limit", 0, "Max pending entities per type per round")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceID: deviceID,
			Login:    login,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:     serverAddress,
			RequestTimeout:  requestTimeout,
			RetryMaxElapsed: retryMaxElapsed,
			ProbeInterval:   probeInterval,
		},
		Workers: Workers{
			SyncInterval:      syncInterval,
			ReconnectDebounce: reconnectDebounce,
			BatchLimit:        batchLimit,
		},
		JSONFilePath: jsonConfigPath,
	}
}
