package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DeviceID: "device-abc",
			Login:    "traveler",
		},
		Adapter: ClientAdapter{
			HTTPAddress:     "https://sync.example.com",
			RequestTimeout:  30 * time.Second,
			RetryMaxElapsed: 2 * time.Minute,
			ProbeInterval:   15 * time.Second,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: "/home/user/.atlas-keeper/client.db"},
		},
		Workers: ClientWorkers{
			SyncInterval:      5 * time.Minute,
			ReconnectDebounce: 3 * time.Second,
			BatchLimit:        200,
		},
	}
}

func TestClientConfigValidate_Valid(t *testing.T) {
	cfg := validClientConfig()
	assert.NoError(t, cfg.validate())
}

func TestClientConfigValidate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(cfg *ClientConfig)
		expected error
	}{
		{
			name:     "empty DSN",
			mutate:   func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			expected: ErrInvalidStorageConfigs,
		},
		{
			name:     "in-memory DSN",
			mutate:   func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "file::memory:?cache=shared" },
			expected: ErrInvalidStorageConfigs,
		},
		{
			name:     "missing server address",
			mutate:   func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" },
			expected: ErrInvalidAdapterConfigs,
		},
		{
			name:     "zero request timeout",
			mutate:   func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			expected: ErrInvalidAdapterConfigs,
		},
		{
			name:     "zero sync interval",
			mutate:   func(cfg *ClientConfig) { cfg.Workers.SyncInterval = 0 },
			expected: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
