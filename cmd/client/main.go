package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-atlas-keeper/internal/adapter"
	"github.com/MKhiriev/go-atlas-keeper/internal/client"
	"github.com/MKhiriev/go-atlas-keeper/internal/config"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/service"
	"github.com/MKhiriev/go-atlas-keeper/internal/store"
	"github.com/MKhiriev/go-atlas-keeper/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("atlas-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = ensureDeviceID(cfg); err != nil {
		log.Fatal().Err(err).Msg("resolve device id")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, localStorage.SyncMetadata, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	monitor := adapter.NewProbeMonitor(cfg.Adapter, log)

	services := service.NewClientServices(localStorage, serverAdapter, monitor, cfg, log)

	app, err := client.NewApp(services, monitor, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// ensureDeviceID fills cfg.App.DeviceID, generating a fresh id on first run
// and persisting it next to the local database so every later run presents
// the same device identity to the server.
func ensureDeviceID(cfg *config.ClientConfig) error {
	if cfg.App.DeviceID != "" {
		return nil
	}

	idPath := cfg.Storage.DB.DSN + ".device-id"
	if raw, err := os.ReadFile(idPath); err == nil {
		if id := strings.TrimSpace(string(raw)); id != "" {
			cfg.App.DeviceID = id
			return nil
		}
	}

	id := utils.NewUUIDGenerator().Generate()
	if err := os.WriteFile(idPath, []byte(id+"\n"), 0600); err != nil {
		return fmt.Errorf("persist device id: %w", err)
	}

	cfg.App.DeviceID = id
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
