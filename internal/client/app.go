package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-atlas-keeper/internal/adapter"
	"github.com/MKhiriev/go-atlas-keeper/internal/config"
	"github.com/MKhiriev/go-atlas-keeper/internal/logger"
	"github.com/MKhiriev/go-atlas-keeper/internal/service"
	"github.com/MKhiriev/go-atlas-keeper/internal/workers"
)

// connectivityMonitor is the full surface the app needs from the probe
// monitor: the NetworkMonitor reads plus its worker lifecycle.
type connectivityMonitor interface {
	adapter.NetworkMonitor
	workers.Worker
	Close()
}

// App is the long-running sync agent process.
type App struct {
	services *service.ClientServices
	monitor  connectivityMonitor
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, monitor connectivityMonitor, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are required")
	}
	if monitor == nil {
		return nil, fmt.Errorf("connectivity monitor is required")
	}

	return &App{
		services: services,
		monitor:  monitor,
		cfg:      cfg,
		logger:   log,
	}, nil
}

// Run starts the background workers, attempts one eager sync round, and
// blocks until the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer a.services.SyncJob.Stop()
	defer a.monitor.Close()

	workers.NewClientWorkers(ctx, a.monitor, a.services.Sync, a.services.SyncJob, a.cfg.SyncInterval).Run()

	// The first probe may not have finished yet, so an eager round can
	// legitimately see no connectivity. The reconnect watcher fires as soon
	// as the monitor reports the server reachable.
	if _, err := a.services.Sync.PerformFullSync(ctx); err != nil {
		if errors.Is(err, service.ErrNoNetwork) {
			a.logger.Debug().Msg("startup sync deferred until connectivity is confirmed")
		} else {
			a.logger.Warn().Err(err).Msg("startup sync failed, background workers will retry")
		}
	}

	a.logger.Info().Msg("sync agent running")
	<-ctx.Done()
	a.logger.Info().Msg("sync agent shutting down")

	return nil
}
