package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/internal/tui"
)

// UI is the part of the terminal front end the runtime depends on.
type UI interface {
	Run(ctx context.Context) error
}

// Closer releases the local storages on shutdown.
type Closer interface {
	Close() error
}

type App struct {
	services *service.ClientServices
	ui       UI
	storages Closer
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	ui UI,
	storages Closer,
	workers config.ClientWorkers,
	logger *logger.Logger,
) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{
		services: services,
		ui:       ui,
		storages: storages,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run blocks until the UI exits. The refresh job is stopped and the
// storages are closed on every path. A user quit is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(a.logger.WithContext(ctx))
	defer cancel()

	a.logger.Info().
		Str("func", "App.Run").
		Dur("refresh_interval", a.workers.RefreshInterval).
		Msg("client starting")

	a.services.Session.OnExpired(func() {
		a.logger.Info().Str("func", "App.Run").Msg("session expired, refresh job will stop")
	})

	defer a.shutdown()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.Run").Msg("user quit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (a *App) shutdown() {
	a.services.RefreshJob.Stop()

	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.shutdown").Msg("failed to close storages")
	}
}
