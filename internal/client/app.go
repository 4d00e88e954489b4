package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-photo-albums/internal/app"
	"github.com/MKhiriev/go-photo-albums/internal/config"
	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/service"
	"github.com/MKhiriev/go-photo-albums/internal/store"
	"github.com/MKhiriev/go-photo-albums/internal/tui"
	"github.com/MKhiriev/go-photo-albums/models"
)

type App struct {
	source   *store.Storages
	services *service.Services
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp opens the configured dataset source, loads it into a gallery
// session and prepares the terminal UI. The source is closed by Run, or
// by NewApp itself on failure.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	source, err := app.NewDatasetSource(ctx, cfg.Source, logger)
	if err != nil {
		return nil, err
	}

	services, err := service.NewServices(ctx, source.Dataset, source.Importer, source.Seed, buildInfo, logger)
	if err != nil {
		_ = source.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	ui, err := tui.New(services, logger)
	if err != nil {
		_ = source.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		source:   source,
		services: services,
		ui:       ui,
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.ui.Run(ctx)
}

// Close releases the dataset source.
func (a *App) Close() {
	if err := a.source.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.Close").Msg("error closing dataset source")
	}
}
