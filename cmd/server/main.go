package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-albums/internal/app"
	"github.com/MKhiriev/go-photo-albums/internal/config"
	"github.com/MKhiriev/go-photo-albums/internal/handler"
	"github.com/MKhiriev/go-photo-albums/internal/logger"
	"github.com/MKhiriev/go-photo-albums/internal/server"
	"github.com/MKhiriev/go-photo-albums/internal/service"
	"github.com/MKhiriev/go-photo-albums/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("go-photo-albums-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-photo-albums-server", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	source, err := app.NewDatasetSource(ctx, cfg.Source, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating dataset source")
	}
	defer source.Close()

	services, err := service.NewServices(ctx, source.Dataset, source.Importer, source.Seed, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
