package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-albums/internal/client"
	"github.com/MKhiriev/go-photo-albums/internal/config"
	"github.com/MKhiriev/go-photo-albums/internal/logger"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-photo-albums-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("go-photo-albums-client", cfg.Log.Level, cfg.Log.File)
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
