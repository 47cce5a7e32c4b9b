package main

import (
	"fmt"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/handler"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/server"
	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/MKhiriev/go-calculator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("server", config.DefaultAppName, config.Logging{}).
			Fatal().Err(err).Msg("error getting configs")
	}

	// a version stamped at build time wins over the built-in default
	if cfg.App.Version == config.DefaultAppVersion && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("server", cfg.App.Name, cfg.Logging)
	defer log.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(*cfg, log)
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

	log.Info().Str("address", cfg.Server.HTTPAddress).Str("version", cfg.App.Version).Msg("starting calculator service")
	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
