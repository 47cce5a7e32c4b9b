package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-calculator/internal/adapter"
	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("client", config.DefaultAppName, cfg.Logging)
	defer log.Close()

	calculator, err := adapter.NewHTTPCalculatorAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create adapter")
		os.Exit(2)
	}

	if err = run(context.Background(), calculator, buildInfo, flag.Args(), os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Strs("args", flag.Args()).Msg("client request failed")
		log.Close()
		os.Exit(1)
	}
}
