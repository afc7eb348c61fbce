package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-layered-config/internal/bootstrap"
	"github.com/MKhiriev/go-layered-config/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("layered-config")
	opts, err := bootstrap.GetOptions(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting options")
	}

	cfg, err := bootstrap.LoadConfig(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	appLog, err := logger.New("layered-config", bootstrap.LoggerOptions(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating logger")
	}
	defer appLog.Close()

	appLog.Info().Strs("keys", cfg.Keys()).Msg("configuration loaded")
	appLog.Debug().Any("config", cfg.All()).Msg("received configs")
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
