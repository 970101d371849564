package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/gnap-bootstrap/internal/app"
	"github.com/MKhiriev/gnap-bootstrap/internal/config"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetSeedConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return app.ExitFailure
	}

	log := logger.NewLogger("gnap-seed", cfg.App.LogLevel)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting seed")

	return app.NewSeeder(cfg, log, os.Stdout, os.Stderr).Run(context.Background())
}
