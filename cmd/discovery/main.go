package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/gnap-bootstrap/internal/cache"
	"github.com/MKhiriev/gnap-bootstrap/internal/config"
	handler "github.com/MKhiriev/gnap-bootstrap/internal/handler/http"
	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/metrics"
	"github.com/MKhiriev/gnap-bootstrap/internal/server"
	"github.com/MKhiriev/gnap-bootstrap/internal/service"
	"github.com/MKhiriev/gnap-bootstrap/internal/store"
	"github.com/MKhiriev/gnap-bootstrap/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetDiscoveryConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("gnap-discovery", cfg.App.LogLevel)
	ctx := context.Background()

	documentStore, err := store.NewDocumentStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening document store")
	}
	defer documentStore.Close()

	configCache, err := cache.New(ctx, cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening config cache")
	}
	defer configCache.Close()

	m := metrics.New()
	services := service.NewServices(documentStore, configCache, cfg.Cache.TTL, m, log)
	h := handler.NewHandler(services, documentStore, m, buildInfo, log)

	srv, err := server.NewServer(h, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
