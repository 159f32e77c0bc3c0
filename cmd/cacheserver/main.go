package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-conf-keeper/internal/config"
	handler "github.com/MKhiriev/go-conf-keeper/internal/handler/http"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
	"github.com/MKhiriev/go-conf-keeper/internal/server"
	"github.com/MKhiriev/go-conf-keeper/internal/store"
	"github.com/MKhiriev/go-conf-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	printBuildInfo(cfg.App.Version)

	level, _ := logger.ParseLevel(cfg.App.LogLevel)
	log := logger.NewLogger("confkeeper-cache", logger.WithLevel(level))
	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.Cache.Driver == config.CacheDriverHTTP {
		log.Fatal().Msg("cache server cannot use the http cache driver")
	}

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("cache server failed")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	cache, err := store.NewCache(context.Background(), cfg.Cache, log.WithComponent("store"))
	if err != nil {
		return fmt.Errorf("error creating cache: %w", err)
	}
	if cache == nil {
		cache = store.NewMemoryCache()
	}
	defer cache.Close()

	h := handler.NewHandler(cache, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	if err = srv.RunServer(); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}
	return nil
}

func printBuildInfo(fallbackVersion string) {
	if buildVersion == "" {
		buildVersion = fallbackVersion
	}
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
