package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-entity-vc/internal/adapter"
	"github.com/MKhiriev/go-entity-vc/internal/config"
	"github.com/MKhiriev/go-entity-vc/internal/handler"
	"github.com/MKhiriev/go-entity-vc/internal/logger"
	"github.com/MKhiriev/go-entity-vc/internal/server"
	"github.com/MKhiriev/go-entity-vc/internal/service"
	"github.com/MKhiriev/go-entity-vc/internal/store"
	"github.com/MKhiriev/go-entity-vc/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("entity-vc-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	remote := adapter.NewHTTPRemoteStore(adapter.HTTPClientConfig{
		BaseURL: cfg.Remote.BaseURL,
		Timeout: cfg.Remote.Timeout,
	})

	services := service.NewServices(repositories, remote, *cfg, log)

	backgroundWorkers := workers.NewWorkers(services.JobTracker)
	backgroundWorkers.Run()

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	servers.RunServer()
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
