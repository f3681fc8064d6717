package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/dental-site/internal/adapter"
	"github.com/MKhiriev/dental-site/internal/config"
	"github.com/MKhiriev/dental-site/internal/handler"
	"github.com/MKhiriev/dental-site/internal/logger"
	"github.com/MKhiriev/dental-site/internal/metrics"
	"github.com/MKhiriev/dental-site/internal/server"
	"github.com/MKhiriev/dental-site/internal/service"
	"github.com/MKhiriev/dental-site/internal/site"
	"github.com/MKhiriev/dental-site/internal/store"
	"github.com/MKhiriev/dental-site/internal/workers"
	"github.com/MKhiriev/dental-site/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("site-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("site-server", cfg.App.LogLevel)
	log.Debug().Any("server", cfg.Server).Any("workers", cfg.Workers).Msg("received configs")

	m := metrics.New(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	// clinic configuration
	override, err := cfg.Site.InlineOverride()
	if err != nil {
		log.Warn().Err(err).Msg("clinic config override ignored")
	}
	registry, err := site.LoadRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading tenant registry")
	}
	log.Debug().Strs("tenants", registry.IDs()).Msg("tenant registry loaded")
	loader := site.NewLoader(registry, m, log)
	accessor := site.NewAccessor(loader, site.SourcesFrom(override, cfg.Site.ClientID)...)
	log.Info().Any("source", accessor.Source()).Str("clinic", accessor.Config().Clinic.Name).Msg("clinic config resolved")

	// booking sinks
	var db *store.DB
	if cfg.Storage.DB.Enabled() {
		db, err = store.NewConnect(context.Background(), cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}
		defer db.Close()

		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error migrating database")
		}
	}

	var forwarder adapter.BookingForwarder
	if cfg.Adapter.Enabled() {
		forwarder, err = adapter.NewWebhookForwarder(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating booking webhook")
		}
	}

	services, err := service.NewServices(service.Dependencies{
		Accessor:  accessor,
		Storages:  store.NewStorages(db),
		Forwarder: forwarder,
		Observer:  m,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var jobs []workers.Worker
	if db != nil && forwarder != nil {
		jobs = append(jobs, workers.NewForwardWorker(services.BookingService, cfg.Workers, log))
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(jobs...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
