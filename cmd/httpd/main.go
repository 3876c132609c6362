// Command httpd runs the search proxy and analytics event service.
package main

import (
	"fmt"
	"os"

	"github.com/llermaly/search-ui-ubi/internal/analytics"
	"github.com/llermaly/search-ui-ubi/internal/api"
	"github.com/llermaly/search-ui-ubi/internal/config"
	"github.com/llermaly/search-ui-ubi/internal/elasticsearch"
	"github.com/llermaly/search-ui-ubi/internal/geo"
	"github.com/llermaly/search-ui-ubi/internal/logger"
	"github.com/llermaly/search-ui-ubi/internal/metrics"
	"github.com/llermaly/search-ui-ubi/internal/search"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	log = log.With(logger.String("service", cfg.Service.Name))

	log.Info("Starting service",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	log.Info("Connecting to Elasticsearch", logger.String("host", cfg.Elasticsearch.Host))
	esClient, esErr := elasticsearch.NewClient(&cfg.Elasticsearch)
	if esErr != nil {
		log.Error("Failed to create Elasticsearch client", logger.Error(esErr))
		return 1
	}
	log.Info("Successfully connected to Elasticsearch")

	// Shared, read-only collaborators, constructed once and used
	// concurrently by all request handlers.
	connector := search.WithCorrelation(
		search.NewElasticConnector(esClient, &cfg.Elasticsearch, log),
		log,
	)

	sink := analytics.NewElasticSink(esClient, cfg.Analytics.EventsIndex)
	resolver := geo.NewHTTPResolver(&cfg.Geo)
	tracker := analytics.NewTracker(
		analytics.NewBuilder(cfg.Analytics.Application),
		resolver,
		sink,
		log,
	)

	m := metrics.New(cfg.Service.Name)

	handler := api.NewHandler(connector, tracker, sink, esClient, log)
	server := api.NewServer(handler, cfg, m, log)

	log.Info("Service starting",
		logger.Int("port", cfg.Service.Port),
		logger.String("index", cfg.Elasticsearch.Index),
		logger.String("events_index", cfg.Analytics.EventsIndex),
	)

	if runErr := server.Run(); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return 1
	}

	log.Info("Service exited cleanly")
	return 0
}
