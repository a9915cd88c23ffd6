package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/hanbit-labs/korea-sensor-etl/internal/adapter/http"
	kafkaadapter "github.com/hanbit-labs/korea-sensor-etl/internal/adapter/kafka"
	"github.com/hanbit-labs/korea-sensor-etl/internal/adapter/kakaomap"
	"github.com/hanbit-labs/korea-sensor-etl/internal/adapter/postgres"
	"github.com/hanbit-labs/korea-sensor-etl/internal/config"
	"github.com/hanbit-labs/korea-sensor-etl/internal/domain"
	"github.com/hanbit-labs/korea-sensor-etl/internal/observability"
	"github.com/hanbit-labs/korea-sensor-etl/internal/pipeline"
)

type closableLoader interface {
	pipeline.BatchLoader
	io.Closer
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Initialize region enrichment (feature-flagged via REGION_ENABLED).
	var resolver domain.RegionResolver
	if cfg.RegionEnabled {
		client := kakaomap.NewClient(cfg.RegionTimeout, logger)
		resolver = kakaomap.NewCachedResolver(client, cfg.RegionCacheSize, metrics)
		metrics.RegionEnabled.Set(1)
		logger.Info("region enrichment enabled", "cache_size", cfg.RegionCacheSize, "timeout", cfg.RegionTimeout)
	} else {
		logger.Info("region enrichment disabled")
	}

	reader := kafkaadapter.NewReader(cfg, logger)

	var loader closableLoader
	switch cfg.SinkKind {
	case config.SinkPostgres:
		pg, err := postgres.Open(cfg.PostgresURL, logger)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		loader = pg
		logger.Info("sink: postgres")
	default:
		loader = kafkaadapter.NewWriter(cfg, logger)
		logger.Info("sink: kafka", "topic", cfg.KafkaSinkTopic)
	}

	transformer := pipeline.NewTransformer(resolver, logger, metrics)

	p := pipeline.New(reader, transformer, loader, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := loader.Close(); err != nil {
		logger.Error("sink close error", "error", err)
	}

	logger.Info("shutdown complete")
}
