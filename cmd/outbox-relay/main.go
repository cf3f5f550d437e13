package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/carbon-engine/internal/adapter"
	"github.com/feral-file/carbon-engine/internal/config"
	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/outbox"
	jsprovider "github.com/feral-file/carbon-engine/internal/providers/jetstream"
	"github.com/feral-file/carbon-engine/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadOutboxRelayConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "outbox-relay",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Outbox Relay")

	// Connect to database
	db, err := store.Open(cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	dataStore := store.NewPGStore(db)

	// Connect to NATS
	publisher, err := jsprovider.NewPublisher(ctx, jsprovider.Config{
		URL:             cfg.NATS.URL,
		MaxReconnects:   cfg.NATS.MaxReconnects,
		ReconnectWait:   cfg.NATS.ReconnectWait,
		ConnectionName:  cfg.NATS.ConnectionName,
		Stream:          cfg.NATS.StreamName,
		Subjects:        []string{cfg.NATS.SubjectPrefix + ".>"},
		DuplicateWindow: cfg.NATS.DuplicateWindow,
	}, adapter.NewNatsJetStream())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsServer := startMetricsServer(ctx, cfg.MetricsAddr, registry)

	relay := outbox.NewRelay(outbox.Config{
		SubjectPrefix:   cfg.NATS.SubjectPrefix,
		BatchSize:       cfg.Relay.BatchSize,
		PollInterval:    cfg.Relay.PollInterval,
		MaxAttempts:     cfg.Relay.MaxAttempts,
		PublishRetries:  cfg.Relay.PublishRetries,
		InitialInterval: cfg.Relay.InitialInterval,
		MaxElapsedTime:  cfg.Relay.MaxElapsedTime,
	}, dataStore, publisher, adapter.NewClock(), outbox.NewMetrics(registry))
	logger.InfoCtx(ctx, "Initialized outbox relay",
		zap.String("subject_prefix", cfg.NATS.SubjectPrefix),
		zap.Int("batch_size", cfg.Relay.BatchSize),
		zap.Duration("poll_interval", cfg.Relay.PollInterval),
	)

	// Start the relay in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := relay.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Give the relay time to finish its cycle
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := relay.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	cancel()
	if metricsServer != nil {
		_ = metricsServer.Shutdown(shutdownCtx)
	}

	logger.InfoCtx(shutdownCtx, "Outbox Relay stopped")
}

// startMetricsServer serves /metrics on addr. Returns nil when addr is empty.
func startMetricsServer(ctx context.Context, addr string, gatherer prometheus.Gatherer) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorCtx(ctx, err, zap.String("component", "metrics"))
		}
	}()
	logger.InfoCtx(ctx, "Serving metrics", zap.String("address", addr))
	return srv
}
