package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/feral-file/carbon-engine/internal/adapter"
	"github.com/feral-file/carbon-engine/internal/cli"
	"github.com/feral-file/carbon-engine/internal/config"
	"github.com/feral-file/carbon-engine/internal/emissions"
	"github.com/feral-file/carbon-engine/internal/factor"
	"github.com/feral-file/carbon-engine/internal/importer"
	"github.com/feral-file/carbon-engine/internal/ledger"
	"github.com/feral-file/carbon-engine/internal/logger"
	"github.com/feral-file/carbon-engine/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(connect).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// connect loads the configuration and wires the services against the database
func connect(ctx context.Context, opts *cli.RootOptions) (*cli.Services, func(), error) {
	config.ChdirRepoRoot()
	cfg, err := config.LoadCLIConfig(opts.ConfigFile, opts.EnvPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "carbonctl",
		},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := store.Open(cfg.Database, cfg.Debug)
	if err != nil {
		return nil, nil, err
	}
	dataStore := store.NewPGStore(db)

	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	resolver := factor.NewResolver(dataStore, factor.Config{MaxYearLookup: cfg.Resolver.MaxYearLookup}, nil)

	release := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		logger.Flush(2 * time.Second)
	}

	return &cli.Services{
		Importer: importer.New(importer.Config{
			Workers:   cfg.Worker.WorkerPoolSize,
			QueueSize: cfg.Worker.WorkerQueueSize,
		}, dataStore, adapter.NewFileSystem(), jsonAdapter, clock),
		Resolver:  resolver,
		Emissions: emissions.NewService(resolver, emissions.NewCalculator(), dataStore),
		Ledger:    ledger.NewService(dataStore, jsonAdapter, adapter.NewJCS(), clock, nil),
	}, release, nil
}
