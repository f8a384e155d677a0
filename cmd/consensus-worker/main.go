package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lucid-net/poot-engine/internal/adapter"
	"github.com/lucid-net/poot-engine/internal/config"
	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
	"github.com/lucid-net/poot-engine/internal/providers/jetstream"
	"github.com/lucid-net/poot-engine/internal/scheduler"
	"github.com/lucid-net/poot-engine/internal/store"
	"github.com/lucid-net/poot-engine/internal/tally"
	"github.com/lucid-net/poot-engine/internal/weights"
	"github.com/lucid-net/poot-engine/internal/worker"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadConsensusWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "consensus-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting PoOT Engine consensus worker")

	genesis, err := cfg.Consensus.Genesis()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid genesis time", zap.Error(err))
	}
	timer := domain.SlotTimer{
		Genesis:      genesis,
		SlotDuration: cfg.Consensus.SlotDuration,
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	natsJS := adapter.NewNatsJetStream()

	// Load the weight table
	weightTable := weights.Default()
	if cfg.Consensus.WeightTablePath != "" {
		weightTable, err = weights.Load(cfg.Consensus.WeightTablePath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load weight table",
				zap.Error(err),
				zap.String("path", cfg.Consensus.WeightTablePath))
		}
	}
	logger.InfoCtx(ctx, "Loaded weight table", zap.String("version", weightTable.Version))

	// Subscribe to epoch closure announcements
	sub, err := jetstream.NewSubscriber(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, cfg.NATS.ConsumerName, natsJS)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer sub.Close()
	logger.InfoCtx(ctx, "Connected to NATS",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName))

	// Build the epoch processing pipeline
	tallier := tally.NewAggregator(tally.Config{
		SlotsPerEpoch: cfg.Consensus.SlotsPerEpoch,
		Timer:         timer,
	}, dataStore, weightTable, clock)

	sched := scheduler.NewScheduler(scheduler.Config{
		SlotsPerEpoch: cfg.Consensus.SlotsPerEpoch,
		FallbackDepth: cfg.Consensus.FallbackDepth,
	}, dataStore)

	w := worker.NewWorker(worker.Config{
		MaxElapsedTime: cfg.Retry.MaxElapsedTime,
	}, sub, tallier, sched)

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "worker"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	logger.Info("Consensus worker stopped")
}
