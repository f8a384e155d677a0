package main

import (
	"context"
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
	"github.com/lucid-net/poot-engine/internal/anchor"
	"github.com/lucid-net/poot-engine/internal/api/middleware"
	"github.com/lucid-net/poot-engine/internal/api/server"
	"github.com/lucid-net/poot-engine/internal/api/shared/executor"
	"github.com/lucid-net/poot-engine/internal/config"
	"github.com/lucid-net/poot-engine/internal/domain"
	"github.com/lucid-net/poot-engine/internal/logger"
	"github.com/lucid-net/poot-engine/internal/proofstore"
	"github.com/lucid-net/poot-engine/internal/providers/jetstream"
	"github.com/lucid-net/poot-engine/internal/registry"
	"github.com/lucid-net/poot-engine/internal/scheduler"
	"github.com/lucid-net/poot-engine/internal/store"
	"github.com/lucid-net/poot-engine/internal/tally"
	"github.com/lucid-net/poot-engine/internal/weights"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting PoOT Engine API")

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

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
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

	// Build the node key registry
	var keys registry.KeyRegistry
	switch {
	case cfg.KeyRegistry.FilePath != "":
		keys, err = registry.LoadKeyFile(cfg.KeyRegistry.FilePath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load key registry",
				zap.Error(err),
				zap.String("path", cfg.KeyRegistry.FilePath))
		}
		logger.InfoCtx(ctx, "Loaded key registry", zap.String("path", cfg.KeyRegistry.FilePath))
	case cfg.KeyRegistry.BaseURL != "":
		keys = registry.NewHTTPKeyRegistry(adapter.NewHTTPClient(10*time.Second), cfg.KeyRegistry.BaseURL)
		logger.InfoCtx(ctx, "Using HTTP key registry", zap.String("base_url", cfg.KeyRegistry.BaseURL))
	default:
		logger.FatalCtx(ctx, "No key registry configured, set key_registry.file_path or key_registry.base_url")
	}

	// Connect the event publisher
	pub, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, natsJS)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer pub.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Build services
	proofService := proofstore.NewService(proofstore.Config{
		Timer:           timer,
		RetentionSlots:  cfg.Consensus.RetentionSlots,
		VerifyPoolSize:  cfg.Worker.WorkerPoolSize,
		VerifyQueueSize: cfg.Worker.WorkerQueueSize,
	}, dataStore, keys, pub, clock)
	defer proofService.Stop()

	tallier := tally.NewAggregator(tally.Config{
		SlotsPerEpoch: cfg.Consensus.SlotsPerEpoch,
		Timer:         timer,
	}, dataStore, weightTable, clock)

	sched := scheduler.NewScheduler(scheduler.Config{
		SlotsPerEpoch: cfg.Consensus.SlotsPerEpoch,
		FallbackDepth: cfg.Consensus.FallbackDepth,
	}, dataStore)

	recorder := anchor.NewRecorder(dataStore, pub)

	exec := executor.NewExecutor(proofService, tallier, sched, recorder)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
