package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/mariner/fueleuledger/internal/adapter/http"
	"github.com/mariner/fueleuledger/internal/adapter/http/handler"
	"github.com/mariner/fueleuledger/internal/adapter/http/middleware"
	postgresRepo "github.com/mariner/fueleuledger/internal/adapter/repository/postgres"
	redisRepo "github.com/mariner/fueleuledger/internal/adapter/repository/redis"
	"github.com/mariner/fueleuledger/internal/infrastructure/config"
	"github.com/mariner/fueleuledger/internal/infrastructure/eventpublisher"
	"github.com/mariner/fueleuledger/internal/infrastructure/logger"
	"github.com/mariner/fueleuledger/internal/infrastructure/metrics"
	"github.com/mariner/fueleuledger/internal/infrastructure/postgres"
	"github.com/mariner/fueleuledger/internal/infrastructure/redis"
	"github.com/mariner/fueleuledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Apply pending migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	bankRepo := postgresRepo.NewBankEntryRepository(pool)
	poolRepo := postgresRepo.NewPoolRepository(pool)
	activityRepo := postgresRepo.NewActivityRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	consistencyRepo := postgresRepo.NewConsistencyRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	balanceUC := usecase.NewBalanceUseCase(txManager, balanceRepo, activityRepo, outboxRepo, cache, idGen, m)
	bankingUC := usecase.NewBankingUseCase(txManager, balanceRepo, bankRepo, outboxRepo, cache, idGen, m)
	poolUC := usecase.NewPoolUseCase(txManager, balanceRepo, poolRepo, outboxRepo, idGen, m)
	consistencyUC := usecase.NewConsistencyUseCase(consistencyRepo)

	// Initialize handlers
	balanceHandler := handler.NewBalanceHandler(balanceUC)
	bankingHandler := handler.NewBankingHandler(bankingUC, retrier)
	poolHandler := handler.NewPoolHandler(poolUC)
	ledgerHandler := handler.NewLedgerHandler(consistencyUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BalanceHandler:   balanceHandler,
		BankingHandler:   bankingHandler,
		PoolHandler:      poolHandler,
		LedgerHandler:    ledgerHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logger:           &log.Logger,
	})

	// Start the outbox publisher worker
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	slogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventpublisher.NewLogPublisher(slogger),
		Logger:     slogger,
		BatchSize:  cfg.PublishBatch,
		Interval:   cfg.PublishInterval,
	})
	go func() {
		if err := publisher.Start(publisherCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	// Create server
	server := newHTTPServer(cfg, router)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopPublisher()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func newHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}
