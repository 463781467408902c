package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tapconnect/config"
	httpHandler "tapconnect/internal/adapter/http/handler"
	pgStorage "tapconnect/internal/adapter/storage/postgres"
	redisStorage "tapconnect/internal/adapter/storage/redis"
	"tapconnect/internal/core/ports"
	"tapconnect/internal/service"
	"tapconnect/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting TapConnect token ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	vendorRepo := pgStorage.NewVendorRepo(pool)
	deviceRepo := pgStorage.NewDeviceRepo(pool)
	connRepo := pgStorage.NewConnectionRepo(pool)
	interactionRepo := pgStorage.NewInteractionRepo(pool)
	achievementRepo := pgStorage.NewAchievementRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis-backed adapters
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	feedbackPublisher := redisStorage.NewFeedbackPublisher(rdb)

	// Initialize business services
	walletSvc := service.NewWalletService(
		ledgerRepo,
		vendorRepo,
		deviceRepo,
		idempotencyRepo,
		idempotencyCache,
		transactor,
		feedbackPublisher,
		cfg.Wallet,
		cfg.Ledger,
		cfg.Feedback,
		log,
	)
	achievementSvc := service.NewAchievementService(achievementRepo, connRepo, walletSvc, log)
	interactionSvc := service.NewInteractionService(
		deviceRepo,
		connRepo,
		interactionRepo,
		achievementSvc,
		feedbackPublisher,
		transactor,
		cfg.Feedback,
		log,
	)
	vendorSvc := service.NewVendorService(vendorRepo, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:       walletSvc,
		InteractionSvc:  interactionSvc,
		VendorSvc:       vendorSvc,
		InteractionRepo: interactionRepo,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
