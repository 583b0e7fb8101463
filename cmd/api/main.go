package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yachaq-ledger/config"
	anchorClient "yachaq-ledger/internal/adapter/anchor"
	httpHandler "yachaq-ledger/internal/adapter/http/handler"
	pgStorage "yachaq-ledger/internal/adapter/storage/postgres"
	redisStorage "yachaq-ledger/internal/adapter/storage/redis"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/internal/service"
	"yachaq-ledger/pkg/logger"
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
		Bool("anchoring", cfg.Anchor.Enabled).
		Msg("Starting Yachaq Audit Ledger")

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
	receiptRepo := pgStorage.NewReceiptRepo(pool)
	anchorRepo := pgStorage.NewAnchorRepo(pool)
	accountRepo := pgStorage.NewAccountRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	proofCache := redisStorage.NewProofCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(accountRepo, hashSvc, tokenSvc, log)
	ledgerSvc := service.NewLedgerService(receiptRepo, log)

	// Anchoring bridge: a real chain gateway client when enabled, a
	// client that refuses politely when not.
	var chainClient ports.AnchorClient
	if cfg.Anchor.Enabled {
		chainClient = anchorClient.NewClient(cfg.Anchor.Endpoint, cfg.Anchor.Timeout, log)
	} else {
		chainClient = anchorClient.NewDisabledClient()
	}
	anchorSvc := service.NewAnchorService(receiptRepo, anchorRepo, chainClient, transactor, proofCache, cfg.Anchor.BatchSize, log)

	// Background anchoring loop
	anchorCtx, stopAnchoring := context.WithCancel(ctx)
	defer stopAnchoring()
	if cfg.Anchor.Enabled {
		go anchorSvc.Run(anchorCtx, cfg.Anchor.Interval)
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		AnchorSvc:      anchorSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		NonceStore:     nonceStore,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		SelfAudit:      true,
		Logger:         log,
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

	stopAnchoring()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
