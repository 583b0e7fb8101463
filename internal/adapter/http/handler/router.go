package handler

import (
	"yachaq-ledger/internal/adapter/http/middleware"
	redisStore "yachaq-ledger/internal/adapter/storage/redis"
	"yachaq-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	AnchorSvc      ports.AnchorService
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	NonceStore     ports.NonceStore               // nil = replay protection disabled
	RateLimitStore *redisStore.RateLimitStore     // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	SelfAudit      bool // append receipts for account-lifecycle operations
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Account-lifecycle operations land in the ledger too (after response)
	if deps.SelfAudit {
		r.Use(middleware.SelfAudit(deps.LedgerSvc, deps.Logger))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Helper: nonce replay guard if store is available, else noop.
	nonceGuard := func(c *gin.Context) { c.Next() }
	if deps.NonceStore != nil {
		nonceGuard = middleware.NonceGuard(deps.NonceStore, deps.LedgerSvc, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/token", rl("auth_token"), authHandler.Token)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	anchorHandler := NewAnchorHandler(deps.AnchorSvc)

	receipts := v1.Group("/receipts", jwtAuth)
	{
		receipts.POST("", rl("append"), nonceGuard, ledgerHandler.Append)
		receipts.GET("", rl("read"), ledgerHandler.ListReceipts)
		receipts.GET("/:id", rl("read"), ledgerHandler.GetReceipt)
		receipts.GET("/:id/verify", rl("verify"), ledgerHandler.VerifyReceipt)
		receipts.GET("/:id/proof", rl("proofs"), anchorHandler.GetProof)
	}

	verify := v1.Group("/verify", jwtAuth)
	{
		verify.GET("/segment", rl("verify"), ledgerHandler.VerifySegment)
	}

	proofs := v1.Group("/proofs", jwtAuth)
	{
		proofs.POST("/verify", rl("proofs"), anchorHandler.VerifyProof)
	}

	batches := v1.Group("/batches", jwtAuth)
	{
		batches.GET("", rl("read"), anchorHandler.ListBatches)
		batches.GET("/:id", rl("read"), anchorHandler.GetBatch)
		batches.GET("/:id/verify", rl("verify"), anchorHandler.VerifyBatch)
		batches.POST("/anchor", rl("anchor_admin"), anchorHandler.AnchorNow)
	}

	return r
}
