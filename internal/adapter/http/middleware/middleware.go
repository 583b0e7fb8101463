package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/pkg/apperror"
	"yachaq-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderNonce carries the caller-generated replay nonce for append
	// requests.
	HeaderNonce = "X-Nonce"

	// Nonce TTL (120 seconds)
	nonceTTL = 120 * time.Second

	// Context keys
	CtxAccountID   = "account_id"
	CtxAccountName = "account_name"
	CtxActorType   = "actor_type"
)

// JWTAuth creates a middleware that validates bearer tokens and stores the
// caller's account claims in the request context.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		tokenStr := authHeader[7:]
		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxAccountID, claims.AccountID)
		c.Set(CtxAccountName, claims.Name)
		c.Set(CtxActorType, claims.ActorType)
		c.Next()
	}
}

// NonceGuard creates a middleware that rejects replayed append requests.
// Each request must carry a fresh X-Nonce; a nonce is remembered per
// account for the TTL window. A detected replay is itself ledgered as a
// CAPSULE_REPLAY_REJECTED receipt before the 403 goes out. Must run after
// JWTAuth.
func NonceGuard(nonceStore ports.NonceStore, ledgerSvc ports.LedgerService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		nonce := c.GetHeader(HeaderNonce)
		if nonce == "" {
			response.Error(c, apperror.Validation("missing X-Nonce header"))
			c.Abort()
			return
		}

		accountID := c.GetString(CtxAccountName)
		if id, exists := c.Get(CtxAccountID); exists {
			accountID = toKey(id)
		}

		isNew, err := nonceStore.CheckAndSet(c.Request.Context(), accountID, nonce, nonceTTL)
		if err != nil {
			log.Warn().Err(err).Msg("nonce store error, allowing request")
		} else if !isNew {
			recordReplayRejected(c, ledgerSvc, accountID, nonce, log)
			response.Error(c, apperror.ErrNonceUsed())
			c.Abort()
			return
		}

		c.Next()
	}
}

// recordReplayRejected appends a receipt for a rejected replay, so the
// refusal leaves the same tamper-evident trail as the write it blocked.
// Append failures are logged; the 403 goes out either way.
func recordReplayRejected(c *gin.Context, ledgerSvc ports.LedgerService, accountID, nonce string, log zerolog.Logger) {
	if ledgerSvc == nil || accountID == "" {
		return
	}

	details, _ := json.Marshal(map[string]interface{}{
		"path": c.Request.URL.Path,
		"ip":   c.ClientIP(),
	})

	_, err := ledgerSvc.Append(c.Request.Context(), ports.AppendRequest{
		EventType:    domain.EventCapsuleReplayRejected,
		ActorID:      accountID,
		ActorType:    domain.ActorSystem,
		ResourceID:   nonce,
		ResourceType: "nonce",
		DetailsHash:  hashDetails(details),
	})
	if err != nil {
		log.Warn().Err(err).Str("account_id", accountID).Msg("replay rejection append failed")
	}
}

func toKey(v interface{}) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
