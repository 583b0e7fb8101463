package middleware

import (
	"encoding/json"

	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/pkg/digest"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SelfAudit creates a middleware that appends a receipt to the ledger for
// successful account-lifecycle operations, so the ledger's own control
// plane leaves the same tamper-evident trail as the platform it serves.
// Append failures are logged and never fail the original request.
func SelfAudit(ledgerSvc ports.LedgerService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only record successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method != "POST" {
			return
		}

		eventType, resourceType := mapPathToEvent(c.Request.URL.Path)
		if eventType == "" {
			return
		}

		resourceID := c.GetString(CtxAccountName)
		if id, exists := c.Get(CtxAccountID); exists {
			resourceID = toKey(id)
		}
		if resourceID == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
			"ip":     c.ClientIP(),
		})

		_, err := ledgerSvc.Append(c.Request.Context(), ports.AppendRequest{
			EventType:    eventType,
			ActorID:      "ledger-api",
			ActorType:    domain.ActorSystem,
			ResourceID:   resourceID,
			ResourceType: resourceType,
			DetailsHash:  hashDetails(details),
		})
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("self-audit append failed")
		}
	}
}

func hashDetails(b []byte) string {
	return digest.SHA256Hex(string(b))
}

func mapPathToEvent(path string) (domain.EventType, string) {
	switch path {
	case "/api/v1/auth/register":
		return domain.EventAccountCreated, "service_account"
	case "/api/v1/auth/token":
		return domain.EventTokenIssued, "service_account"
	}
	return "", ""
}
