package handler

import (
	"net/http"

	"yachaq-ledger/internal/adapter/http/dto"
	"yachaq-ledger/internal/adapter/http/middleware"
	"yachaq-ledger/internal/core/domain"
	"yachaq-ledger/internal/core/ports"
	"yachaq-ledger/pkg/apperror"
	"yachaq-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles service-account endpoints.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.authSvc.Register(c.Request.Context(), ports.RegisterRequest{
		Name:      req.Name,
		ActorType: domain.ActorType(req.ActorType),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAccountID, result.AccountID)
	response.Created(c, dto.RegisterResponse{
		AccountID: result.AccountID.String(),
		Secret:    result.Secret,
	})
}

// Token handles POST /api/v1/auth/token.
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.authSvc.Token(c.Request.Context(), req.Name, req.Secret)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAccountName, req.Name)
	response.OK(c, dto.TokenResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
