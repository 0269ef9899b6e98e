// Package handler provides the HTTP handler for the insights feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"expensepro_backend/internal/api"
	authusecase "expensepro_backend/internal/feature/auth/usecase"
	"expensepro_backend/internal/feature/insights/usecase"
	jwtmw "expensepro_backend/internal/infrastructure/jwt"
)

// InsightUsecase defines the analysis operation used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type InsightUsecase interface {
	Answer(ctx context.Context, userID uint, message string) (string, error)
}

// InsightHandler handles the HTTP requests for ledger analysis.
type InsightHandler struct {
	uc InsightUsecase
}

// NewInsightHandler creates a new InsightHandler instance.
func NewInsightHandler(uc InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Analyze answers a natural-language question about the caller's ledger.
//
// Endpoint: POST /ai/analyze
func (h *InsightHandler) Analyze(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "message is required"})
		return
	}

	reply, err := h.uc.Answer(c.Request.Context(), userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingMessage):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, authusecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		case errors.Is(err, usecase.ErrAIUnavailable):
			slog.Error("insight query failed", "error", err, "user_id", userID)
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "AI failed"})
		default:
			slog.Error("insight query failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, api.AnalyzeResponse{Reply: reply})
}
