// Package handler provides the HTTP handlers for the transactions feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"expensepro_backend/internal/api"
	"expensepro_backend/internal/feature/transactions/domain/entity"
	"expensepro_backend/internal/feature/transactions/usecase"
	jwtmw "expensepro_backend/internal/infrastructure/jwt"
)

// TransactionUsecase defines the ledger operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TransactionUsecase interface {
	List(ctx context.Context, userID uint, all bool) ([]entity.Transaction, error)
	Create(ctx context.Context, userID uint, in usecase.TransactionInput) (*entity.Transaction, error)
	Update(ctx context.Context, userID, id uint, in usecase.TransactionInput) (*entity.Transaction, error)
	Delete(ctx context.Context, userID, id uint) error
}

// TransactionHandler handles the HTTP requests for the caller's ledger.
type TransactionHandler struct {
	uc TransactionUsecase
}

// NewTransactionHandler creates a new TransactionHandler instance.
func NewTransactionHandler(uc TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// isValidationErr reports whether err is a construction-time validation error.
func isValidationErr(err error) bool {
	return errors.Is(err, entity.ErrInvalidType) ||
		errors.Is(err, entity.ErrInvalidCategory) ||
		errors.Is(err, entity.ErrNegativeAmount) ||
		errors.Is(err, entity.ErrMissingDate)
}

func toResponse(tx *entity.Transaction) api.TransactionResponse {
	return api.TransactionResponse{
		ID:          tx.ID,
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Description: tx.Description,
		Receipt:     tx.Receipt,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

// List returns the caller's records, newest date first.
//
// Endpoint: GET /transactions?all=true|false (default: last 20)
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	all := c.Query("all") == "true"

	txs, err := h.uc.List(c.Request.Context(), userID, all)
	if err != nil {
		slog.Error("transaction list failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch transactions"})
		return
	}
	out := make([]api.TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, toResponse(&txs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create adds a record to the caller's ledger.
//
// Endpoint: POST /transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req api.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("transaction create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "required fields missing"})
		return
	}

	tx, err := h.uc.Create(c.Request.Context(), userID, usecase.TransactionInput{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		Receipt:     req.Receipt,
	})
	if err != nil {
		if isValidationErr(err) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("transaction create failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create transaction"})
		return
	}
	c.JSON(http.StatusCreated, toResponse(tx))
}

// Update replaces a record the caller owns.
//
// Endpoint: PUT /transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid transaction id"})
		return
	}
	var req api.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("transaction update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "required fields missing"})
		return
	}

	tx, err := h.uc.Update(c.Request.Context(), userID, uint(id), usecase.TransactionInput{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		Receipt:     req.Receipt,
	})
	if err != nil {
		switch {
		case isValidationErr(err):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "transaction not found"})
		default:
			slog.Error("transaction update failed", "error", err, "user_id", userID, "id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update transaction"})
		}
		return
	}
	c.JSON(http.StatusOK, toResponse(tx))
}

// Delete removes a record the caller owns.
//
// Endpoint: DELETE /transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid transaction id"})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, usecase.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "transaction not found"})
			return
		}
		slog.Error("transaction delete failed", "error", err, "user_id", userID, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
