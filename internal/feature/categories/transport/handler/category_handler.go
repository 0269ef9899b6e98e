// Package handler provides the HTTP handler for category vocabulary lookups.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensepro_backend/internal/api"
)

// CategoryUsecase serves the category vocabularies.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CategoryUsecase interface {
	List() (income, expense []string)
}

// CategoryHandler handles HTTP requests for the category vocabulary.
type CategoryHandler struct {
	uc CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler instance.
func NewCategoryHandler(uc CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List returns the valid categories per transaction type.
//
// Endpoint: GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	income, expense := h.uc.List()
	c.JSON(http.StatusOK, api.CategoriesResponse{Income: income, Expense: expense})
}
