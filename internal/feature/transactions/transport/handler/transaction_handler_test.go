package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"expensepro_backend/internal/feature/transactions/domain/entity"
	"expensepro_backend/internal/feature/transactions/usecase"
	jwtmw "expensepro_backend/internal/infrastructure/jwt"
)

// mockTransactionUsecase is a mock implementation of the TransactionUsecase interface.
type mockTransactionUsecase struct {
	ListFunc   func(ctx context.Context, userID uint, all bool) ([]entity.Transaction, error)
	CreateFunc func(ctx context.Context, userID uint, in usecase.TransactionInput) (*entity.Transaction, error)
	UpdateFunc func(ctx context.Context, userID, id uint, in usecase.TransactionInput) (*entity.Transaction, error)
	DeleteFunc func(ctx context.Context, userID, id uint) error
}

func (m *mockTransactionUsecase) List(ctx context.Context, userID uint, all bool) ([]entity.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, all)
	}
	return nil, nil // Default: empty
}

func (m *mockTransactionUsecase) Create(ctx context.Context, userID uint, in usecase.TransactionInput) (*entity.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, in)
	}
	return nil, errors.New("create failed") // Default: failure
}

func (m *mockTransactionUsecase) Update(ctx context.Context, userID, id uint, in usecase.TransactionInput) (*entity.Transaction, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, in)
	}
	return nil, usecase.ErrTransactionNotFound // Default: not found
}

func (m *mockTransactionUsecase) Delete(ctx context.Context, userID, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return usecase.ErrTransactionNotFound // Default: not found
}

// asUser simulates the authentication middleware for handler tests.
func asUser(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	}
}

func TestTransactionHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("returns the caller's records", func(t *testing.T) {
		mockUC := &mockTransactionUsecase{
			ListFunc: func(ctx context.Context, userID uint, all bool) ([]entity.Transaction, error) {
				assert.Equal(t, uint(7), userID)
				assert.False(t, all)
				return []entity.Transaction{
					{ID: 2, UserID: 7, Type: "expense", Category: "Food", Amount: 120, Date: date},
					{ID: 1, UserID: 7, Type: "income", Category: "Salary", Amount: 50000, Date: date.AddDate(0, 0, -3)},
				}, nil
			},
		}
		handler := NewTransactionHandler(mockUC)

		router := gin.New()
		router.GET("/transactions", asUser(7), handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/transactions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body, 2)
		assert.Equal(t, float64(2), body[0]["id"])
		assert.Equal(t, "Food", body[0]["category"])
	})

	t.Run("all=true is passed through", func(t *testing.T) {
		var gotAll bool
		mockUC := &mockTransactionUsecase{
			ListFunc: func(ctx context.Context, userID uint, all bool) ([]entity.Transaction, error) {
				gotAll = all
				return nil, nil
			},
		}
		handler := NewTransactionHandler(mockUC)

		router := gin.New()
		router.GET("/transactions", asUser(7), handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/transactions?all=true", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotAll)
		// An empty ledger serializes as [], not null.
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("missing authentication context", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionUsecase{})

		router := gin.New()
		router.GET("/transactions", handler.List)

		req, _ := http.NewRequest(http.MethodGet, "/transactions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTransactionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockCreateFunc func(ctx context.Context, userID uint, in usecase.TransactionInput) (*entity.Transaction, error)
		expectedStatus int
	}{
		{
			name: "success: record created",
			requestBody: gin.H{
				"type": "expense", "category": "Food", "amount": 120,
				"date": "2025-06-15T00:00:00Z", "description": "groceries",
			},
			mockCreateFunc: func(ctx context.Context, userID uint, in usecase.TransactionInput) (*entity.Transaction, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, "Food", in.Category)
				return &entity.Transaction{ID: 1, UserID: userID, Type: in.Type, Category: in.Category, Amount: in.Amount, Date: in.Date}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing required fields",
			requestBody:    gin.H{"type": "expense", "amount": 120},
			mockCreateFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "failure: category does not match the type",
			requestBody: gin.H{
				"type": "income", "category": "Rent", "amount": 120, "date": "2025-06-15T00:00:00Z",
			},
			mockCreateFunc: func(ctx context.Context, userID uint, in usecase.TransactionInput) (*entity.Transaction, error) {
				return nil, entity.ErrInvalidCategory
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "failure: storage error",
			requestBody: gin.H{
				"type": "expense", "category": "Food", "amount": 120, "date": "2025-06-15T00:00:00Z",
			},
			mockCreateFunc: func(ctx context.Context, userID uint, in usecase.TransactionInput) (*entity.Transaction, error) {
				return nil, errors.New("database error")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransactionHandler(&mockTransactionUsecase{CreateFunc: tt.mockCreateFunc})

			router := gin.New()
			router.POST("/transactions", asUser(7), handler.Create)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/transactions", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestTransactionHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validBody := gin.H{"type": "expense", "category": "Transport", "amount": 60, "date": "2025-06-15T00:00:00Z"}

	run := func(handler *TransactionHandler, id string, body gin.H) *httptest.ResponseRecorder {
		router := gin.New()
		router.PUT("/transactions/:id", asUser(7), handler.Update)

		raw, _ := json.Marshal(body)
		req, _ := http.NewRequest(http.MethodPut, "/transactions/"+id, bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success: record updated", func(t *testing.T) {
		mockUC := &mockTransactionUsecase{
			UpdateFunc: func(ctx context.Context, userID, id uint, in usecase.TransactionInput) (*entity.Transaction, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, uint(5), id)
				return &entity.Transaction{ID: id, UserID: userID, Type: in.Type, Category: in.Category, Amount: in.Amount, Date: in.Date}, nil
			},
		}
		w := run(NewTransactionHandler(mockUC), "5", validBody)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("another user's record reads as not found", func(t *testing.T) {
		w := run(NewTransactionHandler(&mockTransactionUsecase{}), "5", validBody)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var body gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, gin.H{"error": "transaction not found"}, body)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := run(NewTransactionHandler(&mockTransactionUsecase{}), "abc", validBody)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(handler *TransactionHandler, id string) *httptest.ResponseRecorder {
		router := gin.New()
		router.DELETE("/transactions/:id", asUser(7), handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/transactions/"+id, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success: record removed", func(t *testing.T) {
		mockUC := &mockTransactionUsecase{
			DeleteFunc: func(ctx context.Context, userID, id uint) error {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, uint(5), id)
				return nil
			},
		}
		w := run(NewTransactionHandler(mockUC), "5")

		assert.Equal(t, http.StatusOK, w.Code)

		var body gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, gin.H{"success": true}, body)
	})

	t.Run("another user's record reads as not found", func(t *testing.T) {
		w := run(NewTransactionHandler(&mockTransactionUsecase{}), "5")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
