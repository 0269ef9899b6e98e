package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthRequired(), func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"userID": userID,
			"email":  c.GetString(ContextUserEmail),
			"name":   c.GetString(ContextUserName),
		})
	})
	return r
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	const secret = "test-secret"

	t.Run("valid token populates the context", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)

		token, err := NewGenerator(secret).GenerateToken(7, "alice@example.com", "Alice", time.Hour)
		assert.NoError(t, err)

		w := get(newProtectedRouter(), "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userID":7`)
		assert.Contains(t, w.Body.String(), `"email":"alice@example.com"`)
		assert.Contains(t, w.Body.String(), `"name":"Alice"`)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)

		w := get(newProtectedRouter(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)

		w := get(newProtectedRouter(), "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)

		token, err := NewGenerator("other-secret").GenerateToken(7, "alice@example.com", "Alice", time.Hour)
		assert.NoError(t, err)

		w := get(newProtectedRouter(), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, secret)

		token, err := NewGenerator(secret).GenerateToken(7, "alice@example.com", "Alice", -time.Minute)
		assert.NoError(t, err)

		w := get(newProtectedRouter(), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing secret is a server error", func(t *testing.T) {
		t.Setenv(EnvKeyJWTSecret, "")

		w := get(newProtectedRouter(), "Bearer whatever")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
