package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"expensepro_backend/internal/feature/auth/usecase"
)

// mockOAuthProvider is a mock implementation of the OAuthProvider interface.
type mockOAuthProvider struct {
	AuthCodeURLFunc func(state string) string
	ExchangeFunc    func(ctx context.Context, code string) (usecase.GoogleProfile, error)
}

func (m *mockOAuthProvider) AuthCodeURL(state string) string {
	if m.AuthCodeURLFunc != nil {
		return m.AuthCodeURLFunc(state)
	}
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (m *mockOAuthProvider) Exchange(ctx context.Context, code string) (usecase.GoogleProfile, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code)
	}
	return usecase.GoogleProfile{}, errors.New("exchange failed") // Default: failure
}

func TestOAuthHandler_Redirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewOAuthHandler(&mockAuthUsecase{}, &mockOAuthProvider{}, "http://localhost:5173")
	router := gin.New()
	router.GET("/google", handler.Redirect)

	req, _ := http.NewRequest(http.MethodGet, "/google", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)

	// The state in the consent URL must match the cookie.
	location, err := url.Parse(w.Header().Get("Location"))
	assert.NoError(t, err)
	state := location.Query().Get("state")
	assert.NotEmpty(t, state)

	res := w.Result()
	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == stateCookie {
			cookie = c
		}
	}
	if assert.NotNil(t, cookie, "state cookie not set") {
		assert.Equal(t, state, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	}
}

func TestOAuthHandler_Callback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const frontend = "http://localhost:5173"
	profile := usecase.GoogleProfile{ID: "g-123", Email: "alice@example.com", Name: "Alice"}

	callback := func(handler *OAuthHandler, query string, cookieValue string) *httptest.ResponseRecorder {
		router := gin.New()
		router.GET("/google/callback", handler.Callback)

		req, _ := http.NewRequest(http.MethodGet, "/google/callback?"+query, nil)
		if cookieValue != "" {
			req.AddCookie(&http.Cookie{Name: stateCookie, Value: cookieValue})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("success redirects to the frontend with the token", func(t *testing.T) {
		provider := &mockOAuthProvider{
			ExchangeFunc: func(ctx context.Context, code string) (usecase.GoogleProfile, error) {
				assert.Equal(t, "auth-code", code)
				return profile, nil
			},
		}
		auth := &mockAuthUsecase{
			CompleteOAuthFunc: func(ctx context.Context, p usecase.GoogleProfile) (string, error) {
				assert.Equal(t, profile, p)
				return "session-token", nil
			},
		}
		handler := NewOAuthHandler(auth, provider, frontend)

		w := callback(handler, "state=nonce-1&code=auth-code", "nonce-1")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, frontend+"/google-success?token=session-token", w.Header().Get("Location"))
	})

	t.Run("state mismatch redirects to the login error page", func(t *testing.T) {
		handler := NewOAuthHandler(&mockAuthUsecase{}, &mockOAuthProvider{}, frontend)

		w := callback(handler, "state=tampered&code=auth-code", "nonce-1")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, frontend+"/login?error=true", w.Header().Get("Location"))
	})

	t.Run("missing cookie redirects to the login error page", func(t *testing.T) {
		handler := NewOAuthHandler(&mockAuthUsecase{}, &mockOAuthProvider{}, frontend)

		w := callback(handler, "state=nonce-1&code=auth-code", "")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, frontend+"/login?error=true", w.Header().Get("Location"))
	})

	t.Run("exchange failure redirects to the login error page", func(t *testing.T) {
		handler := NewOAuthHandler(&mockAuthUsecase{}, &mockOAuthProvider{}, frontend)

		w := callback(handler, "state=nonce-1&code=bad-code", "nonce-1")

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, frontend+"/login?error=true", w.Header().Get("Location"))
	})
}
