package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expensepro_backend/internal/feature/auth/usecase"
)

// stateCookie holds the OAuth CSRF nonce between redirect and callback.
const (
	stateCookie       = "oauth_state"
	stateCookieMaxAge = 600 // seconds
)

// OAuthProvider abstracts the Google authorization-code flow.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (usecase.GoogleProfile, error)
}

// OAuthHandler handles the Google OAuth redirect flow.
type OAuthHandler struct {
	auth        AuthUsecase
	provider    OAuthProvider
	frontendURL string
}

// NewOAuthHandler creates a new OAuthHandler instance.
func NewOAuthHandler(auth AuthUsecase, provider OAuthProvider, frontendURL string) *OAuthHandler {
	return &OAuthHandler{auth: auth, provider: provider, frontendURL: frontendURL}
}

// Redirect sends the client to the Google consent screen.
//
// Endpoint: GET /google
func (h *OAuthHandler) Redirect(c *gin.Context) {
	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, stateCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// Callback exchanges the authorization code, completes the account linkage and
// redirects to the frontend with the session token. Any failure redirects to
// the frontend login page with an error flag instead of rendering JSON.
//
// Endpoint: GET /google/callback
func (h *OAuthHandler) Callback(c *gin.Context) {
	failureURL := h.frontendURL + "/login?error=true"

	state := c.Query("state")
	wantState, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != wantState {
		slog.Warn("oauth state mismatch", "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, failureURL)
		return
	}
	// The nonce is single-use.
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		slog.Warn("oauth callback without code", "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	profile, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		slog.Error("oauth code exchange failed", "error", err)
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	token, err := h.auth.CompleteOAuth(c.Request.Context(), profile)
	if err != nil {
		slog.Error("oauth completion failed", "error", err, "email", profile.Email)
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	slog.Info("oauth login successful", "email", profile.Email)
	c.Redirect(http.StatusFound, h.frontendURL+"/google-success?token="+token)
}
