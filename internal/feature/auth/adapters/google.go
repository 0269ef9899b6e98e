package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"expensepro_backend/internal/feature/auth/usecase"
)

// userinfoURL returns the authenticated user's Google profile.
const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuth drives the Google authorization-code flow: redirect URL
// construction, code exchange and profile retrieval.
type GoogleOAuth struct {
	cfg *oauth2.Config
}

// NewGoogleOAuth builds the OAuth client from environment variables.
// GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set; BACKEND_URL is the
// public base URL the callback is registered under.
func NewGoogleOAuth() (*GoogleOAuth, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}
	return &GoogleOAuth{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  os.Getenv("BACKEND_URL") + "/google/callback",
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}, nil
}

// AuthCodeURL returns the Google consent-screen URL carrying the state nonce.
func (g *GoogleOAuth) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and fetches the user's
// profile from the userinfo endpoint.
func (g *GoogleOAuth) Exchange(ctx context.Context, code string) (usecase.GoogleProfile, error) {
	var profile usecase.GoogleProfile

	token, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return profile, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	resp, err := g.cfg.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return profile, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return profile, fmt.Errorf("userinfo request failed: status %d", resp.StatusCode)
	}

	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return profile, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	profile.ID = info.ID
	profile.Email = info.Email
	profile.Name = info.Name
	return profile, nil
}
