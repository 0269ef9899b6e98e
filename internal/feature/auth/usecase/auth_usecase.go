package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"expensepro_backend/internal/feature/auth/domain/entity"
)

const (
	// LoginTokenTTL bounds sessions issued by password login.
	LoginTokenTTL = 7 * 24 * time.Hour
	// OAuthTokenTTL bounds sessions issued by the Google OAuth callback.
	OAuthTokenTTL = 24 * time.Hour
)

// GoogleProfile is the identity slice obtained from Google after the OAuth
// code exchange.
type GoogleProfile struct {
	ID    string
	Email string
	Name  string
}

// authUsecase implements session issuance: password login and OAuth completion.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Login authenticates a user and returns a 7-day session token.
// It distinguishes an unknown address (ErrUserNotFound) from a Google-only
// account (ErrNoPasswordCredential) from a bad password (ErrInvalidCredentials),
// matching the messages the frontend relies on.
// A bcrypt comparison runs even when the user does not exist, to keep the
// response timing uniform.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword always runs.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil && user.HasPassword() {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if !user.HasPassword() {
		return "", ErrNoPasswordCredential
	}
	if compareErr != nil || !user.IsVerified {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, user.Name, LoginTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// linkOrCreate resolves a Google profile against the two possible existing
// records and returns the user to persist. Pure function: byGoogleID and
// byEmail are nil when no such record exists.
//
// Precedence: an account already linked to the Google ID wins; otherwise an
// email match is linked in place to avoid duplicate accounts; otherwise a new
// verified account is created.
func linkOrCreate(profile GoogleProfile, byGoogleID, byEmail *entity.User) *entity.User {
	if byGoogleID != nil {
		return byGoogleID
	}
	if byEmail != nil {
		byEmail.GoogleID = profile.ID
		byEmail.IsVerified = true
		return byEmail
	}
	name := profile.Name
	if name == "" {
		name = "User"
	}
	return &entity.User{
		Name:       name,
		Email:      profile.Email,
		GoogleID:   profile.ID,
		IsVerified: true,
	}
}

// CompleteOAuth finds or creates the account for a verified Google profile and
// returns a 1-day session token.
func (u *authUsecase) CompleteOAuth(ctx context.Context, profile GoogleProfile) (string, error) {
	byGoogleID, err := u.users.FindByGoogleID(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", err
	}

	var byEmail *entity.User
	if byGoogleID == nil && profile.Email != "" {
		byEmail, err = u.users.FindByEmail(ctx, profile.Email)
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return "", err
		}
	}

	user := linkOrCreate(profile, byGoogleID, byEmail)
	if user.ID == 0 {
		err = u.users.Create(ctx, user)
	} else {
		err = u.users.Save(ctx, user)
	}
	if err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, user.Name, OAuthTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
