package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"expensepro_backend/internal/feature/auth/domain/entity"
)

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:         1,
		Name:       "Alice",
		Email:      "alice@example.com",
		Password:   string(hashedPassword),
		IsVerified: true,
	}

	t.Run("successful login issues a 7-day token", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email == testUser.Email {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}
		mockJWT := &mockTokenIssuer{
			GenerateTokenFunc: func(userID uint, email, name string, ttl time.Duration) (string, error) {
				if userID != testUser.ID || email != testUser.Email || name != testUser.Name {
					t.Errorf("unexpected claims: userID=%d email=%s name=%s", userID, email, name)
				}
				if ttl != LoginTokenTTL {
					t.Errorf("expected TTL %v, got %v", LoginTokenTTL, ttl)
				}
				return "mock-jwt-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		token, err := uc.Login(ctx, "alice@example.com", password)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "mock-jwt-token" {
			t.Errorf("expected token 'mock-jwt-token', got: '%s'", token)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenIssuer{})
		_, err := uc.Login(ctx, "wrong@example.com", password)

		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})

	t.Run("incorrect password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Login(ctx, "alice@example.com", "wrong-password")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("google-only account", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 2, Email: email, GoogleID: "g-123", IsVerified: true}, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Login(ctx, "alice@example.com", password)

		if !errors.Is(err, ErrNoPasswordCredential) {
			t.Errorf("expected ErrNoPasswordCredential, got: %v", err)
		}
	})

	t.Run("unverified account", func(t *testing.T) {
		unverified := *testUser
		unverified.IsVerified = false
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &unverified, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.Login(ctx, "alice@example.com", password)

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("JWT generation failure", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}
		mockJWT := &mockTokenIssuer{
			GenerateTokenFunc: func(userID uint, email, name string, ttl time.Duration) (string, error) {
				return "", errors.New("failed to sign token")
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, err := uc.Login(ctx, "alice@example.com", password)

		if err == nil {
			t.Fatal("expected error but got nil")
		}
		expectedErrMsg := "failed to generate token: failed to sign token"
		if err.Error() != expectedErrMsg {
			t.Errorf("expected error message '%s', got: '%s'", expectedErrMsg, err.Error())
		}
	})
}

func TestLinkOrCreate(t *testing.T) {
	profile := GoogleProfile{ID: "g-123", Email: "alice@example.com", Name: "Alice"}

	t.Run("existing linked account wins", func(t *testing.T) {
		linked := &entity.User{ID: 1, Email: "alice@example.com", GoogleID: "g-123"}
		byEmail := &entity.User{ID: 2, Email: "alice@example.com"}

		got := linkOrCreate(profile, linked, byEmail)
		if got != linked {
			t.Errorf("expected the linked account, got %+v", got)
		}
	})

	t.Run("email match is linked in place", func(t *testing.T) {
		byEmail := &entity.User{ID: 2, Email: "alice@example.com", Password: "$2a$10$hash", IsVerified: false}

		got := linkOrCreate(profile, nil, byEmail)
		if got != byEmail {
			t.Fatalf("expected the email-matched account, got %+v", got)
		}
		if got.GoogleID != "g-123" {
			t.Errorf("expected GoogleID to be linked, got %q", got.GoogleID)
		}
		if !got.IsVerified {
			t.Error("google ownership proof must mark the account verified")
		}
		if got.Password == "" {
			t.Error("linking must not drop the password credential")
		}
	})

	t.Run("no match creates a verified account", func(t *testing.T) {
		got := linkOrCreate(profile, nil, nil)
		if got.ID != 0 || got.Email != "alice@example.com" || got.GoogleID != "g-123" {
			t.Errorf("unexpected new account: %+v", got)
		}
		if !got.IsVerified {
			t.Error("oauth accounts are born verified")
		}
		if got.Password != "" {
			t.Error("oauth accounts have no password credential")
		}
	})

	t.Run("empty profile name falls back to a placeholder", func(t *testing.T) {
		got := linkOrCreate(GoogleProfile{ID: "g-9", Email: "b@example.com"}, nil, nil)
		if got.Name == "" {
			t.Error("expected a non-empty display name")
		}
	})
}

func TestAuthUsecase_CompleteOAuth(t *testing.T) {
	ctx := context.Background()
	profile := GoogleProfile{ID: "g-123", Email: "alice@example.com", Name: "Alice"}

	t.Run("new profile creates an account and issues a 1-day token", func(t *testing.T) {
		var created *entity.User
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = 7
				created = user
				return nil
			},
		}
		mockJWT := &mockTokenIssuer{
			GenerateTokenFunc: func(userID uint, email, name string, ttl time.Duration) (string, error) {
				if userID != 7 {
					t.Errorf("expected the persisted ID in claims, got %d", userID)
				}
				if ttl != OAuthTokenTTL {
					t.Errorf("expected TTL %v, got %v", OAuthTokenTTL, ttl)
				}
				return "oauth-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		token, err := uc.CompleteOAuth(ctx, profile)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "oauth-token" {
			t.Errorf("expected 'oauth-token', got %q", token)
		}
		if created == nil || !created.IsVerified {
			t.Error("expected a verified account to be created")
		}
	})

	t.Run("email match is saved with the link, not duplicated", func(t *testing.T) {
		existing := &entity.User{ID: 3, Email: "alice@example.com", Password: "$2a$10$hash", IsVerified: true}
		createCalled := false
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return existing, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				createCalled = true
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		if _, err := uc.CompleteOAuth(ctx, profile); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if createCalled {
			t.Error("matching account must be updated, not recreated")
		}
		if existing.GoogleID != "g-123" {
			t.Error("expected the google ID to be linked")
		}
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		dbErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			FindByGoogleIDFunc: func(ctx context.Context, googleID string) (*entity.User, error) {
				return nil, dbErr
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenIssuer{})
		_, err := uc.CompleteOAuth(ctx, profile)
		if !errors.Is(err, dbErr) {
			t.Errorf("expected the database error, got: %v", err)
		}
	})
}
