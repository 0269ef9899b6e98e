package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"expensepro_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists on a duplicate address.
	Create(ctx context.Context, user *entity.User) error

	// Save persists changes to an existing user.
	Save(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user with the given address, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByGoogleID returns the user linked to the given Google profile, or ErrUserNotFound.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
}

// OTPMailer delivers one-time codes by email.
type OTPMailer interface {
	SendOTP(ctx context.Context, to, name, code string, purpose entity.OTPPurpose) error
}

// TokenIssuer creates signed session tokens.
type TokenIssuer interface {
	GenerateToken(userID uint, email, name string, ttl time.Duration) (string, error)
}

// SignupTokenTTL bounds the session issued right after signup verification.
const SignupTokenTTL = 24 * time.Hour

// otpUsecase implements the one-time-code lifecycle shared by the signup
// verification and password-reset flows: generation, hashing, expiry,
// verification and single-use consumption.
type otpUsecase struct {
	users  UserRepository
	mailer OTPMailer
	tokens TokenIssuer

	// now is injectable for expiry tests.
	now func() time.Time
}

// NewOTPUsecase creates a new otpUsecase instance.
func NewOTPUsecase(users UserRepository, mailer OTPMailer, tokens TokenIssuer) *otpUsecase {
	return &otpUsecase{
		users:  users,
		mailer: mailer,
		tokens: tokens,
		now:    time.Now,
	}
}

// generateCode returns a uniformly random 6-digit code in 100000..999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Issue generates a fresh code for the given purpose, stores its bcrypt hash
// with a 10-minute expiry on the matching slot and emails the plaintext to the
// user. Any pending code for the same purpose is superseded.
//
// For OTPSignup an unknown email creates an unverified account; name is then
// required. Re-issuing against a verified account fails with
// ErrAlreadyRegistered. For OTPReset the account must exist and must hold a
// password credential.
func (u *otpUsecase) Issue(ctx context.Context, email, name string, purpose entity.OTPPurpose) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}

	created := false
	switch purpose {
	case entity.OTPReset:
		if user == nil {
			return ErrUserNotFound
		}
		if !user.HasPassword() {
			return ErrNoPasswordCredential
		}
	default:
		if user != nil && user.IsVerified {
			return ErrAlreadyRegistered
		}
		if user == nil {
			if name == "" {
				return ErrNameRequired
			}
			user = &entity.User{Name: name, Email: email}
			created = true
		}
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	// bcrypt salts per call; the plaintext code never reaches storage.
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}
	expiry := u.now().Add(entity.OTPTTL)
	user.SetSlot(purpose, string(hash), &expiry)

	if created {
		err = u.users.Create(ctx, user)
	} else {
		err = u.users.Save(ctx, user)
	}
	if err != nil {
		return err
	}

	if err := u.mailer.SendOTP(ctx, user.Email, user.Name, code, purpose); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	return nil
}

// verifySlot reports whether the plaintext code matches the stored slot for
// the purpose. Valid iff a hash is present, the expiry has not passed and the
// bcrypt comparison succeeds. A failed check leaves the slot untouched.
func (u *otpUsecase) verifySlot(user *entity.User, purpose entity.OTPPurpose, code string) bool {
	slot := user.Slot(purpose)
	if slot.Hash == "" || slot.Expires == nil {
		return false
	}
	if !u.now().Before(*slot.Expires) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(slot.Hash), []byte(code)) == nil
}

// CompleteSignup consumes a signup code and activates the account: the display
// name and password hash are committed together with the verified flag and the
// slot is cleared, all in one write. Returns a session token on success.
//
// All verification failures surface as ErrInvalidOTP.
func (u *otpUsecase) CompleteSignup(ctx context.Context, name, email, password, code string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidOTP
		}
		return "", err
	}
	if !u.verifySlot(user, entity.OTPSignup, code) {
		return "", ErrInvalidOTP
	}
	if user.IsVerified {
		return "", ErrAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.Name = name
	user.Password = string(hashed)
	user.IsVerified = true
	user.ClearSlot(entity.OTPSignup)
	if err := u.users.Save(ctx, user); err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, user.Name, SignupTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ResetPassword consumes a reset code and commits the new password hash in the
// same write that clears the slot.
func (u *otpUsecase) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrInvalidOTP
		}
		return err
	}
	if !u.verifySlot(user, entity.OTPReset, code) {
		return ErrInvalidOTP
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	user.ClearSlot(entity.OTPReset)
	return u.users.Save(ctx, user)
}
