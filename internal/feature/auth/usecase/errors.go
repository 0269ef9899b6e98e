// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAlreadyRegistered is returned when a signup flow targets an account
	// that already completed verification.
	ErrAlreadyRegistered = errors.New("user already registered")

	// ErrNameRequired is returned when a signup code is requested for an
	// unknown email without a display name to create the account with.
	ErrNameRequired = errors.New("name is required for new users")

	// ErrNoPasswordCredential is returned when a password operation targets a
	// Google-only account. The caller must be told to use Google sign-in.
	ErrNoPasswordCredential = errors.New("account has no password; use Google sign-in")

	// ErrInvalidOTP is the single generic failure for code verification.
	// It deliberately does not distinguish a wrong code, an expired code or an
	// unknown address, to resist enumeration.
	ErrInvalidOTP = errors.New("invalid or expired OTP")

	// ErrInvalidCredentials is returned when email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDeliveryFailed is returned when the OTP email could not be sent.
	ErrDeliveryFailed = errors.New("failed to send OTP email")
)
