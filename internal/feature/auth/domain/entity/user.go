// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// OTPTTL is how long an issued one-time code stays valid.
const OTPTTL = 10 * time.Minute

// User represents a registered account in the system.
// It carries the password credential, the Google OAuth linkage and the
// one-time-code state for the signup and password-reset flows.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown in the app and in OTP emails.
	Name string `gorm:"size:255;not null"`

	// Email is the unique address the account is keyed by.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the password credential.
	// Empty for accounts created through Google OAuth only.
	Password string `gorm:"size:255"`

	// GoogleID links the account to a Google profile, if any.
	GoogleID string `gorm:"size:255;index"`

	// ProfilePic is an optional avatar URL set from the profile screen.
	ProfilePic string `gorm:"size:512"`

	// IsVerified is set once the signup code was consumed or the account
	// was linked to a Google profile. Password login requires it.
	IsVerified bool `gorm:"not null;default:false"`

	// Signup one-time-code slot. Only the bcrypt hash of the code is stored.
	SignupOTPHash    string `gorm:"size:255"`
	SignupOTPExpires *time.Time

	// Password-reset one-time-code slot, kept separate from the signup slot
	// so a concurrent verification and reset cannot interfere.
	ResetOTPHash    string `gorm:"size:255"`
	ResetOTPExpires *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// HasPassword reports whether the account can authenticate with a password.
// Google-only accounts have no password credential.
func (u *User) HasPassword() bool {
	return u.Password != ""
}
