// Package api defines the JSON request and response types shared by all HTTP handlers.
package api

import "time"

// ErrorResponse is the generic error payload returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success payload for operations without data.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed session token after a successful authentication.
type TokenResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
}

// SendOTPRequest starts email verification for a new account.
// Name is required only when no account exists for the email yet.
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// SignupRequest completes registration with the code delivered by email.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	OTP      string `json:"otp" binding:"required,len=6"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest asks for a password-reset code.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest commits a new password with the code delivered by email.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// TransactionRequest creates or updates a ledger record.
type TransactionRequest struct {
	Type        string    `json:"type" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description"`
	Receipt     string    `json:"receipt"`
}

// TransactionResponse is one ledger record as returned to its owner.
type TransactionResponse struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Receipt     string    `json:"receipt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoriesResponse lists the closed category vocabulary per transaction type.
type CategoriesResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// UserResponse is the profile slice safe to return to the authenticated caller.
// Password hashes and one-time-code state are never serialized.
type UserResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ProfilePic string    `json:"profilePic,omitempty"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UpdateProfileRequest edits the caller's display profile.
type UpdateProfileRequest struct {
	Name       string `json:"name" binding:"required"`
	ProfilePic string `json:"profilePic"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// DeleteAllResponse reports how many ledger records were removed.
type DeleteAllResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// AnalyzeRequest is a natural-language question about the caller's ledger.
type AnalyzeRequest struct {
	Message string `json:"message" binding:"required"`
}

// AnalyzeResponse carries the assistant's textual answer.
type AnalyzeResponse struct {
	Reply string `json:"reply"`
}
