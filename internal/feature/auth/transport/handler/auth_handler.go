// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"expensepro_backend/internal/api"
	"expensepro_backend/internal/feature/auth/domain/entity"
	"expensepro_backend/internal/feature/auth/usecase"
)

// OTPUsecase defines the one-time-code operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type OTPUsecase interface {
	// Issue generates and emails a fresh code for the given purpose.
	Issue(ctx context.Context, email, name string, purpose entity.OTPPurpose) error
	// CompleteSignup consumes a signup code, activates the account and returns a session token.
	CompleteSignup(ctx context.Context, name, email, password, code string) (string, error)
	// ResetPassword consumes a reset code and commits the new password.
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// AuthUsecase defines the session-issuing operations used by the handlers.
type AuthUsecase interface {
	// Login authenticates a user and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// CompleteOAuth finds or creates the account for a Google profile and returns a session token.
	CompleteOAuth(ctx context.Context, profile usecase.GoogleProfile) (string, error)
}

// AuthHandler handles the HTTP requests for registration, login and the
// password-reset flows.
type AuthHandler struct {
	otp  OTPUsecase
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(otp OTPUsecase, auth AuthUsecase) *AuthHandler {
	return &AuthHandler{otp: otp, auth: auth}
}

// status maps a usecase error to an HTTP status code.
// OTP verification failures stay one coarse 400 so callers cannot tell a wrong
// code from an expired one or from an unknown address.
func status(err error) int {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrNameRequired),
		errors.Is(err, usecase.ErrAlreadyRegistered),
		errors.Is(err, usecase.ErrNoPasswordCredential),
		errors.Is(err, usecase.ErrInvalidOTP),
		errors.Is(err, usecase.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrDeliveryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage strips internal detail from errors before they reach a client.
func publicMessage(err error) string {
	for _, known := range []error{
		usecase.ErrUserNotFound,
		usecase.ErrNameRequired,
		usecase.ErrAlreadyRegistered,
		usecase.ErrNoPasswordCredential,
		usecase.ErrInvalidOTP,
		usecase.ErrInvalidCredentials,
		usecase.ErrDeliveryFailed,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal server error"
}

// SendOTP handles the signup verification-code endpoint.
//
// Endpoint: POST /send-otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req api.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("send-otp validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email is required"})
		return
	}
	if err := h.otp.Issue(c.Request.Context(), req.Email, req.Name, entity.OTPSignup); err != nil {
		slog.Warn("send-otp failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status(err), api.ErrorResponse{Error: publicMessage(err)})
		return
	}
	slog.Info("signup OTP issued", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "OTP sent successfully! Expires in 10 minutes."})
}

// Signup completes registration with the emailed code and returns a token.
//
// Endpoint: POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "all fields are required"})
		return
	}
	token, err := h.otp.CompleteSignup(c.Request.Context(), req.Name, req.Email, req.Password, req.OTP)
	if err != nil {
		slog.Warn("signup failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status(err), api.ErrorResponse{Error: publicMessage(err)})
		return
	}
	slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.TokenResponse{Message: "Signup successful!", Token: token})
}

// Login authenticates with email and password and returns a 7-day token.
//
// Endpoint: POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email and password are required"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status(err), api.ErrorResponse{Error: publicMessage(err)})
		return
	}
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// ForgotPassword issues a password-reset code.
//
// Endpoint: POST /forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req api.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("forgot-password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email is required"})
		return
	}
	if err := h.otp.Issue(c.Request.Context(), req.Email, "", entity.OTPReset); err != nil {
		slog.Warn("forgot-password failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status(err), api.ErrorResponse{Error: publicMessage(err)})
		return
	}
	slog.Info("reset OTP issued", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "OTP sent to your email."})
}

// ResetPassword consumes a reset code and commits the new password.
//
// Endpoint: POST /reset-pass (alias /reset-password)
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req api.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("reset-password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email, otp and newPassword are required"})
		return
	}
	if err := h.otp.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		slog.Warn("reset-password failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status(err), api.ErrorResponse{Error: publicMessage(err)})
		return
	}
	slog.Info("password reset successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password reset successfully!"})
}

// ResendOTP reissues a password-reset code, superseding the previous one.
//
// Endpoint: POST /resend-otp
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req api.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("resend-otp validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email is required"})
		return
	}
	if err := h.otp.Issue(c.Request.Context(), req.Email, "", entity.OTPReset); err != nil {
		slog.Warn("resend-otp failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status(err), api.ErrorResponse{Error: publicMessage(err)})
		return
	}
	slog.Info("reset OTP reissued", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "New OTP sent to your email."})
}
