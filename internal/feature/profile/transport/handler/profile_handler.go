// Package handler provides the HTTP handlers for the profile feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"expensepro_backend/internal/api"
	authentity "expensepro_backend/internal/feature/auth/domain/entity"
	authusecase "expensepro_backend/internal/feature/auth/usecase"
	"expensepro_backend/internal/feature/profile/usecase"
	jwtmw "expensepro_backend/internal/infrastructure/jwt"
)

// ProfileUsecase defines the account operations used by the handlers.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProfileUsecase interface {
	Me(ctx context.Context, userID uint) (*authentity.User, error)
	UpdateProfile(ctx context.Context, userID uint, name, profilePic string) (*authentity.User, error)
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
}

// ExportUsecase defines the ledger serialization operations.
type ExportUsecase interface {
	ExportCSV(ctx context.Context, userID uint) ([]byte, error)
	ExportXLSX(ctx context.Context, userID uint) ([]byte, error)
}

// LedgerWiper removes a user's entire ledger.
type LedgerWiper interface {
	DeleteAll(ctx context.Context, userID uint) (int64, error)
}

// ProfileHandler handles the HTTP requests under /user.
type ProfileHandler struct {
	profile ProfileUsecase
	export  ExportUsecase
	wiper   LedgerWiper
}

// NewProfileHandler creates a new ProfileHandler instance.
func NewProfileHandler(profile ProfileUsecase, export ExportUsecase, wiper LedgerWiper) *ProfileHandler {
	return &ProfileHandler{profile: profile, export: export, wiper: wiper}
}

func toUserResponse(u *authentity.User) api.UserResponse {
	return api.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

// Me returns the caller's profile. Password hashes and OTP state never leave
// the server.
//
// Endpoint: GET /user/me
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	user, err := h.profile.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
			return
		}
		slog.Error("profile fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateProfile edits the caller's display name and avatar.
//
// Endpoint: PUT /user/update-profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req api.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name is required"})
		return
	}
	user, err := h.profile.UpdateProfile(c.Request.Context(), userID, req.Name, req.ProfilePic)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNameRequired):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, authusecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		default:
			slog.Error("profile update failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update profile"})
		}
		return
	}
	slog.Info("profile updated", "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": toUserResponse(user)})
}

// ChangePassword rotates the caller's password.
//
// Endpoint: PUT /user/change-password
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	var req api.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "both passwords are required"})
		return
	}
	if err := h.profile.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrWrongOldPassword),
			errors.Is(err, authusecase.ErrNoPasswordCredential):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, authusecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		default:
			slog.Error("password change failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to change password"})
		}
		return
	}
	slog.Info("password changed", "user_id", userID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password changed successfully"})
}

// ExportCSV streams the caller's full ledger as a CSV attachment.
//
// Endpoint: GET /user/export
func (h *ProfileHandler) ExportCSV(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	data, err := h.export.ExportCSV(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoTransactions) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no transactions found"})
			return
		}
		slog.Error("csv export failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to export CSV"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=transactions.csv")
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportExcel streams the caller's full ledger as an XLSX attachment.
//
// Endpoint: GET /user/export-excel
func (h *ProfileHandler) ExportExcel(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	data, err := h.export.ExportXLSX(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoTransactions) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no transactions found"})
			return
		}
		slog.Error("excel export failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "excel export failed"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=Expense_Report.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// DeleteAllTransactions wipes the caller's ledger and reports the count.
//
// Endpoint: DELETE /user/delete-all-transactions
func (h *ProfileHandler) DeleteAllTransactions(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	deleted, err := h.wiper.DeleteAll(c.Request.Context(), userID)
	if err != nil {
		slog.Error("ledger wipe failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete transactions"})
		return
	}
	slog.Info("ledger wiped", "user_id", userID, "deleted", deleted)
	c.JSON(http.StatusOK, api.DeleteAllResponse{
		Message: fmt.Sprintf("Deleted %d transactions.", deleted),
		Deleted: deleted,
	})
}
