// Package usecase implements the business logic for the profile feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	authentity "expensepro_backend/internal/feature/auth/domain/entity"
	authusecase "expensepro_backend/internal/feature/auth/usecase"
)

var (
	// ErrWrongOldPassword is returned when the current password check fails
	// during a password change.
	ErrWrongOldPassword = errors.New("old password is incorrect")

	// ErrNameRequired is returned when a profile update carries a blank name.
	ErrNameRequired = errors.New("name is required")
)

// UserRepository is the slice of user persistence the profile feature needs.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
	Save(ctx context.Context, user *authentity.User) error
}

// profileUsecase provides read and update operations on the caller's account.
type profileUsecase struct {
	users UserRepository
}

// NewProfileUsecase creates a new profileUsecase instance.
func NewProfileUsecase(users UserRepository) *profileUsecase {
	return &profileUsecase{users: users}
}

// Me returns the caller's account record.
func (u *profileUsecase) Me(ctx context.Context, userID uint) (*authentity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateProfile sets the display name and, when given, the avatar URL.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID uint, name, profilePic string) (*authentity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if profilePic != "" {
		user.ProfilePic = profilePic
	}
	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword rotates the caller's password after checking the old one.
// Google-only accounts cannot change a password they do not have.
func (u *profileUsecase) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasPassword() {
		return authusecase.ErrNoPasswordCredential
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrWrongOldPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	return u.users.Save(ctx, user)
}
