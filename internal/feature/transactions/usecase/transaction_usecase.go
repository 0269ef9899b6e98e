// Package usecase implements the business logic for the transactions feature.
package usecase

import (
	"context"
	"errors"
	"time"

	"expensepro_backend/internal/feature/transactions/domain/entity"
)

// DefaultListLimit caps a plain list request; all=true removes the cap.
const DefaultListLimit = 20

// ErrTransactionNotFound is returned when a record does not exist or is owned
// by someone else. The two cases are deliberately indistinguishable so callers
// cannot probe for other users' record IDs.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository abstracts the persistence layer for ledger records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TransactionRepository interface {
	// Create persists a new record.
	Create(ctx context.Context, tx *entity.Transaction) error

	// FindOwned returns the record only if it belongs to userID, or ErrTransactionNotFound.
	FindOwned(ctx context.Context, userID, id uint) (*entity.Transaction, error)

	// Save persists changes to an existing record.
	Save(ctx context.Context, tx *entity.Transaction) error

	// Delete removes the record only if it belongs to userID, or ErrTransactionNotFound.
	Delete(ctx context.Context, userID, id uint) error

	// ListByUser returns the user's records ordered by date descending.
	// limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID uint, limit int) ([]entity.Transaction, error)

	// DeleteAllByUser removes every record of the user and returns the count.
	DeleteAllByUser(ctx context.Context, userID uint) (int64, error)
}

// TransactionInput carries the writable fields of a record.
type TransactionInput struct {
	Type        string
	Category    string
	Amount      float64
	Date        time.Time
	Description string
	Receipt     string
}

// transactionUsecase provides owner-scoped CRUD over the ledger.
type transactionUsecase struct {
	repo TransactionRepository
}

// NewTransactionUsecase creates a new transactionUsecase instance.
func NewTransactionUsecase(repo TransactionRepository) *transactionUsecase {
	return &transactionUsecase{repo: repo}
}

// List returns the caller's records, newest date first. Without all the result
// is capped to the 20 most recent.
func (u *transactionUsecase) List(ctx context.Context, userID uint, all bool) ([]entity.Transaction, error) {
	limit := DefaultListLimit
	if all {
		limit = 0
	}
	return u.repo.ListByUser(ctx, userID, limit)
}

// Create validates and persists a new record for the caller.
func (u *transactionUsecase) Create(ctx context.Context, userID uint, in TransactionInput) (*entity.Transaction, error) {
	tx, err := entity.NewTransaction(userID, in.Type, in.Category, in.Amount, in.Date, in.Description, in.Receipt)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Update replaces the writable fields of a record the caller owns.
// Returns ErrTransactionNotFound when the record is missing or owned by
// another user.
func (u *transactionUsecase) Update(ctx context.Context, userID, id uint, in TransactionInput) (*entity.Transaction, error) {
	// Validate before touching storage.
	validated, err := entity.NewTransaction(userID, in.Type, in.Category, in.Amount, in.Date, in.Description, in.Receipt)
	if err != nil {
		return nil, err
	}

	tx, err := u.repo.FindOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	tx.Type = validated.Type
	tx.Category = validated.Category
	tx.Amount = validated.Amount
	tx.Date = validated.Date
	tx.Description = validated.Description
	tx.Receipt = validated.Receipt
	if err := u.repo.Save(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Delete removes a record the caller owns.
func (u *transactionUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}

// DeleteAll removes every record of the caller and reports the count.
func (u *transactionUsecase) DeleteAll(ctx context.Context, userID uint) (int64, error) {
	return u.repo.DeleteAllByUser(ctx, userID)
}
