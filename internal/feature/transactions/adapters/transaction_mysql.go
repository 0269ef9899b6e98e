// Package adapters provides the repository implementations for the transactions feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"expensepro_backend/internal/feature/transactions/domain/entity"
	"expensepro_backend/internal/feature/transactions/usecase"
)

// transactionMySQL is the MySQL implementation of TransactionRepository,
// backed by GORM.
type transactionMySQL struct {
	db *gorm.DB
}

// Compile-time check that transactionMySQL implements TransactionRepository.
var _ usecase.TransactionRepository = (*transactionMySQL)(nil)

// NewTransactionMySQL creates a new transactionMySQL instance.
func NewTransactionMySQL(db *gorm.DB) *transactionMySQL {
	return &transactionMySQL{db: db}
}

// Create adds a record to the database.
func (r *transactionMySQL) Create(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// FindOwned fetches a record scoped to its owner. A record owned by another
// user reports the same ErrTransactionNotFound as a missing one.
func (r *transactionMySQL) FindOwned(ctx context.Context, userID, id uint) (*entity.Transaction, error) {
	var tx entity.Transaction
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// Save persists all fields of an existing record.
func (r *transactionMySQL) Save(ctx context.Context, tx *entity.Transaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

// Delete removes a record scoped to its owner.
func (r *transactionMySQL) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTransactionNotFound
	}
	return nil
}

// ListByUser returns the user's records ordered by date descending.
func (r *transactionMySQL) ListByUser(ctx context.Context, userID uint, limit int) ([]entity.Transaction, error) {
	var rows []entity.Transaction
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteAllByUser removes every record of the user and returns the count.
func (r *transactionMySQL) DeleteAllByUser(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.Transaction{})
	return res.RowsAffected, res.Error
}
