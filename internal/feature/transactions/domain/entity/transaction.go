// Package entity defines the domain entities for the transactions feature.
package entity

import (
	"errors"
	"time"
)

// TxType discriminates the two kinds of ledger records.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// Validation errors reported at construction time.
var (
	ErrInvalidType     = errors.New("type must be income or expense")
	ErrInvalidCategory = errors.New("category is not valid for this transaction type")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrMissingDate     = errors.New("date is required")
)

// Closed category vocabularies. A category is only meaningful together with
// its transaction type; "Other" exists in both.
var (
	incomeCategories = []string{
		"Salary", "Bonus", "Gifts", "Investment", "Freelance", "Other",
	}
	expenseCategories = []string{
		"Food", "Transport", "Shopping", "Utilities", "Rent",
		"Health", "Entertainment", "Education", "Other",
	}
)

// Category is a validated (type, name) pair. Construct via NewCategory so an
// income record can never carry an expense category and vice versa.
type Category struct {
	Type TxType
	Name string
}

// NewCategory validates name against the vocabulary of the given type.
func NewCategory(t TxType, name string) (Category, error) {
	if t != TypeIncome && t != TypeExpense {
		return Category{}, ErrInvalidType
	}
	for _, c := range CategoriesFor(t) {
		if c == name {
			return Category{Type: t, Name: name}, nil
		}
	}
	return Category{}, ErrInvalidCategory
}

// CategoriesFor returns the closed vocabulary for a transaction type.
func CategoriesFor(t TxType) []string {
	if t == TypeIncome {
		return incomeCategories
	}
	return expenseCategories
}

// Transaction is one dated, categorized monetary record owned by a user.
type Transaction struct {
	ID uint `gorm:"primaryKey"`

	// UserID is the owning user. Every query and mutation is scoped to it.
	UserID uint `gorm:"index;not null"`

	Type     string  `gorm:"size:16;not null"`
	Category string  `gorm:"size:32;not null"`
	Amount   float64 `gorm:"not null"`

	// Date is the transaction date chosen by the user, not the insert time.
	Date time.Time `gorm:"index;not null"`

	Description string `gorm:"size:1024"`

	// Receipt is an opaque file URL or path; never included in AI context.
	Receipt string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction validates and builds a ledger record for the given owner.
func NewTransaction(userID uint, txType, category string, amount float64, date time.Time, description, receipt string) (*Transaction, error) {
	cat, err := NewCategory(TxType(txType), category)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	return &Transaction{
		UserID:      userID,
		Type:        string(cat.Type),
		Category:    cat.Name,
		Amount:      amount,
		Date:        date,
		Description: description,
		Receipt:     receipt,
	}, nil
}
