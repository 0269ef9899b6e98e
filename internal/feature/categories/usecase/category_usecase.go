// Package usecase implements the business logic for category vocabulary lookups.
package usecase

import (
	"expensepro_backend/internal/feature/transactions/domain/entity"
)

// CategoryUsecase serves the closed category vocabularies so clients stay in
// sync with the validation rules instead of hardcoding them.
type CategoryUsecase struct{}

// NewCategoryUsecase creates a new CategoryUsecase instance.
func NewCategoryUsecase() *CategoryUsecase {
	return &CategoryUsecase{}
}

// List returns the income and expense vocabularies.
func (u *CategoryUsecase) List() (income, expense []string) {
	return entity.CategoriesFor(entity.TypeIncome), entity.CategoriesFor(entity.TypeExpense)
}
