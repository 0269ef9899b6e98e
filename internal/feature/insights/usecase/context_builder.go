// Package usecase implements the business logic for the insights feature.
package usecase

import (
	"strconv"

	"expensepro_backend/internal/feature/insights/domain/entity"
	txentity "expensepro_backend/internal/feature/transactions/domain/entity"
)

const (
	// ContextLimit caps how many ledger records enter a prompt.
	ContextLimit = 200

	// CurrencyMarker is the single currency symbol the assistant may use.
	CurrencyMarker = "₹"
)

// BuildContext projects ledger records into prompt-safe context entries.
// Pure and deterministic: input order is preserved (the caller controls the
// sort), the result is capped to limit entries and a missing description maps
// to the empty string. limit <= 0 applies ContextLimit.
func BuildContext(txs []txentity.Transaction, limit int) []entity.ContextEntry {
	if limit <= 0 {
		limit = ContextLimit
	}
	if len(txs) > limit {
		txs = txs[:limit]
	}
	entries := make([]entity.ContextEntry, 0, len(txs))
	for i := range txs {
		tx := &txs[i]
		entries = append(entries, entity.ContextEntry{
			Date:        tx.Date.Format("2006-01-02"),
			Type:        tx.Type,
			Category:    tx.Category,
			Amount:      CurrencyMarker + strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			Description: tx.Description,
		})
	}
	return entries
}
