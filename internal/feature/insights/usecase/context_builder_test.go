package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	txentity "expensepro_backend/internal/feature/transactions/domain/entity"
)

func TestBuildContext(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("projects the prompt-safe fields", func(t *testing.T) {
		txs := []txentity.Transaction{
			{
				ID: 1, UserID: 7, Type: "expense", Category: "Food", Amount: 250.5,
				Date: date, Description: "lunch", Receipt: "s3://receipts/1.jpg",
			},
		}

		entries := BuildContext(txs, 0)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		e := entries[0]
		if e.Date != "2025-06-15" {
			t.Errorf("unexpected date: %q", e.Date)
		}
		if e.Amount != "₹250.5" {
			t.Errorf("unexpected amount: %q", e.Amount)
		}
		if e.Type != "expense" || e.Category != "Food" || e.Description != "lunch" {
			t.Errorf("unexpected entry: %+v", e)
		}
	})

	t.Run("caps to the limit", func(t *testing.T) {
		txs := make([]txentity.Transaction, 250)
		for i := range txs {
			txs[i] = txentity.Transaction{ID: uint(i + 1), Amount: float64(i), Date: date, Type: "expense", Category: "Food"}
		}

		entries := BuildContext(txs, 0)
		if len(entries) != ContextLimit {
			t.Errorf("expected %d entries, got %d", ContextLimit, len(entries))
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		txs := []txentity.Transaction{
			{Amount: 3, Date: date, Type: "expense", Category: "Food"},
			{Amount: 1, Date: date, Type: "expense", Category: "Food"},
			{Amount: 2, Date: date, Type: "expense", Category: "Food"},
		}

		entries := BuildContext(txs, 0)
		want := []string{"₹3", "₹1", "₹2"}
		for i, e := range entries {
			if e.Amount != want[i] {
				t.Errorf("entry %d: expected %s, got %s", i, want[i], e.Amount)
			}
		}
	})

	t.Run("whole amounts carry no decimals", func(t *testing.T) {
		txs := []txentity.Transaction{{Amount: 50000, Date: date, Type: "income", Category: "Salary"}}

		entries := BuildContext(txs, 0)
		if entries[0].Amount != "₹50000" {
			t.Errorf("expected ₹50000, got %q", entries[0].Amount)
		}
	})

	t.Run("missing description maps to the empty string", func(t *testing.T) {
		txs := []txentity.Transaction{{Amount: 1, Date: date, Type: "expense", Category: "Food"}}

		entries := BuildContext(txs, 0)
		if entries[0].Description != "" {
			t.Errorf("expected empty description, got %q", entries[0].Description)
		}
	})

	t.Run("empty ledger yields an empty slice", func(t *testing.T) {
		entries := BuildContext(nil, 0)
		if entries == nil || len(entries) != 0 {
			t.Errorf("expected an empty slice, got %#v", entries)
		}
	})

	t.Run("receipt references never enter the context", func(t *testing.T) {
		txs := []txentity.Transaction{{Amount: 1, Date: date, Type: "expense", Category: "Food", Receipt: "secret-path"}}

		entries := BuildContext(txs, 0)
		if s := fmt.Sprintf("%+v", entries[0]); strings.Contains(s, "secret-path") {
			t.Errorf("receipt leaked into context: %s", s)
		}
	})
}
