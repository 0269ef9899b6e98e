package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	txentity "expensepro_backend/internal/feature/transactions/domain/entity"
)

// ErrNoTransactions is returned when an export is requested over an empty ledger.
var ErrNoTransactions = errors.New("no transactions found")

// TransactionReader is the slice of ledger persistence the export needs.
type TransactionReader interface {
	// ListByUser returns the user's records ordered by date descending.
	// limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID uint, limit int) ([]txentity.Transaction, error)
}

// exportUsecase serializes the caller's full ledger to CSV or XLSX.
type exportUsecase struct {
	transactions TransactionReader
}

// NewExportUsecase creates a new exportUsecase instance.
func NewExportUsecase(transactions TransactionReader) *exportUsecase {
	return &exportUsecase{transactions: transactions}
}

var exportHeader = []string{"Date", "Type", "Category", "Amount", "Description"}

// ExportCSV renders the caller's entire ledger as CSV.
func (u *exportUsecase) ExportCSV(ctx context.Context, userID uint) ([]byte, error) {
	txs, err := u.transactions.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for i := range txs {
		tx := &txs[i]
		row := []string{
			tx.Date.Format("2006-01-02"),
			tx.Type,
			tx.Category,
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			tx.Description,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the caller's entire ledger as an Excel workbook.
func (u *exportUsecase) ExportXLSX(ctx context.Context, userID uint) ([]byte, error) {
	txs, err := u.transactions.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, ErrNoTransactions
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", "E", 18); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i := range txs {
		tx := &txs[i]
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			tx.Date.Format("2006-01-02"),
			tx.Type,
			tx.Category,
			tx.Amount,
			tx.Description,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
