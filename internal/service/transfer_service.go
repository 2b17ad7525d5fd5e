package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/csvio"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ImportResult reports how many rows of an import file were stored and how
// many were rejected.
type ImportResult struct {
	Message string
	Count   int
	Skipped int
}

// TransferService moves transactions in and out of CSV files.
type TransferService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

func NewTransferService(store *storage.Storage, processor ActionProcessor) *TransferService {
	return &TransferService{storage: store, processor: processor}
}

// ExportCSV writes every transaction of the user to w, newest first.
func (s *TransferService) ExportCSV(ctx context.Context, userID uuid.UUID, w io.Writer) error {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{UserID: userID})
	if err != nil {
		return storageError("TransferService.ExportCSV", err)
	}

	records := make([]csvio.Record, len(rows))
	for i, row := range rows {
		records[i] = csvio.Record{
			ID:          row.ID,
			Amount:      row.Amount,
			Description: row.Description,
			Date:        row.Date,
			CategoryID:  row.CategoryID,
			UserID:      row.UserID,
		}
	}
	logging.AddData(ctx, "exportedCount", len(records))

	if err := csvio.WriteTransactions(w, records); err != nil {
		return fmt.Errorf("TransferService.ExportCSV: %w", err)
	}
	return nil
}

// ImportCSV stores every acceptable row of r in one database transaction.
// Rows that do not parse or reference a category the user cannot see are
// skipped. A file with nothing importable is rejected.
func (s *TransferService) ImportCSV(ctx context.Context, userID uuid.UUID, r io.Reader) (ImportResult, error) {
	rows, skipped, err := csvio.ReadTransactions(r)
	if errors.Is(err, csvio.ErrMissingColumn) {
		return ImportResult{}, fmt.Errorf("TransferService.ImportCSV: %w: %w", ErrInvalidArgument, err)
	}
	if err != nil {
		return ImportResult{}, fmt.Errorf("TransferService.ImportCSV: %w: malformed csv: %w", ErrInvalidArgument, err)
	}
	if len(rows) == 0 {
		return ImportResult{}, invalid("no valid transactions found in file")
	}

	creates := make([]sqlconfig.TransactionCreate, len(rows))
	for i, row := range rows {
		creates[i] = sqlconfig.TransactionCreate{
			UserID:      userID,
			CategoryID:  row.CategoryID,
			Amount:      row.Amount,
			Description: row.Description,
			Date:        row.Date,
		}
	}

	action := &actions.ImportTransactions{UserID: userID, Rows: creates}
	if err := s.processor.Process(ctx, action); err != nil {
		return ImportResult{}, storageError("TransferService.ImportCSV", err)
	}

	skipped += action.Skipped
	logging.AddData(ctx, "importedCount", action.Imported)
	logging.AddData(ctx, "skippedCount", skipped)
	if action.Imported == 0 {
		return ImportResult{}, invalid("no valid transactions found in file")
	}

	return ImportResult{
		Message: fmt.Sprintf("Successfully imported %d transactions", action.Imported),
		Count:   action.Imported,
		Skipped: skipped,
	}, nil
}
