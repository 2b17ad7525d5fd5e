package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ImportTransactions inserts a batch of rows for one user. Rows whose
// category is not visible to the user are skipped and counted.
type ImportTransactions struct {
	UserID uuid.UUID
	Rows   []sqlconfig.TransactionCreate

	Imported int
	Skipped  int
}

func (t *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	visible := make(map[uuid.UUID]bool)

	for i := range t.Rows {
		row := t.Rows[i]
		row.UserID = t.UserID

		ok, seen := visible[row.CategoryID]
		if !seen {
			_, err := writer.Categories.FindVisible(ctx, t.UserID, row.CategoryID)
			switch {
			case err == nil:
				ok = true
			case errors.Is(err, sqlconfig.ErrNotFound):
				ok = false
			default:
				return err
			}
			visible[row.CategoryID] = ok
		}
		if !ok {
			t.Skipped++
			continue
		}

		if _, err := writer.Transactions.Insert(ctx, &row); err != nil {
			return err
		}
		t.Imported++
	}
	return nil
}
