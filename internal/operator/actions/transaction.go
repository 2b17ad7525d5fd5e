package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateTransaction inserts a transaction after confirming its category is
// visible to the owner.
type CreateTransaction struct {
	Create sqlconfig.TransactionCreate

	Created *sqlconfig.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := writer.Categories.FindVisible(ctx, t.Create.UserID, t.Create.CategoryID); err != nil {
		return err
	}

	created, err := writer.Transactions.Insert(ctx, &t.Create)
	if err != nil {
		return err
	}
	t.Created = created
	return nil
}

type UpdateTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Update        sqlconfig.TransactionUpdate

	Updated *sqlconfig.Transaction
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if categoryID, ok := t.Update.CategoryID.Get(); ok {
		if _, err := writer.Categories.FindVisible(ctx, t.UserID, categoryID); err != nil {
			return err
		}
	}

	updated, err := writer.Transactions.Update(ctx, t.UserID, t.TransactionID, &t.Update)
	if err != nil {
		return err
	}
	t.Updated = updated
	return nil
}

type DeleteTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, t.UserID, t.TransactionID)
}
