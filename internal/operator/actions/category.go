package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateCategory struct {
	Create sqlconfig.CategoryCreate

	Created *sqlconfig.Category
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}
	c.Created = category
	return nil
}

type UpdateCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Update     sqlconfig.CategoryUpdate

	Updated *sqlconfig.Category
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.Update(ctx, u.UserID, u.CategoryID, &u.Update)
	if err != nil {
		return err
	}
	u.Updated = category
	return nil
}

type DeleteCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Categories.Delete(ctx, d.UserID, d.CategoryID)
}
