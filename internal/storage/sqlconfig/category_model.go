package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. A nil UserID marks a shared
// category that every user can see.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	UserID    *uuid.UUID
	IsDefault bool
	CreatedAt time.Time
}

// CategoryCreate is the input for creating a new user-owned category.
type CategoryCreate struct {
	Name   string
	Type   CategoryType
	UserID uuid.UUID
}

// CategoryUpdate carries the fields to change. Unset fields are left as is.
type CategoryUpdate struct {
	Name omit.Val[string]
	Type omit.Val[CategoryType]
}

// CategoryFilter specifies filters for listing the categories visible to a user.
type CategoryFilter struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

// ICategoryTable defines the interface for category storage operations.
// Every method is scoped to a user: reads see the user's own and shared
// categories, writes only touch the user's own.
//
//go:generate mockery --name ICategoryTable --output . --outpkg sqlconfig --filename mock_ICategoryTable.go --with-expecter
type ICategoryTable interface {
	FindVisible(ctx context.Context, userID, id uuid.UUID) (*Category, error)
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *CategoryUpdate) (*Category, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type categoryRow struct {
	ID        uuid.UUID     `db:"id"`
	Name      string        `db:"name"`
	Type      CategoryType  `db:"type"`
	UserID    uuid.NullUUID `db:"user_id"`
	IsDefault bool          `db:"is_default"`
	CreatedAt time.Time     `db:"created_at"`
}

func rowToCategory(row categoryRow) *Category {
	category := &Category{
		ID:        row.ID,
		Name:      row.Name,
		Type:      row.Type,
		IsDefault: row.IsDefault,
		CreatedAt: row.CreatedAt.UTC(),
	}
	if row.UserID.Valid {
		owner := row.UserID.UUID
		category.UserID = &owner
	}
	return category
}
