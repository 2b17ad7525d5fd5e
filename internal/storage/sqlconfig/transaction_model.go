package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. Its direction comes only from
// the type of its category.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	Amount      decimal.Decimal `db:"amount"`
	Description *string         `db:"description"`
	Date        time.Time       `db:"date"`
	UserID      uuid.UUID       `db:"user_id"`
	CategoryID  uuid.UUID       `db:"category_id"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description *string
	Date        time.Time // defaults to now if zero
}

// TransactionUpdate carries the fields to change. Unset fields are left as is.
type TransactionUpdate struct {
	CategoryID  omit.Val[uuid.UUID]
	Amount      omit.Val[decimal.Decimal]
	Description omit.Val[string]
	Date        omit.Val[time.Time]
}

// TransactionFilter specifies filters for listing a user's transactions.
// From and Through are both inclusive.
type TransactionFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	From       *time.Time
	Through    *time.Time
	Limit      int
	Offset     int
}

// ITransactionTable defines the interface for transaction storage operations.
// Every method is scoped to the owning user.
//
//go:generate mockery --name ITransactionTable --output . --outpkg sqlconfig --filename mock_ITransactionTable.go --with-expecter
type ITransactionTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

func normalizeTransaction(row Transaction) *Transaction {
	row.Date = row.Date.UTC()
	row.CreatedAt = row.CreatedAt.UTC()
	return &row
}
