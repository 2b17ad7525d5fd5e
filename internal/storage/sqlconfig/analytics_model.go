package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AggregateFilter narrows the transactions that feed an aggregate. Nil
// fields are not applied. From and Through are inclusive, Before is
// exclusive.
type AggregateFilter struct {
	UserID       uuid.UUID
	CategoryType *CategoryType
	From         *time.Time
	Through      *time.Time
	Before       *time.Time
}

// TypeTotal is the sum of all matching amounts for one category type.
type TypeTotal struct {
	Type  CategoryType    `db:"type"`
	Total decimal.Decimal `db:"total"`
}

// CategoryTotal is the sum of all matching amounts for one category name.
type CategoryTotal struct {
	Name  string          `db:"name"`
	Type  CategoryType    `db:"type"`
	Total decimal.Decimal `db:"total"`
}

// IAnalyticsTable computes grouped sums over a user's transactions. Each
// method runs a single statement, so its result is one consistent snapshot.
// Only transactions owned by the user whose category is owned by the user
// or shared are counted.
//
//go:generate mockery --name IAnalyticsTable --output . --outpkg sqlconfig --filename mock_IAnalyticsTable.go --with-expecter
type IAnalyticsTable interface {
	SumByType(ctx context.Context, filter *AggregateFilter) ([]TypeTotal, error)
	SumByCategory(ctx context.Context, filter *AggregateFilter) ([]CategoryTotal, error)
}
