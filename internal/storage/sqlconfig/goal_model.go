package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal. Goals are stored only; nothing tracks
// progress against them.
type Goal struct {
	ID            uuid.UUID       `db:"id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      *time.Time      `db:"deadline"`
	UserID        uuid.UUID       `db:"user_id"`
	CreatedAt     time.Time       `db:"created_at"`
}

type GoalCreate struct {
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
}

type GoalUpdate struct {
	Name          omit.Val[string]
	TargetAmount  omit.Val[decimal.Decimal]
	CurrentAmount omit.Val[decimal.Decimal]
	Deadline      omit.Val[time.Time]
}

type GoalFilter struct {
	UserID uuid.UUID
	Limit  int
	Offset int
}

//go:generate mockery --name IGoalTable --output . --outpkg sqlconfig --filename mock_IGoalTable.go --with-expecter
type IGoalTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Goal, error)
	Insert(ctx context.Context, create *GoalCreate) (*Goal, error)
	List(ctx context.Context, filter *GoalFilter) ([]*Goal, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *GoalUpdate) (*Goal, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

func normalizeGoal(row Goal) *Goal {
	row.CreatedAt = row.CreatedAt.UTC()
	if row.Deadline != nil {
		deadline := row.Deadline.UTC()
		row.Deadline = &deadline
	}
	return &row
}
