package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IGoalTable = (*GoalsTable)(nil)

var goalColumns = []any{"id", "name", "target_amount", "current_amount", "deadline", "user_id", "created_at"}

type GoalsTable struct {
	exec bob.Executor
}

func NewGoalsTable(exec bob.Executor) *GoalsTable {
	return &GoalsTable{exec: exec}
}

func (t *GoalsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Goal, error) {
	q := psql.Select(
		sm.Columns(goalColumns...),
		sm.From(psql.Quote("goals")),
		sm.Where(ownedBy(userID, id)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Goal]())
	if err != nil {
		return nil, classify(err)
	}
	return normalizeGoal(row), nil
}

func (t *GoalsTable) Insert(ctx context.Context, create *GoalCreate) (*Goal, error) {
	q := psql.Insert(
		im.Into(psql.Quote("goals"), "name", "target_amount", "current_amount", "deadline", "user_id"),
		im.Values(
			psql.Arg(create.Name),
			psql.Arg(create.TargetAmount),
			psql.Arg(create.CurrentAmount),
			psql.Arg(create.Deadline),
			psql.Arg(create.UserID),
		),
		im.Returning(goalColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Goal]())
	if err != nil {
		return nil, classify(err)
	}
	return normalizeGoal(row), nil
}

// List returns the user's goals, oldest first.
func (t *GoalsTable) List(ctx context.Context, filter *GoalFilter) ([]*Goal, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(goalColumns...),
		sm.From(psql.Quote("goals")),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Goal]())
	if err != nil {
		return nil, classify(err)
	}
	result := make([]*Goal, len(rows))
	for i, row := range rows {
		result[i] = normalizeGoal(row)
	}
	return result, nil
}

func (t *GoalsTable) Update(ctx context.Context, userID, id uuid.UUID, update *GoalUpdate) (*Goal, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote("goals")),
	}
	if name, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(name))
	}
	if target, ok := update.TargetAmount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("target_amount").ToArg(target))
	}
	if current, ok := update.CurrentAmount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("current_amount").ToArg(current))
	}
	if deadline, ok := update.Deadline.Get(); ok {
		queryMods = append(queryMods, um.SetCol("deadline").ToArg(deadline.UTC()))
	}
	if len(queryMods) == 1 {
		return t.FindByID(ctx, userID, id)
	}

	queryMods = append(queryMods,
		um.Where(ownedBy(userID, id)),
		um.Returning(goalColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Goal]())
	if err != nil {
		return nil, classify(err)
	}
	return normalizeGoal(row), nil
}

func (t *GoalsTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(psql.Quote("goals")),
		dm.Where(ownedBy(userID, id)),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
