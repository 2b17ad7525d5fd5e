package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IAnalyticsTable = (*AnalyticsTable)(nil)

// AnalyticsTable runs the aggregate queries over transactions joined to
// their categories. It never writes.
type AnalyticsTable struct {
	exec bob.Executor
}

func NewAnalyticsTable(exec bob.Executor) *AnalyticsTable {
	return &AnalyticsTable{exec: exec}
}

// SumByType returns one row per category type that has matching
// transactions.
func (t *AnalyticsTable) SumByType(ctx context.Context, filter *AggregateFilter) ([]TypeTotal, error) {
	q := psql.Select(aggregateMods(filter,
		sm.Columns("c.type AS type", "sum(t.amount) AS total"),
		sm.GroupBy(psql.Quote("c", "type")),
		sm.OrderBy(psql.Quote("c", "type")).Asc(),
	)...)

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[TypeTotal]())
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// SumByCategory returns one row per category name and type that has
// matching transactions, ordered by name.
func (t *AnalyticsTable) SumByCategory(ctx context.Context, filter *AggregateFilter) ([]CategoryTotal, error) {
	q := psql.Select(aggregateMods(filter,
		sm.Columns("c.name AS name", "c.type AS type", "sum(t.amount) AS total"),
		sm.GroupBy(psql.Quote("c", "name")),
		sm.GroupBy(psql.Quote("c", "type")),
		sm.OrderBy(psql.Quote("c", "name")).Asc(),
		sm.OrderBy(psql.Quote("c", "type")).Asc(),
	)...)

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[CategoryTotal]())
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// aggregateMods builds the shared FROM, JOIN and WHERE clauses and appends
// the caller's projection and grouping.
func aggregateMods(filter *AggregateFilter, extra ...bob.Mod[*dialect.SelectQuery]) []bob.Mod[*dialect.SelectQuery] {
	where := []bob.Expression{
		psql.Quote("t", "user_id").EQ(psql.Arg(filter.UserID)),
		visibleTo("c", filter.UserID),
	}
	if filter.CategoryType != nil {
		where = append(where, psql.Quote("c", "type").EQ(psql.Arg(string(*filter.CategoryType))))
	}
	if filter.From != nil {
		where = append(where, psql.Quote("t", "date").GTE(psql.Arg(filter.From.UTC())))
	}
	if filter.Through != nil {
		where = append(where, psql.Quote("t", "date").LTE(psql.Arg(filter.Through.UTC())))
	}
	if filter.Before != nil {
		where = append(where, psql.Quote("t", "date").LT(psql.Arg(filter.Before.UTC())))
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.From(psql.Quote("transactions")).As("t"),
		sm.InnerJoin(psql.Quote("categories")).As("c").On(
			psql.Quote("c", "id").EQ(psql.Quote("t", "category_id")),
		),
		sm.Where(psql.And(where...)),
	}
	return append(queryMods, extra...)
}
