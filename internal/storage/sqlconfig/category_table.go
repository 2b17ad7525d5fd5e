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

var _ ICategoryTable = (*CategoriesTable)(nil)

var categoryColumns = []any{"id", "name", "type", "user_id", "is_default", "created_at"}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

// visibleTo matches categories owned by userID and shared categories.
func visibleTo(table string, userID uuid.UUID) bob.Expression {
	return psql.Or(
		psql.Quote(table, "user_id").EQ(psql.Arg(userID)),
		psql.Quote(table, "user_id").IsNull(),
	)
}

// FindVisible retrieves a category the user owns or that is shared.
func (t *CategoriesTable) FindVisible(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(psql.Quote("categories")),
		sm.Where(psql.And(
			psql.Quote("categories", "id").EQ(psql.Arg(id)),
			visibleTo("categories", userID),
		)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, classify(err)
	}
	return rowToCategory(row), nil
}

// List returns the user's own and shared categories ordered by name.
func (t *CategoriesTable) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From(psql.Quote("categories")),
		sm.Where(visibleTo("categories", filter.UserID)),
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, classify(err)
	}
	result := make([]*Category, len(rows))
	for i, row := range rows {
		result[i] = rowToCategory(row)
	}
	return result, nil
}

// Insert creates a category owned by create.UserID.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into(psql.Quote("categories"), "name", "type", "user_id", "is_default"),
		im.Values(psql.Arg(create.Name), psql.Arg(string(create.Type)), psql.Arg(create.UserID), psql.Arg(false)),
		im.Returning(categoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, classify(err)
	}
	return rowToCategory(row), nil
}

// Update changes a category owned by userID. Shared categories are never
// matched, so updating one yields ErrNotFound.
func (t *CategoriesTable) Update(ctx context.Context, userID, id uuid.UUID, update *CategoryUpdate) (*Category, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote("categories")),
	}
	if name, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(name))
	}
	if categoryType, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(string(categoryType)))
	}
	if len(queryMods) == 1 {
		return t.findOwned(ctx, userID, id)
	}

	queryMods = append(queryMods,
		um.Where(ownedBy(userID, id)),
		um.Returning(categoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, classify(err)
	}
	return rowToCategory(row), nil
}

// Delete removes a category owned by userID.
func (t *CategoriesTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(psql.Quote("categories")),
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

func (t *CategoriesTable) findOwned(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(psql.Quote("categories")),
		sm.Where(ownedBy(userID, id)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, classify(err)
	}
	return rowToCategory(row), nil
}
