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

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []any{"id", "amount", "description", "date", "user_id", "category_id", "created_at"}

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

func ownedBy(userID, id uuid.UUID) bob.Expression {
	return psql.And(
		psql.Quote("id").EQ(psql.Arg(id)),
		psql.Quote("user_id").EQ(psql.Arg(userID)),
	)
}

// FindByID retrieves a transaction owned by userID.
func (t *TransactionsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote("transactions")),
		sm.Where(ownedBy(userID, id)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, classify(err)
	}
	return normalizeTransaction(row), nil
}

// Insert creates a new transaction. A zero Date leaves the column default.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	columns := []string{"amount", "description", "user_id", "category_id"}
	values := []bob.Expression{
		psql.Arg(create.Amount),
		psql.Arg(create.Description),
		psql.Arg(create.UserID),
		psql.Arg(create.CategoryID),
	}
	if !create.Date.IsZero() {
		columns = append(columns, "date")
		values = append(values, psql.Arg(create.Date.UTC()))
	}

	q := psql.Insert(
		im.Into(psql.Quote("transactions"), columns...),
		im.Values(values...),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, classify(err)
	}
	return normalizeTransaction(row), nil
}

// List returns the user's transactions matching the filter, newest first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	where := []bob.Expression{psql.Quote("user_id").EQ(psql.Arg(filter.UserID))}
	if filter.CategoryID != nil {
		where = append(where, psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID)))
	}
	if filter.From != nil {
		where = append(where, psql.Quote("date").GTE(psql.Arg(filter.From.UTC())))
	}
	if filter.Through != nil {
		where = append(where, psql.Quote("date").LTE(psql.Arg(filter.Through.UTC())))
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote("transactions")),
		sm.Where(psql.And(where...)),
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, classify(err)
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = normalizeTransaction(row)
	}
	return result, nil
}

// Update changes a transaction owned by userID.
func (t *TransactionsTable) Update(ctx context.Context, userID, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(psql.Quote("transactions")),
	}
	if categoryID, ok := update.CategoryID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category_id").ToArg(categoryID))
	}
	if amount, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(amount))
	}
	if description, ok := update.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol("description").ToArg(description))
	}
	if date, ok := update.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol("date").ToArg(date.UTC()))
	}
	if len(queryMods) == 1 {
		return t.FindByID(ctx, userID, id)
	}

	queryMods = append(queryMods,
		um.Where(ownedBy(userID, id)),
		um.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, classify(err)
	}
	return normalizeTransaction(row), nil
}

// Delete removes a transaction owned by userID.
func (t *TransactionsTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(psql.Quote("transactions")),
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
