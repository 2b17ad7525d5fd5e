package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Committer finishes a database transaction.
type Committer interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Tables groups the writable tables bound to one executor.
type Tables struct {
	Users        sqlconfig.IUserTable
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
	Goals        sqlconfig.IGoalTable
}

// Writer exposes the writable tables inside a single database transaction.
type Writer struct {
	Tables
	tx Committer
}

func NewWriter(tx bob.Tx) *Writer {
	exec := &tx
	return NewWriterWith(exec, Tables{
		Users:        sqlconfig.NewUsersTable(exec),
		Categories:   sqlconfig.NewCategoriesTable(exec),
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Goals:        sqlconfig.NewGoalsTable(exec),
	})
}

// NewWriterWith assembles a Writer from tables that are already bound to tx.
func NewWriterWith(tx Committer, tables Tables) *Writer {
	return &Writer{Tables: tables, tx: tx}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
