package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type nopCommitter struct{}

func (nopCommitter) Commit(context.Context) error   { return nil }
func (nopCommitter) Rollback(context.Context) error { return nil }

// inlineProcessor performs actions synchronously against a writer whose
// tables are the same mocks the reads use.
type inlineProcessor struct {
	writer *storage.Writer
	calls  []actions.IAction
}

func (p *inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	p.calls = append(p.calls, action)
	return action.Perform(ctx, p.writer)
}

type testEnv struct {
	users        *sqlconfig.MockIUserTable
	categories   *sqlconfig.MockICategoryTable
	transactions *sqlconfig.MockITransactionTable
	goals        *sqlconfig.MockIGoalTable
	store        *storage.Storage
	processor    *inlineProcessor
	tokens       *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:        sqlconfig.NewMockIUserTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		goals:        sqlconfig.NewMockIGoalTable(t),
		tokens:       auth.NewTokenManager("test-secret", time.Hour),
	}
	env.store = &storage.Storage{
		Users:        env.users,
		Categories:   env.categories,
		Transactions: env.transactions,
		Goals:        env.goals,
	}
	env.processor = &inlineProcessor{writer: storage.NewWriterWith(nopCommitter{}, storage.Tables{
		Users:        env.users,
		Categories:   env.categories,
		Transactions: env.transactions,
		Goals:        env.goals,
	})}
	return env
}

func newUUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}
