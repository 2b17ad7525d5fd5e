package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Storage is the read side of the database plus the entry point for
// transactional writes. Table fields run against the connection pool.
type Storage struct {
	DB           *sql.DB
	Users        sqlconfig.IUserTable
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
	Goals        sqlconfig.IGoalTable
	Analytics    sqlconfig.IAnalyticsTable

	bobDB bob.DB
}

func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	return Open(ctx, env.PostgresURL())
}

// Open connects to databaseURL with the pgx driver and verifies the
// connection.
func Open(ctx context.Context, databaseURL string) (*Storage, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return New(db), nil
}

// New wraps an already opened pool.
func New(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           db,
		Users:        sqlconfig.NewUsersTable(bobDB),
		Categories:   sqlconfig.NewCategoriesTable(bobDB),
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Goals:        sqlconfig.NewGoalsTable(bobDB),
		Analytics:    sqlconfig.NewAnalyticsTable(bobDB),
		bobDB:        bobDB,
	}
}

// Write begins a database transaction and returns a Writer bound to it. The
// caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
