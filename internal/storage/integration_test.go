package storage_test

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var (
	containerOnce sync.Once
	container     *postgres.PostgresContainer
	databaseURL   string
	containerErr  error
)

func TestMain(m *testing.M) {
	code := m.Run()
	if container != nil {
		_ = testcontainers.TerminateContainer(container)
	}
	os.Exit(code)
}

// startDatabase boots one migrated Postgres container for the whole package.
func startDatabase(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Postgres integration test in -short mode")
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		container, containerErr = postgres.Run(ctx, "postgres:16-alpine",
			postgres.WithDatabase("finance"),
			postgres.WithUsername("finance"),
			postgres.WithPassword("finance"),
			postgres.BasicWaitStrategies(),
		)
		if containerErr != nil {
			return
		}
		databaseURL, containerErr = container.ConnectionString(ctx, "sslmode=disable")
		if containerErr != nil {
			return
		}
		containerErr = storage.RunMigrations(databaseURL, logrus.StandardLogger())
	})
	require.NoError(t, containerErr)
	return databaseURL
}

func newStorage(t *testing.T) *storage.Storage {
	t.Helper()
	url := startDatabase(t)

	store, err := storage.Open(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newUser(t *testing.T, store *storage.Storage) uuid.UUID {
	t.Helper()
	suffix := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:12]
	userID, err := store.Users.Insert(context.Background(), &sqlconfig.UserCreate{
		Username:     gofakeit.Username() + suffix,
		Email:        suffix + gofakeit.Email(),
		PasswordHash: "not-a-real-hash",
	})
	require.NoError(t, err)
	return userID
}

func newCategory(t *testing.T, store *storage.Storage, userID uuid.UUID, name string, categoryType sqlconfig.CategoryType) uuid.UUID {
	t.Helper()
	category, err := store.Categories.Insert(context.Background(), &sqlconfig.CategoryCreate{
		Name:   name,
		Type:   categoryType,
		UserID: userID,
	})
	require.NoError(t, err)
	return category.ID
}

func sharedCategory(t *testing.T, store *storage.Storage, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	categories, err := store.Categories.List(context.Background(), &sqlconfig.CategoryFilter{UserID: userID})
	require.NoError(t, err)
	for _, c := range categories {
		if c.UserID == nil && c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("shared category %q not seeded", name)
	return uuid.Nil
}

func addTransaction(t *testing.T, store *storage.Storage, userID, categoryID uuid.UUID, amount string, date time.Time) uuid.UUID {
	t.Helper()
	tx, err := store.Transactions.Insert(context.Background(), &sqlconfig.TransactionCreate{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
	})
	require.NoError(t, err)
	return tx.ID
}

func newService(t *testing.T, store *storage.Storage) *service.Service {
	t.Helper()
	delegator := operator.NewOperatorDelegator(store, 2)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	return service.NewService(store, delegator, auth.NewTokenManager("integration-secret", time.Minute))
}

func TestIntegration_BalanceScenario(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()
	userID := newUser(t, store)

	salary := sharedCategory(t, store, userID, "Salary")
	groceries := sharedCategory(t, store, userID, "Groceries")
	fuel := newCategory(t, store, userID, "Fuel", sqlconfig.CategoryTypeExpense)

	day := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	addTransaction(t, store, userID, salary, "100000", day)
	addTransaction(t, store, userID, groceries, "3000", day)
	addTransaction(t, store, userID, fuel, "2000", day)

	balance, err := svc.Analytics.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.True(t, balance.TotalIncome.Equal(decimal.NewFromInt(100000)))
	assert.True(t, balance.TotalExpense.Equal(decimal.NewFromInt(5000)))
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(95000)))

	expenses, err := svc.Analytics.GetExpensesByCategory(ctx, userID, nil, nil)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Fuel", expenses[0].Category)
	assert.True(t, expenses[0].Total.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, "Groceries", expenses[1].Category)
	assert.True(t, expenses[1].Total.Equal(decimal.NewFromInt(3000)))
}

func TestIntegration_ZeroState(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()
	userID := newUser(t, store)

	balance, err := svc.Analytics.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.True(t, balance.Balance.IsZero())

	expenses, err := svc.Analytics.GetExpensesByCategory(ctx, userID, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	stats, err := svc.Analytics.GetMonthlyStats(ctx, userID, 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, "2024-02", stats.Month)
	assert.NotNil(t, stats.ByCategory)
	assert.Empty(t, stats.ByCategory)
}

func TestIntegration_UserIsolation(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()
	alice, bob := newUser(t, store), newUser(t, store)

	aliceFood := newCategory(t, store, alice, "Food", sqlconfig.CategoryTypeExpense)
	bobFood := newCategory(t, store, bob, "Food", sqlconfig.CategoryTypeExpense)
	day := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	addTransaction(t, store, alice, aliceFood, "10", day)
	addTransaction(t, store, bob, bobFood, "999", day)

	// A row of alice's that points at bob's category is not visible to either.
	addTransaction(t, store, alice, bobFood, "5000", day)

	balance, err := svc.Analytics.GetBalance(ctx, alice)
	require.NoError(t, err)
	assert.True(t, balance.TotalExpense.Equal(decimal.NewFromInt(10)))

	expenses, err := svc.Analytics.GetExpensesByCategory(ctx, alice, nil, nil)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Food", expenses[0].Category)
	assert.True(t, expenses[0].Total.Equal(decimal.NewFromInt(10)))

	stats, err := svc.Analytics.GetMonthlyStats(ctx, alice, 2024, 3)
	require.NoError(t, err)
	assert.True(t, stats.Expense.Equal(decimal.NewFromInt(10)))
	assert.True(t, stats.Balance.Equal(decimal.NewFromInt(-10)))
	assert.Len(t, stats.ByCategory, 1)
	assert.True(t, stats.ByCategory["Food"].Equal(decimal.NewFromInt(10)))

	bobBalance, err := svc.Analytics.GetBalance(ctx, bob)
	require.NoError(t, err)
	assert.True(t, bobBalance.TotalExpense.Equal(decimal.NewFromInt(999)))

	bobStats, err := svc.Analytics.GetMonthlyStats(ctx, bob, 2024, 3)
	require.NoError(t, err)
	assert.True(t, bobStats.ByCategory["Food"].Equal(decimal.NewFromInt(999)))

	_, err = store.Categories.FindVisible(ctx, alice, bobFood)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)

	_, err = svc.Transactions.CreateTransaction(ctx, alice, service.TransactionInput{
		Amount:     decimal.NewFromInt(1),
		CategoryID: bobFood,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestIntegration_ColumnLimits(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()
	userID := newUser(t, store)
	food := newCategory(t, store, userID, "Food", sqlconfig.CategoryTypeExpense)

	_, err := store.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:     userID,
		CategoryID: food,
		Amount:     decimal.New(1, 12),
		Date:       time.Now(),
	})
	assert.ErrorIs(t, err, sqlconfig.ErrCheckViolation)

	_, err = store.Users.Insert(ctx, &sqlconfig.UserCreate{
		Username:     "limits" + strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:10],
		Email:        strings.Repeat("a", 250) + "@example.com",
		PasswordHash: "not-a-real-hash",
	})
	assert.ErrorIs(t, err, sqlconfig.ErrCheckViolation)

	_, err = svc.Transactions.CreateTransaction(ctx, userID, service.TransactionInput{
		Amount:     decimal.New(1, 12),
		CategoryID: food,
	})
	assert.ErrorIs(t, err, service.ErrInvalidArgument)

	file := "amount,category_id\n" +
		"1000000000000," + food.String() + "\n" +
		"10.005," + food.String() + "\n" +
		"25.10," + food.String() + "\n"
	result, err := svc.Transfer.ImportCSV(ctx, userID, strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 2, result.Skipped)

	balance, err := svc.Analytics.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.True(t, balance.TotalExpense.Equal(decimal.RequireFromString("25.10")))
}

func TestIntegration_MonthBoundaries(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()
	userID := newUser(t, store)
	food := newCategory(t, store, userID, "Food", sqlconfig.CategoryTypeExpense)
	salary := sharedCategory(t, store, userID, "Salary")

	addTransaction(t, store, userID, food, "1", time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC))
	addTransaction(t, store, userID, food, "2", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	addTransaction(t, store, userID, salary, "50", time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC))
	addTransaction(t, store, userID, food, "4", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	stats, err := svc.Analytics.GetMonthlyStats(ctx, userID, 2024, 2)
	require.NoError(t, err)
	assert.True(t, stats.Expense.Equal(decimal.NewFromInt(2)))
	assert.True(t, stats.Income.Equal(decimal.NewFromInt(50)))
	assert.True(t, stats.Balance.Equal(decimal.NewFromInt(48)))
	assert.Len(t, stats.ByCategory, 1)
	assert.True(t, stats.ByCategory["Food"].Equal(decimal.NewFromInt(2)))
}

func TestIntegration_DecemberRollover(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()
	userID := newUser(t, store)
	food := newCategory(t, store, userID, "Food", sqlconfig.CategoryTypeExpense)

	addTransaction(t, store, userID, food, "7", time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC))
	addTransaction(t, store, userID, food, "100", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	december, err := svc.Analytics.GetMonthlyStats(ctx, userID, 2024, 12)
	require.NoError(t, err)
	assert.True(t, december.Expense.Equal(decimal.NewFromInt(7)))

	january, err := svc.Analytics.GetMonthlyStats(ctx, userID, 2025, 1)
	require.NoError(t, err)
	assert.True(t, january.Expense.Equal(decimal.NewFromInt(100)))
}

func TestIntegration_ExpensesDateFilter(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()
	userID := newUser(t, store)
	food := newCategory(t, store, userID, "Food", sqlconfig.CategoryTypeExpense)

	addTransaction(t, store, userID, food, "1", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	addTransaction(t, store, userID, food, "2", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	addTransaction(t, store, userID, food, "4", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	addTransaction(t, store, userID, food, "8", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	expenses, err := svc.Analytics.GetExpensesByCategory(ctx, userID, &start, &end)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, expenses[0].Total.Equal(decimal.NewFromInt(6)))

	reversed, err := svc.Analytics.GetExpensesByCategory(ctx, userID, &end, &start)
	require.NoError(t, err)
	assert.Empty(t, reversed)
}

func TestIntegration_CategoryRules(t *testing.T) {
	store := newStorage(t)
	ctx := context.Background()
	userID := newUser(t, store)
	shared := sharedCategory(t, store, userID, "Transport")

	var update sqlconfig.CategoryUpdate
	update.Name.Set("Mine now")
	_, err := store.Categories.Update(ctx, userID, shared, &update)
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
	assert.ErrorIs(t, store.Categories.Delete(ctx, userID, shared), sqlconfig.ErrNotFound)

	own := newCategory(t, store, userID, "Hobbies", sqlconfig.CategoryTypeExpense)
	addTransaction(t, store, userID, own, "15", time.Now())
	assert.ErrorIs(t, store.Categories.Delete(ctx, userID, own), sqlconfig.ErrReferenced)
}

func TestIntegration_TransactionListing(t *testing.T) {
	store := newStorage(t)
	ctx := context.Background()
	userID := newUser(t, store)
	food := newCategory(t, store, userID, "Food", sqlconfig.CategoryTypeExpense)

	oldest := addTransaction(t, store, userID, food, "1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	middle := addTransaction(t, store, userID, food, "2", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	newest := addTransaction(t, store, userID, food, "3", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))

	all, err := store.Transactions.List(ctx, &sqlconfig.TransactionFilter{UserID: userID})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{newest, middle, oldest}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	page, err := store.Transactions.List(ctx, &sqlconfig.TransactionFilter{UserID: userID, Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, middle, page[0].ID)
}

func TestIntegration_ImportCSV(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()
	userID := newUser(t, store)
	food := newCategory(t, store, userID, "Food", sqlconfig.CategoryTypeExpense)
	stranger := newCategory(t, store, newUser(t, store), "Food", sqlconfig.CategoryTypeExpense)

	file := "amount,description,date,category_id\n" +
		"12.50,lunch,2024-06-01," + food.String() + "\n" +
		"7,coffee,2024-06-02T08:00:00Z," + food.String() + "\n" +
		"5,theirs,2024-06-02," + stranger.String() + "\n" +
		"-1,bad,2024-06-02," + food.String() + "\n"

	result, err := svc.Transfer.ImportCSV(ctx, userID, strings.NewReader(file))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 2, result.Skipped)

	balance, err := svc.Analytics.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.True(t, balance.TotalExpense.Equal(decimal.RequireFromString("19.50")))
}

func TestIntegration_Goals(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()
	userID := newUser(t, store)

	created, err := svc.Goals.CreateGoal(ctx, userID, service.GoalInput{
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	var patch service.GoalPatch
	patch.CurrentAmount.Set(decimal.NewFromInt(1200))
	updated, err := svc.Goals.UpdateGoal(ctx, userID, created.ID, patch)
	require.NoError(t, err)
	assert.True(t, updated.CurrentAmount.Equal(decimal.NewFromInt(1200)))

	_, err = svc.Goals.GetGoal(ctx, newUser(t, store), created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, svc.Goals.DeleteGoal(ctx, userID, created.ID))
	_, err = svc.Goals.GetGoal(ctx, userID, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	store := newStorage(t)
	svc := newService(t, store)
	ctx := context.Background()

	suffix := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")[:10]
	username := "user" + suffix
	email := suffix + "@example.com"

	user, err := svc.Users.Register(ctx, username, email, "12345678")
	require.NoError(t, err)

	_, err = svc.Users.Register(ctx, username, "other"+email, "12345678")
	assert.ErrorIs(t, err, service.ErrConflict)

	login, err := svc.Users.Login(ctx, username, "12345678")
	require.NoError(t, err)

	authenticated, err := svc.Users.Authenticate(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated)
}
