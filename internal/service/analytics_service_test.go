package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func newAnalyticsTestService(t *testing.T) (*AnalyticsService, *sqlconfig.MockIAnalyticsTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockIAnalyticsTable(t)
	store := &storage.Storage{Analytics: mockTable}
	return NewAnalyticsService(store), mockTable
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// -- GetBalance --

func TestGetBalance_Scenario(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)
	userID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().SumByType(mock.Anything, &sqlconfig.AggregateFilter{UserID: userID}).
		Return([]sqlconfig.TypeTotal{
			{Type: sqlconfig.CategoryTypeExpense, Total: dec("10000")},
			{Type: sqlconfig.CategoryTypeIncome, Total: dec("100000")},
		}, nil)

	balance, err := svc.GetBalance(context.Background(), userID)
	require.NoError(t, err)

	assert.True(t, balance.TotalIncome.Equal(dec("100000")), spew.Sdump(balance))
	assert.True(t, balance.TotalExpense.Equal(dec("10000")), spew.Sdump(balance))
	assert.True(t, balance.Balance.Equal(dec("90000")), spew.Sdump(balance))
}

func TestGetBalance_ZeroState(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)

	mockTable.EXPECT().SumByType(mock.Anything, mock.Anything).Return([]sqlconfig.TypeTotal{}, nil)

	balance, err := svc.GetBalance(context.Background(), uuid.Must(uuid.NewV4()))
	require.NoError(t, err)
	assert.True(t, balance.TotalIncome.IsZero())
	assert.True(t, balance.TotalExpense.IsZero())
	assert.True(t, balance.Balance.IsZero())
}

func TestGetBalance_Identity(t *testing.T) {
	cases := []struct {
		income, expense string
	}{
		{"0.01", "0.02"},
		{"1234.56", "0"},
		{"0", "99.99"},
		{"100000.10", "100000.10"},
		{"0.10", "0.20"},
	}
	for _, c := range cases {
		svc, mockTable := newAnalyticsTestService(t)
		var totals []sqlconfig.TypeTotal
		if !dec(c.income).IsZero() {
			totals = append(totals, sqlconfig.TypeTotal{Type: sqlconfig.CategoryTypeIncome, Total: dec(c.income)})
		}
		if !dec(c.expense).IsZero() {
			totals = append(totals, sqlconfig.TypeTotal{Type: sqlconfig.CategoryTypeExpense, Total: dec(c.expense)})
		}
		mockTable.EXPECT().SumByType(mock.Anything, mock.Anything).Return(totals, nil)

		balance, err := svc.GetBalance(context.Background(), uuid.Must(uuid.NewV4()))
		require.NoError(t, err)
		assert.True(t, balance.Balance.Equal(balance.TotalIncome.Sub(balance.TotalExpense)), spew.Sdump(c, balance))
		assert.True(t, balance.Balance.Equal(dec(c.income).Sub(dec(c.expense))), spew.Sdump(c, balance))
	}
}

func TestGetBalance_StorageError(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)
	mockTable.EXPECT().SumByType(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.GetBalance(context.Background(), uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "AnalyticsService.GetBalance")
}

// -- GetExpensesByCategory --

func TestGetExpensesByCategory_Scenario(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)
	userID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().SumByCategory(mock.Anything, mock.MatchedBy(func(f *sqlconfig.AggregateFilter) bool {
		return f.UserID == userID &&
			f.CategoryType != nil && *f.CategoryType == sqlconfig.CategoryTypeExpense &&
			f.From == nil && f.Through == nil && f.Before == nil
	})).Return([]sqlconfig.CategoryTotal{
		{Name: "Entertainment", Type: sqlconfig.CategoryTypeExpense, Total: dec("2000")},
		{Name: "Groceries", Type: sqlconfig.CategoryTypeExpense, Total: dec("5000")},
		{Name: "Transport", Type: sqlconfig.CategoryTypeExpense, Total: dec("3000")},
	}, nil)

	result, err := svc.GetExpensesByCategory(context.Background(), userID, nil, nil)
	require.NoError(t, err)
	require.Len(t, result, 3, spew.Sdump(result))

	sum := decimal.Zero
	for _, entry := range result {
		sum = sum.Add(entry.Total)
	}
	assert.True(t, sum.Equal(dec("10000")))
	assert.Equal(t, []string{"Entertainment", "Groceries", "Transport"},
		[]string{result[0].Category, result[1].Category, result[2].Category})
}

func TestGetExpensesByCategory_NeverIncludesIncome(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)

	mockTable.EXPECT().SumByCategory(mock.Anything, mock.Anything).Return([]sqlconfig.CategoryTotal{
		{Name: "Groceries", Type: sqlconfig.CategoryTypeExpense, Total: dec("50")},
		{Name: "Salary", Type: sqlconfig.CategoryTypeIncome, Total: dec("1000")},
	}, nil)

	result, err := svc.GetExpensesByCategory(context.Background(), uuid.Must(uuid.NewV4()), nil, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Groceries", result[0].Category)
}

func TestGetExpensesByCategory_PassesDateWindow(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	mockTable.EXPECT().SumByCategory(mock.Anything, mock.MatchedBy(func(f *sqlconfig.AggregateFilter) bool {
		return f.From != nil && f.From.Equal(start) &&
			f.Through != nil && f.Through.Equal(end) &&
			f.Before == nil
	})).Return([]sqlconfig.CategoryTotal{
		{Name: "Groceries", Type: sqlconfig.CategoryTypeExpense, Total: dec("42.10")},
	}, nil)

	result, err := svc.GetExpensesByCategory(context.Background(), uuid.Must(uuid.NewV4()), &start, &end)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].Total.Equal(dec("42.10")))
}

func TestGetExpensesByCategory_StartAfterEnd(t *testing.T) {
	svc, _ := newAnalyticsTestService(t)
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	result, err := svc.GetExpensesByCategory(context.Background(), uuid.Must(uuid.NewV4()), &start, &end)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetExpensesByCategory_ZeroState(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)
	mockTable.EXPECT().SumByCategory(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := svc.GetExpensesByCategory(context.Background(), uuid.Must(uuid.NewV4()), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetExpensesByCategory_StorageError(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)
	mockTable.EXPECT().SumByCategory(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := svc.GetExpensesByCategory(context.Background(), uuid.Must(uuid.NewV4()), nil, nil)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// -- GetMonthlyStats --

func TestGetMonthlyStats_Window(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		month      int
		start, end time.Time
		label      string
	}{
		{"mid year", 2024, 3, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "2024-03"},
		{"december rollover", 2023, 12, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2023-12"},
		{"january", 2025, 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "2025-01"},
		{"small year", 987, 7, time.Date(987, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(987, 8, 1, 0, 0, 0, 0, time.UTC), "0987-07"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockTable := newAnalyticsTestService(t)
			mockTable.EXPECT().SumByCategory(mock.Anything, mock.MatchedBy(func(f *sqlconfig.AggregateFilter) bool {
				return f.CategoryType == nil &&
					f.From != nil && f.From.Equal(tt.start) &&
					f.Before != nil && f.Before.Equal(tt.end) &&
					f.Through == nil
			})).Return(nil, nil)

			stats, err := svc.GetMonthlyStats(context.Background(), uuid.Must(uuid.NewV4()), tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.label, stats.Month)
		})
	}
}

func TestGetMonthlyStats_Totals(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)

	mockTable.EXPECT().SumByCategory(mock.Anything, mock.Anything).Return([]sqlconfig.CategoryTotal{
		{Name: "Groceries", Type: sqlconfig.CategoryTypeExpense, Total: dec("120.40")},
		{Name: "Other", Type: sqlconfig.CategoryTypeExpense, Total: dec("10")},
		{Name: "Other", Type: sqlconfig.CategoryTypeIncome, Total: dec("15")},
		{Name: "Salary", Type: sqlconfig.CategoryTypeIncome, Total: dec("3000")},
	}, nil)

	stats, err := svc.GetMonthlyStats(context.Background(), uuid.Must(uuid.NewV4()), 2024, 5)
	require.NoError(t, err)

	assert.True(t, stats.Income.Equal(dec("3015")), spew.Sdump(stats))
	assert.True(t, stats.Expense.Equal(dec("130.40")), spew.Sdump(stats))
	assert.True(t, stats.Balance.Equal(dec("2884.60")), spew.Sdump(stats))
	require.Len(t, stats.ByCategory, 2)
	assert.True(t, stats.ByCategory["Groceries"].Equal(dec("120.40")))
	assert.True(t, stats.ByCategory["Other"].Equal(dec("10")), "income category with the same name is not counted")
	assert.NotContains(t, stats.ByCategory, "Salary")
}

func TestGetMonthlyStats_ZeroState(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)
	mockTable.EXPECT().SumByCategory(mock.Anything, mock.Anything).Return([]sqlconfig.CategoryTotal{}, nil)

	stats, err := svc.GetMonthlyStats(context.Background(), uuid.Must(uuid.NewV4()), 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, "2024-02", stats.Month)
	assert.True(t, stats.Income.IsZero())
	assert.True(t, stats.Expense.IsZero())
	assert.True(t, stats.Balance.IsZero())
	assert.NotNil(t, stats.ByCategory)
	assert.Empty(t, stats.ByCategory)
}

func TestGetMonthlyStats_InvalidInput(t *testing.T) {
	svc, _ := newAnalyticsTestService(t)
	userID := uuid.Must(uuid.NewV4())

	for _, in := range []struct{ year, month int }{
		{2024, 0}, {2024, 13}, {2024, -1}, {0, 5}, {10000, 5},
	} {
		_, err := svc.GetMonthlyStats(context.Background(), userID, in.year, in.month)
		assert.ErrorIs(t, err, ErrInvalidArgument, "year=%d month=%d", in.year, in.month)
	}
}

func TestGetMonthlyStats_StorageError(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)
	mockTable.EXPECT().SumByCategory(mock.Anything, mock.Anything).Return(nil, errors.New("broken pipe"))

	_, err := svc.GetMonthlyStats(context.Background(), uuid.Must(uuid.NewV4()), 2024, 6)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestAnalytics_IsolationIsPassedToStorage(t *testing.T) {
	svc, mockTable := newAnalyticsTestService(t)
	userA := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().SumByType(mock.Anything, mock.MatchedBy(func(f *sqlconfig.AggregateFilter) bool {
		return f.UserID == userA
	})).Return(nil, nil)
	mockTable.EXPECT().SumByCategory(mock.Anything, mock.MatchedBy(func(f *sqlconfig.AggregateFilter) bool {
		return f.UserID == userA
	})).Return(nil, nil).Twice()

	ctx := context.Background()
	_, err := svc.GetBalance(ctx, userA)
	require.NoError(t, err)
	_, err = svc.GetExpensesByCategory(ctx, userA, nil, nil)
	require.NoError(t, err)
	_, err = svc.GetMonthlyStats(ctx, userA, 2024, 1)
	require.NoError(t, err)
}
