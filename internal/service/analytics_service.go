package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-tracker/internal/timeutil"
)

// Balance is the all-time position of a user.
type Balance struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryExpense is the total spent in one expense category.
type CategoryExpense struct {
	Category string
	Total    decimal.Decimal
}

// MonthlyStats summarises one calendar month. ByCategory holds expense
// categories only and is never nil.
type MonthlyStats struct {
	Month      string
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Balance    decimal.Decimal
	ByCategory map[string]decimal.Decimal
}

// AnalyticsService answers aggregate questions about a user's transactions.
// Every aggregate is a single grouped query; nothing here loads individual
// transactions.
type AnalyticsService struct {
	storage *storage.Storage
}

func NewAnalyticsService(store *storage.Storage) *AnalyticsService {
	return &AnalyticsService{storage: store}
}

// GetBalance returns total income, total expense and their difference over
// all of the user's transactions.
func (s *AnalyticsService) GetBalance(ctx context.Context, userID uuid.UUID) (Balance, error) {
	stopTimer := logging.StartTiming(ctx, "sumByTypeMs")
	totals, err := s.storage.Analytics.SumByType(ctx, &sqlconfig.AggregateFilter{UserID: userID})
	stopTimer()
	if err != nil {
		return Balance{}, storageError("AnalyticsService.GetBalance", err)
	}

	var result Balance
	for _, total := range totals {
		switch total.Type {
		case sqlconfig.CategoryTypeIncome:
			result.TotalIncome = result.TotalIncome.Add(total.Total)
		case sqlconfig.CategoryTypeExpense:
			result.TotalExpense = result.TotalExpense.Add(total.Total)
		}
	}
	result.Balance = result.TotalIncome.Sub(result.TotalExpense)
	return result, nil
}

// GetExpensesByCategory returns the expense total per category name, sorted
// by name. Both bounds are optional and inclusive. Categories without
// matching transactions are omitted.
func (s *AnalyticsService) GetExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]CategoryExpense, error) {
	if start != nil && end != nil && start.After(*end) {
		return []CategoryExpense{}, nil
	}

	expense := sqlconfig.CategoryTypeExpense
	filter := &sqlconfig.AggregateFilter{
		UserID:       userID,
		CategoryType: &expense,
		From:         start,
		Through:      end,
	}

	stopTimer := logging.StartTiming(ctx, "sumByCategoryMs")
	totals, err := s.storage.Analytics.SumByCategory(ctx, filter)
	stopTimer()
	if err != nil {
		return nil, storageError("AnalyticsService.GetExpensesByCategory", err)
	}

	result := make([]CategoryExpense, 0, len(totals))
	for _, total := range totals {
		if total.Type != sqlconfig.CategoryTypeExpense {
			continue
		}
		result = append(result, CategoryExpense{Category: total.Name, Total: total.Total})
	}
	logging.AddData(ctx, "categoryCount", len(result))
	return result, nil
}

// GetMonthlyStats summarises the half-open UTC window from the first of the
// month to the first of the following month.
func (s *AnalyticsService) GetMonthlyStats(ctx context.Context, userID uuid.UUID, year, month int) (MonthlyStats, error) {
	if month < 1 || month > 12 {
		return MonthlyStats{}, invalid("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return MonthlyStats{}, invalid("year must be between 1 and 9999, got %d", year)
	}

	start, end := timeutil.MonthWindow(year, time.Month(month))
	filter := &sqlconfig.AggregateFilter{
		UserID: userID,
		From:   &start,
		Before: &end,
	}

	stopTimer := logging.StartTiming(ctx, "sumByCategoryMs")
	totals, err := s.storage.Analytics.SumByCategory(ctx, filter)
	stopTimer()
	if err != nil {
		return MonthlyStats{}, storageError("AnalyticsService.GetMonthlyStats", err)
	}

	stats := MonthlyStats{
		Month:      fmt.Sprintf("%04d-%02d", year, month),
		ByCategory: make(map[string]decimal.Decimal),
	}
	for _, total := range totals {
		switch total.Type {
		case sqlconfig.CategoryTypeIncome:
			stats.Income = stats.Income.Add(total.Total)
		case sqlconfig.CategoryTypeExpense:
			stats.Expense = stats.Expense.Add(total.Total)
			stats.ByCategory[total.Name] = stats.ByCategory[total.Name].Add(total.Total)
		}
	}
	stats.Balance = stats.Income.Sub(stats.Expense)
	return stats, nil
}
