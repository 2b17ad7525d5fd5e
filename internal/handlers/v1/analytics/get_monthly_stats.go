package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// GetMonthlyStatsInput is the Huma input for the monthly stats endpoint.
// Range checks happen in the service so out-of-range values report 400.
type GetMonthlyStatsInput struct {
	Year  int `path:"year" doc:"Calendar year"`
	Month int `path:"month" doc:"Calendar month, 1 to 12"`
}

// GetMonthlyStatsOutput is the Huma output for the monthly stats endpoint.
type GetMonthlyStatsOutput struct {
	Body MonthlyStats
}

type monthlyStatsGetter interface {
	GetMonthlyStats(ctx context.Context, userID uuid.UUID, year, month int) (service.MonthlyStats, error)
}

// GetMonthlyStatsHandler handles GET /v1/analytics/monthly/{year}/{month}.
type GetMonthlyStatsHandler struct {
	AnalyticsService monthlyStatsGetter
}

func NewGetMonthlyStatsHandler(svc monthlyStatsGetter) *GetMonthlyStatsHandler {
	return &GetMonthlyStatsHandler{AnalyticsService: svc}
}

func (h *GetMonthlyStatsHandler) Register(api huma.API) {
	huma.Register(api, operation(
		"get-monthly-stats",
		http.MethodGet,
		"/v1/analytics/monthly/{year}/{month}",
		"Get monthly stats",
		"Returns income, expense, balance and expenses per category for one UTC calendar month.",
	), h.handle)
}

func (h *GetMonthlyStatsHandler) handle(ctx context.Context, input *GetMonthlyStatsInput) (*GetMonthlyStatsOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := h.AnalyticsService.GetMonthlyStats(ctx, userID, input.Year, input.Month)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Month", "failed to compute monthly stats")
	}

	byCategory := make(map[string]float64, len(stats.ByCategory))
	for name, total := range stats.ByCategory {
		byCategory[name] = total.InexactFloat64()
	}
	return &GetMonthlyStatsOutput{Body: MonthlyStats{
		Month:      stats.Month,
		Income:     stats.Income.InexactFloat64(),
		Expense:    stats.Expense.InexactFloat64(),
		Balance:    stats.Balance.InexactFloat64(),
		ByCategory: byCategory,
	}}, nil
}
