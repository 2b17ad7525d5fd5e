package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// GetExpensesByCategoryInput is the Huma input for the by-category endpoint.
// Dates accept RFC 3339 or a naive date/time read as UTC.
type GetExpensesByCategoryInput struct {
	StartDate string `query:"start_date" doc:"Inclusive lower bound on transaction date"`
	EndDate   string `query:"end_date" doc:"Inclusive upper bound on transaction date"`
}

// GetExpensesByCategoryOutput is the Huma output for the by-category endpoint.
type GetExpensesByCategoryOutput struct {
	Body []CategoryExpense
}

type expensesByCategoryGetter interface {
	GetExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]service.CategoryExpense, error)
}

// GetExpensesByCategoryHandler handles GET /v1/analytics/by-category.
type GetExpensesByCategoryHandler struct {
	AnalyticsService expensesByCategoryGetter
}

func NewGetExpensesByCategoryHandler(svc expensesByCategoryGetter) *GetExpensesByCategoryHandler {
	return &GetExpensesByCategoryHandler{AnalyticsService: svc}
}

func (h *GetExpensesByCategoryHandler) Register(api huma.API) {
	huma.Register(api, operation(
		"get-expenses-by-category",
		http.MethodGet,
		"/v1/analytics/by-category",
		"Get expenses by category",
		"Returns expense totals per category, optionally limited to a date range.",
	), h.handle)
}

func parseExpensesByCategoryInput(input *GetExpensesByCategoryInput) (start, end *time.Time, err error) {
	start, err = common.ParseDate("start_date", input.StartDate)
	if err != nil {
		return nil, nil, err
	}
	end, err = common.ParseDate("end_date", input.EndDate)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func (h *GetExpensesByCategoryHandler) handle(ctx context.Context, input *GetExpensesByCategoryInput) (*GetExpensesByCategoryOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	start, end, err := parseExpensesByCategoryInput(input)
	if err != nil {
		return nil, err
	}

	expenses, err := h.AnalyticsService.GetExpensesByCategory(ctx, userID, start, end)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Expenses", "failed to compute expenses by category")
	}
	logging.AddData(ctx, "categoryCount", len(expenses))

	body := make([]CategoryExpense, len(expenses))
	for i, e := range expenses {
		body[i] = CategoryExpense{Category: e.Category, Total: e.Total.InexactFloat64()}
	}
	return &GetExpensesByCategoryOutput{Body: body}, nil
}
