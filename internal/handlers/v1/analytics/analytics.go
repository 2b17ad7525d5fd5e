package analytics

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
)

// Balance is the API response model for a user's all-time balance.
type Balance struct {
	TotalIncome  float64 `json:"total_income" doc:"Sum of all income transactions"`
	TotalExpense float64 `json:"total_expense" doc:"Sum of all expense transactions"`
	Balance      float64 `json:"balance" doc:"total_income minus total_expense"`
}

// CategoryExpense is the API response model for one expense category total.
type CategoryExpense struct {
	Category string  `json:"category" doc:"Category name"`
	Total    float64 `json:"total" doc:"Sum of expenses in the category"`
}

// MonthlyStats is the API response model for one calendar month.
type MonthlyStats struct {
	Month      string             `json:"month" doc:"Month in YYYY-MM form"`
	Income     float64            `json:"income" doc:"Income within the month"`
	Expense    float64            `json:"expense" doc:"Expenses within the month"`
	Balance    float64            `json:"balance" doc:"income minus expense"`
	ByCategory map[string]float64 `json:"by_category" doc:"Expense totals keyed by category name"`
}

func operation(id, method, path, summary, description string) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      method,
		Path:        path,
		Summary:     summary,
		Description: description,
		Tags:        []string{"Analytics"},
		Security:    auth.Required,
	}
}
