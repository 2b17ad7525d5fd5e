package goal

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Goal is the API response model for a savings goal.
type Goal struct {
	ID            string  `json:"id" doc:"Goal UUID"`
	Name          string  `json:"name" doc:"Goal name"`
	TargetAmount  string  `json:"target_amount" doc:"Decimal amount to reach"`
	CurrentAmount string  `json:"current_amount" doc:"Decimal amount saved so far"`
	Deadline      *string `json:"deadline" doc:"RFC3339 deadline"`
	UserID        string  `json:"user_id" doc:"Owner UUID"`
	CreatedAt     string  `json:"created_at" doc:"RFC3339 creation time"`
}

func fromService(g service.Goal) Goal {
	return Goal{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Deadline:      common.FormatOptionalTime(g.Deadline),
		UserID:        g.UserID.String(),
		CreatedAt:     common.FormatTime(g.CreatedAt),
	}
}

// IDParam selects a single goal.
type IDParam struct {
	ID string `path:"id" format:"uuid" doc:"Goal UUID"`
}

func operation(id, method, path, summary string) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      method,
		Path:        path,
		Summary:     summary,
		Tags:        []string{"Goals"},
		Security:    auth.Required,
	}
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return amount, nil
}

func parseDeadline(value string) (*time.Time, error) {
	return common.ParseDate("deadline", value)
}
