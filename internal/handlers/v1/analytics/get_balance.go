package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// GetBalanceOutput is the Huma output for the balance endpoint.
type GetBalanceOutput struct {
	Body Balance
}

type balanceGetter interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (service.Balance, error)
}

// GetBalanceHandler handles GET /v1/analytics/balance.
type GetBalanceHandler struct {
	AnalyticsService balanceGetter
}

func NewGetBalanceHandler(svc balanceGetter) *GetBalanceHandler {
	return &GetBalanceHandler{AnalyticsService: svc}
}

func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, operation(
		"get-balance",
		http.MethodGet,
		"/v1/analytics/balance",
		"Get balance",
		"Returns total income, total expense and balance over all of the caller's transactions.",
	), h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, _ *struct{}) (*GetBalanceOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := h.AnalyticsService.GetBalance(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Balance", "failed to compute balance")
	}

	return &GetBalanceOutput{Body: Balance{
		TotalIncome:  balance.TotalIncome.InexactFloat64(),
		TotalExpense: balance.TotalExpense.InexactFloat64(),
		Balance:      balance.Balance.InexactFloat64(),
	}}, nil
}
