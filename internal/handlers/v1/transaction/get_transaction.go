package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, operation("get-transaction", http.MethodGet, "/v1/transactions/{id}", "Get transaction"), h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *IDParam) (*GetTransactionOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	transactionID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Transaction", "failed to load transaction")
	}
	return &GetTransactionOutput{Body: fromService(tx)}, nil
}
