package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
)

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, operation("delete-transaction", http.MethodDelete, "/v1/transactions/{id}", "Delete transaction"), h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *IDParam) (*struct{}, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	transactionID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return nil, common.ServiceError(ctx, err, "Transaction", "failed to delete transaction")
	}
	return nil, nil
}
