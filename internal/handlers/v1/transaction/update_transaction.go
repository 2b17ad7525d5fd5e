package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/timeutil"
)

// UpdateTransactionBody changes only the fields it carries.
type UpdateTransactionBody struct {
	Amount      *string `json:"amount,omitempty" doc:"New decimal amount, must be positive"`
	Description *string `json:"description,omitempty" doc:"New description"`
	Date        *string `json:"date,omitempty" doc:"New transaction date"`
	CategoryID  *string `json:"category_id,omitempty" format:"uuid" doc:"New category UUID"`
}

type UpdateTransactionInput struct {
	IDParam
	Body UpdateTransactionBody
}

type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, patch service.TransactionPatch) (service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, operation("update-transaction", http.MethodPut, "/v1/transactions/{id}", "Update transaction"), h.handle)
}

func parseUpdateTransactionBody(body UpdateTransactionBody) (service.TransactionPatch, error) {
	var patch service.TransactionPatch
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		patch.Amount.Set(amount)
	}
	if body.Description != nil {
		patch.Description.Set(*body.Description)
	}
	if body.Date != nil {
		date, err := timeutil.Parse(*body.Date)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		patch.Date.Set(date)
	}
	if body.CategoryID != nil {
		categoryID, err := common.ParseID("category_id", *body.CategoryID)
		if err != nil {
			return patch, err
		}
		patch.CategoryID.Set(categoryID)
	}
	return patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	transactionID, err := common.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	patch, err := parseUpdateTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	updated, err := h.TransactionService.UpdateTransaction(ctx, userID, transactionID, patch)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Transaction", "failed to update transaction")
	}
	return &UpdateTransactionOutput{Body: fromService(updated)}, nil
}
