package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/timeutil"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount      string  `json:"amount" required:"true" doc:"Decimal amount, must be positive"`
	Description *string `json:"description,omitempty" doc:"Free text description"`
	Date        string  `json:"date,omitempty" doc:"Transaction date, RFC3339 or naive UTC, defaults to now"`
	CategoryID  string  `json:"category_id" required:"true" format:"uuid" doc:"Category UUID"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, input service.TransactionInput) (service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	op := operation("create-transaction", http.MethodPost, "/v1/transactions", "Create transaction")
	op.Description = "Records a transaction against a category visible to the caller."
	op.DefaultStatus = http.StatusCreated
	huma.Register(api, op, h.handle)
}

// parseCreateTransactionInput parses the fields huma cannot validate by
// schema. A missing date is returned as the zero time.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionInput, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid category_id", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = timeutil.Parse(input.Body.Date)
		if err != nil {
			return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.TransactionInput{
		Amount:      amount,
		Description: input.Body.Description,
		Date:        date,
		CategoryID:  categoryID,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	txInput, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.TransactionService.CreateTransaction(ctx, userID, txInput)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Category", "failed to create transaction")
	}
	return &CreateTransactionOutput{Body: fromService(created)}, nil
}
