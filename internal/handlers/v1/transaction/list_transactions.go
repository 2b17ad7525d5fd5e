package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	CategoryID string `query:"category_id" doc:"Only transactions in this category"`
	StartDate  string `query:"start_date" doc:"Inclusive lower bound on transaction date"`
	EndDate    string `query:"end_date" doc:"Inclusive upper bound on transaction date"`
	common.PageParams
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

type transactionLister interface {
	ListTransactions(ctx context.Context, userID uuid.UUID, query service.TransactionQuery) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	op := operation("list-transactions", http.MethodGet, "/v1/transactions", "List transactions")
	op.Description = "Returns the caller's transactions newest first, using skip/limit pagination."
	huma.Register(api, op, h.handle)
}

// parseListTransactionsInput parses and validates the query parameters.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionQuery, error) {
	query := service.TransactionQuery{Page: input.Page()}

	if input.CategoryID != "" {
		categoryID, err := common.ParseID("category_id", input.CategoryID)
		if err != nil {
			return query, err
		}
		query.CategoryID = &categoryID
	}

	var err error
	if query.Start, err = common.ParseDate("start_date", input.StartDate); err != nil {
		return query, err
	}
	if query.End, err = common.ParseDate("end_date", input.EndDate); err != nil {
		return query, err
	}
	return query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := common.UserID(ctx)
	if err != nil {
		return nil, err
	}
	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	transactions, err := h.TransactionService.ListTransactions(ctx, userID, query)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "Transaction", "failed to list transactions")
	}
	logging.AddData(ctx, "transactionCount", len(transactions))

	body := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		body[i] = fromService(tx)
	}
	return &ListTransactionsOutput{Body: body}, nil
}
