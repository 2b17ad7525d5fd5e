package transaction

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string  `json:"id" doc:"Transaction UUID"`
	Amount      string  `json:"amount" doc:"Decimal amount, always positive"`
	Description *string `json:"description" doc:"Free text description"`
	Date        string  `json:"date" doc:"RFC3339 transaction date"`
	CategoryID  string  `json:"category_id" doc:"Category UUID"`
	UserID      string  `json:"user_id" doc:"Owner UUID"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Date:        common.FormatTime(tx.Date),
		CategoryID:  tx.CategoryID.String(),
		UserID:      tx.UserID.String(),
		CreatedAt:   common.FormatTime(tx.CreatedAt),
	}
}

// IDParam selects a single transaction.
type IDParam struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

func operation(id, method, path, summary string) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      method,
		Path:        path,
		Summary:     summary,
		Tags:        []string{"Transactions"},
		Security:    auth.Required,
	}
}
