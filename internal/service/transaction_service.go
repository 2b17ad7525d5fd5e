package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalid("amount must be positive")
	}
	return checkAmountColumn("amount", amount)
}

// CreateTransaction records a transaction against a category visible to the
// user.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, input TransactionInput) (Transaction, error) {
	if err := validateAmount(input.Amount); err != nil {
		return Transaction{}, err
	}

	action := &actions.CreateTransaction{Create: sqlconfig.TransactionCreate{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return Transaction{}, storageError("TransactionService.CreateTransaction", err)
	}
	return transactionFromStorage(action.Created), nil
}

// ListTransactions returns the user's transactions newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, query TransactionQuery) ([]Transaction, error) {
	page, err := query.Page.normalize()
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "listTransactionsMs")
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:     userID,
		CategoryID: query.CategoryID,
		From:       query.Start,
		Through:    query.End,
		Limit:      page.Limit,
		Offset:     page.Skip,
	})
	stopTimer()
	if err != nil {
		return nil, storageError("TransactionService.ListTransactions", err)
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, transactionID)
	if err != nil {
		return Transaction{}, storageError("TransactionService.GetTransaction", err)
	}
	return transactionFromStorage(row), nil
}

// UpdateTransaction applies patch to a transaction the user owns. A new
// category must be visible to the user.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, patch TransactionPatch) (Transaction, error) {
	action := &actions.UpdateTransaction{UserID: userID, TransactionID: transactionID}
	if amount, ok := patch.Amount.Get(); ok {
		if err := validateAmount(amount); err != nil {
			return Transaction{}, err
		}
		action.Update.Amount.Set(amount)
	}
	action.Update.Description = patch.Description
	action.Update.Date = patch.Date
	action.Update.CategoryID = patch.CategoryID

	if err := s.processor.Process(ctx, action); err != nil {
		return Transaction{}, storageError("TransactionService.UpdateTransaction", err)
	}
	return transactionFromStorage(action.Updated), nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	action := &actions.DeleteTransaction{UserID: userID, TransactionID: transactionID}
	if err := s.processor.Process(ctx, action); err != nil {
		return storageError("TransactionService.DeleteTransaction", err)
	}
	return nil
}
