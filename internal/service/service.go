package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// ActionProcessor runs a write action inside its own database transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TokenIssuer issues and verifies access tokens.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

// Service holds all business logic services.
type Service struct {
	Analytics    *AnalyticsService
	Users        *UserService
	Categories   *CategoryService
	Transactions *TransactionService
	Goals        *GoalService
	Transfer     *TransferService
}

// NewService creates a new Service. Reads go to store directly, writes are
// handed to processor.
func NewService(store *storage.Storage, processor ActionProcessor, tokens TokenIssuer) *Service {
	return &Service{
		Analytics:    NewAnalyticsService(store),
		Users:        NewUserService(store, processor, tokens),
		Categories:   NewCategoryService(store, processor),
		Transactions: NewTransactionService(store, processor),
		Goals:        NewGoalService(store, processor),
		Transfer:     NewTransferService(store, processor),
	}
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Page selects a window of a listing.
type Page struct {
	Skip  int
	Limit int
}

func (p Page) normalize() (Page, error) {
	if p.Skip < 0 {
		return p, invalid("skip must not be negative")
	}
	switch {
	case p.Limit < 0:
		return p, invalid("limit must not be negative")
	case p.Limit == 0:
		p.Limit = defaultLimit
	case p.Limit > maxLimit:
		return p, invalid("limit must be at most %d", maxLimit)
	}
	return p, nil
}
