package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// invalid builds an ErrInvalidArgument with a client facing reason.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// checkAmountColumn rejects amounts the money columns would round or overflow.
func checkAmountColumn(field string, amount decimal.Decimal) error {
	if amount.Abs().GreaterThanOrEqual(sqlconfig.MaxAmount) {
		return invalid("%s must be less than %s", field, sqlconfig.MaxAmount)
	}
	if !sqlconfig.FitsAmountColumn(amount) {
		return invalid("%s must have at most %d decimal places", field, sqlconfig.AmountScale)
	}
	return nil
}

// storageError maps a storage error onto the service sentinels and prefixes
// it with op.
func storageError(op string, err error) error {
	switch {
	case errors.Is(err, sqlconfig.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, sqlconfig.ErrDuplicate), errors.Is(err, sqlconfig.ErrReferenced):
		return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
	case errors.Is(err, sqlconfig.ErrCheckViolation):
		return fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
	}
}
