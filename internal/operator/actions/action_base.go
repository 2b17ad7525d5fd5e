package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a unit of write work. Perform runs inside a database
// transaction owned by the operator; returning an error rolls it back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
