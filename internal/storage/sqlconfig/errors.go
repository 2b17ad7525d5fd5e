package sqlconfig

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a lookup, update or delete matched no row
	// visible to the caller.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned on a foreign key violation, either because the
	// referenced row is missing or because the row is still referenced.
	ErrReferenced = errors.New("referential constraint violated")
	// ErrCheckViolation is returned when a row breaks a CHECK constraint or a
	// value does not fit its column.
	ErrCheckViolation = errors.New("check constraint violated")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
	pgStringTooLong       = "22001"
)

// classify maps driver errors onto the package sentinels. Anything it does
// not recognise is returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferenced, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s", ErrCheckViolation, pgErr.ConstraintName)
		case pgNumericOutOfRange, pgStringTooLong:
			return fmt.Errorf("%w: %s", ErrCheckViolation, pgErr.Message)
		}
	}
	return err
}
