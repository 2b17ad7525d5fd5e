// Package csvio reads and writes the transaction CSV format used for bulk
// import and export.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-tracker/internal/timeutil"
)

// ExportHeader is the first line of every exported file.
var ExportHeader = []string{"id", "amount", "description", "date", "category_id", "user_id"}

// ErrMissingColumn is returned when an import file lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Record is one exported transaction.
type Record struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description *string
	Date        time.Time
	CategoryID  uuid.UUID
	UserID      uuid.UUID
}

// ImportRow is one accepted row of an import file. Date is zero when the
// file left it out.
type ImportRow struct {
	Amount      decimal.Decimal
	Description *string
	Date        time.Time
	CategoryID  uuid.UUID
}

// WriteTransactions writes the header followed by one line per record.
func WriteTransactions(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}
	for _, r := range records {
		description := ""
		if r.Description != nil {
			description = *r.Description
		}
		line := []string{
			r.ID.String(),
			r.Amount.StringFixed(2),
			description,
			r.Date.UTC().Format(time.RFC3339),
			r.CategoryID.String(),
			r.UserID.String(),
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTransactions parses an import file. The header must name the amount
// and category_id columns; description and date are optional and any other
// column is ignored. Rows with an amount that is unparsable, non-positive or
// too large or precise for the money column are skipped and counted, as are
// rows with an unparsable category id or date.
func ReadTransactions(r io.Reader) ([]ImportRow, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, fmt.Errorf("%w: amount", ErrMissingColumn)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		columns[name] = i
	}
	for _, required := range []string{"amount", "category_id"} {
		if _, ok := columns[required]; !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	field := func(line []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(line) {
			return ""
		}
		return strings.TrimSpace(line[i])
	}

	var rows []ImportRow
	skipped := 0
	for {
		line, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read line: %w", err)
		}

		row, ok := parseRow(func(name string) string { return field(line, name) })
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func parseRow(field func(name string) string) (ImportRow, bool) {
	amount, err := decimal.NewFromString(field("amount"))
	if err != nil || !amount.IsPositive() || !sqlconfig.FitsAmountColumn(amount) {
		return ImportRow{}, false
	}
	categoryID, err := uuid.FromString(field("category_id"))
	if err != nil {
		return ImportRow{}, false
	}

	row := ImportRow{
		Amount:     amount,
		CategoryID: categoryID,
	}
	if description := field("description"); description != "" {
		row.Description = &description
	}
	if date := field("date"); date != "" {
		parsed, err := timeutil.Parse(date)
		if err != nil {
			return ImportRow{}, false
		}
		row.Date = parsed
	}
	return row, true
}
