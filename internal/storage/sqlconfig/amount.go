package sqlconfig

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places a money column stores.
const AmountScale = 2

// MaxAmount is the exclusive upper bound of a NUMERIC(14, 2) money column.
var MaxAmount = decimal.New(1, 12)

// FitsAmountColumn reports whether d can be stored in a money column without
// rounding or overflow.
func FitsAmountColumn(d decimal.Decimal) bool {
	return d.Abs().LessThan(MaxAmount) && d.Equal(d.Truncate(AmountScale))
}
