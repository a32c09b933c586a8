package domain

import "github.com/shopspring/decimal"

// Storage limits. Quantities are kept as NUMERIC(12,3), money as
// NUMERIC(12,2).
const (
	// MinQuantity is the smallest positive quantity that survives rounding
	// to three decimals.
	MinQuantity = 0.0005
	// MaxQuantity is the exclusive upper bound of a quantity.
	MaxQuantity = 1e9
)

// MaxMoney is the exclusive upper bound of a price or savings amount.
var MaxMoney = decimal.New(1, 10)

// MoneyInRange reports whether d fits a money column: not negative and
// below MaxMoney.
func MoneyInRange(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThan(MaxMoney)
}
