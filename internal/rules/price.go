package rules

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Evaluate compares current against previous. A zero previous price has no
// defined percent change and yields domain.ErrDivisionByZero.
func Evaluate(current, previous decimal.Decimal) (domain.PriceDelta, error) {
	var errs []domain.FieldError
	if current.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "current_price", Message: "must not be negative"})
	}
	if previous.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "previous_price", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.PriceDelta{}, domain.NewValidationErrors(errs)
	}
	if previous.IsZero() {
		return domain.PriceDelta{}, domain.ErrDivisionByZero
	}

	diff := current.Sub(previous)
	pct, _ := diff.Div(previous).Mul(hundred).Float64()

	direction := domain.PriceDirectionStable
	switch diff.Sign() {
	case 1:
		direction = domain.PriceDirectionUp
	case -1:
		direction = domain.PriceDirectionDown
	}

	return domain.PriceDelta{
		Direction:     direction,
		PercentChange: pct,
		AbsoluteDelta: diff.Abs(),
	}, nil
}

// ItemSavings is how much cheaper the item is now than at its last purchase.
// Items without a last price save nothing.
func ItemSavings(item domain.InventoryItem) decimal.Decimal {
	delta, err := Evaluate(item.CurrentPrice, item.LastPrice)
	if err != nil {
		return decimal.Zero
	}
	return delta.Savings()
}
