package recommendation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

const (
	maxItemNameLength = 100
	maxReasonLength   = 300
	maxConfidence     = 100
)

// ListInput holds the parameters for listing recommendations.
type ListInput struct {
	// Type is a recommendation type or "all". Empty means "all".
	Type string
}

// CreateInput holds a recommendation produced by the external generator.
type CreateInput struct {
	ItemName        string
	Type            domain.RecommendationType
	Reason          string
	Priority        domain.Priority
	Savings         decimal.Decimal
	DaysUntilNeeded int
	CurrentPrice    decimal.Decimal
	PreviousPrice   decimal.Decimal
	Confidence      int
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.ItemName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "item_name", Message: "required"})
	} else if len(name) > maxItemNameLength {
		errs = append(errs, domain.FieldError{Field: "item_name", Message: "max 100 characters"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be refill, bulk_buy, alternative or seasonal"})
	}
	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be high, medium or low"})
	}
	if len(i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 300 characters"})
	}
	if i.Savings.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "savings", Message: "must not be negative"})
	} else if !domain.MoneyInRange(i.Savings) {
		errs = append(errs, domain.FieldError{Field: "savings", Message: "must be less than 10000000000"})
	}
	if i.DaysUntilNeeded < 0 {
		errs = append(errs, domain.FieldError{Field: "days_until_needed", Message: "must not be negative"})
	}
	if i.CurrentPrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "current_price", Message: "must not be negative"})
	} else if !domain.MoneyInRange(i.CurrentPrice) {
		errs = append(errs, domain.FieldError{Field: "current_price", Message: "must be less than 10000000000"})
	}
	if i.PreviousPrice.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "previous_price", Message: "must not be negative"})
	} else if !domain.MoneyInRange(i.PreviousPrice) {
		errs = append(errs, domain.FieldError{Field: "previous_price", Message: "must be less than 10000000000"})
	}
	if i.Confidence < 0 || i.Confidence > maxConfidence {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
