package shopping

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// Defaults for manually added entries.
const (
	DefaultQuantity = 1.0
	DefaultUnit     = "kg"
	DefaultReason   = "Manually added"
)

const (
	maxNameLength   = 100
	maxReasonLength = 200
)

// CreateEntryInput holds the parameters for adding an entry by hand.
// Zero values fall back to the manual-add defaults.
type CreateEntryInput struct {
	Name            string
	Quantity        float64
	Unit            string
	EstimatedPrice  decimal.Decimal
	Priority        domain.Priority
	Category        string
	Reason          string
	DaysUntilNeeded *int
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must not be negative"})
	} else if i.Quantity != 0 {
		errs = validateQuantity(errs, i.Quantity)
	}
	errs = validateEstimatedPrice(errs, i.EstimatedPrice)
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be high, medium or low"})
	}
	if strings.EqualFold(strings.TrimSpace(i.Category), domain.CategoryAll) {
		errs = append(errs, domain.FieldError{Field: "category", Message: "reserved name"})
	}
	if len(i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 200 characters"})
	}
	if i.DaysUntilNeeded != nil && *i.DaysUntilNeeded < 0 {
		errs = append(errs, domain.FieldError{Field: "days_until_needed", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEntriesInput holds the parameters for listing the shopping list.
type ListEntriesInput struct {
	// ShowCompleted defaults to true when nil.
	ShowCompleted *bool
	Category      string
}

// UpdateEntryInput holds a partial update of a shopping entry.
type UpdateEntryInput struct {
	ID             uuid.UUID
	Name           *string
	Quantity       *float64
	Unit           *string
	EstimatedPrice *decimal.Decimal
	Priority       *domain.Priority
	Category       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Quantity == nil && i.Unit == nil && i.EstimatedPrice == nil &&
		i.Priority == nil && i.Category == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(name) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Quantity != nil {
		errs = validateQuantity(errs, *i.Quantity)
	}
	if i.Unit != nil && strings.TrimSpace(*i.Unit) == "" {
		errs = append(errs, domain.FieldError{Field: "unit", Message: "required"})
	}
	if i.EstimatedPrice != nil {
		errs = validateEstimatedPrice(errs, *i.EstimatedPrice)
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be high, medium or low"})
	}
	if i.Category != nil && strings.EqualFold(strings.TrimSpace(*i.Category), domain.CategoryAll) {
		errs = append(errs, domain.FieldError{Field: "category", Message: "reserved name"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateQuantity(errs []domain.FieldError, q float64) []domain.FieldError {
	switch {
	case q <= 0:
		return append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	case q < domain.MinQuantity:
		return append(errs, domain.FieldError{Field: "quantity", Message: "min 0.001"})
	case q >= domain.MaxQuantity:
		return append(errs, domain.FieldError{Field: "quantity", Message: "must be less than 1000000000"})
	}
	return errs
}

func validateEstimatedPrice(errs []domain.FieldError, d decimal.Decimal) []domain.FieldError {
	if d.IsNegative() {
		return append(errs, domain.FieldError{Field: "estimated_price", Message: "must not be negative"})
	}
	if !domain.MoneyInRange(d) {
		return append(errs, domain.FieldError{Field: "estimated_price", Message: "must be less than 10000000000"})
	}
	return errs
}
