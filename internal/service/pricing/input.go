package pricing

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// DefaultRange is used when no range is requested.
const DefaultRange = domain.TrendRange6M

// GetTrendInput selects one item's trend.
type GetTrendInput struct {
	ItemID uuid.UUID
	Range  domain.TrendRange
}

// Validate checks all fields and collects all errors.
func (i GetTrendInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Range != "" && !i.Range.IsValid() {
		errs = append(errs, domain.FieldError{Field: "range", Message: "must be one of 3m, 6m, 1y"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func rangeOrDefault(r domain.TrendRange) domain.TrendRange {
	if r == "" {
		return DefaultRange
	}
	return r
}
