package pantry

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

const (
	maxNameLength     = 100
	maxCategoryLength = 50
	maxUnitLength     = 20
	maxDurationDays   = 3650
)

// CreateItemInput holds the parameters for adding an item to the pantry.
type CreateItemInput struct {
	Name              string
	Category          string
	Quantity          float64
	Unit              string
	PurchasedAt       *time.Time
	EstimatedDuration int
	CurrentPrice      decimal.Decimal
	LastPrice         *decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateCategory(errs, i.Category)
	errs = validateQuantity(errs, "quantity", i.Quantity)
	errs = validateUnit(errs, i.Unit)
	errs = validateDuration(errs, i.EstimatedDuration)

	errs = validateMoney(errs, "current_price", i.CurrentPrice)
	if i.LastPrice != nil {
		errs = validateMoney(errs, "last_price", *i.LastPrice)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListItemsInput holds the parameters for listing pantry items.
type ListItemsInput struct {
	// Category filters the returned items; "all" or empty returns every item.
	Category string
}

// UpdateItemInput holds a partial update of a pantry item. Nil fields are
// left unchanged.
type UpdateItemInput struct {
	ID                uuid.UUID
	Name              *string
	Category          *string
	Quantity          *float64
	Unit              *string
	PurchasedAt       *time.Time
	EstimatedDuration *int
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Category == nil && i.Quantity == nil && i.Unit == nil &&
		i.PurchasedAt == nil && i.EstimatedDuration == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Category != nil {
		errs = validateCategory(errs, *i.Category)
	}
	if i.Quantity != nil {
		errs = validateQuantity(errs, "quantity", *i.Quantity)
	}
	if i.Unit != nil {
		errs = validateUnit(errs, *i.Unit)
	}
	if i.EstimatedDuration != nil {
		errs = validateDuration(errs, *i.EstimatedDuration)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePriceInput holds a new current price for a pantry item.
type UpdatePriceInput struct {
	ID    uuid.UUID
	Price decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i UpdatePriceInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = validateMoney(errs, "price", i.Price)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ConsumeItemInput records usage of part of a pantry item.
type ConsumeItemInput struct {
	ID     uuid.UUID
	Amount float64
}

// Validate checks all fields and collects all errors.
func (i ConsumeItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = validateQuantity(errs, "amount", i.Amount)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

func validateCategory(errs []domain.FieldError, category string) []domain.FieldError {
	category = strings.TrimSpace(category)
	if len(category) > maxCategoryLength {
		return append(errs, domain.FieldError{Field: "category", Message: "max 50 characters"})
	}
	if strings.EqualFold(category, domain.CategoryAll) {
		return append(errs, domain.FieldError{Field: "category", Message: "reserved name"})
	}
	return errs
}

func validateQuantity(errs []domain.FieldError, field string, q float64) []domain.FieldError {
	if q <= 0 {
		return append(errs, domain.FieldError{Field: field, Message: "must be positive"})
	}
	if q < domain.MinQuantity {
		return append(errs, domain.FieldError{Field: field, Message: "min 0.001"})
	}
	if q >= domain.MaxQuantity {
		return append(errs, domain.FieldError{Field: field, Message: "must be less than 1000000000"})
	}
	return errs
}

func validateMoney(errs []domain.FieldError, field string, d decimal.Decimal) []domain.FieldError {
	if d.IsNegative() {
		return append(errs, domain.FieldError{Field: field, Message: "must not be negative"})
	}
	if d.GreaterThanOrEqual(domain.MaxMoney) {
		return append(errs, domain.FieldError{Field: field, Message: "must be less than 10000000000"})
	}
	return errs
}

func validateUnit(errs []domain.FieldError, unit string) []domain.FieldError {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return append(errs, domain.FieldError{Field: "unit", Message: "required"})
	}
	if len(unit) > maxUnitLength {
		return append(errs, domain.FieldError{Field: "unit", Message: "max 20 characters"})
	}
	return errs
}

func validateDuration(errs []domain.FieldError, days int) []domain.FieldError {
	if days <= 0 {
		return append(errs, domain.FieldError{Field: "estimated_duration", Message: "must be positive"})
	}
	if days > maxDurationDays {
		return append(errs, domain.FieldError{Field: "estimated_duration", Message: "max 3650 days"})
	}
	return errs
}

// categoryOrDefault trims c and falls back to the default category.
func categoryOrDefault(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return domain.DefaultCategory
	}
	return c
}
