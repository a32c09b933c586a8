package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingEntry is one line of the user's shopping list.
type ShoppingEntry struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Quantity        float64
	Unit            string
	EstimatedPrice  decimal.Decimal
	Priority        Priority
	Category        string
	IsChecked       bool
	Reason          string
	DaysUntilNeeded *int
	SourceItemID    *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Toggle flips the checked state. Toggling twice restores the original state.
func (e *ShoppingEntry) Toggle() { e.IsChecked = !e.IsChecked }

// ItemCategory implements the category accessor used by list filters.
func (e ShoppingEntry) ItemCategory() string { return e.Category }

// ShoppingSummary aggregates a shopping list. EstimatedCost covers unchecked
// entries only.
type ShoppingSummary struct {
	Total         int
	Checked       int
	Remaining     int
	EstimatedCost decimal.Decimal
}
