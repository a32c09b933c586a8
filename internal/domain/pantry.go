package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a product the user keeps at home.
//
// DaysLeft, Status and RemainingPercent are derived from PurchasedAt and
// EstimatedDuration when the item is read and are never persisted.
type InventoryItem struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Category          string
	Quantity          float64
	Unit              string
	PurchasedAt       time.Time
	EstimatedDuration int
	CurrentPrice      decimal.Decimal
	LastPrice         decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time

	DaysLeft         int
	Status           ItemStatus
	RemainingPercent float64
}

// ItemCategory implements the category accessor used by list filters.
func (i InventoryItem) ItemCategory() string { return i.Category }

// PantrySummary aggregates a user's pantry.
type PantrySummary struct {
	Total            int
	Healthy          int
	Warning          int
	Critical         int
	TotalValue       decimal.Decimal
	PotentialSavings decimal.Decimal
}
