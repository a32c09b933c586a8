package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodLayout formats the monthly period label of a price point.
const PeriodLayout = "2006-01"

// PricePoint is the price of a pantry item during one period.
type PricePoint struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	UserID     uuid.UUID
	Period     string
	Price      decimal.Decimal
	RecordedAt time.Time
}

// PeriodOf returns the period label that t falls into.
func PeriodOf(t time.Time) string {
	return t.UTC().Format(PeriodLayout)
}

// PriceDelta describes the change between a previous and a current price.
type PriceDelta struct {
	Direction     PriceDirection
	PercentChange float64
	AbsoluteDelta decimal.Decimal
}

// Savings is the absolute delta when the price went down, zero otherwise.
func (d PriceDelta) Savings() decimal.Decimal {
	if d.Direction == PriceDirectionDown {
		return d.AbsoluteDelta
	}
	return decimal.Zero
}

// Increase is the absolute delta when the price went up, zero otherwise.
func (d PriceDelta) Increase() decimal.Decimal {
	if d.Direction == PriceDirectionUp {
		return d.AbsoluteDelta
	}
	return decimal.Zero
}

// PriceTrend is the price view of a single pantry item.
type PriceTrend struct {
	ItemID        uuid.UUID
	ItemName      string
	Category      string
	CurrentPrice  decimal.Decimal
	PreviousPrice decimal.Decimal
	// Delta is nil when the previous price is zero.
	Delta  *PriceDelta
	Series []PricePoint
	// SeriesDelta compares the first and last point of Series; nil when
	// undefined.
	SeriesDelta *PriceDelta
}
