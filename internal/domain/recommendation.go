package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recommendation is a purchase suggestion produced by the external
// recommendation generator.
type Recommendation struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ItemName        string
	Type            RecommendationType
	Reason          string
	Priority        Priority
	Savings         decimal.Decimal
	DaysUntilNeeded int
	CurrentPrice    decimal.Decimal
	PreviousPrice   decimal.Decimal
	Confidence      int
	CreatedAt       time.Time
}
