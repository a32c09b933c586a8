package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// Money is serialized as a decimal string ("4.50").

type itemResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Quantity          float64         `json:"quantity"`
	Unit              string          `json:"unit"`
	PurchasedAt       time.Time       `json:"purchasedAt"`
	EstimatedDuration int             `json:"estimatedDuration"`
	CurrentPrice      decimal.Decimal `json:"currentPrice"`
	LastPrice         decimal.Decimal `json:"lastPrice"`
	DaysLeft          int             `json:"daysLeft"`
	Status            string          `json:"status"`
	RemainingPercent  float64         `json:"remainingPercent"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func toItemResponse(it domain.InventoryItem) itemResponse {
	return itemResponse{
		ID:                it.ID,
		Name:              it.Name,
		Category:          it.Category,
		Quantity:          it.Quantity,
		Unit:              it.Unit,
		PurchasedAt:       it.PurchasedAt,
		EstimatedDuration: it.EstimatedDuration,
		CurrentPrice:      it.CurrentPrice,
		LastPrice:         it.LastPrice,
		DaysLeft:          it.DaysLeft,
		Status:            it.Status.String(),
		RemainingPercent:  it.RemainingPercent,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

func toItemResponses(items []domain.InventoryItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	return out
}

type pantrySummaryResponse struct {
	Total            int             `json:"total"`
	Healthy          int             `json:"healthy"`
	Warning          int             `json:"warning"`
	Critical         int             `json:"critical"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	PotentialSavings decimal.Decimal `json:"potentialSavings"`
}

func toPantrySummaryResponse(s domain.PantrySummary) pantrySummaryResponse {
	return pantrySummaryResponse(s)
}

type entryResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Quantity        float64         `json:"quantity"`
	Unit            string          `json:"unit"`
	EstimatedPrice  decimal.Decimal `json:"estimatedPrice"`
	Priority        string          `json:"priority"`
	Category        string          `json:"category"`
	IsChecked       bool            `json:"isChecked"`
	Reason          string          `json:"reason"`
	DaysUntilNeeded *int            `json:"daysUntilNeeded,omitempty"`
	SourceItemID    *uuid.UUID      `json:"sourceItemId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func toEntryResponse(e domain.ShoppingEntry) entryResponse {
	return entryResponse{
		ID:              e.ID,
		Name:            e.Name,
		Quantity:        e.Quantity,
		Unit:            e.Unit,
		EstimatedPrice:  e.EstimatedPrice,
		Priority:        e.Priority.String(),
		Category:        e.Category,
		IsChecked:       e.IsChecked,
		Reason:          e.Reason,
		DaysUntilNeeded: e.DaysUntilNeeded,
		SourceItemID:    e.SourceItemID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toEntryResponses(entries []domain.ShoppingEntry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
}

type shoppingSummaryResponse struct {
	Total         int             `json:"total"`
	Checked       int             `json:"checked"`
	Remaining     int             `json:"remaining"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
}

func toShoppingSummaryResponse(s domain.ShoppingSummary) shoppingSummaryResponse {
	return shoppingSummaryResponse(s)
}

type recommendationResponse struct {
	ID              uuid.UUID       `json:"id"`
	ItemName        string          `json:"itemName"`
	Type            string          `json:"type"`
	Reason          string          `json:"reason"`
	Priority        string          `json:"priority"`
	Savings         decimal.Decimal `json:"savings"`
	DaysUntilNeeded int             `json:"daysUntilNeeded"`
	CurrentPrice    decimal.Decimal `json:"currentPrice"`
	PreviousPrice   decimal.Decimal `json:"previousPrice"`
	Confidence      int             `json:"confidence"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func toRecommendationResponse(r domain.Recommendation) recommendationResponse {
	return recommendationResponse{
		ID:              r.ID,
		ItemName:        r.ItemName,
		Type:            r.Type.String(),
		Reason:          r.Reason,
		Priority:        r.Priority.String(),
		Savings:         r.Savings,
		DaysUntilNeeded: r.DaysUntilNeeded,
		CurrentPrice:    r.CurrentPrice,
		PreviousPrice:   r.PreviousPrice,
		Confidence:      r.Confidence,
		CreatedAt:       r.CreatedAt,
	}
}

func toRecommendationResponses(recs []domain.Recommendation) []recommendationResponse {
	out := make([]recommendationResponse, len(recs))
	for i, r := range recs {
		out[i] = toRecommendationResponse(r)
	}
	return out
}

type deltaResponse struct {
	Direction     string          `json:"direction"`
	PercentChange float64         `json:"percentChange"`
	AbsoluteDelta decimal.Decimal `json:"absoluteDelta"`
}

func toDeltaResponse(d *domain.PriceDelta) *deltaResponse {
	if d == nil {
		return nil
	}
	return &deltaResponse{
		Direction:     d.Direction.String(),
		PercentChange: d.PercentChange,
		AbsoluteDelta: d.AbsoluteDelta,
	}
}

type pricePointResponse struct {
	Period string          `json:"period"`
	Price  decimal.Decimal `json:"price"`
}

type trendResponse struct {
	ItemID        uuid.UUID            `json:"itemId"`
	ItemName      string               `json:"itemName"`
	Category      string               `json:"category"`
	CurrentPrice  decimal.Decimal      `json:"currentPrice"`
	PreviousPrice decimal.Decimal      `json:"previousPrice"`
	Delta         *deltaResponse       `json:"delta"`
	Savings       decimal.Decimal      `json:"savings"`
	Series        []pricePointResponse `json:"series"`
	SeriesDelta   *deltaResponse       `json:"seriesDelta"`
}

func toTrendResponse(t domain.PriceTrend) trendResponse {
	series := make([]pricePointResponse, len(t.Series))
	for i, p := range t.Series {
		series[i] = pricePointResponse{Period: p.Period, Price: p.Price}
	}
	savings := decimal.Zero
	if t.Delta != nil {
		savings = t.Delta.Savings()
	}
	return trendResponse{
		ItemID:        t.ItemID,
		ItemName:      t.ItemName,
		Category:      t.Category,
		CurrentPrice:  t.CurrentPrice,
		PreviousPrice: t.PreviousPrice,
		Delta:         toDeltaResponse(t.Delta),
		Savings:       savings,
		Series:        series,
		SeriesDelta:   toDeltaResponse(t.SeriesDelta),
	}
}
