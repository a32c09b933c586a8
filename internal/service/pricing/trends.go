package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/rules"
	"github.com/heartmarshall/pantry-backend/pkg/ctxutil"
)

// GetTrend returns the price trend of one pantry item over the requested
// range.
func (s *Service) GetTrend(ctx context.Context, input GetTrendInput) (*domain.PriceTrend, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, userID, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get pantry item: %w", err)
	}

	history, err := s.prices.ListByItem(ctx, userID, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list price history: %w", err)
	}

	return s.buildTrend(*item, history, rangeOrDefault(input.Range))
}

// ListTrends returns a trend for every pantry item. History for all items is
// loaded with a single query.
func (s *Service) ListTrends(ctx context.Context, r domain.TrendRange) ([]domain.PriceTrend, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	r = rangeOrDefault(r)
	if !r.IsValid() {
		return nil, domain.NewValidationError("range", "must be one of 3m, 6m, 1y")
	}

	items, err := s.items.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}

	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	history, err := s.prices.ListByItemIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("list price history: %w", err)
	}

	trends := make([]domain.PriceTrend, 0, len(items))
	for _, it := range items {
		trend, err := s.buildTrend(it, history[it.ID], r)
		if err != nil {
			return nil, err
		}
		trends = append(trends, *trend)
	}
	return trends, nil
}

func (s *Service) buildTrend(item domain.InventoryItem, history []domain.PricePoint, r domain.TrendRange) (*domain.PriceTrend, error) {
	trend := &domain.PriceTrend{
		ItemID:        item.ID,
		ItemName:      item.Name,
		Category:      item.Category,
		CurrentPrice:  item.CurrentPrice,
		PreviousPrice: item.LastPrice,
	}

	delta, err := rules.Evaluate(item.CurrentPrice, item.LastPrice)
	switch {
	case err == nil:
		trend.Delta = &delta
	case !errors.Is(err, domain.ErrDivisionByZero):
		return nil, fmt.Errorf("evaluate price of %s: %w", item.ID, err)
	}

	// Items priced before any history was kept still show their current price.
	if len(history) == 0 && item.CurrentPrice.IsPositive() {
		history = []domain.PricePoint{{
			ItemID:     item.ID,
			UserID:     item.UserID,
			Period:     domain.PeriodOf(s.now()),
			Price:      item.CurrentPrice,
			RecordedAt: s.now(),
		}}
	}

	series, err := rules.Window(history, r)
	if err != nil {
		return nil, err
	}
	trend.Series = series

	if len(series) > 0 {
		trend.SeriesDelta, err = rules.SeriesDelta(series)
		if err != nil {
			return nil, fmt.Errorf("series delta of %s: %w", item.ID, err)
		}
	}

	return trend, nil
}
