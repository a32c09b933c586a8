package pantry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/rules"
	"github.com/heartmarshall/pantry-backend/pkg/ctxutil"
)

// UpdatePrice sets a new current price. The old current price becomes the
// last price, and the new one is recorded in the item's price series.
func (s *Service) UpdatePrice(ctx context.Context, input UpdatePriceInput) (*UpdatePriceResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.InventoryItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetByID(txCtx, userID, input.ID)
		if err != nil {
			return fmt.Errorf("get pantry item: %w", err)
		}

		item.LastPrice = item.CurrentPrice
		item.CurrentPrice = input.Price

		updated, err = s.items.Update(txCtx, item)
		if err != nil {
			return fmt.Errorf("update pantry item price: %w", err)
		}
		return s.recordPrice(txCtx, updated)
	})
	if err != nil {
		return nil, err
	}

	if err := s.deriveOne(updated); err != nil {
		return nil, err
	}

	result := &UpdatePriceResult{Item: updated}
	delta, err := rules.Evaluate(updated.CurrentPrice, updated.LastPrice)
	switch {
	case err == nil:
		result.Delta = &delta
	case !errors.Is(err, domain.ErrDivisionByZero):
		return nil, fmt.Errorf("evaluate price change: %w", err)
	}

	s.log.InfoContext(ctx, "pantry item repriced",
		slog.String("user_id", userID.String()),
		slog.String("item_id", updated.ID.String()),
		slog.String("price", updated.CurrentPrice.String()),
		slog.String("last_price", updated.LastPrice.String()),
	)

	return result, nil
}
