package pantry

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/pkg/ctxutil"
)

// roundQuantity rounds q to the stored scale of three decimals.
func roundQuantity(q float64) float64 {
	return math.Round(q*1000) / 1000
}

// ConsumeItem subtracts Amount from the item's quantity. An item whose
// quantity reaches zero is removed from the pantry.
func (s *Service) ConsumeItem(ctx context.Context, input ConsumeItemInput) (*ConsumeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get pantry item: %w", err)
	}

	remaining := roundQuantity(item.Quantity - input.Amount)
	if remaining <= 0 {
		if err := s.deriveOne(item); err != nil {
			return nil, err
		}
		if err := s.items.Delete(ctx, userID, item.ID); err != nil {
			return nil, fmt.Errorf("delete consumed pantry item: %w", err)
		}

		item.Quantity = 0
		s.log.InfoContext(ctx, "pantry item used up",
			slog.String("user_id", userID.String()),
			slog.String("item_id", item.ID.String()),
		)
		return &ConsumeResult{Item: item, Removed: true}, nil
	}

	item.Quantity = remaining
	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update pantry item quantity: %w", err)
	}

	if err := s.deriveOne(updated); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pantry item consumed",
		slog.String("user_id", userID.String()),
		slog.String("item_id", updated.ID.String()),
		slog.Float64("remaining", updated.Quantity),
	)

	return &ConsumeResult{Item: updated}, nil
}
