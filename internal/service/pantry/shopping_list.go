package pantry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/pkg/ctxutil"
)

// AddToShoppingList puts a pantry item on the shopping list. The entry's
// priority follows the item's status.
func (s *Service) AddToShoppingList(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get pantry item: %w", err)
	}

	if err := s.deriveOne(item); err != nil {
		return nil, err
	}

	days := max(item.DaysLeft, 0)
	entry, err := s.shopping.Create(ctx, &domain.ShoppingEntry{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            item.Name,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		EstimatedPrice:  item.CurrentPrice,
		Priority:        priorityForStatus(item.Status),
		Category:        item.Category,
		Reason:          restockReason(item.Status, days),
		DaysUntilNeeded: &days,
		SourceItemID:    &item.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create shopping entry: %w", err)
	}

	s.log.InfoContext(ctx, "pantry item added to shopping list",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("priority", entry.Priority.String()),
	)

	return entry, nil
}

func priorityForStatus(st domain.ItemStatus) domain.Priority {
	switch st {
	case domain.ItemStatusCritical:
		return domain.PriorityHigh
	case domain.ItemStatusWarning:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func restockReason(st domain.ItemStatus, days int) string {
	switch st {
	case domain.ItemStatusCritical:
		return fmt.Sprintf("Running low - needed in %d days", days)
	case domain.ItemStatusWarning:
		return "Stock running low"
	default:
		return "Restock"
	}
}
