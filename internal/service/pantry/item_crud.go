package pantry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/rules"
	"github.com/heartmarshall/pantry-backend/pkg/ctxutil"
)

// CreateItem adds an item to the pantry and records its first price point.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.InventoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.items.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count pantry items: %w", err)
	}
	if count >= s.cfg.MaxItemsPerUser {
		return nil, domain.NewValidationError("pantry", fmt.Sprintf("pantry is full (max %d items)", s.cfg.MaxItemsPerUser))
	}

	purchasedAt := s.now().UTC()
	if input.PurchasedAt != nil {
		purchasedAt = input.PurchasedAt.UTC()
	}
	lastPrice := input.CurrentPrice
	if input.LastPrice != nil {
		lastPrice = *input.LastPrice
	}

	var created *domain.InventoryItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.items.Create(txCtx, &domain.InventoryItem{
			ID:                uuid.New(),
			UserID:            userID,
			Name:              strings.TrimSpace(input.Name),
			Category:          categoryOrDefault(input.Category),
			Quantity:          input.Quantity,
			Unit:              strings.TrimSpace(input.Unit),
			PurchasedAt:       purchasedAt,
			EstimatedDuration: input.EstimatedDuration,
			CurrentPrice:      input.CurrentPrice,
			LastPrice:         lastPrice,
		})
		if createErr != nil {
			return fmt.Errorf("create pantry item: %w", createErr)
		}
		return s.recordPrice(txCtx, created)
	})
	if err != nil {
		return nil, err
	}

	if err := s.deriveOne(created); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pantry item created",
		slog.String("user_id", userID.String()),
		slog.String("item_id", created.ID.String()),
		slog.String("status", created.Status.String()),
	)

	return created, nil
}

// GetItem returns a single pantry item with its derived status.
func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
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
	return item, nil
}

// ListItems returns the pantry filtered by category. Categories and Summary
// always describe the whole pantry.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) (*ListItemsResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.items.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}

	if err := s.derive(items); err != nil {
		return nil, err
	}

	return &ListItemsResult{
		Items:      rules.FilterByCategory(items, input.Category),
		Categories: rules.Categories(items),
		Summary:    rules.SummarizePantry(items),
	}, nil
}

// UpdateItem applies a partial update to a pantry item.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.InventoryItem, error) {
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

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		item.Category = categoryOrDefault(*input.Category)
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		item.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.PurchasedAt != nil {
		item.PurchasedAt = input.PurchasedAt.UTC()
	}
	if input.EstimatedDuration != nil {
		item.EstimatedDuration = *input.EstimatedDuration
	}

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update pantry item: %w", err)
	}

	if err := s.deriveOne(updated); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pantry item updated",
		slog.String("user_id", userID.String()),
		slog.String("item_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteItem removes a pantry item.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if itemID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.items.Delete(ctx, userID, itemID); err != nil {
		return fmt.Errorf("delete pantry item: %w", err)
	}

	s.log.InfoContext(ctx, "pantry item deleted",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	)

	return nil
}
