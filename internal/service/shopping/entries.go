package shopping

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

// CreateEntry adds an entry to the shopping list by hand.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.ShoppingEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.ShoppingEntry{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            strings.TrimSpace(input.Name),
		Quantity:        input.Quantity,
		Unit:            strings.TrimSpace(input.Unit),
		EstimatedPrice:  input.EstimatedPrice,
		Priority:        input.Priority,
		Category:        strings.TrimSpace(input.Category),
		Reason:          strings.TrimSpace(input.Reason),
		DaysUntilNeeded: input.DaysUntilNeeded,
	}
	if entry.Quantity == 0 {
		entry.Quantity = DefaultQuantity
	}
	if entry.Unit == "" {
		entry.Unit = DefaultUnit
	}
	if entry.Priority == "" {
		entry.Priority = domain.PriorityMedium
	}
	if entry.Category == "" {
		entry.Category = domain.DefaultCategory
	}
	if entry.Reason == "" {
		entry.Reason = DefaultReason
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create shopping entry: %w", err)
	}

	s.log.InfoContext(ctx, "shopping entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
	)

	return created, nil
}

// ListEntries returns the shopping list. Completed entries are hidden when
// ShowCompleted is false. Categories and Summary cover the whole list.
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) (*ListEntriesResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	all, err := s.entries.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list shopping entries: %w", err)
	}

	showCompleted := true
	if input.ShowCompleted != nil {
		showCompleted = *input.ShowCompleted
	}

	visible := rules.FilterByCategory(all, input.Category)
	visible = rules.FilterCompleted(visible, showCompleted)

	return &ListEntriesResult{
		Entries:    visible,
		Categories: rules.Categories(all),
		Summary:    rules.SummarizeShopping(all),
	}, nil
}

// UpdateEntry applies a partial update to a shopping entry.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.ShoppingEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get shopping entry: %w", err)
	}

	if input.Name != nil {
		entry.Name = strings.TrimSpace(*input.Name)
	}
	if input.Quantity != nil {
		entry.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		entry.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.EstimatedPrice != nil {
		entry.EstimatedPrice = *input.EstimatedPrice
	}
	if input.Priority != nil {
		entry.Priority = *input.Priority
	}
	if input.Category != nil {
		entry.Category = strings.TrimSpace(*input.Category)
		if entry.Category == "" {
			entry.Category = domain.DefaultCategory
		}
	}

	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("update shopping entry: %w", err)
	}

	s.log.InfoContext(ctx, "shopping entry updated",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", updated.ID.String()),
	)

	return updated, nil
}

// ToggleEntry flips the checked state of an entry.
func (s *Service) ToggleEntry(ctx context.Context, entryID uuid.UUID) (*domain.ShoppingEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	entry, err := s.entries.Toggle(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("toggle shopping entry: %w", err)
	}

	s.log.InfoContext(ctx, "shopping entry toggled",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.Bool("checked", entry.IsChecked),
	)

	return entry, nil
}

// DeleteEntry removes an entry from the shopping list.
func (s *Service) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if entryID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("delete shopping entry: %w", err)
	}

	s.log.InfoContext(ctx, "shopping entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return nil
}

// ClearChecked removes every checked entry and returns how many were removed.
func (s *Service) ClearChecked(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.entries.DeleteChecked(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clear checked entries: %w", err)
	}

	s.log.InfoContext(ctx, "checked shopping entries cleared",
		slog.String("user_id", userID.String()),
		slog.Int("count", n),
	)

	return n, nil
}
