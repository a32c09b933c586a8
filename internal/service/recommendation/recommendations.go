package recommendation

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

// Shopping entry fields used when a recommendation is promoted.
const (
	promotedQuantity = 1.0
	promotedUnit     = "pack"
)

// ListRecommendations returns the user's recommendations in rank order,
// filtered by type.
func (s *Service) ListRecommendations(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	recs, err := s.recs.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	filtered, err := rules.FilterByType(rules.Rank(recs), input.Type)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Recommendations: filtered,
		TotalSavings:    rules.TotalSavings(filtered),
		Types:           Types(),
	}, nil
}

// Types returns the filter values a client may pass: "all" followed by every
// recommendation type.
func Types() []string {
	all := domain.RecommendationTypes()
	out := make([]string, 0, len(all)+1)
	out = append(out, domain.RecommendationTypeAll)
	for _, t := range all {
		out = append(out, t.String())
	}
	return out
}

// CreateRecommendation stores a recommendation from the external generator.
func (s *Service) CreateRecommendation(ctx context.Context, input CreateInput) (*domain.Recommendation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.recs.Create(ctx, &domain.Recommendation{
		ID:              uuid.New(),
		UserID:          userID,
		ItemName:        strings.TrimSpace(input.ItemName),
		Type:            input.Type,
		Reason:          strings.TrimSpace(input.Reason),
		Priority:        input.Priority,
		Savings:         input.Savings,
		DaysUntilNeeded: input.DaysUntilNeeded,
		CurrentPrice:    input.CurrentPrice,
		PreviousPrice:   input.PreviousPrice,
		Confidence:      input.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("create recommendation: %w", err)
	}

	s.log.InfoContext(ctx, "recommendation created",
		slog.String("user_id", userID.String()),
		slog.String("recommendation_id", created.ID.String()),
		slog.String("type", created.Type.String()),
	)

	return created, nil
}

// DismissRecommendation drops a recommendation the user does not want.
func (s *Service) DismissRecommendation(ctx context.Context, recID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if recID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.recs.Delete(ctx, userID, recID); err != nil {
		return fmt.Errorf("delete recommendation: %w", err)
	}

	s.log.InfoContext(ctx, "recommendation dismissed",
		slog.String("user_id", userID.String()),
		slog.String("recommendation_id", recID.String()),
	)

	return nil
}

// PromoteRecommendation moves a recommendation onto the shopping list. The
// entry is created and the recommendation removed in one transaction.
func (s *Service) PromoteRecommendation(ctx context.Context, recID uuid.UUID) (*domain.ShoppingEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if recID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var entry *domain.ShoppingEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.recs.GetByID(txCtx, userID, recID)
		if err != nil {
			return fmt.Errorf("get recommendation: %w", err)
		}

		days := rec.DaysUntilNeeded
		entry, err = s.shopping.Create(txCtx, &domain.ShoppingEntry{
			ID:              uuid.New(),
			UserID:          userID,
			Name:            rec.ItemName,
			Quantity:        promotedQuantity,
			Unit:            promotedUnit,
			EstimatedPrice:  rec.CurrentPrice,
			Priority:        rec.Priority,
			Category:        domain.DefaultCategory,
			Reason:          rec.Reason,
			DaysUntilNeeded: &days,
		})
		if err != nil {
			return fmt.Errorf("create shopping entry: %w", err)
		}

		if err := s.recs.Delete(txCtx, userID, recID); err != nil {
			return fmt.Errorf("delete recommendation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "recommendation promoted",
		slog.String("user_id", userID.String()),
		slog.String("recommendation_id", recID.String()),
		slog.String("entry_id", entry.ID.String()),
	)

	return entry, nil
}
