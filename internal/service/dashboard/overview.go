package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/rules"
	"github.com/heartmarshall/pantry-backend/pkg/ctxutil"
)

// Overview is the dashboard view of one user's data.
type Overview struct {
	Snapshot           domain.Snapshot
	Pantry             domain.PantrySummary
	Shopping           domain.ShoppingSummary
	TopRecommendations []domain.Recommendation
	// TotalSavings sums the savings of every recommendation.
	TotalSavings decimal.Decimal
}

// GetOverview loads the pantry, shopping list and recommendations together
// and derives the dashboard figures from that snapshot.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var snap domain.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.items.List(gctx, userID)
		if err != nil {
			return fmt.Errorf("list pantry items: %w", err)
		}
		snap.Items = items
		return nil
	})
	g.Go(func() error {
		entries, err := s.entries.List(gctx, userID)
		if err != nil {
			return fmt.Errorf("list shopping entries: %w", err)
		}
		snap.Entries = entries
		return nil
	})
	g.Go(func() error {
		recs, err := s.recs.List(gctx, userID)
		if err != nil {
			return fmt.Errorf("list recommendations: %w", err)
		}
		snap.Recommendations = recs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	for i := range snap.Items {
		if err := s.classifier.Derive(&snap.Items[i], now); err != nil {
			return nil, fmt.Errorf("derive status of %s: %w", snap.Items[i].ID, err)
		}
	}

	ranked := rules.Rank(snap.Recommendations)
	top := ranked
	if len(top) > s.topN {
		top = top[:s.topN]
	}

	s.log.DebugContext(ctx, "dashboard assembled",
		slog.String("user_id", userID.String()),
		slog.Int("items", len(snap.Items)),
		slog.Int("entries", len(snap.Entries)),
		slog.Int("recommendations", len(snap.Recommendations)),
	)

	return &Overview{
		Snapshot:           snap,
		Pantry:             rules.SummarizePantry(snap.Items),
		Shopping:           rules.SummarizeShopping(snap.Entries),
		TopRecommendations: top,
		TotalSavings:       rules.TotalSavings(snap.Recommendations),
	}, nil
}
