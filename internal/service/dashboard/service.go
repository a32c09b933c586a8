package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/config"
	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/rules"
)

type itemLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.InventoryItem, error)
}

type entryLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingEntry, error)
}

type recLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error)
}

// Service assembles the overview shown on the home screen.
type Service struct {
	log        *slog.Logger
	items      itemLister
	entries    entryLister
	recs       recLister
	classifier rules.Classifier
	topN       int
	now        func() time.Time
}

// NewService creates a new Dashboard service.
func NewService(
	logger *slog.Logger,
	items itemLister,
	entries entryLister,
	recs recLister,
	cfg config.PantryConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "dashboard"),
		items:      items,
		entries:    entries,
		recs:       recs,
		classifier: rules.Classifier{CriticalRatio: cfg.CriticalRatio, WarningRatio: cfg.WarningRatio},
		topN:       cfg.DashboardTopN,
		now:        time.Now,
	}
}
