package pricing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

type itemRepo interface {
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.InventoryItem, error)
}

type priceRepo interface {
	ListByItem(ctx context.Context, userID, itemID uuid.UUID) ([]domain.PricePoint, error)
	ListByItemIDs(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (map[uuid.UUID][]domain.PricePoint, error)
}

// Service builds price trends from pantry items and their price history.
type Service struct {
	log    *slog.Logger
	items  itemRepo
	prices priceRepo
	now    func() time.Time
}

// NewService creates a new Pricing service.
func NewService(logger *slog.Logger, items itemRepo, prices priceRepo) *Service {
	return &Service{
		log:    logger.With("service", "pricing"),
		items:  items,
		prices: prices,
		now:    time.Now,
	}
}
