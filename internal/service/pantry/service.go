package pantry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/config"
	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/rules"
)

type itemRepo interface {
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.InventoryItem, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

type priceRepo interface {
	Upsert(ctx context.Context, p *domain.PricePoint) (*domain.PricePoint, error)
}

type shoppingRepo interface {
	Create(ctx context.Context, e *domain.ShoppingEntry) (*domain.ShoppingEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements pantry inventory operations.
type Service struct {
	log        *slog.Logger
	items      itemRepo
	prices     priceRepo
	shopping   shoppingRepo
	tx         txManager
	classifier rules.Classifier
	cfg        config.PantryConfig
	now        func() time.Time
}

// NewService creates a new Pantry service.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	prices priceRepo,
	shopping shoppingRepo,
	tx txManager,
	cfg config.PantryConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "pantry"),
		items:      items,
		prices:     prices,
		shopping:   shopping,
		tx:         tx,
		classifier: rules.Classifier{CriticalRatio: cfg.CriticalRatio, WarningRatio: cfg.WarningRatio},
		cfg:        cfg,
		now:        time.Now,
	}
}

// derive fills the read-time fields of every item.
func (s *Service) derive(items []domain.InventoryItem) error {
	now := s.now()
	for i := range items {
		if err := s.classifier.Derive(&items[i], now); err != nil {
			return fmt.Errorf("derive status of %s: %w", items[i].ID, err)
		}
	}
	return nil
}

func (s *Service) deriveOne(item *domain.InventoryItem) error {
	if err := s.classifier.Derive(item, s.now()); err != nil {
		return fmt.Errorf("derive status of %s: %w", item.ID, err)
	}
	return nil
}

// recordPrice stores the price of item for the current period. Zero prices
// mean "unknown" and are not recorded.
func (s *Service) recordPrice(ctx context.Context, item *domain.InventoryItem) error {
	if item.CurrentPrice.IsZero() {
		return nil
	}

	now := s.now().UTC()
	_, err := s.prices.Upsert(ctx, &domain.PricePoint{
		ID:         uuid.New(),
		ItemID:     item.ID,
		UserID:     item.UserID,
		Period:     domain.PeriodOf(now),
		Price:      item.CurrentPrice,
		RecordedAt: now,
	})
	if err != nil {
		return fmt.Errorf("record price: %w", err)
	}
	return nil
}
