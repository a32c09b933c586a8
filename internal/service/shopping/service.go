package shopping

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.ShoppingEntry, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.ShoppingEntry, error)
	Create(ctx context.Context, e *domain.ShoppingEntry) (*domain.ShoppingEntry, error)
	Update(ctx context.Context, e *domain.ShoppingEntry) (*domain.ShoppingEntry, error)
	Toggle(ctx context.Context, userID, entryID uuid.UUID) (*domain.ShoppingEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	DeleteChecked(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service implements shopping list operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
}

// NewService creates a new Shopping service.
func NewService(logger *slog.Logger, entries entryRepo) *Service {
	return &Service{
		log:     logger.With("service", "shopping"),
		entries: entries,
	}
}
