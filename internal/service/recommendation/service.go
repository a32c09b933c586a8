package recommendation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

type recRepo interface {
	GetByID(ctx context.Context, userID, recID uuid.UUID) (*domain.Recommendation, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error)
	Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error)
	Delete(ctx context.Context, userID, recID uuid.UUID) error
}

type shoppingRepo interface {
	Create(ctx context.Context, e *domain.ShoppingEntry) (*domain.ShoppingEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements recommendation operations.
type Service struct {
	log      *slog.Logger
	recs     recRepo
	shopping shoppingRepo
	tx       txManager
}

// NewService creates a new Recommendation service.
func NewService(logger *slog.Logger, recs recRepo, shopping shoppingRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "recommendation"),
		recs:     recs,
		shopping: shopping,
		tx:       tx,
	}
}
