package pantry

import (
	"context"
	"sync"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

var _ shoppingRepo = &shoppingRepoMock{}

type shoppingRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.ShoppingEntry) (*domain.ShoppingEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.ShoppingEntry
		}
	}
	lockCreate sync.RWMutex
}

func (mock *shoppingRepoMock) Create(ctx context.Context, e *domain.ShoppingEntry) (*domain.ShoppingEntry, error) {
	if mock.CreateFunc == nil {
		panic("shoppingRepoMock.CreateFunc: method is nil but shoppingRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.ShoppingEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *shoppingRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.ShoppingEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
