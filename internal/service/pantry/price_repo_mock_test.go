package pantry

import (
	"context"
	"sync"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

var _ priceRepo = &priceRepoMock{}

type priceRepoMock struct {
	UpsertFunc func(ctx context.Context, p *domain.PricePoint) (*domain.PricePoint, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			P   *domain.PricePoint
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *priceRepoMock) Upsert(ctx context.Context, p *domain.PricePoint) (*domain.PricePoint, error) {
	if mock.UpsertFunc == nil {
		panic("priceRepoMock.UpsertFunc: method is nil but priceRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.PricePoint
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *priceRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   *domain.PricePoint
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
