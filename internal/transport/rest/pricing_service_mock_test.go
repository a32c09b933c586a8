package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/service/pricing"
)

var _ pricingService = &pricingServiceMock{}

type pricingServiceMock struct {
	GetTrendFunc   func(ctx context.Context, input pricing.GetTrendInput) (*domain.PriceTrend, error)
	ListTrendsFunc func(ctx context.Context, r domain.TrendRange) ([]domain.PriceTrend, error)

	calls struct {
		GetTrend []struct {
			Ctx   context.Context
			Input pricing.GetTrendInput
		}
		ListTrends []struct {
			Ctx context.Context
			R   domain.TrendRange
		}
	}
	lockGetTrend   sync.RWMutex
	lockListTrends sync.RWMutex
}

func (mock *pricingServiceMock) GetTrend(ctx context.Context, input pricing.GetTrendInput) (*domain.PriceTrend, error) {
	if mock.GetTrendFunc == nil {
		panic("pricingServiceMock.GetTrendFunc: method is nil but pricingService.GetTrend was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pricing.GetTrendInput
	}{Ctx: ctx, Input: input}
	mock.lockGetTrend.Lock()
	mock.calls.GetTrend = append(mock.calls.GetTrend, callInfo)
	mock.lockGetTrend.Unlock()
	return mock.GetTrendFunc(ctx, input)
}

func (mock *pricingServiceMock) GetTrendCalls() []struct {
	Ctx   context.Context
	Input pricing.GetTrendInput
} {
	mock.lockGetTrend.RLock()
	calls := mock.calls.GetTrend
	mock.lockGetTrend.RUnlock()
	return calls
}

func (mock *pricingServiceMock) ListTrends(ctx context.Context, r domain.TrendRange) ([]domain.PriceTrend, error) {
	if mock.ListTrendsFunc == nil {
		panic("pricingServiceMock.ListTrendsFunc: method is nil but pricingService.ListTrends was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   domain.TrendRange
	}{Ctx: ctx, R: r}
	mock.lockListTrends.Lock()
	mock.calls.ListTrends = append(mock.calls.ListTrends, callInfo)
	mock.lockListTrends.Unlock()
	return mock.ListTrendsFunc(ctx, r)
}

func (mock *pricingServiceMock) ListTrendsCalls() []struct {
	Ctx context.Context
	R   domain.TrendRange
} {
	mock.lockListTrends.RLock()
	calls := mock.calls.ListTrends
	mock.lockListTrends.RUnlock()
	return calls
}
