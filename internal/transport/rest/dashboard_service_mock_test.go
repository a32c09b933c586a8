package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/pantry-backend/internal/service/dashboard"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	GetOverviewFunc func(ctx context.Context) (*dashboard.Overview, error)

	calls struct {
		GetOverview []struct {
			Ctx context.Context
		}
	}
	lockGetOverview sync.RWMutex
}

func (mock *dashboardServiceMock) GetOverview(ctx context.Context) (*dashboard.Overview, error) {
	if mock.GetOverviewFunc == nil {
		panic("dashboardServiceMock.GetOverviewFunc: method is nil but dashboardService.GetOverview was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetOverview.Lock()
	mock.calls.GetOverview = append(mock.calls.GetOverview, callInfo)
	mock.lockGetOverview.Unlock()
	return mock.GetOverviewFunc(ctx)
}

func (mock *dashboardServiceMock) GetOverviewCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetOverview.RLock()
	calls := mock.calls.GetOverview
	mock.lockGetOverview.RUnlock()
	return calls
}
