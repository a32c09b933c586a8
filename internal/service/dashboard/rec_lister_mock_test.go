package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

var _ recLister = &recListerMock{}

type recListerMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockList sync.RWMutex
}

func (mock *recListerMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error) {
	if mock.ListFunc == nil {
		panic("recListerMock.ListFunc: method is nil but recLister.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *recListerMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
