package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

var _ itemLister = &itemListerMock{}

type itemListerMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID) ([]domain.InventoryItem, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockList sync.RWMutex
}

func (mock *itemListerMock) List(ctx context.Context, userID uuid.UUID) ([]domain.InventoryItem, error) {
	if mock.ListFunc == nil {
		panic("itemListerMock.ListFunc: method is nil but itemLister.List was just called")
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

func (mock *itemListerMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
