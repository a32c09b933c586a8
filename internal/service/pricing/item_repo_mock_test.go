package pricing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*domain.InventoryItem, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.InventoryItem, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*domain.InventoryItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}{Ctx: ctx, UserID: userID, ItemID: itemID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, itemID)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.InventoryItem, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
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

func (mock *itemRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
