package pricing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

var _ priceRepo = &priceRepoMock{}

type priceRepoMock struct {
	ListByItemFunc    func(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) ([]domain.PricePoint, error)
	ListByItemIDsFunc func(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (map[uuid.UUID][]domain.PricePoint, error)

	calls struct {
		ListByItem []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ItemID uuid.UUID
		}
		ListByItemIDs []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			ItemIDs []uuid.UUID
		}
	}
	lockListByItem    sync.RWMutex
	lockListByItemIDs sync.RWMutex
}

func (mock *priceRepoMock) ListByItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) ([]domain.PricePoint, error) {
	if mock.ListByItemFunc == nil {
		panic("priceRepoMock.ListByItemFunc: method is nil but priceRepo.ListByItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ItemID uuid.UUID
	}{Ctx: ctx, UserID: userID, ItemID: itemID}
	mock.lockListByItem.Lock()
	mock.calls.ListByItem = append(mock.calls.ListByItem, callInfo)
	mock.lockListByItem.Unlock()
	return mock.ListByItemFunc(ctx, userID, itemID)
}

func (mock *priceRepoMock) ListByItemCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lockListByItem.RLock()
	calls := mock.calls.ListByItem
	mock.lockListByItem.RUnlock()
	return calls
}

func (mock *priceRepoMock) ListByItemIDs(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (map[uuid.UUID][]domain.PricePoint, error) {
	if mock.ListByItemIDsFunc == nil {
		panic("priceRepoMock.ListByItemIDsFunc: method is nil but priceRepo.ListByItemIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		ItemIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, ItemIDs: itemIDs}
	mock.lockListByItemIDs.Lock()
	mock.calls.ListByItemIDs = append(mock.calls.ListByItemIDs, callInfo)
	mock.lockListByItemIDs.Unlock()
	return mock.ListByItemIDsFunc(ctx, userID, itemIDs)
}

func (mock *priceRepoMock) ListByItemIDsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	ItemIDs []uuid.UUID
} {
	mock.lockListByItemIDs.RLock()
	calls := mock.calls.ListByItemIDs
	mock.lockListByItemIDs.RUnlock()
	return calls
}
