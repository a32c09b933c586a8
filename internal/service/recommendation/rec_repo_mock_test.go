package recommendation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

var _ recRepo = &recRepoMock{}

type recRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, recID uuid.UUID) (*domain.Recommendation, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error)
	CreateFunc  func(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, recID uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			RecID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Rec *domain.Recommendation
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			RecID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *recRepoMock) GetByID(ctx context.Context, userID uuid.UUID, recID uuid.UUID) (*domain.Recommendation, error) {
	if mock.GetByIDFunc == nil {
		panic("recRepoMock.GetByIDFunc: method is nil but recRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		RecID  uuid.UUID
	}{Ctx: ctx, UserID: userID, RecID: recID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, recID)
}

func (mock *recRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	RecID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *recRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error) {
	if mock.ListFunc == nil {
		panic("recRepoMock.ListFunc: method is nil but recRepo.List was just called")
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

func (mock *recRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recRepoMock) Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	if mock.CreateFunc == nil {
		panic("recRepoMock.CreateFunc: method is nil but recRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.Recommendation
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.Recommendation
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *recRepoMock) Delete(ctx context.Context, userID uuid.UUID, recID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("recRepoMock.DeleteFunc: method is nil but recRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		RecID  uuid.UUID
	}{Ctx: ctx, UserID: userID, RecID: recID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, recID)
}

func (mock *recRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	RecID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
