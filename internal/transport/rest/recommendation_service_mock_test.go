package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/service/recommendation"
)

var _ recommendationService = &recommendationServiceMock{}

type recommendationServiceMock struct {
	ListRecommendationsFunc   func(ctx context.Context, input recommendation.ListInput) (*recommendation.ListResult, error)
	CreateRecommendationFunc  func(ctx context.Context, input recommendation.CreateInput) (*domain.Recommendation, error)
	DismissRecommendationFunc func(ctx context.Context, recID uuid.UUID) error
	PromoteRecommendationFunc func(ctx context.Context, recID uuid.UUID) (*domain.ShoppingEntry, error)

	calls struct {
		ListRecommendations []struct {
			Ctx   context.Context
			Input recommendation.ListInput
		}
		CreateRecommendation []struct {
			Ctx   context.Context
			Input recommendation.CreateInput
		}
		DismissRecommendation []struct {
			Ctx   context.Context
			RecID uuid.UUID
		}
		PromoteRecommendation []struct {
			Ctx   context.Context
			RecID uuid.UUID
		}
	}
	lockListRecommendations   sync.RWMutex
	lockCreateRecommendation  sync.RWMutex
	lockDismissRecommendation sync.RWMutex
	lockPromoteRecommendation sync.RWMutex
}

func (mock *recommendationServiceMock) ListRecommendations(ctx context.Context, input recommendation.ListInput) (*recommendation.ListResult, error) {
	if mock.ListRecommendationsFunc == nil {
		panic("recommendationServiceMock.ListRecommendationsFunc: method is nil but recommendationService.ListRecommendations was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recommendation.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListRecommendations.Lock()
	mock.calls.ListRecommendations = append(mock.calls.ListRecommendations, callInfo)
	mock.lockListRecommendations.Unlock()
	return mock.ListRecommendationsFunc(ctx, input)
}

func (mock *recommendationServiceMock) ListRecommendationsCalls() []struct {
	Ctx   context.Context
	Input recommendation.ListInput
} {
	mock.lockListRecommendations.RLock()
	calls := mock.calls.ListRecommendations
	mock.lockListRecommendations.RUnlock()
	return calls
}

func (mock *recommendationServiceMock) CreateRecommendation(ctx context.Context, input recommendation.CreateInput) (*domain.Recommendation, error) {
	if mock.CreateRecommendationFunc == nil {
		panic("recommendationServiceMock.CreateRecommendationFunc: method is nil but recommendationService.CreateRecommendation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recommendation.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateRecommendation.Lock()
	mock.calls.CreateRecommendation = append(mock.calls.CreateRecommendation, callInfo)
	mock.lockCreateRecommendation.Unlock()
	return mock.CreateRecommendationFunc(ctx, input)
}

func (mock *recommendationServiceMock) CreateRecommendationCalls() []struct {
	Ctx   context.Context
	Input recommendation.CreateInput
} {
	mock.lockCreateRecommendation.RLock()
	calls := mock.calls.CreateRecommendation
	mock.lockCreateRecommendation.RUnlock()
	return calls
}

func (mock *recommendationServiceMock) DismissRecommendation(ctx context.Context, recID uuid.UUID) error {
	if mock.DismissRecommendationFunc == nil {
		panic("recommendationServiceMock.DismissRecommendationFunc: method is nil but recommendationService.DismissRecommendation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RecID uuid.UUID
	}{Ctx: ctx, RecID: recID}
	mock.lockDismissRecommendation.Lock()
	mock.calls.DismissRecommendation = append(mock.calls.DismissRecommendation, callInfo)
	mock.lockDismissRecommendation.Unlock()
	return mock.DismissRecommendationFunc(ctx, recID)
}

func (mock *recommendationServiceMock) DismissRecommendationCalls() []struct {
	Ctx   context.Context
	RecID uuid.UUID
} {
	mock.lockDismissRecommendation.RLock()
	calls := mock.calls.DismissRecommendation
	mock.lockDismissRecommendation.RUnlock()
	return calls
}

func (mock *recommendationServiceMock) PromoteRecommendation(ctx context.Context, recID uuid.UUID) (*domain.ShoppingEntry, error) {
	if mock.PromoteRecommendationFunc == nil {
		panic("recommendationServiceMock.PromoteRecommendationFunc: method is nil but recommendationService.PromoteRecommendation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RecID uuid.UUID
	}{Ctx: ctx, RecID: recID}
	mock.lockPromoteRecommendation.Lock()
	mock.calls.PromoteRecommendation = append(mock.calls.PromoteRecommendation, callInfo)
	mock.lockPromoteRecommendation.Unlock()
	return mock.PromoteRecommendationFunc(ctx, recID)
}

func (mock *recommendationServiceMock) PromoteRecommendationCalls() []struct {
	Ctx   context.Context
	RecID uuid.UUID
} {
	mock.lockPromoteRecommendation.RLock()
	calls := mock.calls.PromoteRecommendation
	mock.lockPromoteRecommendation.RUnlock()
	return calls
}
