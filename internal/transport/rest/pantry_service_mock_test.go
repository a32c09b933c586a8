package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/service/pantry"
)

var _ pantryService = &pantryServiceMock{}

type pantryServiceMock struct {
	CreateItemFunc        func(ctx context.Context, input pantry.CreateItemInput) (*domain.InventoryItem, error)
	GetItemFunc           func(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error)
	ListItemsFunc         func(ctx context.Context, input pantry.ListItemsInput) (*pantry.ListItemsResult, error)
	UpdateItemFunc        func(ctx context.Context, input pantry.UpdateItemInput) (*domain.InventoryItem, error)
	DeleteItemFunc        func(ctx context.Context, itemID uuid.UUID) error
	UpdatePriceFunc       func(ctx context.Context, input pantry.UpdatePriceInput) (*pantry.UpdatePriceResult, error)
	ConsumeItemFunc       func(ctx context.Context, input pantry.ConsumeItemInput) (*pantry.ConsumeResult, error)
	AddToShoppingListFunc func(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingEntry, error)

	calls struct {
		CreateItem []struct {
			Ctx   context.Context
			Input pantry.CreateItemInput
		}
		GetItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		ListItems []struct {
			Ctx   context.Context
			Input pantry.ListItemsInput
		}
		UpdateItem []struct {
			Ctx   context.Context
			Input pantry.UpdateItemInput
		}
		DeleteItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
		UpdatePrice []struct {
			Ctx   context.Context
			Input pantry.UpdatePriceInput
		}
		ConsumeItem []struct {
			Ctx   context.Context
			Input pantry.ConsumeItemInput
		}
		AddToShoppingList []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockCreateItem        sync.RWMutex
	lockGetItem           sync.RWMutex
	lockListItems         sync.RWMutex
	lockUpdateItem        sync.RWMutex
	lockDeleteItem        sync.RWMutex
	lockUpdatePrice       sync.RWMutex
	lockConsumeItem       sync.RWMutex
	lockAddToShoppingList sync.RWMutex
}

func (mock *pantryServiceMock) CreateItem(ctx context.Context, input pantry.CreateItemInput) (*domain.InventoryItem, error) {
	if mock.CreateItemFunc == nil {
		panic("pantryServiceMock.CreateItemFunc: method is nil but pantryService.CreateItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pantry.CreateItemInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateItem.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, callInfo)
	mock.lockCreateItem.Unlock()
	return mock.CreateItemFunc(ctx, input)
}

func (mock *pantryServiceMock) CreateItemCalls() []struct {
	Ctx   context.Context
	Input pantry.CreateItemInput
} {
	mock.lockCreateItem.RLock()
	calls := mock.calls.CreateItem
	mock.lockCreateItem.RUnlock()
	return calls
}

func (mock *pantryServiceMock) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InventoryItem, error) {
	if mock.GetItemFunc == nil {
		panic("pantryServiceMock.GetItemFunc: method is nil but pantryService.GetItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, itemID)
}

func (mock *pantryServiceMock) GetItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *pantryServiceMock) ListItems(ctx context.Context, input pantry.ListItemsInput) (*pantry.ListItemsResult, error) {
	if mock.ListItemsFunc == nil {
		panic("pantryServiceMock.ListItemsFunc: method is nil but pantryService.ListItems was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pantry.ListItemsInput
	}{Ctx: ctx, Input: input}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, callInfo)
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, input)
}

func (mock *pantryServiceMock) ListItemsCalls() []struct {
	Ctx   context.Context
	Input pantry.ListItemsInput
} {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *pantryServiceMock) UpdateItem(ctx context.Context, input pantry.UpdateItemInput) (*domain.InventoryItem, error) {
	if mock.UpdateItemFunc == nil {
		panic("pantryServiceMock.UpdateItemFunc: method is nil but pantryService.UpdateItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pantry.UpdateItemInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateItem.Lock()
	mock.calls.UpdateItem = append(mock.calls.UpdateItem, callInfo)
	mock.lockUpdateItem.Unlock()
	return mock.UpdateItemFunc(ctx, input)
}

func (mock *pantryServiceMock) UpdateItemCalls() []struct {
	Ctx   context.Context
	Input pantry.UpdateItemInput
} {
	mock.lockUpdateItem.RLock()
	calls := mock.calls.UpdateItem
	mock.lockUpdateItem.RUnlock()
	return calls
}

func (mock *pantryServiceMock) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if mock.DeleteItemFunc == nil {
		panic("pantryServiceMock.DeleteItemFunc: method is nil but pantryService.DeleteItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockDeleteItem.Lock()
	mock.calls.DeleteItem = append(mock.calls.DeleteItem, callInfo)
	mock.lockDeleteItem.Unlock()
	return mock.DeleteItemFunc(ctx, itemID)
}

func (mock *pantryServiceMock) DeleteItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockDeleteItem.RLock()
	calls := mock.calls.DeleteItem
	mock.lockDeleteItem.RUnlock()
	return calls
}

func (mock *pantryServiceMock) UpdatePrice(ctx context.Context, input pantry.UpdatePriceInput) (*pantry.UpdatePriceResult, error) {
	if mock.UpdatePriceFunc == nil {
		panic("pantryServiceMock.UpdatePriceFunc: method is nil but pantryService.UpdatePrice was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pantry.UpdatePriceInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdatePrice.Lock()
	mock.calls.UpdatePrice = append(mock.calls.UpdatePrice, callInfo)
	mock.lockUpdatePrice.Unlock()
	return mock.UpdatePriceFunc(ctx, input)
}

func (mock *pantryServiceMock) UpdatePriceCalls() []struct {
	Ctx   context.Context
	Input pantry.UpdatePriceInput
} {
	mock.lockUpdatePrice.RLock()
	calls := mock.calls.UpdatePrice
	mock.lockUpdatePrice.RUnlock()
	return calls
}

func (mock *pantryServiceMock) ConsumeItem(ctx context.Context, input pantry.ConsumeItemInput) (*pantry.ConsumeResult, error) {
	if mock.ConsumeItemFunc == nil {
		panic("pantryServiceMock.ConsumeItemFunc: method is nil but pantryService.ConsumeItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pantry.ConsumeItemInput
	}{Ctx: ctx, Input: input}
	mock.lockConsumeItem.Lock()
	mock.calls.ConsumeItem = append(mock.calls.ConsumeItem, callInfo)
	mock.lockConsumeItem.Unlock()
	return mock.ConsumeItemFunc(ctx, input)
}

func (mock *pantryServiceMock) ConsumeItemCalls() []struct {
	Ctx   context.Context
	Input pantry.ConsumeItemInput
} {
	mock.lockConsumeItem.RLock()
	calls := mock.calls.ConsumeItem
	mock.lockConsumeItem.RUnlock()
	return calls
}

func (mock *pantryServiceMock) AddToShoppingList(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingEntry, error) {
	if mock.AddToShoppingListFunc == nil {
		panic("pantryServiceMock.AddToShoppingListFunc: method is nil but pantryService.AddToShoppingList was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{Ctx: ctx, ItemID: itemID}
	mock.lockAddToShoppingList.Lock()
	mock.calls.AddToShoppingList = append(mock.calls.AddToShoppingList, callInfo)
	mock.lockAddToShoppingList.Unlock()
	return mock.AddToShoppingListFunc(ctx, itemID)
}

func (mock *pantryServiceMock) AddToShoppingListCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	mock.lockAddToShoppingList.RLock()
	calls := mock.calls.AddToShoppingList
	mock.lockAddToShoppingList.RUnlock()
	return calls
}
