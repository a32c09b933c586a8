package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/service/shopping"
)

var _ shoppingService = &shoppingServiceMock{}

type shoppingServiceMock struct {
	CreateEntryFunc  func(ctx context.Context, input shopping.CreateEntryInput) (*domain.ShoppingEntry, error)
	ListEntriesFunc  func(ctx context.Context, input shopping.ListEntriesInput) (*shopping.ListEntriesResult, error)
	UpdateEntryFunc  func(ctx context.Context, input shopping.UpdateEntryInput) (*domain.ShoppingEntry, error)
	ToggleEntryFunc  func(ctx context.Context, entryID uuid.UUID) (*domain.ShoppingEntry, error)
	DeleteEntryFunc  func(ctx context.Context, entryID uuid.UUID) error
	ClearCheckedFunc func(ctx context.Context) (int, error)
	ExportCSVFunc    func(ctx context.Context) ([]byte, error)

	calls struct {
		CreateEntry []struct {
			Ctx   context.Context
			Input shopping.CreateEntryInput
		}
		ListEntries []struct {
			Ctx   context.Context
			Input shopping.ListEntriesInput
		}
		UpdateEntry []struct {
			Ctx   context.Context
			Input shopping.UpdateEntryInput
		}
		ToggleEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		DeleteEntry []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		ClearChecked []struct {
			Ctx context.Context
		}
		ExportCSV []struct {
			Ctx context.Context
		}
	}
	lockCreateEntry  sync.RWMutex
	lockListEntries  sync.RWMutex
	lockUpdateEntry  sync.RWMutex
	lockToggleEntry  sync.RWMutex
	lockDeleteEntry  sync.RWMutex
	lockClearChecked sync.RWMutex
	lockExportCSV    sync.RWMutex
}

func (mock *shoppingServiceMock) CreateEntry(ctx context.Context, input shopping.CreateEntryInput) (*domain.ShoppingEntry, error) {
	if mock.CreateEntryFunc == nil {
		panic("shoppingServiceMock.CreateEntryFunc: method is nil but shoppingService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input shopping.CreateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *shoppingServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input shopping.CreateEntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *shoppingServiceMock) ListEntries(ctx context.Context, input shopping.ListEntriesInput) (*shopping.ListEntriesResult, error) {
	if mock.ListEntriesFunc == nil {
		panic("shoppingServiceMock.ListEntriesFunc: method is nil but shoppingService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input shopping.ListEntriesInput
	}{Ctx: ctx, Input: input}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, input)
}

func (mock *shoppingServiceMock) ListEntriesCalls() []struct {
	Ctx   context.Context
	Input shopping.ListEntriesInput
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *shoppingServiceMock) UpdateEntry(ctx context.Context, input shopping.UpdateEntryInput) (*domain.ShoppingEntry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("shoppingServiceMock.UpdateEntryFunc: method is nil but shoppingService.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input shopping.UpdateEntryInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, input)
}

func (mock *shoppingServiceMock) UpdateEntryCalls() []struct {
	Ctx   context.Context
	Input shopping.UpdateEntryInput
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}

func (mock *shoppingServiceMock) ToggleEntry(ctx context.Context, entryID uuid.UUID) (*domain.ShoppingEntry, error) {
	if mock.ToggleEntryFunc == nil {
		panic("shoppingServiceMock.ToggleEntryFunc: method is nil but shoppingService.ToggleEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockToggleEntry.Lock()
	mock.calls.ToggleEntry = append(mock.calls.ToggleEntry, callInfo)
	mock.lockToggleEntry.Unlock()
	return mock.ToggleEntryFunc(ctx, entryID)
}

func (mock *shoppingServiceMock) ToggleEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockToggleEntry.RLock()
	calls := mock.calls.ToggleEntry
	mock.lockToggleEntry.RUnlock()
	return calls
}

func (mock *shoppingServiceMock) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	if mock.DeleteEntryFunc == nil {
		panic("shoppingServiceMock.DeleteEntryFunc: method is nil but shoppingService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{Ctx: ctx, EntryID: entryID}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, entryID)
}

func (mock *shoppingServiceMock) DeleteEntryCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}

func (mock *shoppingServiceMock) ClearChecked(ctx context.Context) (int, error) {
	if mock.ClearCheckedFunc == nil {
		panic("shoppingServiceMock.ClearCheckedFunc: method is nil but shoppingService.ClearChecked was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockClearChecked.Lock()
	mock.calls.ClearChecked = append(mock.calls.ClearChecked, callInfo)
	mock.lockClearChecked.Unlock()
	return mock.ClearCheckedFunc(ctx)
}

func (mock *shoppingServiceMock) ClearCheckedCalls() []struct {
	Ctx context.Context
} {
	mock.lockClearChecked.RLock()
	calls := mock.calls.ClearChecked
	mock.lockClearChecked.RUnlock()
	return calls
}

func (mock *shoppingServiceMock) ExportCSV(ctx context.Context) ([]byte, error) {
	if mock.ExportCSVFunc == nil {
		panic("shoppingServiceMock.ExportCSVFunc: method is nil but shoppingService.ExportCSV was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockExportCSV.Lock()
	mock.calls.ExportCSV = append(mock.calls.ExportCSV, callInfo)
	mock.lockExportCSV.Unlock()
	return mock.ExportCSVFunc(ctx)
}

func (mock *shoppingServiceMock) ExportCSVCalls() []struct {
	Ctx context.Context
} {
	mock.lockExportCSV.RLock()
	calls := mock.calls.ExportCSV
	mock.lockExportCSV.RUnlock()
	return calls
}
