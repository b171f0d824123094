package recipe

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/kantin-backend/internal/domain"
)

var _ menuRepo = &menuRepoMock{}

type menuRepoMock struct {
	AddLineFunc    func(ctx context.Context, line *domain.RecipeLine) (*domain.RecipeLine, error)
	ComponentsFunc func(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeComponent, error)
	CountLinesFunc func(ctx context.Context, menuItemID uuid.UUID) (int, error)
	CreateItemFunc func(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	DeleteItemFunc func(ctx context.Context, id uuid.UUID) error
	GetItemFunc    func(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	ListItemsFunc  func(ctx context.Context) ([]domain.MenuItem, error)
	ListLinesFunc  func(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeLineDetail, error)
	LockItemFunc   func(ctx context.Context, id uuid.UUID) error
	RemoveLineFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		AddLine []struct {
			Ctx  context.Context
			Line *domain.RecipeLine
		}
		Components []struct {
			Ctx        context.Context
			MenuItemID uuid.UUID
		}
		CountLines []struct {
			Ctx        context.Context
			MenuItemID uuid.UUID
		}
		CreateItem []struct {
			Ctx  context.Context
			Item *domain.MenuItem
		}
		DeleteItem []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetItem []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListItems []struct {
			Ctx context.Context
		}
		ListLines []struct {
			Ctx        context.Context
			MenuItemID uuid.UUID
		}
		LockItem []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		RemoveLine []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockAddLine    sync.RWMutex
	lockComponents sync.RWMutex
	lockCountLines sync.RWMutex
	lockCreateItem sync.RWMutex
	lockDeleteItem sync.RWMutex
	lockGetItem    sync.RWMutex
	lockListItems  sync.RWMutex
	lockListLines  sync.RWMutex
	lockLockItem   sync.RWMutex
	lockRemoveLine sync.RWMutex
}

func (mock *menuRepoMock) AddLine(ctx context.Context, line *domain.RecipeLine) (*domain.RecipeLine, error) {
	if mock.AddLineFunc == nil {
		panic("menuRepoMock.AddLineFunc: method is nil but menuRepo.AddLine was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Line *domain.RecipeLine
	}{Ctx: ctx, Line: line}
	mock.lockAddLine.Lock()
	mock.calls.AddLine = append(mock.calls.AddLine, callInfo)
	mock.lockAddLine.Unlock()
	return mock.AddLineFunc(ctx, line)
}

func (mock *menuRepoMock) AddLineCalls() []struct {
	Ctx  context.Context
	Line *domain.RecipeLine
} {
	mock.lockAddLine.RLock()
	calls := mock.calls.AddLine
	mock.lockAddLine.RUnlock()
	return calls
}

func (mock *menuRepoMock) Components(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeComponent, error) {
	if mock.ComponentsFunc == nil {
		panic("menuRepoMock.ComponentsFunc: method is nil but menuRepo.Components was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MenuItemID uuid.UUID
	}{Ctx: ctx, MenuItemID: menuItemID}
	mock.lockComponents.Lock()
	mock.calls.Components = append(mock.calls.Components, callInfo)
	mock.lockComponents.Unlock()
	return mock.ComponentsFunc(ctx, menuItemID)
}

func (mock *menuRepoMock) ComponentsCalls() []struct {
	Ctx        context.Context
	MenuItemID uuid.UUID
} {
	mock.lockComponents.RLock()
	calls := mock.calls.Components
	mock.lockComponents.RUnlock()
	return calls
}

func (mock *menuRepoMock) CountLines(ctx context.Context, menuItemID uuid.UUID) (int, error) {
	if mock.CountLinesFunc == nil {
		panic("menuRepoMock.CountLinesFunc: method is nil but menuRepo.CountLines was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MenuItemID uuid.UUID
	}{Ctx: ctx, MenuItemID: menuItemID}
	mock.lockCountLines.Lock()
	mock.calls.CountLines = append(mock.calls.CountLines, callInfo)
	mock.lockCountLines.Unlock()
	return mock.CountLinesFunc(ctx, menuItemID)
}

func (mock *menuRepoMock) CountLinesCalls() []struct {
	Ctx        context.Context
	MenuItemID uuid.UUID
} {
	mock.lockCountLines.RLock()
	calls := mock.calls.CountLines
	mock.lockCountLines.RUnlock()
	return calls
}

func (mock *menuRepoMock) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if mock.CreateItemFunc == nil {
		panic("menuRepoMock.CreateItemFunc: method is nil but menuRepo.CreateItem was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.MenuItem
	}{Ctx: ctx, Item: item}
	mock.lockCreateItem.Lock()
	mock.calls.CreateItem = append(mock.calls.CreateItem, callInfo)
	mock.lockCreateItem.Unlock()
	return mock.CreateItemFunc(ctx, item)
}

func (mock *menuRepoMock) CreateItemCalls() []struct {
	Ctx  context.Context
	Item *domain.MenuItem
} {
	mock.lockCreateItem.RLock()
	calls := mock.calls.CreateItem
	mock.lockCreateItem.RUnlock()
	return calls
}

func (mock *menuRepoMock) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteItemFunc == nil {
		panic("menuRepoMock.DeleteItemFunc: method is nil but menuRepo.DeleteItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteItem.Lock()
	mock.calls.DeleteItem = append(mock.calls.DeleteItem, callInfo)
	mock.lockDeleteItem.Unlock()
	return mock.DeleteItemFunc(ctx, id)
}

func (mock *menuRepoMock) DeleteItemCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteItem.RLock()
	calls := mock.calls.DeleteItem
	mock.lockDeleteItem.RUnlock()
	return calls
}

func (mock *menuRepoMock) GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	if mock.GetItemFunc == nil {
		panic("menuRepoMock.GetItemFunc: method is nil but menuRepo.GetItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, id)
}

func (mock *menuRepoMock) GetItemCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *menuRepoMock) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	if mock.ListItemsFunc == nil {
		panic("menuRepoMock.ListItemsFunc: method is nil but menuRepo.ListItems was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, callInfo)
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx)
}

func (mock *menuRepoMock) ListItemsCalls() []struct{ Ctx context.Context } {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *menuRepoMock) ListLines(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeLineDetail, error) {
	if mock.ListLinesFunc == nil {
		panic("menuRepoMock.ListLinesFunc: method is nil but menuRepo.ListLines was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MenuItemID uuid.UUID
	}{Ctx: ctx, MenuItemID: menuItemID}
	mock.lockListLines.Lock()
	mock.calls.ListLines = append(mock.calls.ListLines, callInfo)
	mock.lockListLines.Unlock()
	return mock.ListLinesFunc(ctx, menuItemID)
}

func (mock *menuRepoMock) ListLinesCalls() []struct {
	Ctx        context.Context
	MenuItemID uuid.UUID
} {
	mock.lockListLines.RLock()
	calls := mock.calls.ListLines
	mock.lockListLines.RUnlock()
	return calls
}

func (mock *menuRepoMock) LockItem(ctx context.Context, id uuid.UUID) error {
	if mock.LockItemFunc == nil {
		panic("menuRepoMock.LockItemFunc: method is nil but menuRepo.LockItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockLockItem.Lock()
	mock.calls.LockItem = append(mock.calls.LockItem, callInfo)
	mock.lockLockItem.Unlock()
	return mock.LockItemFunc(ctx, id)
}

func (mock *menuRepoMock) LockItemCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockLockItem.RLock()
	calls := mock.calls.LockItem
	mock.lockLockItem.RUnlock()
	return calls
}

func (mock *menuRepoMock) RemoveLine(ctx context.Context, id uuid.UUID) error {
	if mock.RemoveLineFunc == nil {
		panic("menuRepoMock.RemoveLineFunc: method is nil but menuRepo.RemoveLine was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRemoveLine.Lock()
	mock.calls.RemoveLine = append(mock.calls.RemoveLine, callInfo)
	mock.lockRemoveLine.Unlock()
	return mock.RemoveLineFunc(ctx, id)
}

func (mock *menuRepoMock) RemoveLineCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRemoveLine.RLock()
	calls := mock.calls.RemoveLine
	mock.lockRemoveLine.RUnlock()
	return calls
}
