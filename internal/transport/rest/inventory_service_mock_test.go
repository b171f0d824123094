package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/heartmarshall/kantin-backend/internal/service/inventory"
)

var _ inventoryService = &inventoryServiceMock{}

type inventoryServiceMock struct {
	CreateMaterialFunc func(ctx context.Context, input inventory.CreateMaterialInput) (*domain.RawMaterial, error)
	DeleteMaterialFunc func(ctx context.Context, id uuid.UUID) error
	GetMaterialFunc    func(ctx context.Context, id uuid.UUID) (*domain.RawMaterial, error)
	ListMaterialsFunc  func(ctx context.Context) ([]domain.RawMaterial, error)
	RestockFunc        func(ctx context.Context, input inventory.RestockInput) (*domain.RawMaterial, error)

	calls struct {
		CreateMaterial []struct {
			Ctx   context.Context
			Input inventory.CreateMaterialInput
		}
		DeleteMaterial []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetMaterial []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListMaterials []struct {
			Ctx context.Context
		}
		Restock []struct {
			Ctx   context.Context
			Input inventory.RestockInput
		}
	}
	lockCreateMaterial sync.RWMutex
	lockDeleteMaterial sync.RWMutex
	lockGetMaterial    sync.RWMutex
	lockListMaterials  sync.RWMutex
	lockRestock        sync.RWMutex
}

func (mock *inventoryServiceMock) CreateMaterial(ctx context.Context, input inventory.CreateMaterialInput) (*domain.RawMaterial, error) {
	if mock.CreateMaterialFunc == nil {
		panic("inventoryServiceMock.CreateMaterialFunc: method is nil but inventoryService.CreateMaterial was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input inventory.CreateMaterialInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateMaterial.Lock()
	mock.calls.CreateMaterial = append(mock.calls.CreateMaterial, callInfo)
	mock.lockCreateMaterial.Unlock()
	return mock.CreateMaterialFunc(ctx, input)
}

func (mock *inventoryServiceMock) CreateMaterialCalls() []struct {
	Ctx   context.Context
	Input inventory.CreateMaterialInput
} {
	mock.lockCreateMaterial.RLock()
	calls := mock.calls.CreateMaterial
	mock.lockCreateMaterial.RUnlock()
	return calls
}

func (mock *inventoryServiceMock) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteMaterialFunc == nil {
		panic("inventoryServiceMock.DeleteMaterialFunc: method is nil but inventoryService.DeleteMaterial was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteMaterial.Lock()
	mock.calls.DeleteMaterial = append(mock.calls.DeleteMaterial, callInfo)
	mock.lockDeleteMaterial.Unlock()
	return mock.DeleteMaterialFunc(ctx, id)
}

func (mock *inventoryServiceMock) DeleteMaterialCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteMaterial.RLock()
	calls := mock.calls.DeleteMaterial
	mock.lockDeleteMaterial.RUnlock()
	return calls
}

func (mock *inventoryServiceMock) GetMaterial(ctx context.Context, id uuid.UUID) (*domain.RawMaterial, error) {
	if mock.GetMaterialFunc == nil {
		panic("inventoryServiceMock.GetMaterialFunc: method is nil but inventoryService.GetMaterial was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetMaterial.Lock()
	mock.calls.GetMaterial = append(mock.calls.GetMaterial, callInfo)
	mock.lockGetMaterial.Unlock()
	return mock.GetMaterialFunc(ctx, id)
}

func (mock *inventoryServiceMock) GetMaterialCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetMaterial.RLock()
	calls := mock.calls.GetMaterial
	mock.lockGetMaterial.RUnlock()
	return calls
}

func (mock *inventoryServiceMock) ListMaterials(ctx context.Context) ([]domain.RawMaterial, error) {
	if mock.ListMaterialsFunc == nil {
		panic("inventoryServiceMock.ListMaterialsFunc: method is nil but inventoryService.ListMaterials was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListMaterials.Lock()
	mock.calls.ListMaterials = append(mock.calls.ListMaterials, callInfo)
	mock.lockListMaterials.Unlock()
	return mock.ListMaterialsFunc(ctx)
}

func (mock *inventoryServiceMock) ListMaterialsCalls() []struct{ Ctx context.Context } {
	mock.lockListMaterials.RLock()
	calls := mock.calls.ListMaterials
	mock.lockListMaterials.RUnlock()
	return calls
}

func (mock *inventoryServiceMock) Restock(ctx context.Context, input inventory.RestockInput) (*domain.RawMaterial, error) {
	if mock.RestockFunc == nil {
		panic("inventoryServiceMock.RestockFunc: method is nil but inventoryService.Restock was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input inventory.RestockInput
	}{Ctx: ctx, Input: input}
	mock.lockRestock.Lock()
	mock.calls.Restock = append(mock.calls.Restock, callInfo)
	mock.lockRestock.Unlock()
	return mock.RestockFunc(ctx, input)
}

func (mock *inventoryServiceMock) RestockCalls() []struct {
	Ctx   context.Context
	Input inventory.RestockInput
} {
	mock.lockRestock.RLock()
	calls := mock.calls.Restock
	mock.lockRestock.RUnlock()
	return calls
}
