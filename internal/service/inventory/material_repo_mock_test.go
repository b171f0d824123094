package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var _ materialRepo = &materialRepoMock{}

type materialRepoMock struct {
	AddStockFunc func(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*domain.RawMaterial, error)
	CreateFunc   func(ctx context.Context, m *domain.RawMaterial) (*domain.RawMaterial, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.RawMaterial, error)
	ListFunc     func(ctx context.Context) ([]domain.RawMaterial, error)

	calls struct {
		AddStock []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta decimal.Decimal
		}
		Create []struct {
			Ctx context.Context
			M   *domain.RawMaterial
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockAddStock sync.RWMutex
	lockCreate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockGetByID  sync.RWMutex
	lockList     sync.RWMutex
}

func (mock *materialRepoMock) AddStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*domain.RawMaterial, error) {
	if mock.AddStockFunc == nil {
		panic("materialRepoMock.AddStockFunc: method is nil but materialRepo.AddStock was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta decimal.Decimal
	}{Ctx: ctx, ID: id, Delta: delta}
	mock.lockAddStock.Lock()
	mock.calls.AddStock = append(mock.calls.AddStock, callInfo)
	mock.lockAddStock.Unlock()
	return mock.AddStockFunc(ctx, id, delta)
}

func (mock *materialRepoMock) AddStockCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta decimal.Decimal
} {
	mock.lockAddStock.RLock()
	calls := mock.calls.AddStock
	mock.lockAddStock.RUnlock()
	return calls
}

func (mock *materialRepoMock) Create(ctx context.Context, m *domain.RawMaterial) (*domain.RawMaterial, error) {
	if mock.CreateFunc == nil {
		panic("materialRepoMock.CreateFunc: method is nil but materialRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.RawMaterial
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *materialRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.RawMaterial
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *materialRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("materialRepoMock.DeleteFunc: method is nil but materialRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *materialRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *materialRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.RawMaterial, error) {
	if mock.GetByIDFunc == nil {
		panic("materialRepoMock.GetByIDFunc: method is nil but materialRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *materialRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *materialRepoMock) List(ctx context.Context) ([]domain.RawMaterial, error) {
	if mock.ListFunc == nil {
		panic("materialRepoMock.ListFunc: method is nil but materialRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *materialRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
