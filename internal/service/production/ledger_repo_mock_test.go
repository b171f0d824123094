package production

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	AppendMovementFunc func(ctx context.Context, m *domain.Movement) error
	DeductFunc         func(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	LastActivityFunc   func(ctx context.Context) (*time.Time, error)
	ListMovementsFunc  func(ctx context.Context, limit int, offset int) ([]domain.Movement, error)
	LockMaterialsFunc  func(ctx context.Context, ids []uuid.UUID) ([]domain.RawMaterial, error)

	calls struct {
		AppendMovement []struct {
			Ctx context.Context
			M   *domain.Movement
		}
		Deduct []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Amount decimal.Decimal
		}
		LastActivity []struct {
			Ctx context.Context
		}
		ListMovements []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		LockMaterials []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockAppendMovement sync.RWMutex
	lockDeduct         sync.RWMutex
	lockLastActivity   sync.RWMutex
	lockListMovements  sync.RWMutex
	lockLockMaterials  sync.RWMutex
}

func (mock *ledgerRepoMock) AppendMovement(ctx context.Context, m *domain.Movement) error {
	if mock.AppendMovementFunc == nil {
		panic("ledgerRepoMock.AppendMovementFunc: method is nil but ledgerRepo.AppendMovement was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Movement
	}{Ctx: ctx, M: m}
	mock.lockAppendMovement.Lock()
	mock.calls.AppendMovement = append(mock.calls.AppendMovement, callInfo)
	mock.lockAppendMovement.Unlock()
	return mock.AppendMovementFunc(ctx, m)
}

func (mock *ledgerRepoMock) AppendMovementCalls() []struct {
	Ctx context.Context
	M   *domain.Movement
} {
	mock.lockAppendMovement.RLock()
	calls := mock.calls.AppendMovement
	mock.lockAppendMovement.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) Deduct(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if mock.DeductFunc == nil {
		panic("ledgerRepoMock.DeductFunc: method is nil but ledgerRepo.Deduct was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Amount decimal.Decimal
	}{Ctx: ctx, ID: id, Amount: amount}
	mock.lockDeduct.Lock()
	mock.calls.Deduct = append(mock.calls.Deduct, callInfo)
	mock.lockDeduct.Unlock()
	return mock.DeductFunc(ctx, id, amount)
}

func (mock *ledgerRepoMock) DeductCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Amount decimal.Decimal
} {
	mock.lockDeduct.RLock()
	calls := mock.calls.Deduct
	mock.lockDeduct.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) LastActivity(ctx context.Context) (*time.Time, error) {
	if mock.LastActivityFunc == nil {
		panic("ledgerRepoMock.LastActivityFunc: method is nil but ledgerRepo.LastActivity was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockLastActivity.Lock()
	mock.calls.LastActivity = append(mock.calls.LastActivity, callInfo)
	mock.lockLastActivity.Unlock()
	return mock.LastActivityFunc(ctx)
}

func (mock *ledgerRepoMock) LastActivityCalls() []struct{ Ctx context.Context } {
	mock.lockLastActivity.RLock()
	calls := mock.calls.LastActivity
	mock.lockLastActivity.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) ListMovements(ctx context.Context, limit int, offset int) ([]domain.Movement, error) {
	if mock.ListMovementsFunc == nil {
		panic("ledgerRepoMock.ListMovementsFunc: method is nil but ledgerRepo.ListMovements was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListMovements.Lock()
	mock.calls.ListMovements = append(mock.calls.ListMovements, callInfo)
	mock.lockListMovements.Unlock()
	return mock.ListMovementsFunc(ctx, limit, offset)
}

func (mock *ledgerRepoMock) ListMovementsCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListMovements.RLock()
	calls := mock.calls.ListMovements
	mock.lockListMovements.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) LockMaterials(ctx context.Context, ids []uuid.UUID) ([]domain.RawMaterial, error) {
	if mock.LockMaterialsFunc == nil {
		panic("ledgerRepoMock.LockMaterialsFunc: method is nil but ledgerRepo.LockMaterials was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockLockMaterials.Lock()
	mock.calls.LockMaterials = append(mock.calls.LockMaterials, callInfo)
	mock.lockLockMaterials.Unlock()
	return mock.LockMaterialsFunc(ctx, ids)
}

func (mock *ledgerRepoMock) LockMaterialsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockLockMaterials.RLock()
	calls := mock.calls.LockMaterials
	mock.lockLockMaterials.RUnlock()
	return calls
}
