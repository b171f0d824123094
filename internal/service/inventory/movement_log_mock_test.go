package inventory

import (
	"context"
	"sync"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

var _ movementLog = &movementLogMock{}

type movementLogMock struct {
	AppendMovementFunc func(ctx context.Context, m *domain.Movement) error

	calls struct {
		AppendMovement []struct {
			Ctx context.Context
			M   *domain.Movement
		}
	}
	lockAppendMovement sync.RWMutex
}

func (mock *movementLogMock) AppendMovement(ctx context.Context, m *domain.Movement) error {
	if mock.AppendMovementFunc == nil {
		panic("movementLogMock.AppendMovementFunc: method is nil but movementLog.AppendMovement was just called")
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

func (mock *movementLogMock) AppendMovementCalls() []struct {
	Ctx context.Context
	M   *domain.Movement
} {
	mock.lockAppendMovement.RLock()
	calls := mock.calls.AppendMovement
	mock.lockAppendMovement.RUnlock()
	return calls
}
