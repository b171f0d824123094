package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/kantin-backend/internal/domain"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	ListAccountsFunc  func(ctx context.Context) ([]domain.Account, error)
	RevokeAccountFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListAccounts []struct {
			Ctx context.Context
		}
		RevokeAccount []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListAccounts  sync.RWMutex
	lockRevokeAccount sync.RWMutex
}

func (mock *accountServiceMock) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if mock.ListAccountsFunc == nil {
		panic("accountServiceMock.ListAccountsFunc: method is nil but accountService.ListAccounts was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListAccounts.Lock()
	mock.calls.ListAccounts = append(mock.calls.ListAccounts, callInfo)
	mock.lockListAccounts.Unlock()
	return mock.ListAccountsFunc(ctx)
}

func (mock *accountServiceMock) ListAccountsCalls() []struct{ Ctx context.Context } {
	mock.lockListAccounts.RLock()
	calls := mock.calls.ListAccounts
	mock.lockListAccounts.RUnlock()
	return calls
}

func (mock *accountServiceMock) RevokeAccount(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeAccountFunc == nil {
		panic("accountServiceMock.RevokeAccountFunc: method is nil but accountService.RevokeAccount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRevokeAccount.Lock()
	mock.calls.RevokeAccount = append(mock.calls.RevokeAccount, callInfo)
	mock.lockRevokeAccount.Unlock()
	return mock.RevokeAccountFunc(ctx, id)
}

func (mock *accountServiceMock) RevokeAccountCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRevokeAccount.RLock()
	calls := mock.calls.RevokeAccount
	mock.lockRevokeAccount.RUnlock()
	return calls
}
