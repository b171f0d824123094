package inventory

import (
	"context"
	"sync"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

var _ authorizer = &authorizerMock{}

type authorizerMock struct {
	AuthorizeFunc func(ctx context.Context, action domain.Action) (*domain.Account, error)

	calls struct {
		Authorize []struct {
			Ctx    context.Context
			Action domain.Action
		}
	}
	lockAuthorize sync.RWMutex
}

func (mock *authorizerMock) Authorize(ctx context.Context, action domain.Action) (*domain.Account, error) {
	if mock.AuthorizeFunc == nil {
		panic("authorizerMock.AuthorizeFunc: method is nil but authorizer.Authorize was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Action domain.Action
	}{Ctx: ctx, Action: action}
	mock.lockAuthorize.Lock()
	mock.calls.Authorize = append(mock.calls.Authorize, callInfo)
	mock.lockAuthorize.Unlock()
	return mock.AuthorizeFunc(ctx, action)
}

func (mock *authorizerMock) AuthorizeCalls() []struct {
	Ctx    context.Context
	Action domain.Action
} {
	mock.lockAuthorize.RLock()
	calls := mock.calls.Authorize
	mock.lockAuthorize.RUnlock()
	return calls
}
