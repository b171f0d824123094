package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/heartmarshall/kantin-backend/internal/service/production"
)

var _ productionService = &productionServiceMock{}

type productionServiceMock struct {
	HistoryFunc      func(ctx context.Context, input production.HistoryInput) ([]domain.Movement, error)
	LastActivityFunc func(ctx context.Context) (*time.Time, error)
	ProduceFunc      func(ctx context.Context, input production.ProduceInput) (*domain.DeductionReceipt, error)

	calls struct {
		History []struct {
			Ctx   context.Context
			Input production.HistoryInput
		}
		LastActivity []struct {
			Ctx context.Context
		}
		Produce []struct {
			Ctx   context.Context
			Input production.ProduceInput
		}
	}
	lockHistory      sync.RWMutex
	lockLastActivity sync.RWMutex
	lockProduce      sync.RWMutex
}

func (mock *productionServiceMock) History(ctx context.Context, input production.HistoryInput) ([]domain.Movement, error) {
	if mock.HistoryFunc == nil {
		panic("productionServiceMock.HistoryFunc: method is nil but productionService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input production.HistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, input)
}

func (mock *productionServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	Input production.HistoryInput
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

func (mock *productionServiceMock) LastActivity(ctx context.Context) (*time.Time, error) {
	if mock.LastActivityFunc == nil {
		panic("productionServiceMock.LastActivityFunc: method is nil but productionService.LastActivity was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockLastActivity.Lock()
	mock.calls.LastActivity = append(mock.calls.LastActivity, callInfo)
	mock.lockLastActivity.Unlock()
	return mock.LastActivityFunc(ctx)
}

func (mock *productionServiceMock) LastActivityCalls() []struct{ Ctx context.Context } {
	mock.lockLastActivity.RLock()
	calls := mock.calls.LastActivity
	mock.lockLastActivity.RUnlock()
	return calls
}

func (mock *productionServiceMock) Produce(ctx context.Context, input production.ProduceInput) (*domain.DeductionReceipt, error) {
	if mock.ProduceFunc == nil {
		panic("productionServiceMock.ProduceFunc: method is nil but productionService.Produce was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input production.ProduceInput
	}{Ctx: ctx, Input: input}
	mock.lockProduce.Lock()
	mock.calls.Produce = append(mock.calls.Produce, callInfo)
	mock.lockProduce.Unlock()
	return mock.ProduceFunc(ctx, input)
}

func (mock *productionServiceMock) ProduceCalls() []struct {
	Ctx   context.Context
	Input production.ProduceInput
} {
	mock.lockProduce.RLock()
	calls := mock.calls.Produce
	mock.lockProduce.RUnlock()
	return calls
}
