package authority

import (
	"context"
	"sync"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

var _ mergeLog = &mergeLogMock{}

type mergeLogMock struct {
	LogFunc        func(ctx context.Context, merges ...domain.AuthorityMerge) error
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.AuthorityMerge, error)

	calls struct {
		Log []struct {
			Ctx    context.Context
			Merges []domain.AuthorityMerge
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockLog        sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *mergeLogMock) Log(ctx context.Context, merges ...domain.AuthorityMerge) error {
	if mock.LogFunc == nil {
		panic("mergeLogMock.LogFunc: method is nil but mergeLog.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Merges []domain.AuthorityMerge
	}{Ctx: ctx, Merges: merges}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, merges...)
}

func (mock *mergeLogMock) LogCalls() []struct {
	Ctx    context.Context
	Merges []domain.AuthorityMerge
} {
	var calls []struct {
		Ctx    context.Context
		Merges []domain.AuthorityMerge
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

func (mock *mergeLogMock) ListRecent(ctx context.Context, limit int) ([]domain.AuthorityMerge, error) {
	if mock.ListRecentFunc == nil {
		panic("mergeLogMock.ListRecentFunc: method is nil but mergeLog.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *mergeLogMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockListRecent.RLock()
	calls = mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
