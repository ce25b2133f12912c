package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/authority-backend/internal/domain"
	"github.com/heartmarshall/authority-backend/internal/service/authority"
)

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	ListDuplicatesFunc func(ctx context.Context, kind *domain.AuthorityKind) ([]domain.DuplicateGroup, error)
	MergeFunc          func(ctx context.Context, input authority.MergeInput) (*authority.MergeReport, error)
	RecomputeKeysFunc  func(ctx context.Context) (*authority.RecomputeResult, error)
	ListMergesFunc     func(ctx context.Context, limit int) ([]domain.AuthorityMerge, error)
	StatsFunc          func(ctx context.Context) (*authority.Stats, error)

	calls struct {
		ListDuplicates []struct {
			Ctx  context.Context
			Kind *domain.AuthorityKind
		}
		Merge []struct {
			Ctx   context.Context
			Input authority.MergeInput
		}
		RecomputeKeys []struct {
			Ctx context.Context
		}
		ListMerges []struct {
			Ctx   context.Context
			Limit int
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockListDuplicates sync.RWMutex
	lockMerge          sync.RWMutex
	lockRecomputeKeys  sync.RWMutex
	lockListMerges     sync.RWMutex
	lockStats          sync.RWMutex
}

func (mock *adminServiceMock) ListDuplicates(ctx context.Context, kind *domain.AuthorityKind) ([]domain.DuplicateGroup, error) {
	if mock.ListDuplicatesFunc == nil {
		panic("adminServiceMock.ListDuplicatesFunc: method is nil but adminService.ListDuplicates was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind *domain.AuthorityKind
	}{Ctx: ctx, Kind: kind}
	mock.lockListDuplicates.Lock()
	mock.calls.ListDuplicates = append(mock.calls.ListDuplicates, callInfo)
	mock.lockListDuplicates.Unlock()
	return mock.ListDuplicatesFunc(ctx, kind)
}

func (mock *adminServiceMock) ListDuplicatesCalls() []struct {
	Ctx  context.Context
	Kind *domain.AuthorityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind *domain.AuthorityKind
	}
	mock.lockListDuplicates.RLock()
	calls = mock.calls.ListDuplicates
	mock.lockListDuplicates.RUnlock()
	return calls
}

func (mock *adminServiceMock) Merge(ctx context.Context, input authority.MergeInput) (*authority.MergeReport, error) {
	if mock.MergeFunc == nil {
		panic("adminServiceMock.MergeFunc: method is nil but adminService.Merge was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authority.MergeInput
	}{Ctx: ctx, Input: input}
	mock.lockMerge.Lock()
	mock.calls.Merge = append(mock.calls.Merge, callInfo)
	mock.lockMerge.Unlock()
	return mock.MergeFunc(ctx, input)
}

func (mock *adminServiceMock) MergeCalls() []struct {
	Ctx   context.Context
	Input authority.MergeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input authority.MergeInput
	}
	mock.lockMerge.RLock()
	calls = mock.calls.Merge
	mock.lockMerge.RUnlock()
	return calls
}

func (mock *adminServiceMock) RecomputeKeys(ctx context.Context) (*authority.RecomputeResult, error) {
	if mock.RecomputeKeysFunc == nil {
		panic("adminServiceMock.RecomputeKeysFunc: method is nil but adminService.RecomputeKeys was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRecomputeKeys.Lock()
	mock.calls.RecomputeKeys = append(mock.calls.RecomputeKeys, callInfo)
	mock.lockRecomputeKeys.Unlock()
	return mock.RecomputeKeysFunc(ctx)
}

func (mock *adminServiceMock) RecomputeKeysCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockRecomputeKeys.RLock()
	calls = mock.calls.RecomputeKeys
	mock.lockRecomputeKeys.RUnlock()
	return calls
}

func (mock *adminServiceMock) ListMerges(ctx context.Context, limit int) ([]domain.AuthorityMerge, error) {
	if mock.ListMergesFunc == nil {
		panic("adminServiceMock.ListMergesFunc: method is nil but adminService.ListMerges was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListMerges.Lock()
	mock.calls.ListMerges = append(mock.calls.ListMerges, callInfo)
	mock.lockListMerges.Unlock()
	return mock.ListMergesFunc(ctx, limit)
}

func (mock *adminServiceMock) ListMergesCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockListMerges.RLock()
	calls = mock.calls.ListMerges
	mock.lockListMerges.RUnlock()
	return calls
}

func (mock *adminServiceMock) Stats(ctx context.Context) (*authority.Stats, error) {
	if mock.StatsFunc == nil {
		panic("adminServiceMock.StatsFunc: method is nil but adminService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *adminServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
