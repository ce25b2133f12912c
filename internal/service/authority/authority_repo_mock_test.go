package authority

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

var _ authorityRepo = &authorityRepoMock{}

type authorityRepoMock struct {
	CreateFunc                  func(ctx context.Context, a domain.Authority) (domain.Authority, error)
	GetByIDFunc                 func(ctx context.Context, id uuid.UUID) (domain.Authority, error)
	ListFunc                    func(ctx context.Context, filter domain.AuthorityFilter) ([]domain.Authority, int, error)
	ListByKeyFunc               func(ctx context.Context, kind domain.AuthorityKind, key string) ([]domain.Authority, error)
	UpdateLabelFunc             func(ctx context.Context, id uuid.UUID, label string, key string) (domain.Authority, error)
	LockKeyFunc                 func(ctx context.Context, kind domain.AuthorityKind, key string) error
	CountFunc                   func(ctx context.Context, kind *domain.AuthorityKind) (int, error)
	ListDuplicateCandidatesFunc func(ctx context.Context, kind *domain.AuthorityKind) ([]domain.Authority, error)
	DeleteByIDsFunc             func(ctx context.Context, ids []uuid.UUID) (int, error)
	ListKeysAfterFunc           func(ctx context.Context, after uuid.UUID, limit int) ([]domain.LabelKey, error)
	UpdateKeysFunc              func(ctx context.Context, updates []domain.KeyUpdate) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   domain.Authority
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.AuthorityFilter
		}
		ListByKey []struct {
			Ctx  context.Context
			Kind domain.AuthorityKind
			Key  string
		}
		UpdateLabel []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Label string
			Key   string
		}
		LockKey []struct {
			Ctx  context.Context
			Kind domain.AuthorityKind
			Key  string
		}
		Count []struct {
			Ctx  context.Context
			Kind *domain.AuthorityKind
		}
		ListDuplicateCandidates []struct {
			Ctx  context.Context
			Kind *domain.AuthorityKind
		}
		DeleteByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		ListKeysAfter []struct {
			Ctx   context.Context
			After uuid.UUID
			Limit int
		}
		UpdateKeys []struct {
			Ctx     context.Context
			Updates []domain.KeyUpdate
		}
	}
	lockCreate                  sync.RWMutex
	lockGetByID                 sync.RWMutex
	lockList                    sync.RWMutex
	lockListByKey               sync.RWMutex
	lockUpdateLabel             sync.RWMutex
	lockLockKey                 sync.RWMutex
	lockCount                   sync.RWMutex
	lockListDuplicateCandidates sync.RWMutex
	lockDeleteByIDs             sync.RWMutex
	lockListKeysAfter           sync.RWMutex
	lockUpdateKeys              sync.RWMutex
}

func (mock *authorityRepoMock) Create(ctx context.Context, a domain.Authority) (domain.Authority, error) {
	if mock.CreateFunc == nil {
		panic("authorityRepoMock.CreateFunc: method is nil but authorityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Authority
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *authorityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.Authority
} {
	var calls []struct {
		Ctx context.Context
		A   domain.Authority
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *authorityRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Authority, error) {
	if mock.GetByIDFunc == nil {
		panic("authorityRepoMock.GetByIDFunc: method is nil but authorityRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *authorityRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *authorityRepoMock) List(ctx context.Context, filter domain.AuthorityFilter) ([]domain.Authority, int, error) {
	if mock.ListFunc == nil {
		panic("authorityRepoMock.ListFunc: method is nil but authorityRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.AuthorityFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *authorityRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.AuthorityFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.AuthorityFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *authorityRepoMock) ListByKey(ctx context.Context, kind domain.AuthorityKind, key string) ([]domain.Authority, error) {
	if mock.ListByKeyFunc == nil {
		panic("authorityRepoMock.ListByKeyFunc: method is nil but authorityRepo.ListByKey was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.AuthorityKind
		Key  string
	}{Ctx: ctx, Kind: kind, Key: key}
	mock.lockListByKey.Lock()
	mock.calls.ListByKey = append(mock.calls.ListByKey, callInfo)
	mock.lockListByKey.Unlock()
	return mock.ListByKeyFunc(ctx, kind, key)
}

func (mock *authorityRepoMock) ListByKeyCalls() []struct {
	Ctx  context.Context
	Kind domain.AuthorityKind
	Key  string
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.AuthorityKind
		Key  string
	}
	mock.lockListByKey.RLock()
	calls = mock.calls.ListByKey
	mock.lockListByKey.RUnlock()
	return calls
}

func (mock *authorityRepoMock) UpdateLabel(ctx context.Context, id uuid.UUID, label string, key string) (domain.Authority, error) {
	if mock.UpdateLabelFunc == nil {
		panic("authorityRepoMock.UpdateLabelFunc: method is nil but authorityRepo.UpdateLabel was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Label string
		Key   string
	}{Ctx: ctx, Id: id, Label: label, Key: key}
	mock.lockUpdateLabel.Lock()
	mock.calls.UpdateLabel = append(mock.calls.UpdateLabel, callInfo)
	mock.lockUpdateLabel.Unlock()
	return mock.UpdateLabelFunc(ctx, id, label, key)
}

func (mock *authorityRepoMock) UpdateLabelCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Label string
	Key   string
} {
	var calls []struct {
		Ctx   context.Context
		Id    uuid.UUID
		Label string
		Key   string
	}
	mock.lockUpdateLabel.RLock()
	calls = mock.calls.UpdateLabel
	mock.lockUpdateLabel.RUnlock()
	return calls
}

func (mock *authorityRepoMock) LockKey(ctx context.Context, kind domain.AuthorityKind, key string) error {
	if mock.LockKeyFunc == nil {
		panic("authorityRepoMock.LockKeyFunc: method is nil but authorityRepo.LockKey was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.AuthorityKind
		Key  string
	}{Ctx: ctx, Kind: kind, Key: key}
	mock.lockLockKey.Lock()
	mock.calls.LockKey = append(mock.calls.LockKey, callInfo)
	mock.lockLockKey.Unlock()
	return mock.LockKeyFunc(ctx, kind, key)
}

func (mock *authorityRepoMock) LockKeyCalls() []struct {
	Ctx  context.Context
	Kind domain.AuthorityKind
	Key  string
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.AuthorityKind
		Key  string
	}
	mock.lockLockKey.RLock()
	calls = mock.calls.LockKey
	mock.lockLockKey.RUnlock()
	return calls
}

func (mock *authorityRepoMock) Count(ctx context.Context, kind *domain.AuthorityKind) (int, error) {
	if mock.CountFunc == nil {
		panic("authorityRepoMock.CountFunc: method is nil but authorityRepo.Count was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind *domain.AuthorityKind
	}{Ctx: ctx, Kind: kind}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, kind)
}

func (mock *authorityRepoMock) CountCalls() []struct {
	Ctx  context.Context
	Kind *domain.AuthorityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind *domain.AuthorityKind
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *authorityRepoMock) ListDuplicateCandidates(ctx context.Context, kind *domain.AuthorityKind) ([]domain.Authority, error) {
	if mock.ListDuplicateCandidatesFunc == nil {
		panic("authorityRepoMock.ListDuplicateCandidatesFunc: method is nil but authorityRepo.ListDuplicateCandidates was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind *domain.AuthorityKind
	}{Ctx: ctx, Kind: kind}
	mock.lockListDuplicateCandidates.Lock()
	mock.calls.ListDuplicateCandidates = append(mock.calls.ListDuplicateCandidates, callInfo)
	mock.lockListDuplicateCandidates.Unlock()
	return mock.ListDuplicateCandidatesFunc(ctx, kind)
}

func (mock *authorityRepoMock) ListDuplicateCandidatesCalls() []struct {
	Ctx  context.Context
	Kind *domain.AuthorityKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind *domain.AuthorityKind
	}
	mock.lockListDuplicateCandidates.RLock()
	calls = mock.calls.ListDuplicateCandidates
	mock.lockListDuplicateCandidates.RUnlock()
	return calls
}

func (mock *authorityRepoMock) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("authorityRepoMock.DeleteByIDsFunc: method is nil but authorityRepo.DeleteByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{Ctx: ctx, Ids: ids}
	mock.lockDeleteByIDs.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, callInfo)
	mock.lockDeleteByIDs.Unlock()
	return mock.DeleteByIDsFunc(ctx, ids)
}

func (mock *authorityRepoMock) DeleteByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Ids []uuid.UUID
	}
	mock.lockDeleteByIDs.RLock()
	calls = mock.calls.DeleteByIDs
	mock.lockDeleteByIDs.RUnlock()
	return calls
}

func (mock *authorityRepoMock) ListKeysAfter(ctx context.Context, after uuid.UUID, limit int) ([]domain.LabelKey, error) {
	if mock.ListKeysAfterFunc == nil {
		panic("authorityRepoMock.ListKeysAfterFunc: method is nil but authorityRepo.ListKeysAfter was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		After uuid.UUID
		Limit int
	}{Ctx: ctx, After: after, Limit: limit}
	mock.lockListKeysAfter.Lock()
	mock.calls.ListKeysAfter = append(mock.calls.ListKeysAfter, callInfo)
	mock.lockListKeysAfter.Unlock()
	return mock.ListKeysAfterFunc(ctx, after, limit)
}

func (mock *authorityRepoMock) ListKeysAfterCalls() []struct {
	Ctx   context.Context
	After uuid.UUID
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		After uuid.UUID
		Limit int
	}
	mock.lockListKeysAfter.RLock()
	calls = mock.calls.ListKeysAfter
	mock.lockListKeysAfter.RUnlock()
	return calls
}

func (mock *authorityRepoMock) UpdateKeys(ctx context.Context, updates []domain.KeyUpdate) (int, error) {
	if mock.UpdateKeysFunc == nil {
		panic("authorityRepoMock.UpdateKeysFunc: method is nil but authorityRepo.UpdateKeys was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Updates []domain.KeyUpdate
	}{Ctx: ctx, Updates: updates}
	mock.lockUpdateKeys.Lock()
	mock.calls.UpdateKeys = append(mock.calls.UpdateKeys, callInfo)
	mock.lockUpdateKeys.Unlock()
	return mock.UpdateKeysFunc(ctx, updates)
}

func (mock *authorityRepoMock) UpdateKeysCalls() []struct {
	Ctx     context.Context
	Updates []domain.KeyUpdate
} {
	var calls []struct {
		Ctx     context.Context
		Updates []domain.KeyUpdate
	}
	mock.lockUpdateKeys.RLock()
	calls = mock.calls.UpdateKeys
	mock.lockUpdateKeys.RUnlock()
	return calls
}
