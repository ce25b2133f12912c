package authority

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

var _ refRepo = &refRepoMock{}

type refRepoMock struct {
	CreateFunc           func(ctx context.Context, ref domain.AuthorityRef) (domain.AuthorityRef, error)
	ListByAuthorityFunc  func(ctx context.Context, authorityID uuid.UUID) ([]domain.AuthorityRef, error)
	CountByAuthorityFunc func(ctx context.Context, authorityID uuid.UUID) (int, error)
	RedirectFunc         func(ctx context.Context, from uuid.UUID, to uuid.UUID) (int, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Ref domain.AuthorityRef
		}
		ListByAuthority []struct {
			Ctx         context.Context
			Authorityid uuid.UUID
		}
		CountByAuthority []struct {
			Ctx         context.Context
			Authorityid uuid.UUID
		}
		Redirect []struct {
			Ctx  context.Context
			From uuid.UUID
			To   uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockListByAuthority  sync.RWMutex
	lockCountByAuthority sync.RWMutex
	lockRedirect         sync.RWMutex
}

func (mock *refRepoMock) Create(ctx context.Context, ref domain.AuthorityRef) (domain.AuthorityRef, error) {
	if mock.CreateFunc == nil {
		panic("refRepoMock.CreateFunc: method is nil but refRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.AuthorityRef
	}{Ctx: ctx, Ref: ref}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ref)
}

func (mock *refRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ref domain.AuthorityRef
} {
	var calls []struct {
		Ctx context.Context
		Ref domain.AuthorityRef
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *refRepoMock) ListByAuthority(ctx context.Context, authorityID uuid.UUID) ([]domain.AuthorityRef, error) {
	if mock.ListByAuthorityFunc == nil {
		panic("refRepoMock.ListByAuthorityFunc: method is nil but refRepo.ListByAuthority was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Authorityid uuid.UUID
	}{Ctx: ctx, Authorityid: authorityID}
	mock.lockListByAuthority.Lock()
	mock.calls.ListByAuthority = append(mock.calls.ListByAuthority, callInfo)
	mock.lockListByAuthority.Unlock()
	return mock.ListByAuthorityFunc(ctx, authorityID)
}

func (mock *refRepoMock) ListByAuthorityCalls() []struct {
	Ctx         context.Context
	Authorityid uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		Authorityid uuid.UUID
	}
	mock.lockListByAuthority.RLock()
	calls = mock.calls.ListByAuthority
	mock.lockListByAuthority.RUnlock()
	return calls
}

func (mock *refRepoMock) CountByAuthority(ctx context.Context, authorityID uuid.UUID) (int, error) {
	if mock.CountByAuthorityFunc == nil {
		panic("refRepoMock.CountByAuthorityFunc: method is nil but refRepo.CountByAuthority was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Authorityid uuid.UUID
	}{Ctx: ctx, Authorityid: authorityID}
	mock.lockCountByAuthority.Lock()
	mock.calls.CountByAuthority = append(mock.calls.CountByAuthority, callInfo)
	mock.lockCountByAuthority.Unlock()
	return mock.CountByAuthorityFunc(ctx, authorityID)
}

func (mock *refRepoMock) CountByAuthorityCalls() []struct {
	Ctx         context.Context
	Authorityid uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		Authorityid uuid.UUID
	}
	mock.lockCountByAuthority.RLock()
	calls = mock.calls.CountByAuthority
	mock.lockCountByAuthority.RUnlock()
	return calls
}

func (mock *refRepoMock) Redirect(ctx context.Context, from uuid.UUID, to uuid.UUID) (int, int, error) {
	if mock.RedirectFunc == nil {
		panic("refRepoMock.RedirectFunc: method is nil but refRepo.Redirect was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From uuid.UUID
		To   uuid.UUID
	}{Ctx: ctx, From: from, To: to}
	mock.lockRedirect.Lock()
	mock.calls.Redirect = append(mock.calls.Redirect, callInfo)
	mock.lockRedirect.Unlock()
	return mock.RedirectFunc(ctx, from, to)
}

func (mock *refRepoMock) RedirectCalls() []struct {
	Ctx  context.Context
	From uuid.UUID
	To   uuid.UUID
} {
	var calls []struct {
		Ctx  context.Context
		From uuid.UUID
		To   uuid.UUID
	}
	mock.lockRedirect.RLock()
	calls = mock.calls.Redirect
	mock.lockRedirect.RUnlock()
	return calls
}
