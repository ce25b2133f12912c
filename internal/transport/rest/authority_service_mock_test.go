package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/authority-backend/internal/domain"
	"github.com/heartmarshall/authority-backend/internal/service/authority"
)

var _ authorityService = &authorityServiceMock{}

type authorityServiceMock struct {
	CreateFunc         func(ctx context.Context, input authority.CreateInput) (domain.Authority, error)
	GetFunc            func(ctx context.Context, id uuid.UUID) (domain.Authority, error)
	ListFunc           func(ctx context.Context, input authority.ListInput) (*authority.ListResult, error)
	FindEquivalentFunc func(ctx context.Context, kind domain.AuthorityKind, label string) ([]domain.Authority, error)
	RenameFunc         func(ctx context.Context, input authority.RenameInput) (domain.Authority, error)
	AddReferenceFunc   func(ctx context.Context, input authority.AddReferenceInput) (domain.AuthorityRef, error)
	ListReferencesFunc func(ctx context.Context, authorityID uuid.UUID) ([]domain.AuthorityRef, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input authority.CreateInput
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input authority.ListInput
		}
		FindEquivalent []struct {
			Ctx   context.Context
			Kind  domain.AuthorityKind
			Label string
		}
		Rename []struct {
			Ctx   context.Context
			Input authority.RenameInput
		}
		AddReference []struct {
			Ctx   context.Context
			Input authority.AddReferenceInput
		}
		ListReferences []struct {
			Ctx         context.Context
			Authorityid uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGet            sync.RWMutex
	lockList           sync.RWMutex
	lockFindEquivalent sync.RWMutex
	lockRename         sync.RWMutex
	lockAddReference   sync.RWMutex
	lockListReferences sync.RWMutex
}

func (mock *authorityServiceMock) Create(ctx context.Context, input authority.CreateInput) (domain.Authority, error) {
	if mock.CreateFunc == nil {
		panic("authorityServiceMock.CreateFunc: method is nil but authorityService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authority.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *authorityServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input authority.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input authority.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *authorityServiceMock) Get(ctx context.Context, id uuid.UUID) (domain.Authority, error) {
	if mock.GetFunc == nil {
		panic("authorityServiceMock.GetFunc: method is nil but authorityService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *authorityServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *authorityServiceMock) List(ctx context.Context, input authority.ListInput) (*authority.ListResult, error) {
	if mock.ListFunc == nil {
		panic("authorityServiceMock.ListFunc: method is nil but authorityService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authority.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *authorityServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input authority.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input authority.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *authorityServiceMock) FindEquivalent(ctx context.Context, kind domain.AuthorityKind, label string) ([]domain.Authority, error) {
	if mock.FindEquivalentFunc == nil {
		panic("authorityServiceMock.FindEquivalentFunc: method is nil but authorityService.FindEquivalent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Kind  domain.AuthorityKind
		Label string
	}{Ctx: ctx, Kind: kind, Label: label}
	mock.lockFindEquivalent.Lock()
	mock.calls.FindEquivalent = append(mock.calls.FindEquivalent, callInfo)
	mock.lockFindEquivalent.Unlock()
	return mock.FindEquivalentFunc(ctx, kind, label)
}

func (mock *authorityServiceMock) FindEquivalentCalls() []struct {
	Ctx   context.Context
	Kind  domain.AuthorityKind
	Label string
} {
	var calls []struct {
		Ctx   context.Context
		Kind  domain.AuthorityKind
		Label string
	}
	mock.lockFindEquivalent.RLock()
	calls = mock.calls.FindEquivalent
	mock.lockFindEquivalent.RUnlock()
	return calls
}

func (mock *authorityServiceMock) Rename(ctx context.Context, input authority.RenameInput) (domain.Authority, error) {
	if mock.RenameFunc == nil {
		panic("authorityServiceMock.RenameFunc: method is nil but authorityService.Rename was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authority.RenameInput
	}{Ctx: ctx, Input: input}
	mock.lockRename.Lock()
	mock.calls.Rename = append(mock.calls.Rename, callInfo)
	mock.lockRename.Unlock()
	return mock.RenameFunc(ctx, input)
}

func (mock *authorityServiceMock) RenameCalls() []struct {
	Ctx   context.Context
	Input authority.RenameInput
} {
	var calls []struct {
		Ctx   context.Context
		Input authority.RenameInput
	}
	mock.lockRename.RLock()
	calls = mock.calls.Rename
	mock.lockRename.RUnlock()
	return calls
}

func (mock *authorityServiceMock) AddReference(ctx context.Context, input authority.AddReferenceInput) (domain.AuthorityRef, error) {
	if mock.AddReferenceFunc == nil {
		panic("authorityServiceMock.AddReferenceFunc: method is nil but authorityService.AddReference was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authority.AddReferenceInput
	}{Ctx: ctx, Input: input}
	mock.lockAddReference.Lock()
	mock.calls.AddReference = append(mock.calls.AddReference, callInfo)
	mock.lockAddReference.Unlock()
	return mock.AddReferenceFunc(ctx, input)
}

func (mock *authorityServiceMock) AddReferenceCalls() []struct {
	Ctx   context.Context
	Input authority.AddReferenceInput
} {
	var calls []struct {
		Ctx   context.Context
		Input authority.AddReferenceInput
	}
	mock.lockAddReference.RLock()
	calls = mock.calls.AddReference
	mock.lockAddReference.RUnlock()
	return calls
}

func (mock *authorityServiceMock) ListReferences(ctx context.Context, authorityID uuid.UUID) ([]domain.AuthorityRef, error) {
	if mock.ListReferencesFunc == nil {
		panic("authorityServiceMock.ListReferencesFunc: method is nil but authorityService.ListReferences was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Authorityid uuid.UUID
	}{Ctx: ctx, Authorityid: authorityID}
	mock.lockListReferences.Lock()
	mock.calls.ListReferences = append(mock.calls.ListReferences, callInfo)
	mock.lockListReferences.Unlock()
	return mock.ListReferencesFunc(ctx, authorityID)
}

func (mock *authorityServiceMock) ListReferencesCalls() []struct {
	Ctx         context.Context
	Authorityid uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		Authorityid uuid.UUID
	}
	mock.lockListReferences.RLock()
	calls = mock.calls.ListReferences
	mock.lockListReferences.RUnlock()
	return calls
}
