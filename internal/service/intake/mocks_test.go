package intake

import (
	"context"
	"sync"

	"github.com/iciso/iciso-z6/internal/domain"
)

var (
	_ recordStore        = &recordStoreMock{}
	_ idGenerator        = &idGeneratorMock{}
	_ opportunityCatalog = &opportunityCatalogMock{}
)

type recordStoreMock struct {
	AppendFunc func(ctx context.Context, app domain.Application) error

	calls struct {
		Append []struct {
			Ctx context.Context
			App domain.Application
		}
	}
	lockAppend sync.RWMutex
}

func (mock *recordStoreMock) Append(ctx context.Context, app domain.Application) error {
	if mock.AppendFunc == nil {
		panic("recordStoreMock.AppendFunc: method is nil but recordStore.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		App domain.Application
	}{Ctx: ctx, App: app}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, app)
}

func (mock *recordStoreMock) AppendCalls() []struct {
	Ctx context.Context
	App domain.Application
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

type idGeneratorMock struct {
	NextFunc func() string

	calls struct {
		Next []struct{}
	}
	lockNext sync.RWMutex
}

func (mock *idGeneratorMock) Next() string {
	if mock.NextFunc == nil {
		panic("idGeneratorMock.NextFunc: method is nil but idGenerator.Next was just called")
	}
	mock.lockNext.Lock()
	mock.calls.Next = append(mock.calls.Next, struct{}{})
	mock.lockNext.Unlock()
	return mock.NextFunc()
}

func (mock *idGeneratorMock) NextCalls() []struct{} {
	mock.lockNext.RLock()
	calls := mock.calls.Next
	mock.lockNext.RUnlock()
	return calls
}

type opportunityCatalogMock struct {
	FindOpportunityFunc func(orgName, title string) (domain.Opportunity, bool)

	calls struct {
		FindOpportunity []struct {
			OrgName string
			Title   string
		}
	}
	lockFindOpportunity sync.RWMutex
}

func (mock *opportunityCatalogMock) FindOpportunity(orgName, title string) (domain.Opportunity, bool) {
	if mock.FindOpportunityFunc == nil {
		panic("opportunityCatalogMock.FindOpportunityFunc: method is nil but opportunityCatalog.FindOpportunity was just called")
	}
	callInfo := struct {
		OrgName string
		Title   string
	}{OrgName: orgName, Title: title}
	mock.lockFindOpportunity.Lock()
	mock.calls.FindOpportunity = append(mock.calls.FindOpportunity, callInfo)
	mock.lockFindOpportunity.Unlock()
	return mock.FindOpportunityFunc(orgName, title)
}

func (mock *opportunityCatalogMock) FindOpportunityCalls() []struct {
	OrgName string
	Title   string
} {
	mock.lockFindOpportunity.RLock()
	calls := mock.calls.FindOpportunity
	mock.lockFindOpportunity.RUnlock()
	return calls
}
