package applications

import (
	"context"
	"sync"

	"github.com/iciso/iciso-z6/internal/domain"
)

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	ReadAllFunc      func(ctx context.Context) ([]domain.Application, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.Status) (domain.Application, error)

	calls struct {
		ReadAll      []struct{ Ctx context.Context }
		UpdateStatus []struct {
			Ctx    context.Context
			ID     string
			Status domain.Status
		}
	}
	lockReadAll      sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *recordStoreMock) ReadAll(ctx context.Context) ([]domain.Application, error) {
	if mock.ReadAllFunc == nil {
		panic("recordStoreMock.ReadAllFunc: method is nil but recordStore.ReadAll was just called")
	}
	mock.lockReadAll.Lock()
	mock.calls.ReadAll = append(mock.calls.ReadAll, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockReadAll.Unlock()
	return mock.ReadAllFunc(ctx)
}

func (mock *recordStoreMock) ReadAllCalls() []struct{ Ctx context.Context } {
	mock.lockReadAll.RLock()
	calls := mock.calls.ReadAll
	mock.lockReadAll.RUnlock()
	return calls
}

func (mock *recordStoreMock) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Application, error) {
	if mock.UpdateStatusFunc == nil {
		panic("recordStoreMock.UpdateStatusFunc: method is nil but recordStore.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     string
		Status domain.Status
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *recordStoreMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     string
	Status domain.Status
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
