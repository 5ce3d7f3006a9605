package rest

import (
	"context"
	"io"
	"sync"

	"github.com/iciso/iciso-z6/internal/domain"
	"github.com/iciso/iciso-z6/internal/service/applications"
	"github.com/iciso/iciso-z6/internal/service/intake"
)

var (
	_ intakeService       = &intakeServiceMock{}
	_ applicationsService = &applicationsServiceMock{}
	_ submissionRecorder  = &recorderMock{}
)

type intakeServiceMock struct {
	SubmitFunc func(ctx context.Context, in intake.SubmitInput) (domain.Application, error)

	calls struct {
		Submit []struct {
			Ctx context.Context
			In  intake.SubmitInput
		}
	}
	lockSubmit sync.RWMutex
}

func (mock *intakeServiceMock) Submit(ctx context.Context, in intake.SubmitInput) (domain.Application, error) {
	if mock.SubmitFunc == nil {
		panic("intakeServiceMock.SubmitFunc: method is nil but intakeService.Submit was just called")
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, struct {
		Ctx context.Context
		In  intake.SubmitInput
	}{Ctx: ctx, In: in})
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, in)
}

func (mock *intakeServiceMock) SubmitCalls() []struct {
	Ctx context.Context
	In  intake.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

type applicationsServiceMock struct {
	ListFunc         func(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error)
	ExportCSVFunc    func(ctx context.Context, w io.Writer) (int, error)
	SummaryFunc      func(ctx context.Context) (applications.Summary, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.Status) (domain.Application, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.ApplicationFilter
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     string
			Status domain.Status
		}
	}
	lockList         sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *applicationsServiceMock) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	if mock.ListFunc == nil {
		panic("applicationsServiceMock.ListFunc: method is nil but applicationsService.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Filter domain.ApplicationFilter
	}{Ctx: ctx, Filter: filter})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *applicationsServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ApplicationFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *applicationsServiceMock) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	if mock.ExportCSVFunc == nil {
		panic("applicationsServiceMock.ExportCSVFunc: method is nil but applicationsService.ExportCSV was just called")
	}
	return mock.ExportCSVFunc(ctx, w)
}

func (mock *applicationsServiceMock) Summary(ctx context.Context) (applications.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("applicationsServiceMock.SummaryFunc: method is nil but applicationsService.Summary was just called")
	}
	return mock.SummaryFunc(ctx)
}

func (mock *applicationsServiceMock) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Application, error) {
	if mock.UpdateStatusFunc == nil {
		panic("applicationsServiceMock.UpdateStatusFunc: method is nil but applicationsService.UpdateStatus was just called")
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		Ctx    context.Context
		ID     string
		Status domain.Status
	}{Ctx: ctx, ID: id, Status: status})
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *applicationsServiceMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     string
	Status domain.Status
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

type recorderMock struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *recorderMock) Submission(outcome string) {
	m.mu.Lock()
	m.outcomes = append(m.outcomes, outcome)
	m.mu.Unlock()
}

func (m *recorderMock) Outcomes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.outcomes...)
}
