package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/iciso/iciso-z6/internal/domain"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)

// newTestService creates a Service with the given mocks and a discard logger.
func newTestService(t *testing.T, store *recordStoreMock, opts ...Option) *Service {
	t.Helper()
	ids := &idGeneratorMock{NextFunc: func() string { return "app_1741944413589_abcdefghi" }}
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), store, ids, opts...)
}

func okStore() *recordStoreMock {
	return &recordStoreMock{AppendFunc: func(context.Context, domain.Application) error { return nil }}
}

func TestSubmit_Success(t *testing.T) {
	t.Parallel()

	store := okStore()
	svc := newTestService(t, store)

	app, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.ID != "app_1741944413589_abcdefghi" {
		t.Errorf("ID = %q", app.ID)
	}
	if app.Status != domain.StatusPending {
		t.Errorf("Status = %q, want pending", app.Status)
	}
	if app.OpportunityType != domain.OpportunityVolunteer {
		t.Errorf("OpportunityType = %q, want volunteer", app.OpportunityType)
	}
	if want := fixedNow.Truncate(time.Millisecond); !app.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", app.Timestamp, want)
	}

	calls := store.AppendCalls()
	if len(calls) != 1 {
		t.Fatalf("Append calls: got %d, want 1", len(calls))
	}
	if calls[0].App != app {
		t.Errorf("stored record %+v differs from returned %+v", calls[0].App, app)
	}
}

func TestSubmit_EmptyPayload(t *testing.T) {
	t.Parallel()

	store := &recordStoreMock{}
	ids := &idGeneratorMock{}
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), store, ids)

	_, err := svc.Submit(context.Background(), SubmitInput{})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if field, _ := ve.MissingField(); field != FieldApplicantName {
		t.Errorf("MissingField = %q, want applicantName", field)
	}
	if len(store.AppendCalls()) != 0 {
		t.Error("store must not be touched on validation failure")
	}
	if len(ids.NextCalls()) != 0 {
		t.Error("no identity should be consumed on validation failure")
	}
}

func TestSubmit_ValidationErrorReturnedUnchanged(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordStoreMock{})
	in := validInput()
	in.OpportunityType = "job"

	_, err := svc.Submit(context.Background(), in)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err != error(ve) {
		t.Error("validation error should not be wrapped")
	}
}

func TestSubmit_StoreFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	store := &recordStoreMock{AppendFunc: func(context.Context, domain.Application) error {
		return domain.WriteFailed("append application", cause)
	}}
	svc := newTestService(t, store)

	_, err := svc.Submit(context.Background(), validInput())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var pe *domain.PersistenceError
	if !errors.As(err, &pe) || pe.Kind != domain.PersistenceWriteFailed {
		t.Fatalf("expected write_failed PersistenceError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should stay reachable")
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Error("store failure must not look like a validation error")
	}
}

func TestSubmit_CatalogDefaults(t *testing.T) {
	t.Parallel()

	catalog := &opportunityCatalogMock{
		FindOpportunityFunc: func(orgName, title string) (domain.Opportunity, bool) {
			if title == "Islamic Studies Research Intern" {
				return domain.Opportunity{Type: domain.OpportunityInternship, Theme: "Islamic Education"}, true
			}
			return domain.Opportunity{}, false
		},
	}

	tests := []struct {
		name          string
		mutate        func(*SubmitInput)
		wantType      domain.OpportunityType
		wantFocusArea string
	}{
		{
			name:          "known opportunity fills omitted fields",
			mutate:        func(in *SubmitInput) { in.OpportunityTitle = "Islamic Studies Research Intern" },
			wantType:      domain.OpportunityInternship,
			wantFocusArea: "Islamic Education",
		},
		{
			name: "caller values win",
			mutate: func(in *SubmitInput) {
				in.OpportunityTitle = "Islamic Studies Research Intern"
				in.OpportunityType = "volunteer"
				in.FocusArea = "Research"
			},
			wantType:      domain.OpportunityVolunteer,
			wantFocusArea: "Research",
		},
		{
			name:          "unknown opportunity keeps plain defaults",
			mutate:        func(in *SubmitInput) { in.OpportunityTitle = "Something Else" },
			wantType:      domain.OpportunityVolunteer,
			wantFocusArea: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(t, okStore(), WithCatalog(catalog))
			in := validInput()
			tt.mutate(&in)

			app, err := svc.Submit(context.Background(), in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if app.OpportunityType != tt.wantType {
				t.Errorf("OpportunityType = %q, want %q", app.OpportunityType, tt.wantType)
			}
			if app.FocusArea != tt.wantFocusArea {
				t.Errorf("FocusArea = %q, want %q", app.FocusArea, tt.wantFocusArea)
			}
		})
	}
}

func TestSubmit_StrictEmailOption(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &recordStoreMock{}, WithStrictEmail(true))
	in := validInput()
	in.ApplicantEmail = "amina at example dot com"

	_, err := svc.Submit(context.Background(), in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmit_ConcurrentSubmissionsGetDistinctIDs(t *testing.T) {
	t.Parallel()

	var seq atomic.Int64
	ids := &idGeneratorMock{NextFunc: func() string {
		return fmt.Sprintf("app_%d", seq.Add(1))
	}}
	store := okStore()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), store, ids)

	const n = 32
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Submit(context.Background(), validInput()); err != nil {
				t.Errorf("Submit: %v", err)
			}
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, c := range store.AppendCalls() {
		if seen[c.App.ID] {
			t.Fatalf("duplicate id %s", c.App.ID)
		}
		seen[c.App.ID] = true
	}
	if len(seen) != n {
		t.Fatalf("stored %d records, want %d", len(seen), n)
	}
}
