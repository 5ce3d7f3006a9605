// Package intake is the single write path for applications: it validates a
// submission, assigns identity and creation time, and appends it to the
// record store.
package intake

import (
	"context"
	"log/slog"
	"time"

	"github.com/iciso/iciso-z6/internal/domain"
)

type recordStore interface {
	Append(ctx context.Context, app domain.Application) error
}

type idGenerator interface {
	Next() string
}

type opportunityCatalog interface {
	FindOpportunity(orgName, title string) (domain.Opportunity, bool)
}

// Service accepts application submissions.
type Service struct {
	store     recordStore
	ids       idGenerator
	catalog   opportunityCatalog
	validator Validator
	now       func() time.Time
	log       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCatalog enables catalog-driven defaults for opportunityType and
// focusArea.
func WithCatalog(c opportunityCatalog) Option {
	return func(s *Service) { s.catalog = c }
}

// WithStrictEmail toggles RFC 5322 address checking.
func WithStrictEmail(strict bool) Option {
	return func(s *Service) { s.validator.StrictEmail = strict }
}

// WithClock overrides the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new intake service.
func NewService(
	log *slog.Logger,
	store recordStore,
	ids idGenerator,
	opts ...Option,
) *Service {
	s := &Service{
		store: store,
		ids:   ids,
		now:   time.Now,
		log:   log.With("service", "intake"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
