// Package applications serves the read side of the record store to
// administrators: listing, CSV export, the summary report and status review.
package applications

import (
	"context"
	"log/slog"
	"time"

	"github.com/iciso/iciso-z6/internal/domain"
)

type recordStore interface {
	ReadAll(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Application, error)
}

// Service provides administrative access to submitted applications.
type Service struct {
	store recordStore
	now   func() time.Time
	log   *slog.Logger
}

// NewService creates a new applications service.
func NewService(log *slog.Logger, store recordStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		log:   log.With("service", "applications"),
	}
}
