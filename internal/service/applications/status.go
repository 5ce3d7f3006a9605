package applications

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iciso/iciso-z6/internal/domain"
)

// UpdateStatus records an administrator's review decision. Only the status
// changes; every other field of the record is preserved.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Application{}, domain.NewMissingFieldError("id")
	}
	if !status.IsValid() {
		return domain.Application{}, domain.NewValidationError("status", "must be one of pending, reviewed, accepted, rejected")
	}

	app, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return domain.Application{}, fmt.Errorf("update status of %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "application status updated",
		slog.String("application_id", id),
		slog.String("status", status.String()),
	)
	return app, nil
}
