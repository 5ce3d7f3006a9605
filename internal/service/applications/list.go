package applications

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/iciso/iciso-z6/internal/domain"
)

// List returns the applications matching filter, newest first. Records with
// equal timestamps keep insertion order. An unreadable store yields
// an empty list rather than an error.
func (s *Service) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be one of pending, reviewed, accepted, rejected")
	}

	all, err := s.store.ReadAll(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "store unreadable, listing nothing", slog.String("error", err.Error()))
		return []domain.Application{}, nil
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]domain.Application, 0, len(all))
	for _, app := range all {
		if filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		if search != "" && !matchesSearch(app, search) {
			continue
		}
		result = append(result, app)
	}

	sortNewestFirst(result)
	return result, nil
}

// sortNewestFirst orders apps by timestamp descending. apps must be in
// insertion order on entry; ties stay in that order.
func sortNewestFirst(apps []domain.Application) {
	slices.SortStableFunc(apps, func(a, b domain.Application) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
}

func matchesSearch(app domain.Application, search string) bool {
	return strings.Contains(strings.ToLower(app.ApplicantName), search) ||
		strings.Contains(strings.ToLower(app.OrganizationName), search) ||
		strings.Contains(strings.ToLower(app.FocusArea), search)
}
