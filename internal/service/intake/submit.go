package intake

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iciso/iciso-z6/internal/domain"
)

// Submit validates in, stamps identity, creation time and pending status,
// and appends the record. Validation errors are returned unchanged; store
// failures wrap a *domain.PersistenceError and nothing is recorded.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (domain.Application, error) {
	in = s.withCatalogDefaults(in)

	app, err := s.validator.Validate(in)
	if err != nil {
		s.log.InfoContext(ctx, "application rejected", slog.String("reason", err.Error()))
		return domain.Application{}, err
	}

	app.ID = s.ids.Next()
	app.Timestamp = s.now().UTC().Truncate(time.Millisecond)
	app.Status = domain.StatusPending

	if err := s.store.Append(ctx, app); err != nil {
		s.log.ErrorContext(ctx, "application not recorded",
			slog.String("application_id", app.ID),
			slog.String("error", err.Error()),
		)
		return domain.Application{}, fmt.Errorf("submit application: %w", err)
	}

	s.log.InfoContext(ctx, "application submitted",
		slog.String("application_id", app.ID),
		slog.String("organization", app.OrganizationName),
		slog.String("opportunity", app.OpportunityTitle),
		slog.String("type", app.OpportunityType.String()),
	)

	return app, nil
}

// withCatalogDefaults fills omitted opportunityType and focusArea from the
// catalog entry matching the submitted organization and opportunity.
func (s *Service) withCatalogDefaults(in SubmitInput) SubmitInput {
	if s.catalog == nil {
		return in
	}
	if strings.TrimSpace(in.OpportunityType) != "" && strings.TrimSpace(in.FocusArea) != "" {
		return in
	}

	opp, ok := s.catalog.FindOpportunity(in.OrganizationName, in.OpportunityTitle)
	if !ok {
		return in
	}
	if strings.TrimSpace(in.OpportunityType) == "" {
		in.OpportunityType = opp.Type.String()
	}
	if strings.TrimSpace(in.FocusArea) == "" {
		in.FocusArea = opp.Theme
	}
	return in
}
