package applications

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/iciso/iciso-z6/internal/domain"
)

// RecentLimit is how many of the newest applications a Summary carries.
const RecentLimit = 10

// StatusCount is the number of applications in one status.
type StatusCount struct {
	Status domain.Status `json:"status"`
	Count  int           `json:"count"`
}

// OrganizationCount is the number of applications addressed to one organization.
type OrganizationCount struct {
	Organization string `json:"organization"`
	Count        int    `json:"count"`
}

// Summary is the administrative overview of the record store.
type Summary struct {
	Total          int                  `json:"total"`
	ByStatus       []StatusCount        `json:"byStatus"`
	ByOrganization []OrganizationCount  `json:"byOrganization"`
	Recent         []domain.Application `json:"recent"`
}

// Summary counts applications by status (every status listed, in review
// order) and by organization (most applications first, then by name), and
// returns the newest RecentLimit records. An unreadable store is reported as
// an empty summary.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	apps, err := s.store.ReadAll(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "store unreadable, empty summary", slog.String("error", err.Error()))
		apps = nil
	}

	byStatus := make(map[domain.Status]int, len(domain.Statuses))
	byOrg := make(map[string]int)
	for _, app := range apps {
		byStatus[app.Status]++
		byOrg[app.OrganizationName]++
	}

	sum := Summary{
		Total:          len(apps),
		ByStatus:       make([]StatusCount, 0, len(domain.Statuses)),
		ByOrganization: make([]OrganizationCount, 0, len(byOrg)),
	}
	for _, st := range domain.Statuses {
		sum.ByStatus = append(sum.ByStatus, StatusCount{Status: st, Count: byStatus[st]})
	}
	for org, n := range byOrg {
		sum.ByOrganization = append(sum.ByOrganization, OrganizationCount{Organization: org, Count: n})
	}
	slices.SortFunc(sum.ByOrganization, func(a, b OrganizationCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Organization, b.Organization)
	})

	recent := slices.Clone(apps)
	sortNewestFirst(recent)
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	if recent == nil {
		recent = []domain.Application{}
	}
	sum.Recent = recent

	return sum, nil
}
