package catalog

import (
	"strings"

	"github.com/iciso/iciso-z6/internal/domain"
)

// RemoteLocation is the location value that also matches organizations
// offering at least one remote opportunity.
const RemoteLocation = "remote"

// Query narrows a catalog search. Zero-valued fields impose no constraint;
// supplied fields are combined with AND.
type Query struct {
	Text     string
	Location string
	Themes   []string
}

// Search returns the organizations matching q in catalog order.
func (c *Catalog) Search(q Query) []domain.Organization {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	location := strings.ToLower(strings.TrimSpace(q.Location))
	themes := themeSet(q.Themes)

	result := make([]domain.Organization, 0, len(c.orgs))
	for _, org := range c.orgs {
		if text != "" && !matchesText(org, text) {
			continue
		}
		if location != "" && !matchesLocation(org, location) {
			continue
		}
		if len(themes) > 0 && !matchesThemes(org, themes) {
			continue
		}
		result = append(result, org)
	}
	return result
}

func themeSet(themes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(themes))
	for _, th := range themes {
		if id := domain.NormalizeTheme(th); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

func matchesText(org domain.Organization, text string) bool {
	if containsFold(org.Name, text) || containsFold(org.Description, text) {
		return true
	}
	for _, opp := range org.Opportunities {
		if containsFold(opp.Title, text) || containsFold(opp.Description, text) {
			return true
		}
	}
	return false
}

func matchesLocation(org domain.Organization, location string) bool {
	if containsFold(org.Location, location) {
		return true
	}
	return location == RemoteLocation && org.HasRemoteOpportunity()
}

func matchesThemes(org domain.Organization, themes map[string]struct{}) bool {
	for _, th := range org.Themes {
		if _, ok := themes[domain.NormalizeTheme(th)]; ok {
			return true
		}
	}
	return false
}

// containsFold reports whether needle, already lower-cased, occurs in s
// ignoring case.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
