package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iciso/iciso-z6/internal/domain"
)

func orgIDs(orgs []domain.Organization) []string {
	ids := make([]string, 0, len(orgs))
	for _, o := range orgs {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestSearch_DefaultCatalog(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "no criteria returns everything", query: Query{}, want: []string{"iou", "mopa"}},
		{name: "whitespace criteria are ignored", query: Query{Text: "  ", Location: " "}, want: []string{"iou", "mopa"}},
		{name: "text in org name, any case", query: Query{Text: "ONLINE university"}, want: []string{"iou"}},
		{name: "text in org description", query: Query{Text: "grassroots"}, want: []string{"mopa"}},
		{name: "text in opportunity title", query: Query{Text: "food bank"}, want: []string{"mopa"}},
		{name: "text in opportunity description", query: Query{Text: "recitation"}, want: []string{"iou"}},
		{name: "text without match", query: Query{Text: "astronomy"}, want: []string{}},
		{name: "location substring", query: Query{Location: "gambia"}, want: []string{"iou"}},
		{name: "location united states", query: Query{Location: "United States"}, want: []string{"mopa"}},
		{name: "remote matches orgs with remote opportunities", query: Query{Location: "Remote"}, want: []string{"iou", "mopa"}},
		{name: "theme identifier", query: Query{Themes: []string{"dawah"}}, want: []string{"mopa"}},
		{name: "theme label is normalized", query: Query{Themes: []string{"Quranic Studies"}}, want: []string{"iou"}},
		{name: "any requested theme matches", query: Query{Themes: []string{"dawah", "islamic-education"}}, want: []string{"iou", "mopa"}},
		{name: "unknown theme", query: Query{Themes: []string{"astronomy"}}, want: []string{}},
		{name: "empty theme entries are ignored", query: Query{Themes: []string{"", " "}}, want: []string{"iou", "mopa"}},
		{name: "dawah and remote", query: Query{Themes: []string{"dawah"}, Location: "remote"}, want: []string{"mopa"}},
		{name: "text and theme must both hold", query: Query{Text: "quran", Themes: []string{"dawah"}}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, orgIDs(c.Search(tt.query)))
		})
	}
}

func TestSearch_ThemeAndLocationAreConjunctive(t *testing.T) {
	t.Parallel()

	c := New([]domain.Organization{
		{
			ID: "onsite-dawah", Name: "Onsite Dawah Center", Location: "Chicago",
			Themes: []string{"Dawah"},
			Opportunities: []domain.Opportunity{
				{Title: "Booth Volunteer", Type: domain.OpportunityVolunteer, Remote: false},
			},
		},
		{
			ID: "remote-dawah", Name: "Remote Dawah Network", Location: "Toronto",
			Themes: []string{"Dawah"},
			Opportunities: []domain.Opportunity{
				{Title: "Online Mentor", Type: domain.OpportunityVolunteer, Remote: true},
			},
		},
		{
			ID: "remote-education", Name: "Remote School", Location: "Cairo",
			Themes: []string{"Islamic Education"},
			Opportunities: []domain.Opportunity{
				{Title: "Online Tutor", Type: domain.OpportunityInternship, Remote: true},
			},
		},
	}, nil)

	got := c.Search(Query{Themes: []string{"dawah"}, Location: "remote"})
	assert.Equal(t, []string{"remote-dawah"}, orgIDs(got))
}

func TestSearch_RemoteAlsoMatchesLocationText(t *testing.T) {
	t.Parallel()

	c := New([]domain.Organization{
		{ID: "fully-remote", Name: "Distributed Org", Location: "Remote (worldwide)"},
	}, nil)

	assert.Equal(t, []string{"fully-remote"}, orgIDs(c.Search(Query{Location: "remote"})))
}
