package domain

// Organization is a partner offering volunteer and internship opportunities.
// Catalog data is loaded once at start-up and never mutated.
type Organization struct {
	ID            string        `json:"id"            yaml:"id"`
	Name          string        `json:"name"          yaml:"name"`
	Description   string        `json:"description"   yaml:"description"`
	Location      string        `json:"location"      yaml:"location"`
	Website       string        `json:"website"       yaml:"website"`
	Themes        []string      `json:"themes"        yaml:"themes"`
	Image         string        `json:"image"         yaml:"image"`
	Established   string        `json:"established"   yaml:"established"`
	Languages     []string      `json:"languages"     yaml:"languages"`
	Opportunities []Opportunity `json:"opportunities" yaml:"opportunities"`
}

// HasRemoteOpportunity reports whether at least one opportunity can be done remotely.
func (o Organization) HasRemoteOpportunity() bool {
	for _, opp := range o.Opportunities {
		if opp.Remote {
			return true
		}
	}
	return false
}

// Opportunity is a single position offered by an Organization.
type Opportunity struct {
	ID           string          `json:"id"           yaml:"id"`
	Title        string          `json:"title"        yaml:"title"`
	Description  string          `json:"description"  yaml:"description"`
	Duration     string          `json:"duration"     yaml:"duration"`
	Requirements []string        `json:"requirements" yaml:"requirements"`
	Benefits     []string        `json:"benefits"     yaml:"benefits"`
	Theme        string          `json:"theme"        yaml:"theme"`
	Type         OpportunityType `json:"type"         yaml:"type"`
	Remote       bool            `json:"remote"       yaml:"remote"`
}

// Theme is a topical tag used for catalog classification and filtering.
type Theme struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}
