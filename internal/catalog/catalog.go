// Package catalog holds the static set of partner organizations and their
// opportunities, and filters it for discovery.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iciso/iciso-z6/internal/domain"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	orgs   []domain.Organization
	themes []domain.Theme
}

type document struct {
	Organizations []domain.Organization `yaml:"organizations"`
	Themes        []domain.Theme        `yaml:"themes"`
}

// New builds a catalog from in-memory data. Inputs are copied.
func New(orgs []domain.Organization, themes []domain.Theme) *Catalog {
	return &Catalog{
		orgs:   append([]domain.Organization(nil), orgs...),
		themes: append([]domain.Theme(nil), themes...),
	}
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog YAML file. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and checks a catalog YAML document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &Catalog{orgs: doc.Organizations, themes: doc.Themes}, nil
}

func (d document) validate() error {
	var errs []error

	orgIDs := make(map[string]struct{}, len(d.Organizations))
	for i, org := range d.Organizations {
		if org.ID == "" || org.Name == "" {
			errs = append(errs, fmt.Errorf("organizations[%d]: id and name are required", i))
		}
		if _, dup := orgIDs[org.ID]; dup {
			errs = append(errs, fmt.Errorf("organizations[%d]: duplicate id %q", i, org.ID))
		}
		orgIDs[org.ID] = struct{}{}

		for j, opp := range org.Opportunities {
			if opp.Title == "" {
				errs = append(errs, fmt.Errorf("%s.opportunities[%d]: title is required", org.ID, j))
			}
			if !opp.Type.IsValid() {
				errs = append(errs, fmt.Errorf("%s.opportunities[%d]: invalid type %q", org.ID, j, opp.Type))
			}
		}
	}

	for i, th := range d.Themes {
		if th.ID == "" {
			errs = append(errs, fmt.Errorf("themes[%d]: id is required", i))
		}
	}

	return errors.Join(errs...)
}

// Organizations returns every organization in declaration order.
func (c *Catalog) Organizations() []domain.Organization {
	return append([]domain.Organization(nil), c.orgs...)
}

// Themes returns the theme list in declaration order.
func (c *Catalog) Themes() []domain.Theme {
	return append([]domain.Theme(nil), c.themes...)
}

// FindOpportunity looks up an opportunity by organization name and
// opportunity title, ignoring case and surrounding whitespace.
func (c *Catalog) FindOpportunity(orgName, title string) (domain.Opportunity, bool) {
	orgName = domain.NormalizeText(orgName)
	title = domain.NormalizeText(title)
	if orgName == "" || title == "" {
		return domain.Opportunity{}, false
	}

	for _, org := range c.orgs {
		if domain.NormalizeText(org.Name) != orgName {
			continue
		}
		for _, opp := range org.Opportunities {
			if domain.NormalizeText(opp.Title) == title {
				return opp, true
			}
		}
	}
	return domain.Opportunity{}, false
}
