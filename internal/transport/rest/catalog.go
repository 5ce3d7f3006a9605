package rest

import (
	"net/http"
	"strings"

	"github.com/iciso/iciso-z6/internal/catalog"
	"github.com/iciso/iciso-z6/internal/domain"
)

type catalogService interface {
	Search(q catalog.Query) []domain.Organization
	Themes() []domain.Theme
}

// CatalogHandler serves the read-only partner catalog.
type CatalogHandler struct {
	catalog catalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(c catalogService) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type organizationsResponse struct {
	Success       bool                  `json:"success"`
	Organizations []domain.Organization `json:"organizations"`
	Count         int                   `json:"count"`
}

// Organizations handles GET /api/organizations?q=&location=&theme=a,b.
// theme may also be repeated.
func (h *CatalogHandler) Organizations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var themes []string
	for _, v := range q["theme"] {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				themes = append(themes, t)
			}
		}
	}

	orgs := h.catalog.Search(catalog.Query{
		Text:     q.Get("q"),
		Location: q.Get("location"),
		Themes:   themes,
	})
	if orgs == nil {
		orgs = []domain.Organization{}
	}

	writeJSON(w, http.StatusOK, organizationsResponse{Success: true, Organizations: orgs, Count: len(orgs)})
}

type themesResponse struct {
	Success bool           `json:"success"`
	Themes  []domain.Theme `json:"themes"`
}

// Themes handles GET /api/themes.
func (h *CatalogHandler) Themes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, themesResponse{Success: true, Themes: h.catalog.Themes()})
}
