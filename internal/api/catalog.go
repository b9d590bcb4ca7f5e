package api

import (
	"net/http"

	"github.com/uia-collective/compass/internal/catalog"
)

// CatalogHandler serves the read-only reference data a questionnaire client
// renders: goals, questions, tier cuts, and certification schemes.
type CatalogHandler struct {
	cat *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// SDGs handles GET /api/v1/catalog/sdgs
func (h *CatalogHandler) SDGs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.SDGs)
}

type sectionPayload struct {
	Title     string             `json:"title"`
	Questions []catalog.Question `json:"questions"`
}

// Questions handles GET /api/v1/catalog/questions
func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	sections := make([]sectionPayload, 0, len(h.cat.Sections))
	for _, s := range h.cat.Sections {
		payload := sectionPayload{Title: s.Title}
		for _, id := range s.Questions {
			if q, ok := h.cat.Question(id); ok {
				payload.Questions = append(payload.Questions, q)
			}
		}
		sections = append(sections, payload)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":  h.cat.Version,
		"sections": sections,
	})
}

// Tiers handles GET /api/v1/catalog/tiers
func (h *CatalogHandler) Tiers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.Scale)
}

// Certifications handles GET /api/v1/catalog/certifications
func (h *CatalogHandler) Certifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.Certifications)
}
