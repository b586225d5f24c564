package http

import (
	"net/http"

	"wage-impact/domain"
)

// ReferenceHandler serves the static reference data backing the UI: research
// presets, citations, and the documented slider ranges.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// Scenarios handles GET /reference/scenarios.
func (h *ReferenceHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Scenarios)
}

// Sources handles GET /reference/sources.
func (h *ReferenceHandler) Sources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Sources)
}

// Ranges handles GET /reference/ranges.
func (h *ReferenceHandler) Ranges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.SliderRanges)
}
