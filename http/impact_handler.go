package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"wage-impact/domain"
	"wage-impact/service"
)

// ImpactHandler serves the calculation endpoints.
type ImpactHandler struct {
	service *service.CalculatorService
}

func NewImpactHandler(service *service.CalculatorService) *ImpactHandler {
	return &ImpactHandler{service: service}
}

type calculateRequest struct {
	domain.ImpactInput
	Mortgage *domain.MortgageTerms `json:"mortgage,omitempty"`
}

// Calculate handles POST /impact/calculate. Mortgage fields are included in
// the result only when mortgage terms are present in the request.
func (h *ImpactHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		result domain.CalculationResult
		err    error
	)
	if req.Mortgage != nil {
		result, err = h.service.CalculateWithMortgage(req.ImpactInput, *req.Mortgage)
	} else {
		result, err = h.service.Calculate(req.ImpactInput)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Sensitivity handles POST /impact/sensitivity.
func (h *ImpactHandler) Sensitivity(w http.ResponseWriter, r *http.Request) {

	var req domain.SensitivityInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	grid, err := h.service.SensitivityGrid(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, grid)
}

// CompareScenarios handles POST /impact/scenarios.
func (h *ImpactHandler) CompareScenarios(w http.ResponseWriter, r *http.Request) {

	var req domain.ScenarioComparisonInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.service.CompareScenarios(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidParameter) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
