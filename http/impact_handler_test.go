package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wage-impact/domain"
	"wage-impact/repository"
	"wage-impact/service"
)

func newTestHandler() *ImpactHandler {
	calc := service.NewCalculatorService(
		repository.NewCalculationRepositoryMemory(),
		repository.NewMockCache(),
	)
	return NewImpactHandler(calc)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestCalculateHandler_OK(t *testing.T) {

	handler := newTestHandler()

	w := postJSON(t, handler.Calculate, "/impact/calculate", `{
		"home_price": 665298,
		"construction_cost_share": 0.644,
		"labor_share": 0.40,
		"wage_premium": 0.15
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var result domain.CalculationResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))

	assert.InDelta(t, 665298*0.644*0.40*0.15, result.WageIncrease, 0.01)
	assert.Nil(t, result.Mortgage)
}

func TestCalculateHandler_WithMortgage(t *testing.T) {

	handler := newTestHandler()

	w := postJSON(t, handler.Calculate, "/impact/calculate", `{
		"home_price": 500000,
		"construction_cost_share": 0.5,
		"labor_share": 0.4,
		"wage_premium": 0.2,
		"mortgage": {"interest_rate": 0.07, "loan_term_years": 30}
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var result domain.CalculationResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))

	require.NotNil(t, result.Mortgage)
	assert.InDelta(t, 133, result.Mortgage.MonthlyPaymentIncrease, 1)
}

func TestCalculateHandler_BadRequest(t *testing.T) {

	handler := newTestHandler()

	w := postJSON(t, handler.Calculate, "/impact/calculate", `{invalid-json}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateHandler_InvalidParameter(t *testing.T) {

	handler := newTestHandler()

	w := postJSON(t, handler.Calculate, "/impact/calculate", `{
		"home_price": 0,
		"construction_cost_share": 0.644,
		"labor_share": 0.40,
		"wage_premium": 0.15
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body["error"], "home price")
}

func TestSensitivityHandler_OK(t *testing.T) {

	handler := newTestHandler()

	w := postJSON(t, handler.Sensitivity, "/impact/sensitivity", `{
		"home_price": 665298,
		"construction_cost_share": 0.644,
		"labor_shares": [0.30, 0.40, 0.50],
		"wage_premiums": [-0.10, 0.15]
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var grid domain.SensitivityGrid
	require.NoError(t, json.NewDecoder(w.Body).Decode(&grid))

	require.Len(t, grid.Values, 2)
	require.Len(t, grid.Values[0], 3)
	assert.Equal(t, domain.GridOutputPercent, grid.Output)
}

func TestScenariosHandler_OK(t *testing.T) {

	handler := newTestHandler()

	w := postJSON(t, handler.CompareScenarios, "/impact/scenarios", `{
		"home_price": 665298,
		"construction_cost_share": 0.644,
		"mortgage": {"interest_rate": 0.07, "loan_term_years": 30}
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var results []domain.ScenarioResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&results))

	require.Len(t, results, len(domain.Scenarios)-1)
	for _, sr := range results {
		assert.NotEqual(t, domain.CustomScenarioName, sr.Name)
		assert.NotNil(t, sr.Result.Mortgage)
	}
}
