package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wage-impact/domain"
	"wage-impact/repository"
)

func defaultComparisonInput() domain.ScenarioComparisonInput {
	return domain.ScenarioComparisonInput{
		HomePrice:             665298,
		ConstructionCostShare: 0.644,
		Mortgage:              domain.MortgageTerms{InterestRate: 0.07, LoanTermYears: 30},
	}
}

func TestCompareScenarios_SkipsCustomSettings(t *testing.T) {

	calc, _ := newTestService()

	results, err := calc.CompareScenarios(defaultComparisonInput())
	require.NoError(t, err)

	// Every preset except the manual-entry placeholder, in preset order.
	var wantNames []string
	for _, preset := range domain.Scenarios {
		if preset.Name != domain.CustomScenarioName {
			wantNames = append(wantNames, preset.Name)
		}
	}

	var gotNames []string
	for _, sr := range results {
		gotNames = append(gotNames, sr.Name)
	}

	assert.Equal(t, wantNames, gotNames)
}

func TestCompareScenarios_IncludesMortgageImpacts(t *testing.T) {

	calc, _ := newTestService()

	results, err := calc.CompareScenarios(defaultComparisonInput())
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, sr := range results {
		require.NotNil(t, sr.Result.Mortgage, sr.Name)
		assert.Equal(t, 665298.0, sr.Result.HomePrice, sr.Name)
		assert.Equal(t, 0.644, sr.Result.ConstructionCostShare, sr.Name)
	}
}

func TestCompareScenarios_RightToWorkScenarioLowersCosts(t *testing.T) {

	calc, _ := newTestService()

	results, err := calc.CompareScenarios(defaultComparisonInput())
	require.NoError(t, err)

	var found bool
	for _, sr := range results {
		if sr.Result.WagePremium < 0 {
			found = true
			assert.Negative(t, sr.Result.WageIncrease, sr.Name)
			assert.Negative(t, sr.Result.Mortgage.MonthlyPaymentIncrease, sr.Name)
		}
	}
	assert.True(t, found, "expected at least one below-market preset")
}

func TestCompareScenarios_CachesDefaultPresets(t *testing.T) {

	repo := &mockCalculationRepository{}
	cache := repository.NewMockCache()
	calc := NewCalculatorService(repo, cache)

	first, err := calc.CompareScenarios(defaultComparisonInput())
	require.NoError(t, err)
	require.Len(t, cache.Data, 1)

	second, err := calc.CompareScenarios(defaultComparisonInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, cache.Data, 1)
}

func TestCompareScenarios_CorruptCacheEntryIsRecomputed(t *testing.T) {

	cache := repository.NewMockCache()
	calc := NewCalculatorService(&mockCalculationRepository{}, cache)

	_, err := calc.CompareScenarios(defaultComparisonInput())
	require.NoError(t, err)

	for key := range cache.Data {
		cache.Data[key] = "{not json"
	}

	results, err := calc.CompareScenarios(defaultComparisonInput())
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestCompareScenarios_CacheFailureIsNotFatal(t *testing.T) {

	cache := repository.NewMockCache()
	cache.ForceError = true
	calc := NewCalculatorService(&mockCalculationRepository{}, cache)

	results, err := calc.CompareScenarios(defaultComparisonInput())
	require.NoError(t, err)
	assert.NotEmpty(t, results)
}

func TestCompareScenarios_ExplicitPresetsBypassCache(t *testing.T) {

	cache := repository.NewMockCache()
	calc := NewCalculatorService(&mockCalculationRepository{}, cache)

	input := defaultComparisonInput()
	input.Scenarios = []domain.ScenarioPreset{
		{Name: "Union Metro", LaborShare: 0.45, WagePremium: 0.35},
		{Name: domain.CustomScenarioName, LaborShare: 0.40, WagePremium: 0.15},
	}

	results, err := calc.CompareScenarios(input)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Union Metro", results[0].Name)
	assert.Empty(t, cache.Data)
}

func TestCompareScenarios_PropagatesInvalidParameters(t *testing.T) {

	calc, _ := newTestService()

	input := defaultComparisonInput()
	input.HomePrice = 0

	_, err := calc.CompareScenarios(input)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	input = defaultComparisonInput()
	input.Mortgage.LoanTermYears = 0

	_, err = calc.CompareScenarios(input)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}
