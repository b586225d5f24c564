package service

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"wage-impact/domain"
	"wage-impact/metrics"
)

// CompareScenarios evaluates every preset against the same home price and
// construction cost share, mortgage impacts included. The manual-entry
// placeholder is skipped: its labor share and premium are copies of the
// defaults, so evaluating it would duplicate the national-average row.
// Output order follows preset order.
func (s *CalculatorService) CompareScenarios(
	input domain.ScenarioComparisonInput,
) ([]domain.ScenarioResult, error) {

	presets := input.Scenarios
	useCache := len(presets) == 0 && s.cache != nil
	if len(presets) == 0 {
		presets = domain.Scenarios
	}

	key := fmt.Sprintf("%s:%.2f:%.4f:%.4f:%d",
		scenarioCachePrefix,
		input.HomePrice,
		input.ConstructionCostShare,
		input.Mortgage.InterestRate,
		input.Mortgage.LoanTermYears,
	)

	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			var results []domain.ScenarioResult
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				metrics.CacheHits.Inc()
				return results, nil
			}
			log.Warn().Str("key", key).Msg("discarding unreadable cache entry")
		}
		metrics.CacheMisses.Inc()
	}

	results := make([]domain.ScenarioResult, 0, len(presets))
	for _, preset := range presets {
		if preset.Name == domain.CustomScenarioName {
			continue
		}

		result, err := s.computeWithMortgage(
			domain.ImpactInput{
				HomePrice:             input.HomePrice,
				ConstructionCostShare: input.ConstructionCostShare,
				LaborShare:            preset.LaborShare,
				WagePremium:           preset.WagePremium,
			},
			input.Mortgage,
		)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", preset.Name, err)
		}

		results = append(results, domain.ScenarioResult{
			Name:   preset.Name,
			Result: result,
		})
	}

	metrics.CalculationsTotal.WithLabelValues("scenario_comparison").
		Add(float64(len(results)))

	if useCache {
		// Cache the comparison (not critical if it fails)
		encoded, err := json.Marshal(results)
		if err == nil {
			err = s.cache.Set(key, string(encoded))
		}
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to cache scenario comparison")
		}
	}

	return results, nil
}
