package service

import (
	"fmt"

	"wage-impact/domain"
	"wage-impact/metrics"
)

// GridAxis returns count evenly spaced values from min to max inclusive.
func GridAxis(min, max float64, count int) ([]float64, error) {
	if count <= 0 {
		return nil, fmt.Errorf(
			"%w: axis resolution must be positive, got %d",
			domain.ErrInvalidParameter, count)
	}
	if count == 1 {
		return []float64{min}, nil
	}

	step := (max - min) / float64(count-1)
	vals := make([]float64, count)
	for i := range vals {
		vals[i] = min + step*float64(i)
	}
	// Exact endpoint regardless of rounding drift in the step.
	vals[count-1] = max
	return vals, nil
}

// resolveAxes expands range-based requests into explicit axes. Explicit axes
// win when both forms are present.
func resolveAxes(input domain.SensitivityInput) ([]float64, []float64, error) {
	laborShares := input.LaborShares
	wagePremiums := input.WagePremiums

	resolution := input.Resolution
	if resolution == 0 {
		resolution = DefaultGridResolution
	}
	if resolution > MaxGridResolution {
		return nil, nil, fmt.Errorf(
			"%w: grid resolution exceeds maximum of %d",
			domain.ErrInvalidParameter, MaxGridResolution)
	}

	var err error
	if len(laborShares) == 0 && input.LaborRange != nil {
		laborShares, err = GridAxis(input.LaborRange.Min, input.LaborRange.Max, resolution)
		if err != nil {
			return nil, nil, err
		}
	}
	if len(wagePremiums) == 0 && input.PremiumRange != nil {
		wagePremiums, err = GridAxis(input.PremiumRange.Min, input.PremiumRange.Max, resolution)
		if err != nil {
			return nil, nil, err
		}
	}

	if len(laborShares) == 0 || len(wagePremiums) == 0 {
		return nil, nil, fmt.Errorf(
			"%w: sensitivity grid requires labor share and wage premium axes",
			domain.ErrInvalidParameter)
	}
	return laborShares, wagePremiums, nil
}

// SensitivityGrid sweeps the calculation over every (wage premium, labor
// share) combination with home price and construction cost share held fixed.
// Values[i][j] pairs WagePremiums[i] with LaborShares[j]; heatmap consumers
// rely on that orientation.
func (s *CalculatorService) SensitivityGrid(
	input domain.SensitivityInput,
) (domain.SensitivityGrid, error) {

	output := input.Output
	if output == "" {
		output = domain.GridOutputPercent
	}
	if output != domain.GridOutputPercent && output != domain.GridOutputDollars {
		return domain.SensitivityGrid{}, fmt.Errorf(
			"%w: unknown grid output %q", domain.ErrInvalidParameter, output)
	}

	laborShares, wagePremiums, err := resolveAxes(input)
	if err != nil {
		return domain.SensitivityGrid{}, err
	}

	values := make([][]float64, len(wagePremiums))
	for i, premium := range wagePremiums {
		row := make([]float64, len(laborShares))
		for j, labor := range laborShares {
			result, err := s.compute(domain.ImpactInput{
				HomePrice:             input.HomePrice,
				ConstructionCostShare: input.ConstructionCostShare,
				LaborShare:            labor,
				WagePremium:           premium,
			})
			if err != nil {
				return domain.SensitivityGrid{}, err
			}
			if output == domain.GridOutputDollars {
				row[j] = result.WageIncrease
			} else {
				row[j] = result.PriceIncreasePercent
			}
		}
		values[i] = row
	}

	metrics.CalculationsTotal.WithLabelValues("sensitivity_grid").
		Add(float64(len(wagePremiums) * len(laborShares)))

	return domain.SensitivityGrid{
		LaborShares:  laborShares,
		WagePremiums: wagePremiums,
		Output:       output,
		Values:       values,
	}, nil
}
