package repository

import "wage-impact/domain"

// CalculationRepository records completed impact calculations. Persistence is
// best-effort; the calculator never depends on a prior save.
type CalculationRepository interface {
	Save(input domain.ImpactInput, result domain.CalculationResult) error
}
