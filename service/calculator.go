package service

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"wage-impact/domain"
	"wage-impact/metrics"
	"wage-impact/repository"
)

// CalculatorService computes the estimated effect of a prevailing-wage floor
// on home prices and mortgage costs. All arithmetic is deterministic; the
// repository and cache are conveniences that never affect results.
type CalculatorService struct {
	repo  repository.CalculationRepository
	cache repository.CacheRepository
}

// NewCalculatorService creates a new CalculatorService with the given
// repository and cache.
func NewCalculatorService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *CalculatorService {
	return &CalculatorService{repo: repo, cache: cache}
}

// compute runs the base cost breakdown. Shares and premiums are taken as
// given, even outside their documented slider ranges; only a non-positive
// home price is rejected because it would make the percentage undefined.
func (s *CalculatorService) compute(
	input domain.ImpactInput,
) (domain.CalculationResult, error) {

	if input.HomePrice <= 0 {
		return domain.CalculationResult{}, fmt.Errorf(
			"%w: home price must be positive, got %.2f",
			domain.ErrInvalidParameter, input.HomePrice)
	}

	constructionCost := input.HomePrice * input.ConstructionCostShare
	laborCost := constructionCost * input.LaborShare
	wageIncrease := laborCost * input.WagePremium
	newHomePrice := input.HomePrice + wageIncrease
	priceIncreasePercent := (wageIncrease / input.HomePrice) * 100

	return domain.CalculationResult{
		HomePrice:             input.HomePrice,
		ConstructionCostShare: input.ConstructionCostShare,
		LaborShare:            input.LaborShare,
		WagePremium:           input.WagePremium,
		ConstructionCost:      constructionCost,
		LaborCost:             laborCost,
		WageIncrease:          wageIncrease,
		NewHomePrice:          newHomePrice,
		PriceIncreaseDollars:  wageIncrease,
		PriceIncreasePercent:  priceIncreasePercent,
	}, nil
}

// computeWithMortgage extends compute with the fixed-rate amortized payment
// delta between financing the original and the adjusted price.
func (s *CalculatorService) computeWithMortgage(
	input domain.ImpactInput,
	terms domain.MortgageTerms,
) (domain.CalculationResult, error) {

	result, err := s.compute(input)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	if terms.LoanTermYears <= 0 {
		return domain.CalculationResult{}, fmt.Errorf(
			"%w: loan term must be positive, got %d years",
			domain.ErrInvalidParameter, terms.LoanTermYears)
	}

	monthlyRate := terms.InterestRate / MonthsPerYear
	n := terms.LoanTermYears * MonthsPerYear

	increase := monthlyPayment(result.NewHomePrice, monthlyRate, n) -
		monthlyPayment(result.HomePrice, monthlyRate, n)

	result.Mortgage = &domain.MortgageImpact{
		MonthlyPaymentIncrease: increase,
		LifetimeCostIncrease:   increase * float64(n),
	}

	return result, nil
}

// monthlyPayment is the standard annuity formula:
// M = P * r(1+r)^n / ((1+r)^n - 1), degenerating to P/n at zero interest.
func monthlyPayment(principal, monthlyRate float64, n int) float64 {
	if monthlyRate == 0 {
		return principal / float64(n)
	}
	factor := math.Pow(1+monthlyRate, float64(n))
	return principal * (monthlyRate * factor) / (factor - 1)
}

// Calculate runs the base cost breakdown for one set of assumptions.
func (s *CalculatorService) Calculate(
	input domain.ImpactInput,
) (domain.CalculationResult, error) {

	result, err := s.compute(input)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	metrics.CalculationsTotal.WithLabelValues("calculate").Inc()

	// Record the result (not critical if it fails)
	if err := s.repo.Save(input, result); err != nil {
		log.Warn().Err(err).Msg("failed to save calculation")
	}

	return result, nil
}

// CalculateWithMortgage runs the base breakdown plus mortgage payment deltas.
func (s *CalculatorService) CalculateWithMortgage(
	input domain.ImpactInput,
	terms domain.MortgageTerms,
) (domain.CalculationResult, error) {

	result, err := s.computeWithMortgage(input, terms)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	metrics.CalculationsTotal.WithLabelValues("calculate_with_mortgage").Inc()

	if err := s.repo.Save(input, result); err != nil {
		log.Warn().Err(err).Msg("failed to save calculation")
	}

	return result, nil
}
