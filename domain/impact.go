package domain

// ImpactInput holds the economic assumptions for a wage-floor impact calculation.
// Shares are fractions (0.644 = 64.4%), the premium is a signed fraction and may
// be negative when the mandated floor sits below market wages.
type ImpactInput struct {
	HomePrice             float64 `json:"home_price"`
	ConstructionCostShare float64 `json:"construction_cost_share"`
	LaborShare            float64 `json:"labor_share"`
	WagePremium           float64 `json:"wage_premium"`
}

// MortgageTerms describes a fixed-rate mortgage with monthly compounding.
type MortgageTerms struct {
	InterestRate  float64 `json:"interest_rate"`
	LoanTermYears int     `json:"loan_term_years"`
}

// MortgageImpact carries the payment deltas between financing the original
// and the adjusted home price over the full loan term.
type MortgageImpact struct {
	MonthlyPaymentIncrease float64 `json:"monthly_payment_increase"`
	LifetimeCostIncrease   float64 `json:"lifetime_cost_increase"`
}

// CalculationResult is the full cost breakdown for one set of assumptions.
// Mortgage is nil unless mortgage terms were supplied, so "not computed" is
// distinct from a zero-dollar mortgage impact.
type CalculationResult struct {
	HomePrice             float64 `json:"home_price"`
	ConstructionCostShare float64 `json:"construction_cost_share"`
	LaborShare            float64 `json:"labor_share"`
	WagePremium           float64 `json:"wage_premium"`

	ConstructionCost     float64 `json:"construction_cost"`
	LaborCost            float64 `json:"labor_cost"`
	WageIncrease         float64 `json:"wage_increase"`
	NewHomePrice         float64 `json:"new_home_price"`
	PriceIncreaseDollars float64 `json:"price_increase_dollars"`
	PriceIncreasePercent float64 `json:"price_increase_percent"`

	Mortgage *MortgageImpact `json:"mortgage,omitempty"`
}
