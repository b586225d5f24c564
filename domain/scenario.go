package domain

// ScenarioPreset is a named pair of (labor share, wage premium) backed by
// published research. Presets are read-only reference data; the calculator
// only reads the two numeric fields.
type ScenarioPreset struct {
	Name        string  `json:"name"`
	LaborShare  float64 `json:"labor_share"`
	WagePremium float64 `json:"wage_premium"`
	Description string  `json:"description"`
	Source      string  `json:"source"`
}

// ScenarioResult pairs a preset name with its full calculation. Comparison
// output is an ordered slice rather than a map so display order follows
// preset order.
type ScenarioResult struct {
	Name   string            `json:"name"`
	Result CalculationResult `json:"result"`
}

// ScenarioComparisonInput evaluates a set of presets against one home price
// and construction cost share, with mortgage impacts included. An empty
// Scenarios slice means the built-in presets.
type ScenarioComparisonInput struct {
	HomePrice             float64          `json:"home_price"`
	ConstructionCostShare float64          `json:"construction_cost_share"`
	Scenarios             []ScenarioPreset `json:"scenarios,omitempty"`
	Mortgage              MortgageTerms    `json:"mortgage"`
}

// Source is a citation backing the preset numbers.
type Source struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Finding string `json:"finding"`
}

// Range bounds a slider-adjustable parameter.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// ParamRanges groups the documented entry ranges for every adjustable input.
type ParamRanges struct {
	HomePrice             Range `json:"home_price"`
	ConstructionCostShare Range `json:"construction_cost_share"`
	LaborShare            Range `json:"labor_share"`
	WagePremium           Range `json:"wage_premium"`
	MortgageRate          Range `json:"mortgage_rate"`
}
