package domain

// GridOutput selects which quantity a sensitivity grid reports.
type GridOutput string

const (
	// GridOutputPercent reports price_increase_percent per cell.
	GridOutputPercent GridOutput = "percent"
	// GridOutputDollars reports the raw wage_increase dollar amount per cell.
	GridOutputDollars GridOutput = "dollars"
)

// SensitivityInput asks for a 2-D sweep over labor share and wage premium
// with home price and construction cost share held fixed. Axes may be given
// explicitly, or as ranges plus a resolution to be expanded into evenly
// spaced values.
type SensitivityInput struct {
	HomePrice             float64    `json:"home_price"`
	ConstructionCostShare float64    `json:"construction_cost_share"`
	LaborShares           []float64  `json:"labor_shares,omitempty"`
	WagePremiums          []float64  `json:"wage_premiums,omitempty"`
	LaborRange            *Range     `json:"labor_range,omitempty"`
	PremiumRange          *Range     `json:"premium_range,omitempty"`
	Resolution            int        `json:"resolution,omitempty"`
	Output                GridOutput `json:"output,omitempty"`
}

// SensitivityGrid is the sweep result. Values[i][j] corresponds to
// WagePremiums[i] and LaborShares[j]; consumers index the grid by
// (premium, labor share) and depend on that orientation.
type SensitivityGrid struct {
	LaborShares  []float64   `json:"labor_shares"`
	WagePremiums []float64   `json:"wage_premiums"`
	Output       GridOutput  `json:"output"`
	Values       [][]float64 `json:"values"`
}
