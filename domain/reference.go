package domain

// CustomScenarioName marks the "adjust the sliders yourself" placeholder. It
// carries copies of the default parameters rather than independent values, so
// scenario comparison skips it to avoid duplicating the national-average row.
const CustomScenarioName = "Custom Settings"

// Defaults are the evidence-based baseline assumptions (2024 NAHB average
// home price, 64.4% construction cost share, 40% labor share, 15% premium).
var Defaults = struct {
	HomePrice             float64
	ConstructionCostShare float64
	LaborShare            float64
	WagePremium           float64
	MortgageRate          float64
	MortgageYears         int
}{
	HomePrice:             665298,
	ConstructionCostShare: 0.644,
	LaborShare:            0.40,
	WagePremium:           0.15,
	MortgageRate:          0.07,
	MortgageYears:         30,
}

// SliderRanges documents the entry bounds the UI layer should enforce. The
// calculator itself never clamps to these.
var SliderRanges = ParamRanges{
	HomePrice:             Range{Min: 200000, Max: 2000000, Step: 10000},
	ConstructionCostShare: Range{Min: 0.50, Max: 0.75, Step: 0.01},
	LaborShare:            Range{Min: 0.25, Max: 0.55, Step: 0.01},
	WagePremium:           Range{Min: -0.15, Max: 0.50, Step: 0.01},
	MortgageRate:          Range{Min: 0.03, Max: 0.12, Step: 0.005},
}

// Scenarios are the research-backed presets, in display order. Treated as
// read-only.
var Scenarios = []ScenarioPreset{
	{
		Name:        "U.S. National Average",
		LaborShare:  0.40,
		WagePremium: 0.15,
		Description: "DB floor ~13-15% above market wages on average nationwide",
		Source:      "DOL methodology studies",
	},
	{
		Name:        "Texas, Florida & Other Right-to-Work States",
		LaborShare:  0.35,
		WagePremium: -0.08,
		Description: "DB floor is 8-24% BELOW market—floor has no effect, costs unchanged",
		Source:      "AGM Financial 2024 research",
	},
	{
		Name:        "New York, California & High-Union Metros",
		LaborShare:  0.45,
		WagePremium: 0.35,
		Description: "DB floor up to 36% above market in heavily unionized metros",
		Source:      "Center for Government Research (NY study)",
	},
	{
		Name:        "Mid-Range Estimate",
		LaborShare:  0.40,
		WagePremium: 0.20,
		Description: "Beacon Hill Institute's estimate of 20-22% wage premium",
		Source:      "Beacon Hill Institute",
	},
	{
		Name:        "Low-End Estimate",
		LaborShare:  0.30,
		WagePremium: 0.07,
		Description: "Conservative lower bound assuming 7% construction cost impact",
		Source:      "Beacon Hill Institute (cost impact study)",
	},
	{
		Name:        "High-End Estimate",
		LaborShare:  0.50,
		WagePremium: 0.40,
		Description: "Upper bound combining highest research estimates",
		Source:      "Combined upper estimates from multiple studies",
	},
	{
		Name:        CustomScenarioName,
		LaborShare:  0.40,
		WagePremium: 0.15,
		Description: "Adjust all parameters manually using the sliders below",
		Source:      "User-defined",
	},
}

// Sources are the citations behind the preset numbers, in display order.
var Sources = []Source{
	{
		Key:     "nahb_2024",
		Title:   "Cost of Constructing a Home in 2024",
		URL:     "https://eyeonhousing.org/2025/01/cost-of-constructing-a-home-in-2024/",
		Finding: "Construction costs = 64.4% of home sale price",
	},
	{
		Key:     "agm_financial",
		Title:   "How Davis Bacon Wages Impact Multifamily Construction",
		URL:     "https://www.agmfinancial.com/how-davis-bacon-wages-impact-multifamily-construction-enlightening-new-research/",
		Finding: "In right-to-work states, DB wages are 8.5-23.6% below market",
	},
	{
		Key:     "beacon_hill",
		Title:   "Davis-Bacon Studies (ABC Summary)",
		URL:     "https://www.abc.org/Portals/1/ABC%20Prevailing%20Wage%20Davis%20Bacon%20Studies%20Summary%20Updated%20March%202022%20031122.pdf",
		Finding: "20-22% wage premium, 7.2% construction cost increase",
	},
	{
		Key:     "epi",
		Title:   "Prevailing Wages and Government Contracting Costs",
		URL:     "https://www.epi.org/publication/bp215/",
		Finding: "78% of peer-reviewed studies show no cost increase",
	},
	{
		Key:     "construction_physics",
		Title:   "Construction Cost Breakdown and Partial Industrialization",
		URL:     "https://www.construction-physics.com/p/construction-cost-breakdown-and-partial",
		Finding: "Labor ~50% of direct construction costs",
	},
}
