package service

const (
	// MonthsPerYear converts annual rates and loan terms to monthly compounding.
	MonthsPerYear = 12

	// DefaultGridResolution matches the heatmap default of 20 points per axis.
	DefaultGridResolution = 20

	// MaxGridResolution caps range-based sensitivity axes per request.
	MaxGridResolution = 500

	// scenarioCachePrefix namespaces scenario comparison entries in the cache.
	scenarioCachePrefix = "scenarios"
)
