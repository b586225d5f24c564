package repository

// CacheRepository caches serialized results keyed by their input parameters.
// Every calculation is deterministic, so cached entries never go stale.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
