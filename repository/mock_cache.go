package repository

import "errors"

// MockCache is an in-process CacheRepository for tests and for running the
// service without Redis.
type MockCache struct {
	Data       map[string]string
	ForceError bool
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(key string) (string, bool) {
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string) error {
	if m.ForceError {
		return errors.New("cache unavailable")
	}
	m.Data[key] = value
	return nil
}
