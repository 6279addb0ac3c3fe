package cache

import "context"

// MockCache is a hand-written DecisionCache fake for tests that need to
// observe or script cache behavior.
type MockCache struct {
	Entries  map[string]string
	GetCalls int
	SetCalls int
	SetErr   error
}

// NewMockCache creates an empty fake.
func NewMockCache() *MockCache {
	return &MockCache{Entries: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool) {
	m.GetCalls++
	value, ok := m.Entries[key]
	return value, ok
}

func (m *MockCache) Set(ctx context.Context, key string, value string) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Entries[key] = value
	return nil
}
