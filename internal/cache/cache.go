// Package cache provides the decision cache used by the validation API.
// Validation is a pure function of the record and thresholds, so identical
// payloads always produce identical results; the cache exists to serve
// idempotent webhook redeliveries without re-evaluating or re-logging them.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/ownerfi/listing-validate/internal/listing"
)

// DecisionCache stores serialized validation responses keyed by record hash.
type DecisionCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// Key derives a stable cache key from the canonical JSON encoding of a
// partial record. Field order in the encoding is fixed by the struct
// definition, so equal records always hash equally.
func Key(record listing.PartialFinancialData) string {
	encoded, err := json.Marshal(record)
	if err != nil {
		// PartialFinancialData contains only floats and strings; Marshal
		// cannot fail on it.
		return ""
	}
	return fmt.Sprintf("validate:%x", xxhash.Sum64(encoded))
}

// MemoryCache is an in-process DecisionCache, the default when no Redis
// address is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func (m *MemoryCache) Get(ctx context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *MemoryCache) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}
