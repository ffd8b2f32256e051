// Package testutils provides mock implementations for testing
package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/style"
	"github.com/stretchr/testify/mock"
)

// MockMetricsCalculator provides a mock implementation of MetricsCalculator
type MockMetricsCalculator struct {
	mock.Mock
}

// CalculateMetrics returns the programmed metrics
func (m *MockMetricsCalculator) CalculateMetrics(ctx context.Context, recipe *brewing.Recipe, ingredients []brewing.Ingredient) (brewing.RecipeMetrics, error) {
	args := m.Called(ctx, recipe, ingredients)
	return args.Get(0).(brewing.RecipeMetrics), args.Error(1)
}

// MockStyleCatalog provides a mock implementation of StyleCatalog
type MockStyleCatalog struct {
	mock.Mock
}

// FindByID finds a style guide by identifier
func (m *MockStyleCatalog) FindByID(ctx context.Context, id string) (*style.Guide, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*style.Guide), args.Error(1)
}

// FindByName finds a style guide by name
func (m *MockStyleCatalog) FindByName(ctx context.Context, name string) (*style.Guide, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*style.Guide), args.Error(1)
}

// List lists all style guides
func (m *MockStyleCatalog) List(ctx context.Context) ([]style.Guide, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]style.Guide), args.Error(1)
}

// MemoryCacheRepository is an in-memory cache for decorator tests.
type MemoryCacheRepository struct {
	mu      sync.RWMutex
	entries map[string][]byte
	misses  int
}

// NewMemoryCacheRepository creates an empty in-memory cache.
func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{entries: make(map[string][]byte)}
}

type cacheMissError struct{}

func (cacheMissError) Error() string { return "cache miss" }

// Get fetches a key, counting misses.
func (c *MemoryCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, cacheMissError{}
	}
	return data, nil
}

// Set stores a key. TTL is ignored; tests control expiry by deleting.
func (c *MemoryCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

// Delete removes a key.
func (c *MemoryCacheRepository) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Exists reports key presence.
func (c *MemoryCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok, nil
}

// Misses returns how many Gets found nothing.
func (c *MemoryCacheRepository) Misses() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.misses
}

// Len returns the number of stored entries.
func (c *MemoryCacheRepository) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
