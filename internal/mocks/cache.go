package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/task-api/internal/cache"
	"github.com/stretchr/testify/mock"
)

// TestifyMockCache is a mock of cache.Cache for use with testify/mock.
type TestifyMockCache struct {
	mock.Mock
}

var _ cache.Cache = (*TestifyMockCache)(nil)

// Get is a mock implementation of cache.Cache.Get
func (m *TestifyMockCache) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

// Set is a mock implementation of cache.Cache.Set
func (m *TestifyMockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// DeleteByPattern is a mock implementation of cache.Cache.DeleteByPattern
func (m *TestifyMockCache) DeleteByPattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

// MockStatsReporter implements cache.StatsReporter with a fixed snapshot.
type MockStatsReporter struct {
	Snapshot cache.StatsSnapshot
}

// Stats implements cache.StatsReporter.
func (m *MockStatsReporter) Stats() cache.StatsSnapshot {
	return m.Snapshot
}
