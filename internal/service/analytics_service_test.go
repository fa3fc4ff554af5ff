package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/mocks"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAnalyticsService_NilStore(t *testing.T) {
	svc, err := service.NewAnalyticsService(nil, nil)
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, service.ErrNilDependency)
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewInMemoryTaskStore()
	for i, status := range []domain.TaskStatus{
		domain.TaskStatusActive, domain.TaskStatusCompleted, domain.TaskStatusActive, domain.TaskStatusActive,
	} {
		store.Put(domain.Task{ID: int64(i + 1), Title: "t", Status: status, CreatedAt: fixedNow})
	}

	svc, err := service.NewAnalyticsService(store, nil)
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.Stats{ActiveCount: 3, CompletedCount: 1}, stats)

	store.Put(domain.Task{ID: 9, Title: "late", Status: domain.TaskStatusCompleted, CreatedAt: fixedNow})
	stats, err = svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.CompletedCount, "counts are never cached")
	assert.Equal(t, 4, store.CountCalls)
}

func TestGetStats_Empty(t *testing.T) {
	svc, err := service.NewAnalyticsService(mocks.NewInMemoryTaskStore(), nil)
	require.NoError(t, err)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats)
}

func TestGetStats_StoreErrors(t *testing.T) {
	boom := errors.New("db gone")

	tests := []struct {
		name  string
		setup func(m *mocks.TestifyMockTaskStore)
	}{
		{
			name: "active count fails",
			setup: func(m *mocks.TestifyMockTaskStore) {
				m.On("CountByStatus", mock.Anything, domain.TaskStatusActive).Return(0, boom)
			},
		},
		{
			name: "completed count fails",
			setup: func(m *mocks.TestifyMockTaskStore) {
				m.On("CountByStatus", mock.Anything, domain.TaskStatusActive).Return(2, nil)
				m.On("CountByStatus", mock.Anything, domain.TaskStatusCompleted).Return(0, boom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mocks.TestifyMockTaskStore{}
			tt.setup(m)

			svc, err := service.NewAnalyticsService(m, nil)
			require.NoError(t, err)

			stats, err := svc.GetStats(context.Background())
			assert.ErrorIs(t, err, boom)
			assert.Zero(t, stats)

			var svcErr *service.TaskServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, "get_stats", svcErr.Operation)
			m.AssertExpectations(t)
		})
	}
}
