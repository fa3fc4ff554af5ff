package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    TaskStatus
		wantErr bool
	}{
		{input: "active", want: TaskStatusActive},
		{input: "Active", want: TaskStatusActive},
		{input: " COMPLETED ", want: TaskStatusCompleted},
		{input: "completed", want: TaskStatusCompleted},
		{input: "", wantErr: true},
		{input: "done", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseTaskStatus(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTaskStatus))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	desc := "write the report"
	task := NewTask("Report", &desc)

	assert.Zero(t, task.ID)
	assert.Equal(t, "Report", task.Title)
	assert.Equal(t, &desc, task.Description)
	assert.Equal(t, TaskStatusActive, task.Status)
	assert.True(t, task.CreatedAt.IsZero())
	assert.NoError(t, task.Validate())
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	task := &Task{ID: 1, Title: "x", Status: "archived"}
	err := task.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)

	task = &Task{ID: -1, Status: TaskStatusActive}
	assert.ErrorIs(t, task.Validate(), ErrInvalidID)
}

func TestTaskApplyChanges(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	existing := &Task{ID: 5, Title: "old", Status: TaskStatusActive, CreatedAt: created}
	desc := "new description"
	patch := &Task{ID: 99, Title: "new", Description: &desc, Status: TaskStatusCompleted, CreatedAt: time.Now()}

	existing.ApplyChanges(patch)

	assert.Equal(t, int64(5), existing.ID, "ID must not change")
	assert.Equal(t, created, existing.CreatedAt, "CreatedAt must not change")
	assert.Equal(t, "new", existing.Title)
	assert.Equal(t, &desc, existing.Description)
	assert.Equal(t, TaskStatusCompleted, existing.Status)
}
