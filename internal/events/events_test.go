package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatusChanged_Encode(t *testing.T) {
	body, err := TaskStatusChanged{TaskID: 42, NewStatus: "completed"}.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"TaskId":42,"NewStatus":"completed"}`, string(body))
}
