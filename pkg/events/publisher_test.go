package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pm-runner/pmrunner/pkg/models"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:      EventTypeTaskStatus,
			Namespace: "myproject",
			TaskID:    "task-123",
			Status:    models.TaskStatusQueued,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeTaskStatus)
		assert.Contains(t, result, "task-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longMessage := make([]byte, 8000)
		for i := range longMessage {
			longMessage[i] = 'a'
		}
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:         EventTypeTaskStatus,
			Namespace:    "myproject",
			TaskID:       "task-123",
			Status:       models.TaskStatusError,
			ErrorMessage: string(longMessage),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longOutput := make([]byte, 8000)
		for i := range longOutput {
			longOutput[i] = 'x'
		}
		payload, _ := json.Marshal(TaskProgressPayload{
			Type:      EventTypeTaskProgress,
			Namespace: "myproject",
			TaskID:    "task-456",
			Step:      StepModificationPrompt,
			Detail:    map[string]any{"prompt": string(longOutput)},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeTaskProgress)
		assert.Contains(t, result, "task-456")
		assert.Contains(t, result, "myproject")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to TaskStatusPayload, the base overhead grows and
		// the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(TaskStatusPayload{Type: "t"})
		messageSize := 7900 - len(base) - 20
		message := make([]byte, messageSize)
		for i := range message {
			message[i] = 'b'
		}
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:         "t",
			ErrorMessage: string(message),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:      EventTypeTaskStatus,
			Namespace: "myproject",
			TaskID:    "task-1",
			Status:    models.TaskStatusRunning,
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "task-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		longMessage := make([]byte, 8000)
		for i := range longMessage {
			longMessage[i] = 'x'
		}
		payload, _ := json.Marshal(TaskStatusPayload{
			Type:         EventTypeTaskStatus,
			Namespace:    "myproject",
			TaskID:       "task-456",
			Status:       models.TaskStatusError,
			ErrorMessage: string(longMessage),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "task-456")
	})
}

func TestNewPublisher(t *testing.T) {
	publisher := NewPublisher(nil, "myproject")
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
	assert.Equal(t, "myproject", publisher.Namespace())
	assert.Equal(t, "pmrunner:tasks:myproject", publisher.channel)
}
