package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// Observers key off the wire field names; these tests pin the JSON contract
// rather than round-tripping every struct.

func TestTaskStatusPayloadWireFormat(t *testing.T) {
	payload := TaskStatusPayload{
		Type:        EventTypeTaskStatus,
		Namespace:   "myproject",
		TaskID:      "task-1",
		TaskGroupID: "group-1",
		SessionID:   "sess-1",
		Status:      models.TaskStatusRunning,
		Attempt:     1,
		Timestamp:   time.Now().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "task.status", m["type"])
	assert.Equal(t, "myproject", m["namespace"])
	assert.Equal(t, "task-1", m["task_id"])
	assert.Equal(t, "group-1", m["task_group_id"])
	assert.Equal(t, "RUNNING", m["status"])
	assert.NotContains(t, m, "error_message", "empty error should be omitted")
}

func TestTaskProgressPayloadOptionalFields(t *testing.T) {
	t.Run("loop-level step omits subtask and iteration", func(t *testing.T) {
		payload := TaskProgressPayload{
			Type:      EventTypeTaskProgress,
			Namespace: "myproject",
			TaskID:    "task-1",
			Step:      StepReviewLoopStart,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "subtask_id")
		assert.NotContains(t, string(data), "iteration")
		assert.NotContains(t, string(data), "verdict")
	})

	t.Run("quality judgment carries iteration and verdict", func(t *testing.T) {
		payload := TaskProgressPayload{
			Type:      EventTypeTaskProgress,
			Namespace: "myproject",
			TaskID:    "task-1",
			SubtaskID: "task-1-sub-2",
			Step:      StepQualityJudgment,
			Iteration: 3,
			Verdict:   "REJECT",
			Detail:    map[string]any{"failed_gates": []string{"Q2", "Q4"}},
			Timestamp: time.Now().Format(time.RFC3339Nano),
		}

		data, err := json.Marshal(payload)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, "QUALITY_JUDGMENT", m["step"])
		assert.Equal(t, float64(3), m["iteration"])
		assert.Equal(t, "REJECT", m["verdict"])
		assert.Equal(t, "task-1-sub-2", m["subtask_id"])
	})
}

func TestSubtaskStatusPayloadWireFormat(t *testing.T) {
	payload := SubtaskStatusPayload{
		Type:      EventTypeSubtaskStatus,
		Namespace: "myproject",
		TaskID:    "task-9",
		SubtaskID: "task-9-sub-1",
		Index:     1,
		Status:    models.SubtaskFailed,
		Reason:    "review rejected after 5 iterations",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "subtask.status", m["type"])
	assert.Equal(t, "FAILED", m["status"])
	assert.Equal(t, "review rejected after 5 iterations", m["reason"])
}

func TestChunkingPayloadWireFormat(t *testing.T) {
	payload := ChunkingPayload{
		Type:          EventTypeChunking,
		Namespace:     "myproject",
		TaskID:        "task-5",
		PlanID:        "plan-1",
		SubtaskCount:  4,
		ExecutionMode: models.ExecutionModeParallel,
		Strategy:      models.StrategyParallel,
		Timestamp:     time.Now().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "task.chunking", m["type"])
	assert.Equal(t, float64(4), m["subtask_count"])
	assert.Equal(t, "parallel", m["execution_mode"])
	assert.Equal(t, "parallel", m["strategy"])
}

func TestPollerStatusPayloadWireFormat(t *testing.T) {
	payload := PollerStatusPayload{
		Type:      EventTypePollerStatus,
		Namespace: "myproject",
		PollerID:  "poller-2",
		Status:    PollerStatusDegraded,
		Reason:    "executor unavailable",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "poller.status", m["type"])
	assert.Equal(t, "degraded", m["status"])
	assert.Equal(t, "executor unavailable", m["reason"])
}
