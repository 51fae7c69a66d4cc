package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTasksChannel(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		want      string
	}{
		{
			name:      "formats tasks channel correctly",
			namespace: "myproject",
			want:      "pmrunner:tasks:myproject",
		},
		{
			name:      "handles sanitized directory-derived namespace",
			namespace: "my_app_2",
			want:      "pmrunner:tasks:my_app_2",
		},
		{
			name:      "handles empty string",
			namespace: "",
			want:      "pmrunner:tasks:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TasksChannel(tt.namespace)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeTaskStatus,
		EventTypeTaskProgress,
		EventTypeSubtaskStatus,
		EventTypeChunking,
		EventTypePollerStatus,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestProgressStepConstants(t *testing.T) {
	steps := []string{
		StepReviewLoopStart,
		StepReviewIterationStart,
		StepQualityJudgment,
		StepRejectionDetails,
		StepModificationPrompt,
		StepReviewIterationEnd,
		StepReviewLoopEnd,
		StepChunkingStart,
		StepChunkingAnalysis,
		StepSubtaskCreated,
		StepSubtaskStart,
		StepSubtaskComplete,
		StepSubtaskRetry,
		StepSubtaskFailed,
		StepChunkingAggregation,
		StepChunkingComplete,
	}

	seen := make(map[string]bool)
	for _, step := range steps {
		assert.NotEmpty(t, step, "progress step should not be empty")
		assert.False(t, seen[step], "duplicate progress step: %s", step)
		seen[step] = true
	}
}

func TestPollerStatusConstants(t *testing.T) {
	assert.Equal(t, "started", PollerStatusStarted)
	assert.Equal(t, "stopped", PollerStatusStopped)
	assert.Equal(t, "degraded", PollerStatusDegraded)
}
