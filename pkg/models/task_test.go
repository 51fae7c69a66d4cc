package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    TaskStatus
		to      TaskStatus
		allowed bool
	}{
		{"queued to running", TaskStatusQueued, TaskStatusRunning, true},
		{"queued to cancelled", TaskStatusQueued, TaskStatusCancelled, true},
		{"queued to complete skips running", TaskStatusQueued, TaskStatusComplete, false},
		{"running to complete", TaskStatusRunning, TaskStatusComplete, true},
		{"running to error", TaskStatusRunning, TaskStatusError, true},
		{"running to awaiting response", TaskStatusRunning, TaskStatusAwaitingResponse, true},
		{"running to cancelled", TaskStatusRunning, TaskStatusCancelled, true},
		{"running to queued is recovery only", TaskStatusRunning, TaskStatusQueued, false},
		{"awaiting response to queued via reply", TaskStatusAwaitingResponse, TaskStatusQueued, true},
		{"awaiting response to cancelled", TaskStatusAwaitingResponse, TaskStatusCancelled, true},
		{"awaiting response to running directly", TaskStatusAwaitingResponse, TaskStatusRunning, false},
		{"complete is terminal", TaskStatusComplete, TaskStatusQueued, false},
		{"error is terminal", TaskStatusError, TaskStatusQueued, false},
		{"cancelled is terminal", TaskStatusCancelled, TaskStatusRunning, false},
		{"unknown status transitions nowhere", TaskStatus("PAUSED"), TaskStatusRunning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTaskStatusIsTerminal(t *testing.T) {
	assert.True(t, TaskStatusComplete.IsTerminal())
	assert.True(t, TaskStatusError.IsTerminal())
	assert.True(t, TaskStatusCancelled.IsTerminal())

	assert.False(t, TaskStatusQueued.IsTerminal())
	assert.False(t, TaskStatusRunning.IsTerminal())
	assert.False(t, TaskStatusAwaitingResponse.IsTerminal())
}

func TestTaskStatusIsValid(t *testing.T) {
	for _, s := range []TaskStatus{
		TaskStatusQueued, TaskStatusRunning, TaskStatusComplete,
		TaskStatusError, TaskStatusCancelled, TaskStatusAwaitingResponse,
	} {
		assert.True(t, s.IsValid(), "status %s", s)
	}
	assert.False(t, TaskStatus("queued").IsValid(), "storage casing is not wire format")
	assert.False(t, TaskStatus("").IsValid())
}

func TestTaskTypeExpectsModifications(t *testing.T) {
	assert.True(t, TaskTypeImplementation.ExpectsModifications())
	assert.True(t, TaskTypeLightEdit.ExpectsModifications())
	assert.True(t, TaskTypeConfigCIChange.ExpectsModifications())

	assert.False(t, TaskTypeReadInfo.ExpectsModifications())
	assert.False(t, TaskTypeReport.ExpectsModifications())
}

func TestTaskTypeAllowsPartialResult(t *testing.T) {
	assert.True(t, TaskTypeReadInfo.AllowsPartialResult())
	assert.True(t, TaskTypeReport.AllowsPartialResult())

	assert.False(t, TaskTypeImplementation.AllowsPartialResult())
	assert.False(t, TaskTypeLightEdit.AllowsPartialResult())
	assert.False(t, TaskTypeConfigCIChange.AllowsPartialResult())
}
