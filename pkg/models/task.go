// Package models defines the domain types shared across the orchestrator:
// task lifecycle enums, executor results, execution plans, review verdicts,
// retry decisions, evidence records, and trace entries.
//
// Types here are persistence-agnostic. Queue rows are ent entities; the
// status/type enums below are the wire-format (uppercase) counterparts of
// the lowercase storage values, converted at the store boundary.
package models

import "time"

// TaskStatus is the lifecycle status of a queued task (wire format).
type TaskStatus string

const (
	// TaskStatusQueued means the task awaits a claimer
	TaskStatusQueued TaskStatus = "QUEUED"
	// TaskStatusRunning means exactly one poller has claimed the task
	TaskStatusRunning TaskStatus = "RUNNING"
	// TaskStatusComplete means the pipeline finished and all gates passed
	TaskStatusComplete TaskStatus = "COMPLETE"
	// TaskStatusError means the pipeline failed terminally
	TaskStatusError TaskStatus = "ERROR"
	// TaskStatusCancelled means the task was cancelled before completion
	TaskStatusCancelled TaskStatus = "CANCELLED"
	// TaskStatusAwaitingResponse means the executor asked the user a question
	TaskStatusAwaitingResponse TaskStatus = "AWAITING_RESPONSE"
)

// IsValid checks if the task status is a known lifecycle status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusQueued, TaskStatusRunning, TaskStatusComplete,
		TaskStatusError, TaskStatusCancelled, TaskStatusAwaitingResponse:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are accepted.
// AWAITING_RESPONSE is terminal for the claim loop but leaves via reply.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusComplete, TaskStatusError, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// transitions is the task state machine. Recovery (RUNNING→QUEUED) is a
// distinguished internal transition and is deliberately absent here.
var transitions = map[TaskStatus][]TaskStatus{
	TaskStatusQueued:           {TaskStatusRunning, TaskStatusCancelled},
	TaskStatusRunning:          {TaskStatusComplete, TaskStatusError, TaskStatusAwaitingResponse, TaskStatusCancelled},
	TaskStatusAwaitingResponse: {TaskStatusQueued, TaskStatusCancelled},
}

// CanTransitionTo reports whether the state machine permits s → next.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TaskType classifies what kind of change the task asks for.
type TaskType string

const (
	// TaskTypeImplementation is a code-writing task
	TaskTypeImplementation TaskType = "IMPLEMENTATION"
	// TaskTypeReadInfo is a read-only information request
	TaskTypeReadInfo TaskType = "READ_INFO"
	// TaskTypeReport is a report-generation task
	TaskTypeReport TaskType = "REPORT"
	// TaskTypeLightEdit is a small localized edit
	TaskTypeLightEdit TaskType = "LIGHT_EDIT"
	// TaskTypeConfigCIChange is a configuration or CI pipeline change
	TaskTypeConfigCIChange TaskType = "CONFIG_CI_CHANGE"
)

// IsValid checks if the task type is known.
func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeImplementation, TaskTypeReadInfo, TaskTypeReport,
		TaskTypeLightEdit, TaskTypeConfigCIChange:
		return true
	default:
		return false
	}
}

// ExpectsModifications reports whether the task type implies file changes.
// Q1 fails a result with no verified files only for these types.
func (t TaskType) ExpectsModifications() bool {
	switch t {
	case TaskTypeImplementation, TaskTypeLightEdit, TaskTypeConfigCIChange:
		return true
	default:
		return false
	}
}

// AllowsPartialResult reports whether INCOMPLETE executor output converts
// to AWAITING_RESPONSE instead of ERROR, preserving the partial output.
func (t TaskType) AllowsPartialResult() bool {
	return t == TaskTypeReadInfo || t == TaskTypeReport
}

// TaskEvent is one entry in a task's ordered progress-event log.
type TaskEvent struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Message   string         `json:"message,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// Clarification holds the question the executor needs answered before a
// task can continue, plus whatever context it supplied.
type Clarification struct {
	Question string    `json:"question"`
	Context  string    `json:"context,omitempty"`
	AskedAt  time.Time `json:"asked_at"`
}

// TaskFilters narrows task list queries. Zero values mean "no filter".
type TaskFilters struct {
	Status      TaskStatus `json:"status,omitempty"`
	SessionID   string     `json:"session_id,omitempty"`
	TaskGroupID string     `json:"task_group_id,omitempty"`
	Limit       int        `json:"limit,omitempty"`
	Offset      int        `json:"offset,omitempty"`
}

// TaskGroupSummary is one row of the task-group listing.
type TaskGroupSummary struct {
	TaskGroupID     string    `json:"task_group_id"`
	TaskCount       int       `json:"task_count"`
	LatestCreatedAt time.Time `json:"latest_created_at"`
}
