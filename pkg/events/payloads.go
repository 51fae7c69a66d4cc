package events

import (
	"github.com/pm-runner/pmrunner/pkg/models"
)

// TaskStatusPayload is the payload for task.status events.
// Published on every task lifecycle transition, including the initial
// QUEUED on enqueue.
type TaskStatusPayload struct {
	Type         string            `json:"type"`                    // always EventTypeTaskStatus
	Namespace    string            `json:"namespace"`               // isolation key
	TaskID       string            `json:"task_id"`                 // task UUID
	TaskGroupID  string            `json:"task_group_id,omitempty"` // conversation thread
	SessionID    string            `json:"session_id,omitempty"`    // evidence/trace session
	Status       models.TaskStatus `json:"status"`                  // QUEUED, RUNNING, COMPLETE, ERROR, CANCELLED, AWAITING_RESPONSE
	Attempt      int               `json:"attempt,omitempty"`       // recovery/reply attempt counter
	ErrorMessage string            `json:"error_message,omitempty"`
	Timestamp    string            `json:"timestamp"` // RFC3339Nano
}

// TaskProgressPayload is the payload for task.progress events.
// Step carries one of the Step* constants; review steps include the
// iteration index, QUALITY_JUDGMENT additionally the verdict.
type TaskProgressPayload struct {
	Type      string         `json:"type"`                 // always EventTypeTaskProgress
	Namespace string         `json:"namespace"`            // isolation key
	TaskID    string         `json:"task_id"`              // task UUID
	SubtaskID string         `json:"subtask_id,omitempty"` // set when the step belongs to a subtask run
	Step      string         `json:"step"`                 // REVIEW_LOOP_START, QUALITY_JUDGMENT, CHUNKING_START, ...
	Iteration int            `json:"iteration,omitempty"`  // 1-based review iteration
	Verdict   string         `json:"verdict,omitempty"`    // ACCEPT, REJECT, RETRY (quality judgment steps)
	Detail    map[string]any `json:"detail,omitempty"`     // step-specific extras (failed gates, prompt preview)
	Timestamp string         `json:"timestamp"`            // RFC3339Nano
}

// SubtaskStatusPayload is the payload for subtask.status events.
// Single event type for all subtask lifecycle transitions.
type SubtaskStatusPayload struct {
	Type      string               `json:"type"`             // always EventTypeSubtaskStatus
	Namespace string               `json:"namespace"`        // isolation key
	TaskID    string               `json:"task_id"`          // parent task UUID
	SubtaskID string               `json:"subtask_id"`       // subtask id ("{task_id}-sub-{n}")
	Index     int                  `json:"index"`            // 1-based execution order
	Status    models.SubtaskStatus `json:"status"`           // PENDING, RUNNING, COMPLETE, FAILED, RETRYING
	Reason    string               `json:"reason,omitempty"` // failure reason on FAILED
	Timestamp string               `json:"timestamp"`        // RFC3339Nano
}

// ChunkingPayload is the payload for task.chunking events.
// Published once per task when the planner decides to decompose it.
type ChunkingPayload struct {
	Type          string                   `json:"type"`      // always EventTypeChunking
	Namespace     string                   `json:"namespace"` // isolation key
	TaskID        string                   `json:"task_id"`   // task UUID
	PlanID        string                   `json:"plan_id"`   // execution plan UUID
	SubtaskCount  int                      `json:"subtask_count"`
	ExecutionMode models.ExecutionMode     `json:"execution_mode"` // parallel, sequential
	Strategy      models.ExecutionStrategy `json:"strategy"`       // single, sequential, parallel, mixed
	Timestamp     string                   `json:"timestamp"`      // RFC3339Nano
}

// PollerStatusPayload is the payload for poller.status transient events.
// Poller lifecycle is not task-scoped, so it is broadcast without
// persistence; the health endpoint is the durable view of pool state.
type PollerStatusPayload struct {
	Type      string `json:"type"`             // always EventTypePollerStatus
	Namespace string `json:"namespace"`        // isolation key
	PollerID  string `json:"poller_id"`        // "poller-{n}", or "pool" for pool-wide state
	Status    string `json:"status"`           // started, stopped, degraded
	Reason    string `json:"reason,omitempty"` // degraded cause (executor unavailable, auth)
	Timestamp string `json:"timestamp"`        // RFC3339Nano
}
