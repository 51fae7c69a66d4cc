// Package queue provides the durable task queue: a Postgres-backed store
// with single-claim semantics, the poller pool that hands claimed tasks to
// the pipeline, and stale-task recovery.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/pm-runner/pmrunner/ent"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrTaskNotFound indicates the task id does not exist in this namespace.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskExists indicates an enqueue with an already-used task id.
	ErrTaskExists = errors.New("task already exists")

	// ErrNoTasksAvailable indicates no QUEUED tasks are in the namespace.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAlreadyClaimed indicates another poller claimed the task first.
	ErrAlreadyClaimed = errors.New("task already claimed")

	// ErrIllegalTransition indicates a status change the state machine forbids.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrNamespaceMismatch indicates the task belongs to another namespace.
	// The HTTP layer maps this to 404 so cross-namespace ids stay invisible.
	ErrNamespaceMismatch = errors.New("task belongs to another namespace")

	// ErrConcurrentModification indicates an optimistic conditional update
	// matched zero rows because the task changed underneath the caller.
	ErrConcurrentModification = errors.New("concurrent task modification")

	// ErrClaimsPaused indicates the pool is degraded (executor unavailable or
	// unauthenticated) and claiming is suspended.
	ErrClaimsPaused = errors.New("claims paused")
)

// TaskPipeline runs one claimed task to completion.
//
// Implemented by pipeline.Orchestrator; defined as an interface here to
// decouple the queue from orchestration and enable testing with scripted
// pipelines. The pipeline owns the entire run internally (planning,
// chunking, review, retry, evidence, traces) and writes intermediate state
// progressively; the poller only handles claiming, heartbeat, and the
// terminal status write.
type TaskPipeline interface {
	Execute(ctx context.Context, task *ent.QueueTask) *ExecutionResult
}

// ExecutionResult is lightweight, just the terminal state the poller writes
// back to the store. All intermediate state (evidence records, trace lines,
// progress events) was already persisted by the pipeline during the run.
type ExecutionResult struct {
	Status        models.TaskStatus     // COMPLETE, ERROR, CANCELLED, or AWAITING_RESPONSE
	Output        string                // final output (may be partial on AWAITING_RESPONSE)
	ErrorMessage  string                // error details when Status is ERROR
	Clarification *models.Clarification // question for the user when Status is AWAITING_RESPONSE
}

// AvailabilityChecker reports whether the coding agent can take work.
//
// Implemented by executor.Client and executor.StubExecutor; narrowed here to
// the two probes the pool's degraded-state gating needs.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context) bool
	CheckAuth(ctx context.Context) models.AuthStatus
}

// TaskRegistry tracks in-flight tasks for cancellation and gates claiming
// while the pool is degraded. Implemented by PollerPool.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
	ClaimsPaused() (bool, string)
}

// PollEvent is one observable poller transition.
type PollEvent string

// Poller transitions reported to observers.
const (
	PollStarted   PollEvent = "started"
	PollStopped   PollEvent = "stopped"
	PollClaimed   PollEvent = "claimed"
	PollCompleted PollEvent = "completed"
	PollError     PollEvent = "error"
	PollNoTask    PollEvent = "no-task"
)

// Observer receives poller transition notifications. taskID is empty for
// transitions that are not task-scoped. Nil observers are ignored; the
// callback must not block.
type Observer func(pollerID string, event PollEvent, taskID string)

// PoolHealth contains health information for the entire poller pool.
type PoolHealth struct {
	IsHealthy         bool                      `json:"is_healthy"`
	DBReachable       bool                      `json:"db_reachable"`
	DBError           string                    `json:"db_error,omitempty"`
	Namespace         string                    `json:"namespace"`
	Degraded          bool                      `json:"degraded"`
	DegradedReason    string                    `json:"degraded_reason,omitempty"`
	TotalPollers      int                       `json:"total_pollers"`
	ActivePollers     int                       `json:"active_pollers"`
	ActiveTasks       int                       `json:"active_tasks"`
	QueueDepth        int                       `json:"queue_depth"`
	TasksByStatus     map[models.TaskStatus]int `json:"tasks_by_status,omitempty"`
	PollerStats       []PollerHealth            `json:"poller_stats"`
	LastRecoverySweep time.Time                 `json:"last_recovery_sweep"`
	TasksRecovered    int                       `json:"tasks_recovered"`
}

// PollerHealth contains health information for a single poller.
type PollerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
