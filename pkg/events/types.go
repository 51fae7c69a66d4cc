// Package events provides real-time event delivery via PostgreSQL
// NOTIFY/LISTEN, with persistence in the queue_events table for catch-up.
//
// Every publish is transactional: the event row and the pg_notify call
// commit together, so a subscriber that reconnects can replay missed
// events from the table using the serial id as its cursor and never
// observe a gap between catch-up and live delivery.
//
// Channel layout: one channel per namespace ("pmrunner:tasks:{namespace}").
// All task, subtask, review, and poller events of a namespace share it;
// consumers filter by the payload's "type" field.
package events

// Persistent event types (stored in queue_events + NOTIFY).
const (
	// EventTypeTaskStatus marks task lifecycle transitions
	// (QUEUED, RUNNING, COMPLETE, ERROR, AWAITING_RESPONSE, CANCELLED).
	EventTypeTaskStatus = "task.status"

	// EventTypeTaskProgress carries fine-grained pipeline steps
	// (review iterations, chunking phases) for a running task.
	EventTypeTaskProgress = "task.progress"

	// EventTypeSubtaskStatus marks subtask lifecycle transitions inside
	// a chunked task.
	EventTypeSubtaskStatus = "subtask.status"

	// EventTypeChunking announces the decomposition of a task into
	// subtasks, with the chosen execution strategy.
	EventTypeChunking = "task.chunking"
)

// Transient event types (NOTIFY only, no queue_events row).
const (
	// EventTypePollerStatus marks poller lifecycle changes. Not task-scoped,
	// so there is no row to catch up from; /api/queue/health is the durable
	// view of pool state.
	EventTypePollerStatus = "poller.status"
)

// Progress step names used in TaskProgressPayload.Step. Review steps
// bracket each judgment iteration; chunking steps bracket decomposition
// and per-subtask execution.
const (
	StepReviewLoopStart      = "REVIEW_LOOP_START"
	StepReviewIterationStart = "REVIEW_ITERATION_START"
	StepQualityJudgment      = "QUALITY_JUDGMENT"
	StepRejectionDetails     = "REJECTION_DETAILS"
	StepModificationPrompt   = "MODIFICATION_PROMPT"
	StepReviewIterationEnd   = "REVIEW_ITERATION_END"
	StepReviewLoopEnd        = "REVIEW_LOOP_END"

	StepChunkingStart       = "CHUNKING_START"
	StepChunkingAnalysis    = "CHUNKING_ANALYSIS"
	StepSubtaskCreated      = "SUBTASK_CREATED"
	StepSubtaskStart        = "SUBTASK_START"
	StepSubtaskComplete     = "SUBTASK_COMPLETE"
	StepSubtaskRetry        = "SUBTASK_RETRY"
	StepSubtaskFailed       = "SUBTASK_FAILED"
	StepChunkingAggregation = "CHUNKING_AGGREGATION"
	StepChunkingComplete    = "CHUNKING_COMPLETE"
)

// Poller lifecycle status values (used in PollerStatusPayload.Status).
const (
	PollerStatusStarted  = "started"
	PollerStatusStopped  = "stopped"
	PollerStatusDegraded = "degraded"
)

// channelPrefix namespaces our NOTIFY channels away from anything else
// that might share the database.
const channelPrefix = "pmrunner:tasks:"

// TasksChannel returns the NOTIFY channel for a namespace's task events.
// Format: "pmrunner:tasks:{namespace}"
func TasksChannel(namespace string) string {
	return channelPrefix + namespace
}
