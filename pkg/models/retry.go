package models

import "time"

// FailureType classifies why an executor invocation failed.
type FailureType string

const (
	// FailureTimeout — the invocation hit its time budget
	FailureTimeout FailureType = "TIMEOUT"
	// FailureQuality — one or more review gates failed
	FailureQuality FailureType = "QUALITY_FAILURE"
	// FailureIncomplete — output carries omission markers
	FailureIncomplete FailureType = "INCOMPLETE"
	// FailureRateLimit — provider rate limiting (HTTP 429)
	FailureRateLimit FailureType = "RATE_LIMIT"
	// FailureFatal — authentication/authorization failure, not retryable
	FailureFatal FailureType = "FATAL_ERROR"
	// FailureTransient — network errors and 5xx responses
	FailureTransient FailureType = "TRANSIENT_ERROR"
	// FailureUnknown — unclassifiable failure
	FailureUnknown FailureType = "UNKNOWN"
)

// Retryable reports whether the failure type is eligible for retry at all.
func (f FailureType) Retryable() bool {
	return f != FailureFatal
}

// DecisionKind discriminates retry decisions.
type DecisionKind string

const (
	// RetryPass — the result passed; no retry machinery engages
	RetryPass DecisionKind = "PASS"
	// RetryAgain — retry after the attached delay
	RetryAgain DecisionKind = "RETRY"
	// RetryEscalate — stop retrying and surface an escalation report
	RetryEscalate DecisionKind = "ESCALATE"
)

// RetryDecision is the tagged outcome of RetryManager.Decide.
// Delay is set only for RETRY; Reason only for ESCALATE.
type RetryDecision struct {
	Kind        DecisionKind  `json:"kind"`
	Delay       time.Duration `json:"delay,omitempty"`
	Reason      string        `json:"reason,omitempty"`
	FailureType FailureType   `json:"failure_type,omitempty"`
}

// RetryAttempt is one entry of a retry history.
type RetryAttempt struct {
	AttemptN    int          `json:"attempt_n"`
	Status      ResultStatus `json:"status"`
	FailureType FailureType  `json:"failure_type"`
	Error       string       `json:"error,omitempty"`
	DurationMS  int64        `json:"duration_ms"`
	At          time.Time    `json:"at"`
}

// EscalationReport is handed to the user when retries are exhausted or the
// failure is terminal.
type EscalationReport struct {
	TaskID             string              `json:"task_id"`
	SubtaskID          string              `json:"subtask_id,omitempty"`
	Reason             string              `json:"reason"`
	FailureCounts      map[FailureType]int `json:"failure_counts"`
	RecentHistory      []RetryAttempt      `json:"recent_history"`
	RecommendedActions []string            `json:"recommended_actions"`
	UserMessage        string              `json:"user_message"`
	DebugInfo          EscalationDebugInfo `json:"debug_info"`
	GeneratedAt        time.Time           `json:"generated_at"`
}

// EscalationDebugInfo carries the raw material for diagnosing an escalation.
type EscalationDebugInfo struct {
	RetryHistory []RetryAttempt `json:"retry_history"`
	TraceFile    string         `json:"trace_file,omitempty"`
}

// RecoveryStrategy is the partial-recovery choice for a failed chunked run.
type RecoveryStrategy string

const (
	// RecoveryRetryFailedOnly — failures have no downstream dependents; retry them alone
	RecoveryRetryFailedOnly RecoveryStrategy = "RETRY_FAILED_ONLY"
	// RecoveryRollbackAndRetry — dependents were poisoned; redo the graph
	RecoveryRollbackAndRetry RecoveryStrategy = "ROLLBACK_AND_RETRY"
	// RecoveryPartialCommit — keep successes, surface failures
	RecoveryPartialCommit RecoveryStrategy = "PARTIAL_COMMIT"
	// RecoveryEscalate — no automated recovery applies
	RecoveryEscalate RecoveryStrategy = "ESCALATE"
)
