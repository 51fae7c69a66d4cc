package models

import "time"

// TraceEvent is the kind tag of one conversation-trace line.
type TraceEvent string

const (
	TraceUserRequest      TraceEvent = "USER_REQUEST"
	TraceSystemRules      TraceEvent = "SYSTEM_RULES"
	TraceChunkingPlan     TraceEvent = "CHUNKING_PLAN"
	TraceLLMRequest       TraceEvent = "LLM_REQUEST"
	TraceLLMResponse      TraceEvent = "LLM_RESPONSE"
	TraceQualityJudgment  TraceEvent = "QUALITY_JUDGMENT"
	TraceRejectionDetails TraceEvent = "REJECTION_DETAILS"
	TraceIterationEnd     TraceEvent = "ITERATION_END"
	TraceFinalSummary     TraceEvent = "FINAL_SUMMARY"
)

// IsValid checks if the trace event kind is known.
func (e TraceEvent) IsValid() bool {
	switch e {
	case TraceUserRequest, TraceSystemRules, TraceChunkingPlan,
		TraceLLMRequest, TraceLLMResponse, TraceQualityJudgment,
		TraceRejectionDetails, TraceIterationEnd, TraceFinalSummary:
		return true
	default:
		return false
	}
}

// TraceEntry is one JSONL line of a task's conversation trace.
// IterationIndex is a pointer so iteration 0 survives omitempty.
type TraceEntry struct {
	Timestamp      time.Time      `json:"timestamp"`
	Event          TraceEvent     `json:"event"`
	SessionID      string         `json:"session_id"`
	TaskID         string         `json:"task_id"`
	IterationIndex *int           `json:"iteration_index,omitempty"`
	SubtaskID      string         `json:"subtask_id,omitempty"`
	Data           map[string]any `json:"data,omitempty"`
}

// TraceVerification is the report produced by scanning a trace file.
type TraceVerification struct {
	Path             string             `json:"path"`
	TotalLines       int                `json:"total_lines"`
	ValidLines       int                `json:"valid_lines"`
	InvalidLines     []int              `json:"invalid_lines,omitempty"`
	EventCounts      map[TraceEvent]int `json:"event_counts"`
	TotalIterations  int                `json:"total_iterations"`
	FinalSummaryLast bool               `json:"final_summary_last"`
	Valid            bool               `json:"valid"`
}
