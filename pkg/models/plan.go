package models

import "time"

// SizeCategory buckets a task by estimated effort.
type SizeCategory string

const (
	SizeXS SizeCategory = "XS"
	SizeS  SizeCategory = "S"
	SizeM  SizeCategory = "M"
	SizeL  SizeCategory = "L"
	SizeXL SizeCategory = "XL"
)

// AtLeast reports whether the category is c or larger (XS < S < M < L < XL).
func (s SizeCategory) AtLeast(c SizeCategory) bool {
	return s.rank() >= c.rank()
}

func (s SizeCategory) rank() int {
	switch s {
	case SizeXS:
		return 0
	case SizeS:
		return 1
	case SizeM:
		return 2
	case SizeL:
		return 3
	case SizeXL:
		return 4
	default:
		return -1
	}
}

// ExecutionMode is how subtasks of a chunked task are scheduled.
type ExecutionMode string

const (
	// ExecutionModeParallel launches all subtasks concurrently
	ExecutionModeParallel ExecutionMode = "parallel"
	// ExecutionModeSequential runs subtasks in execution order with dependency checks
	ExecutionModeSequential ExecutionMode = "sequential"
)

// ExecutionStrategy is the planner's overall recommendation for a task.
type ExecutionStrategy string

const (
	// StrategySingle executes the task whole, no chunking
	StrategySingle ExecutionStrategy = "single"
	// StrategySequential chunks the task and runs subtasks in order
	StrategySequential ExecutionStrategy = "sequential"
	// StrategyParallel chunks the task and runs subtasks concurrently
	StrategyParallel ExecutionStrategy = "parallel"
	// StrategyMixed runs parallelizable groups in a sequential outer order
	StrategyMixed ExecutionStrategy = "mixed"
)

// SizeEstimation is the deterministic effort estimate for a prompt.
type SizeEstimation struct {
	ComplexityScore    int          `json:"complexity_score"`
	EstimatedFileCount int          `json:"estimated_file_count"`
	EstimatedTokens    int          `json:"estimated_tokens"`
	SizeCategory       SizeCategory `json:"size_category"`
	EstimationReasons  []string     `json:"estimation_reasons"`
}

// ChunkingRecommendation is the planner's chunk/no-chunk decision plus the
// extracted subtask prompts when chunking applies.
type ChunkingRecommendation struct {
	ShouldChunk     bool          `json:"should_chunk"`
	Reason          string        `json:"reason"`
	SubtaskPrompts  []string      `json:"subtask_prompts,omitempty"`
	ExecutionMode   ExecutionMode `json:"execution_mode,omitempty"`
	EstimatedChunks int           `json:"estimated_chunks"`
}

// DependencyAnalysis is the optional ordering analysis over extracted
// subtasks. Indices refer to positions in ChunkingRecommendation.SubtaskPrompts.
type DependencyAnalysis struct {
	Edges              [][2]int `json:"edges"`
	TopologicalOrder   []int    `json:"topological_order"`
	ParallelGroups     [][]int  `json:"parallel_groups"`
	HasCycles          bool     `json:"has_cycles"`
	SequentialFallback bool     `json:"sequential_fallback"`
}

// ExecutionPlan is the planner's full output for one task.
type ExecutionPlan struct {
	PlanID                 string                 `json:"plan_id"`
	TaskID                 string                 `json:"task_id"`
	SizeEstimation         SizeEstimation         `json:"size_estimation"`
	ChunkingRecommendation ChunkingRecommendation `json:"chunking_recommendation"`
	ExecutionStrategy      ExecutionStrategy      `json:"execution_strategy"`
	DependencyAnalysis     *DependencyAnalysis    `json:"dependency_analysis,omitempty"`
	CreatedAt              time.Time              `json:"created_at"`
}

// SubtaskStatus is the lifecycle status of one subtask.
type SubtaskStatus string

const (
	SubtaskPending  SubtaskStatus = "PENDING"
	SubtaskRunning  SubtaskStatus = "RUNNING"
	SubtaskComplete SubtaskStatus = "COMPLETE"
	SubtaskFailed   SubtaskStatus = "FAILED"
	SubtaskRetrying SubtaskStatus = "RETRYING"
)

// SubtaskDefinition is one node of a chunked task's execution graph.
// Dependencies reference sibling subtask ids.
type SubtaskDefinition struct {
	SubtaskID      string        `json:"subtask_id"`
	ParentTaskID   string        `json:"parent_task_id"`
	Prompt         string        `json:"prompt"`
	Dependencies   []string      `json:"dependencies,omitempty"`
	Status         SubtaskStatus `json:"status"`
	RetryCount     int           `json:"retry_count"`
	ExecutionOrder int           `json:"execution_order"`
	Result         *TaskResult   `json:"result,omitempty"`
	FailureReason  string        `json:"failure_reason,omitempty"`
	Iterations     int           `json:"iterations,omitempty"`
}

// ChunkStatus is the lifecycle status of a chunked-task run.
type ChunkStatus string

const (
	ChunkAnalyzing   ChunkStatus = "ANALYZING"
	ChunkExecuting   ChunkStatus = "EXECUTING"
	ChunkAggregating ChunkStatus = "AGGREGATING"
	ChunkComplete    ChunkStatus = "COMPLETE"
	ChunkFailed      ChunkStatus = "FAILED"
)

// AggregationStrategy names how subtask results fold into one task result.
type AggregationStrategy string

const (
	// AggregateUnion merges files, concatenates summaries, sums iterations
	AggregateUnion AggregationStrategy = "union"
)

// ChunkedTask tracks one chunked execution from analysis to aggregation.
type ChunkedTask struct {
	ParentTaskID        string              `json:"parent_task_id"`
	Subtasks            []SubtaskDefinition `json:"subtasks"`
	ExecutionMode       ExecutionMode       `json:"execution_mode"`
	AggregationStrategy AggregationStrategy `json:"aggregation_strategy"`
	Status              ChunkStatus         `json:"status"`
	CreatedAt           time.Time           `json:"created_at"`
	CompletedAt         *time.Time          `json:"completed_at,omitempty"`
}
