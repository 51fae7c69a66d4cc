package config

// ExecutionModeSetting selects how chunked subtasks are scheduled.
type ExecutionModeSetting string

const (
	// ExecutionModeAuto lets dependency keywords in the prompt decide
	ExecutionModeAuto ExecutionModeSetting = "auto"
	// ExecutionModeParallel forces concurrent subtask execution
	ExecutionModeParallel ExecutionModeSetting = "parallel"
	// ExecutionModeSequential forces ordered subtask execution
	ExecutionModeSequential ExecutionModeSetting = "sequential"
)

// IsValid checks if the execution mode setting is valid.
func (m ExecutionModeSetting) IsValid() bool {
	return m == ExecutionModeAuto || m == ExecutionModeParallel || m == ExecutionModeSequential
}

// PlannerConfig controls size estimation, chunking, and subtask scheduling.
type PlannerConfig struct {
	// AutoChunk gates the chunking decision entirely; when false every task
	// executes whole. *bool: nil means "use default" (enabled), explicit
	// false disables.
	AutoChunk *bool `yaml:"auto_chunk,omitempty"`

	// MinSubtasks and MaxSubtasks bound the accepted decomposition size.
	// Extractions outside the range disable chunking for that task.
	MinSubtasks int `yaml:"min_subtasks"`
	MaxSubtasks int `yaml:"max_subtasks"`

	// ExecutionMode is auto, parallel, or sequential.
	ExecutionMode ExecutionModeSetting `yaml:"execution_mode"`

	// FailFast stops launching further subtasks after the first failure.
	// Sequential mode always honors it; parallel mode tolerates partial
	// failure unless set.
	FailFast bool `yaml:"fail_fast"`

	// AnalyzeDependencies enables the optional dependency analysis pass
	// (edge detection, topological order, parallel groups). Same *bool
	// convention as AutoChunk.
	AnalyzeDependencies *bool `yaml:"analyze_dependencies,omitempty"`
}

// ChunkingEnabled resolves the AutoChunk tri-state.
func (p *PlannerConfig) ChunkingEnabled() bool {
	return p.AutoChunk == nil || *p.AutoChunk
}

// DependencyAnalysisEnabled resolves the AnalyzeDependencies tri-state.
func (p *PlannerConfig) DependencyAnalysisEnabled() bool {
	return p.AnalyzeDependencies == nil || *p.AnalyzeDependencies
}

// DefaultPlannerConfig returns the built-in planner defaults.
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		AutoChunk:           BoolPtr(true),
		MinSubtasks:         2,
		MaxSubtasks:         10,
		ExecutionMode:       ExecutionModeAuto,
		FailFast:            false,
		AnalyzeDependencies: BoolPtr(true),
	}
}
