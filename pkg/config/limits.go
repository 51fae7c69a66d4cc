package config

// Per-task budget ranges. Values outside these are rejected at validation,
// not clamped silently.
const (
	MinMaxFiles = 1
	MaxMaxFiles = 20

	MinMaxTests = 1
	MaxMaxTests = 50

	MinMaxSeconds = 30
	MaxMaxSeconds = 900
)

// Parallel ceilings. These are hard limits, not tunables.
const (
	// ExecutorCeiling is the global cap on concurrently running executors.
	ExecutorCeiling = 4
	// SubagentCeiling is the global cap on concurrently running subagents.
	SubagentCeiling = 9
)

// LimitsConfig contains per-task default budgets. Individual tasks may
// override them within the allowed ranges at registration time.
type LimitsConfig struct {
	// MaxFiles is the default number of files one task may touch.
	MaxFiles int `yaml:"max_files"`

	// MaxTests is the default number of test executions per task.
	MaxTests int `yaml:"max_tests"`

	// MaxSeconds is the default wall-clock budget per task.
	MaxSeconds int `yaml:"max_seconds"`
}

// DefaultLimitsConfig returns the built-in budget defaults.
func DefaultLimitsConfig() *LimitsConfig {
	return &LimitsConfig{
		MaxFiles:   5,
		MaxTests:   10,
		MaxSeconds: 300,
	}
}
