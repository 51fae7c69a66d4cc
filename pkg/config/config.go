package config

import "path/filepath"

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application. Namespace and StateDir are fully
// resolved; section pointers are never nil after a successful load.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Namespace is the resolved isolation key for this process.
	Namespace *NamespaceConfig

	// StateDir is the namespace-scoped state root holding evidence,
	// traces, and reports.
	StateDir string

	Server    *ServerConfig
	Queue     *QueueConfig
	Limits    *LimitsConfig
	Review    *ReviewConfig
	Retry     *RetryConfig
	Planner   *PlannerConfig
	Executor  *ExecutorConfig
	Retention *RetentionConfig
	Masking   *MaskingConfig
}

// BoolPtr returns a pointer to b. Convenience for *bool struct fields.
func BoolPtr(b bool) *bool { return &b }

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// TableName returns the logical queue table name for the process namespace.
func (c *Config) TableName() string {
	return c.Namespace.TableName()
}

// EvidenceDir returns the evidence root under the state dir.
func (c *Config) EvidenceDir() string {
	return filepath.Join(c.StateDir, "evidence")
}

// TracesDir returns the conversation-trace directory under the state dir.
func (c *Config) TracesDir() string {
	return filepath.Join(c.StateDir, "traces")
}

// ReportsDir returns the reports directory under the state dir.
func (c *Config) ReportsDir() string {
	return filepath.Join(c.StateDir, "reports")
}

// ExecutorWorkingDir returns the tree the executor operates on: the
// configured working dir, or the project dir the namespace was derived from.
func (c *Config) ExecutorWorkingDir() string {
	if c.Executor.WorkingDir != "" {
		return c.Executor.WorkingDir
	}
	return c.Namespace.ProjectDir
}
