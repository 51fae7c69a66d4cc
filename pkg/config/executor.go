package config

import "time"

// ExecutorConfig points the orchestrator at its executor backend.
type ExecutorConfig struct {
	// GRPCAddress is the executor sidecar endpoint.
	GRPCAddress string `yaml:"grpc_address"`

	// WorkingDir is the tree the executor modifies. Empty means the
	// project dir the namespace was derived from.
	WorkingDir string `yaml:"working_dir"`

	// RequestTimeout bounds a single execute round-trip. The per-task
	// wall-clock budget (limits.max_seconds) is enforced separately.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// UseStub swaps the gRPC client for the in-process stub executor
	// (immediate COMPLETE, no side effects). Smoke runs and tests only.
	UseStub bool `yaml:"use_stub"`
}

// DefaultExecutorConfig returns the built-in executor defaults.
func DefaultExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		GRPCAddress:    "localhost:50051",
		WorkingDir:     "",
		RequestTimeout: 5 * time.Minute,
		UseStub:        false,
	}
}
