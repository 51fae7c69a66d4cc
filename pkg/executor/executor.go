// Package executor abstracts the coding agent that actually performs task
// work. The orchestrator never shells out itself: it hands a prompt and a
// working directory to an Executor and gets back a structured TaskResult
// (output, modified files with existence checks, duration, status).
//
// Two implementations ship: the gRPC client against the executor sidecar
// (the production path) and an in-process stub for smoke runs. Tests use
// scripted executors built on the same interface.
package executor

import (
	"context"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// ExecuteInput is one executor invocation. ID correlates the run with a
// task or subtask; WorkingDir is the tree the agent may modify.
type ExecuteInput struct {
	ID         string
	Prompt     string
	WorkingDir string
}

// Executor runs prompts against the coding agent backend. Execute blocks
// until the agent finishes or ctx expires; deadline enforcement is the
// caller's job (the review loop budgets each iteration).
type Executor interface {
	// Execute runs one prompt to completion. A non-nil error means the
	// invocation itself failed (transport, marshaling); agent-level
	// failures come back as a TaskResult with status ERROR or TIMEOUT.
	Execute(ctx context.Context, in ExecuteInput) (*models.TaskResult, error)

	// IsAvailable reports whether the agent binary is installed and
	// runnable on the executor host.
	IsAvailable(ctx context.Context) bool

	// CheckAuth reports whether the agent backend is authenticated.
	CheckAuth(ctx context.Context) models.AuthStatus
}
