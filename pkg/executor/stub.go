package executor

import (
	"context"
	"log/slog"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// StubExecutor is a no-op Executor. It immediately reports COMPLETE without
// invoking any agent and never touches the working tree. It reports no
// modified files, so evidence-gated reviews reject its results.
type StubExecutor struct{}

// NewStubExecutor creates a new stub executor.
func NewStubExecutor() *StubExecutor {
	return &StubExecutor{}
}

// Execute returns a completed result immediately.
func (e *StubExecutor) Execute(ctx context.Context, in ExecuteInput) (*models.TaskResult, error) {
	slog.Info("Stub executor: no-op execution",
		"id", in.ID,
		"working_dir", in.WorkingDir,
	)

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &models.TaskResult{
		Executed: true,
		Output:   "Stub executor: no agent execution performed",
		Status:   models.ResultStatusComplete,
		CWD:      in.WorkingDir,
	}, nil
}

// IsAvailable always reports true.
func (e *StubExecutor) IsAvailable(context.Context) bool {
	return true
}

// CheckAuth always reports authenticated.
func (e *StubExecutor) CheckAuth(context.Context) models.AuthStatus {
	return models.AuthStatus{OK: true}
}
