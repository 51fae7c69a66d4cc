// Package review implements the bounded quality-judgment loop: invoke the
// executor, apply the six gates (Q1–Q6), and either accept the result,
// re-prompt with the failing criteria, or escalate.
//
// The loop never decides retry policy across invocations of itself; that
// is the retry manager's job. Within one run it distinguishes REJECT
// (judgeable result, gates failed, next input is a modification prompt)
// from RETRY (unjudgeable result, same input again), and bounds both.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/executor"
	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/pm-runner/pmrunner/pkg/trace"
)

// Executor runs one prompt against the coding agent. Implemented by
// executor.Client and executor.StubExecutor; narrowed here to the single
// method the loop needs so tests can script results.
type Executor interface {
	Execute(ctx context.Context, in executor.ExecuteInput) (*models.TaskResult, error)
}

// ProgressPublisher broadcasts review progress steps. Implemented by
// events.Publisher; defined as an interface here to enable testing with
// fakes. Publishing is best-effort and a nil publisher is tolerated.
type ProgressPublisher interface {
	PublishTaskProgress(ctx context.Context, payload events.TaskProgressPayload) error
}

// Loop drives up to MaxIterations executor invocations through the gates.
type Loop struct {
	cfg         *config.ReviewConfig
	execTimeout time.Duration
	exec        Executor
	judge       *Judge
	pub         ProgressPublisher
}

// NewLoop assembles a review loop. The executor config supplies the
// per-invocation timeout; pub may be nil.
func NewLoop(cfg *config.ReviewConfig, execCfg *config.ExecutorConfig, exec Executor, pub ProgressPublisher) *Loop {
	var timeout time.Duration
	if execCfg != nil {
		timeout = execCfg.RequestTimeout
	}
	return &Loop{
		cfg:         cfg,
		execTimeout: timeout,
		exec:        exec,
		judge:       NewJudge(cfg.FilePreviewBytes),
		pub:         pub,
	}
}

// RunInput identifies one unit of work under review.
type RunInput struct {
	Namespace  string
	TaskID     string
	SubtaskID  string // empty when reviewing a whole task
	TaskType   models.TaskType
	Prompt     string
	WorkingDir string
	Tracer     *trace.Tracer // nil-safe
}

// executorID returns the id the executor sees: the subtask id when
// reviewing a subtask, the task id otherwise.
func (in RunInput) executorID() string {
	if in.SubtaskID != "" {
		return in.SubtaskID
	}
	return in.TaskID
}

// Run executes the review loop to completion. The outcome carries the
// final verdict and the last executor result; Escalated marks loop
// exhaustion or a retry-bound overrun. The error return is reserved for a
// dead context.
func (l *Loop) Run(ctx context.Context, in RunInput) (*models.ReviewOutcome, error) {
	outcome := &models.ReviewOutcome{TaskID: in.TaskID, SubtaskID: in.SubtaskID}

	l.publishStep(ctx, in, events.StepReviewLoopStart, 0, "", nil)
	defer func() {
		l.publishStep(ctx, in, events.StepReviewLoopEnd, outcome.Iterations,
			string(outcome.FinalVerdict.Decision), nil)
	}()

	prompt := in.Prompt
	consecutiveRetries := 0

	for i := 0; i < l.cfg.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iteration := i + 1
		outcome.Iterations = iteration

		l.publishStep(ctx, in, events.StepReviewIterationStart, iteration, "", nil)
		l.traceIteration(in, models.TraceLLMRequest, i, map[string]any{"prompt": prompt})

		result, execErr := l.execute(ctx, in, prompt)
		if execErr == nil && result != nil {
			l.traceIteration(in, models.TraceLLMResponse, i, responseTraceData(result))
		}

		verdict := l.judgeResult(result, execErr, in.TaskType)
		l.traceIteration(in, models.TraceQualityJudgment, i, judgmentTraceData(verdict))
		l.publishStep(ctx, in, events.StepQualityJudgment, iteration, string(verdict.Decision), nil)

		switch verdict.Decision {
		case models.DecisionPass:
			outcome.FinalVerdict = verdict
			outcome.Result = result
			l.endIteration(ctx, in, i, verdict)
			return outcome, nil

		case models.DecisionRetry:
			consecutiveRetries++
			outcome.FinalVerdict = verdict
			if result != nil {
				outcome.Result = result
			}
			l.endIteration(ctx, in, i, verdict)
			if consecutiveRetries > l.cfg.MaxConsecutiveRetries {
				outcome.Escalated = true
				outcome.EscalateHint = fmt.Sprintf("%d consecutive unjudgeable results", consecutiveRetries)
				slog.Warn("Review loop escalating early on consecutive retries",
					"task_id", in.TaskID,
					"subtask_id", in.SubtaskID,
					"iteration", iteration,
				)
				return outcome, nil
			}
			// Same prompt again.

		case models.DecisionReject:
			consecutiveRetries = 0
			outcome.FinalVerdict = verdict
			outcome.Result = result
			l.traceIteration(in, models.TraceRejectionDetails, i, rejectionTraceData(verdict))
			l.publishStep(ctx, in, events.StepRejectionDetails, iteration, "", rejectionDetail(verdict))

			prompt = BuildModificationPrompt(in.Prompt, verdict.FailedGates)
			l.publishStep(ctx, in, events.StepModificationPrompt, iteration, "", map[string]any{"prompt": prompt})
			l.endIteration(ctx, in, i, verdict)
		}
	}

	outcome.Escalated = true
	outcome.EscalateHint = "max_iterations reached"
	slog.Warn("Review loop exhausted",
		"task_id", in.TaskID,
		"subtask_id", in.SubtaskID,
		"iterations", outcome.Iterations,
	)
	return outcome, nil
}

// execute runs one executor invocation under the configured timeout.
func (l *Loop) execute(ctx context.Context, in RunInput, prompt string) (*models.TaskResult, error) {
	execCtx := ctx
	if l.execTimeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, l.execTimeout)
		defer cancel()
	}
	return l.exec.Execute(execCtx, executor.ExecuteInput{
		ID:         in.executorID(),
		Prompt:     prompt,
		WorkingDir: in.WorkingDir,
	})
}

// judgeResult folds executor failures and unjudgeable results into RETRY
// verdicts; everything else goes through the gates.
func (l *Loop) judgeResult(result *models.TaskResult, execErr error, taskType models.TaskType) models.Verdict {
	switch {
	case execErr != nil:
		return retryVerdict(fmt.Sprintf("executor call failed: %v", execErr))
	case result == nil:
		return retryVerdict("executor returned no result")
	case !result.Executed:
		return retryVerdict("executor did not run")
	case result.Output == "" && len(result.FilesModified) == 0 && len(result.VerifiedFiles) == 0:
		return retryVerdict("empty output with no file activity")
	default:
		return l.judge.Judge(result, taskType)
	}
}

func retryVerdict(reason string) models.Verdict {
	return models.Verdict{Decision: models.DecisionRetry, RetryReason: reason}
}

// endIteration writes the iteration-end trace line and progress event.
func (l *Loop) endIteration(ctx context.Context, in RunInput, i int, verdict models.Verdict) {
	l.traceIteration(in, models.TraceIterationEnd, i, map[string]any{"decision": string(verdict.Decision)})
	l.publishStep(ctx, in, events.StepReviewIterationEnd, i+1, string(verdict.Decision), nil)
}

// traceIteration writes one trace line positioned at the 0-indexed
// iteration, attributed to the subtask when reviewing one.
func (l *Loop) traceIteration(in RunInput, event models.TraceEvent, iteration int, data map[string]any) {
	if in.SubtaskID != "" {
		in.Tracer.LogSubtask(event, in.SubtaskID, iteration, data)
		return
	}
	in.Tracer.LogIteration(event, iteration, data)
}

// publishStep broadcasts one task.progress event. Best-effort: logs on
// failure, never aborts the loop.
func (l *Loop) publishStep(ctx context.Context, in RunInput, step string, iteration int, verdict string, detail map[string]any) {
	if l.pub == nil {
		return
	}
	err := l.pub.PublishTaskProgress(ctx, events.TaskProgressPayload{
		Type:      events.EventTypeTaskProgress,
		Namespace: in.Namespace,
		TaskID:    in.TaskID,
		SubtaskID: in.SubtaskID,
		Step:      step,
		Iteration: iteration,
		Verdict:   verdict,
		Detail:    detail,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish review progress",
			"task_id", in.TaskID,
			"step", step,
			"error", err,
		)
	}
}

func responseTraceData(result *models.TaskResult) map[string]any {
	return map[string]any{
		"output":         result.Output,
		"status":         string(result.Status),
		"files_modified": result.FilesModified,
		"duration_ms":    result.DurationMS,
	}
}

func judgmentTraceData(verdict models.Verdict) map[string]any {
	data := map[string]any{"decision": string(verdict.Decision)}
	if len(verdict.FailedGates) > 0 {
		data["failed_gates"] = failedGateList(verdict)
	}
	if verdict.RetryReason != "" {
		data["retry_reason"] = verdict.RetryReason
	}
	return data
}

func rejectionTraceData(verdict models.Verdict) map[string]any {
	return map[string]any{"failed_gates": failedGateList(verdict)}
}

func rejectionDetail(verdict models.Verdict) map[string]any {
	return map[string]any{"failed_gates": failedGateList(verdict)}
}

func failedGateList(verdict models.Verdict) []map[string]any {
	failed := make([]map[string]any, 0, len(verdict.FailedGates))
	for _, g := range verdict.FailedGates {
		failed = append(failed, map[string]any{
			"gate":   string(g.Gate),
			"reason": g.Reason,
		})
	}
	return failed
}
