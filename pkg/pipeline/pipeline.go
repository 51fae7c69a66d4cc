// Package pipeline composes the planner, review loop, retry manager, and
// evidence store into the execution flow a poller dispatches each claimed
// task to. A task either runs whole through one review loop or is decomposed
// into subtasks that run through their own loops, with results aggregated
// back into a single terminal state.
//
// The pipeline owns everything between claim and finalize: per-task budgets,
// executor slots, conversation traces, evidence records, progress events,
// and the retry/escalation ladder. The poller only sees the returned
// ExecutionResult; the pipeline is the sole producer of the
// queue.ClarificationPrefix error form the poller converts to
// AWAITING_RESPONSE.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pm-runner/pmrunner/ent"
	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/evidence"
	"github.com/pm-runner/pmrunner/pkg/limits"
	"github.com/pm-runner/pmrunner/pkg/locks"
	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/pm-runner/pmrunner/pkg/planner"
	"github.com/pm-runner/pmrunner/pkg/queue"
	"github.com/pm-runner/pmrunner/pkg/retry"
	"github.com/pm-runner/pmrunner/pkg/review"
	"github.com/pm-runner/pmrunner/pkg/trace"
)

// Evidence operation types recorded for successful runs.
const (
	operationTypeTask    = "task_execution"
	operationTypeSubtask = "subtask_execution"
)

// TaskEventAppender persists progress events onto the task row so clients
// that poll instead of subscribing still see chunking milestones.
// Implemented by *queue.Store; nil is tolerated.
type TaskEventAppender interface {
	AppendEvent(ctx context.Context, taskID string, event models.TaskEvent) error
}

// EventPublisher broadcasts task progress, subtask lifecycle, and chunking
// events. Implemented by *events.Publisher; nil is tolerated.
type EventPublisher interface {
	PublishTaskProgress(ctx context.Context, payload events.TaskProgressPayload) error
	PublishSubtaskStatus(ctx context.Context, payload events.SubtaskStatusPayload) error
	PublishChunking(ctx context.Context, payload events.ChunkingPayload) error
}

// Pipeline executes one claimed task end to end. Safe for concurrent use;
// pollers share a single instance.
type Pipeline struct {
	namespace string
	cfg       *config.Config
	planner   *planner.Planner
	loop      *review.Loop
	retries   *retry.Manager
	evidence  *evidence.Store
	traces    *trace.Registry
	locks     *locks.Manager
	limits    *limits.Manager
	tasks     TaskEventAppender
	pub       EventPublisher
}

// New assembles a pipeline around the shared managers. exec is the backend
// the review loop invokes; tasks and pub may be nil in tests.
func New(
	cfg *config.Config,
	exec review.Executor,
	lockMgr *locks.Manager,
	limitMgr *limits.Manager,
	evidenceStore *evidence.Store,
	traceRegistry *trace.Registry,
	tasks TaskEventAppender,
	pub EventPublisher,
) *Pipeline {
	return &Pipeline{
		namespace: cfg.Namespace.Name,
		cfg:       cfg,
		planner:   planner.New(cfg.Planner),
		loop:      review.NewLoop(cfg.Review, cfg.Executor, exec, pub),
		retries:   retry.NewManager(cfg.Retry),
		evidence:  evidenceStore,
		traces:    traceRegistry,
		locks:     lockMgr,
		limits:    limitMgr,
		tasks:     tasks,
		pub:       pub,
	}
}

// Execute runs one task to a terminal state. It returns nil only when ctx
// died mid-run, in which case the poller synthesizes the terminal status
// from the context error. Evidence finalization always runs, whatever the
// outcome.
func (p *Pipeline) Execute(ctx context.Context, task *ent.QueueTask) *queue.ExecutionResult {
	logger := slog.With(
		"task_id", task.ID,
		"session_id", task.SessionID,
		"namespace", p.namespace,
	)
	logger.Info("Pipeline: task starting",
		"task_type", string(task.TaskType),
		"attempt", task.Attempt)

	// 1. Open the per-task budget and the conversation trace.
	p.limits.Register(task.ID, nil)
	defer p.limits.Unregister(task.ID)

	tracer := p.traces.Open(task.ID, task.SessionID)
	defer p.traces.Close(task.ID)

	tracer.Log(models.TraceUserRequest, map[string]any{
		"prompt":    task.Prompt,
		"task_type": string(queue.WireTaskType(task.TaskType)),
		"attempt":   task.Attempt,
	})
	tracer.Log(models.TraceSystemRules, map[string]any{
		"max_iterations": p.cfg.Review.MaxIterations,
		"gates":          gateNames(),
	})

	// 2. Evidence finalization runs no matter how the task ends.
	defer p.finalizeEvidence(task.SessionID, logger)

	// 3. Plan and execute.
	res, iterations, plan := p.run(ctx, task, tracer)
	if res == nil {
		logger.Warn("Pipeline: context ended mid-task", "error", ctx.Err())
		return nil
	}

	// 4. Close the trace with the terminal summary.
	tracer.Log(models.TraceFinalSummary, finalSummary(res, plan, iterations))
	logger.Info("Pipeline: task finished",
		"status", string(res.Status),
		"iterations", iterations)
	return res
}

// run plans the task and routes it down the single or chunked path.
func (p *Pipeline) run(ctx context.Context, task *ent.QueueTask, tracer *trace.Tracer) (*queue.ExecutionResult, int, *models.ExecutionPlan) {
	if err := p.evidence.Initialize(task.SessionID); err != nil {
		return errorResult(fmt.Sprintf("evidence session initialization failed: %v", err), ""), 0, nil
	}

	plan, err := p.planner.Plan(task.ID, task.Prompt)
	if err != nil {
		return errorResult(fmt.Sprintf("planning failed: %v", err), ""), 0, nil
	}

	if plan.ChunkingRecommendation.ShouldChunk {
		res, iterations := p.runChunked(ctx, task, plan, tracer)
		return res, iterations, plan
	}
	res, iterations := p.runSingle(ctx, task, tracer)
	return res, iterations, plan
}

// runSingle drives the whole task through review loops until it passes,
// the retry manager gives up, or ctx dies. The returned iteration count
// sums across loop re-entries.
func (p *Pipeline) runSingle(ctx context.Context, task *ent.QueueTask, tracer *trace.Tracer) (*queue.ExecutionResult, int) {
	if err := p.evidence.RegisterOperation(task.SessionID, task.ID); err != nil {
		slog.Warn("Pipeline: operation registration failed",
			"task_id", task.ID, "error", err)
	}

	taskType := queue.WireTaskType(task.TaskType)
	in := review.RunInput{
		Namespace:  p.namespace,
		TaskID:     task.ID,
		TaskType:   taskType,
		Prompt:     task.Prompt,
		WorkingDir: p.cfg.ExecutorWorkingDir(),
		Tracer:     tracer,
	}

	iterations := 0
	for {
		if err := p.limits.CheckTimeBudget(task.ID); err != nil {
			return errorResult(err.Error(), ""), iterations
		}

		outcome, err := p.runLoop(ctx, task.ID, in)
		if err != nil {
			if ctx.Err() != nil {
				return nil, iterations
			}
			return errorResult(err.Error(), ""), iterations
		}
		iterations += outcome.Iterations

		if outcome.FinalVerdict.Passed() {
			p.retries.Reset(task.ID, "")
			if err := p.debitFileBudget(task.ID, outcome.Result); err != nil {
				return errorResult(err.Error(), outcome.Result.Output), iterations
			}
			if err := p.recordSuccessEvidence(task.SessionID, task.ID, operationTypeTask, outcome.Result); err != nil {
				return errorResult(fmt.Sprintf("evidence collection failed: %v", err), outcome.Result.Output), iterations
			}
			return &queue.ExecutionResult{
				Status: models.TaskStatusComplete,
				Output: outcome.Result.Output,
			}, iterations
		}

		decision := p.retries.Decide(task.ID, "", outcome.Result, &outcome.FinalVerdict)

		// Only unjudgeable loop exits (transport failures, empty results)
		// re-enter with backoff. Quality rejections already burned their
		// iterations inside the loop.
		if decision.Kind == models.RetryAgain && outcome.FinalVerdict.Decision == models.DecisionRetry {
			slog.Info("Pipeline: re-running review loop",
				"task_id", task.ID,
				"failure_type", string(decision.FailureType),
				"delay", decision.Delay)
			if err := sleepCtx(ctx, decision.Delay); err != nil {
				return nil, iterations
			}
			continue
		}

		return p.escalate(task, taskType, outcome, decision, tracer), iterations
	}
}

// runLoop holds an executor slot for the duration of one review loop.
func (p *Pipeline) runLoop(ctx context.Context, holderID string, in review.RunInput) (*models.ReviewOutcome, error) {
	if err := p.locks.WaitGlobalSemaphore(ctx, holderID); err != nil {
		return nil, err
	}
	defer func() {
		if err := p.locks.ReleaseGlobalSemaphore(holderID); err != nil {
			slog.Warn("Pipeline: executor slot release failed",
				"holder", holderID, "error", err)
		}
	}()
	return p.loop.Run(ctx, in)
}

// escalate maps a failed review outcome to its terminal state. Partial
// results of read-only task types come back as AWAITING_RESPONSE; a failed
// result whose output ends in a question is surfaced as a clarification
// request; everything else becomes an ERROR with an escalation report on
// disk.
func (p *Pipeline) escalate(
	task *ent.QueueTask,
	taskType models.TaskType,
	outcome *models.ReviewOutcome,
	decision models.RetryDecision,
	tracer *trace.Tracer,
) *queue.ExecutionResult {
	reason := outcome.EscalateHint
	if decision.Kind == models.RetryEscalate {
		reason = decision.Reason
	}
	if reason == "" {
		reason = "review loop did not pass"
	}

	result := outcome.Result
	if result != nil && result.Status == models.ResultStatusIncomplete && taskType.AllowsPartialResult() {
		slog.Info("Pipeline: partial result held for user direction",
			"task_id", task.ID,
			"task_type", string(taskType),
			"iterations", outcome.Iterations)
		return &queue.ExecutionResult{
			Status: models.TaskStatusAwaitingResponse,
			Output: result.Output,
			Clarification: &models.Clarification{
				Question: clarificationQuestion(result.Output),
				Context: fmt.Sprintf("partial %s result after %d iteration(s)",
					strings.ToLower(string(taskType)), outcome.Iterations),
			},
		}
	}
	if result != nil {
		if q := trailingQuestion(result.Output); q != "" {
			return &queue.ExecutionResult{
				Status:       models.TaskStatusError,
				Output:       result.Output,
				ErrorMessage: queue.ClarificationPrefix + " " + q,
			}
		}
	}

	report := p.retries.BuildEscalationReport(task.ID, "", reason, tracer.Path())
	p.storeEscalationReport(task.SessionID, task.ID, report)

	var output string
	if result != nil {
		output = result.Output
	}
	return &queue.ExecutionResult{
		Status:       models.TaskStatusError,
		Output:       output,
		ErrorMessage: reason,
	}
}

// debitFileBudget charges one file-operation slot per reported modification.
// The budget was opened at Execute entry; a violation here fails the task
// even though the work itself passed review.
func (p *Pipeline) debitFileBudget(taskID string, result *models.TaskResult) error {
	if result == nil {
		return nil
	}
	for range result.FilesModified {
		if err := p.limits.CheckFileOp(taskID); err != nil {
			return err
		}
	}
	return nil
}

// recordSuccessEvidence stores the raw executor output and one evidence
// record for a passed operation. Failing to record is a task failure:
// completion without evidence is exactly what the store exists to prevent.
func (p *Pipeline) recordSuccessEvidence(sessionID, operationID, operationType string, result *models.TaskResult) error {
	if result == nil {
		return nil
	}

	logPath, err := p.evidence.StoreRawLog(sessionID, operationID, []byte(result.Output))
	if err != nil {
		return err
	}

	files, err := json.Marshal(result.FilesModified)
	if err != nil {
		return err
	}

	_, err = p.evidence.RecordEvidence(sessionID, &models.Evidence{
		OperationID:     operationID,
		OperationType:   operationType,
		AtomicOperation: true,
		Aggregated:      false,
		Artifacts: []models.Artifact{
			{Name: "output", ContentType: "text/plain", Content: result.Output},
			{Name: "files_modified", ContentType: "application/json", Content: string(files)},
		},
		RawLogs:         logPath,
		RawEvidenceRefs: []string{logPath},
	})
	return err
}

// storeEscalationReport files the report under the session's raw logs so
// the evidence trail covers failures too. Best-effort.
func (p *Pipeline) storeEscalationReport(sessionID, id string, report *models.EscalationReport) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		slog.Warn("Pipeline: escalation report encode failed",
			"task_id", report.TaskID, "error", err)
		return
	}
	path, err := p.evidence.StoreRawLog(sessionID, id+"-escalation", data)
	if err != nil {
		slog.Warn("Pipeline: escalation report store failed",
			"task_id", report.TaskID, "error", err)
		return
	}
	slog.Info("Pipeline: escalation report stored",
		"task_id", report.TaskID,
		"subtask_id", report.SubtaskID,
		"path", path)
}

// finalizeEvidence seals the session: index, report, verdict. Runs on every
// exit path, including context death.
func (p *Pipeline) finalizeEvidence(sessionID string, logger *slog.Logger) {
	report, err := p.evidence.FinalizeSession(sessionID)
	if err != nil {
		logger.Warn("Pipeline: evidence finalization failed", "error", err)
		return
	}
	logger.Info("Pipeline: evidence session finalized",
		"verdict", string(report.Verdict),
		"total_items", report.TotalItems)
}

// publishStep broadcasts one pipeline-level task.progress event.
// Best-effort: logs on failure, never aborts the run.
func (p *Pipeline) publishStep(ctx context.Context, taskID, subtaskID, step string, detail map[string]any) {
	if p.pub == nil {
		return
	}
	err := p.pub.PublishTaskProgress(ctx, events.TaskProgressPayload{
		Type:      events.EventTypeTaskProgress,
		Namespace: p.namespace,
		TaskID:    taskID,
		SubtaskID: subtaskID,
		Step:      step,
		Detail:    detail,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Pipeline: progress publish failed",
			"task_id", taskID,
			"step", step,
			"error", err)
	}
}

// publishSubtask broadcasts one subtask.status event. Status is passed
// explicitly so parallel subtask runs never read shared mutable state.
func (p *Pipeline) publishSubtask(ctx context.Context, taskID, subtaskID string, index int, status models.SubtaskStatus, reason string) {
	if p.pub == nil {
		return
	}
	err := p.pub.PublishSubtaskStatus(ctx, events.SubtaskStatusPayload{
		Type:      events.EventTypeSubtaskStatus,
		Namespace: p.namespace,
		TaskID:    taskID,
		SubtaskID: subtaskID,
		Index:     index,
		Status:    status,
		Reason:    reason,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Pipeline: subtask status publish failed",
			"task_id", taskID,
			"subtask_id", subtaskID,
			"error", err)
	}
}

// publishChunking broadcasts the task.chunking decomposition announcement.
func (p *Pipeline) publishChunking(ctx context.Context, taskID string, plan *models.ExecutionPlan, mode models.ExecutionMode) {
	if p.pub == nil {
		return
	}
	err := p.pub.PublishChunking(ctx, events.ChunkingPayload{
		Type:          events.EventTypeChunking,
		Namespace:     p.namespace,
		TaskID:        taskID,
		PlanID:        plan.PlanID,
		SubtaskCount:  len(plan.ChunkingRecommendation.SubtaskPrompts),
		ExecutionMode: mode,
		Strategy:      plan.ExecutionStrategy,
		Timestamp:     time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Pipeline: chunking publish failed",
			"task_id", taskID,
			"error", err)
	}
}

// appendTaskEvent writes one entry to the task's persistent event log.
func (p *Pipeline) appendTaskEvent(ctx context.Context, taskID string, event models.TaskEvent) {
	if p.tasks == nil {
		return
	}
	if err := p.tasks.AppendEvent(ctx, taskID, event); err != nil {
		slog.Warn("Pipeline: task event append failed",
			"task_id", taskID,
			"type", event.Type,
			"error", err)
	}
}

// errorResult builds the terminal ERROR result, preserving whatever output
// the executor produced before failing.
func errorResult(message, output string) *queue.ExecutionResult {
	return &queue.ExecutionResult{
		Status:       models.TaskStatusError,
		Output:       output,
		ErrorMessage: message,
	}
}

// finalSummary is the data of the FINAL_SUMMARY trace line.
func finalSummary(res *queue.ExecutionResult, plan *models.ExecutionPlan, iterations int) map[string]any {
	data := map[string]any{
		"status":     string(res.Status),
		"iterations": iterations,
	}
	if res.ErrorMessage != "" {
		data["error"] = res.ErrorMessage
	}
	if plan != nil {
		data["plan_id"] = plan.PlanID
		data["strategy"] = string(plan.ExecutionStrategy)
		data["chunked"] = plan.ChunkingRecommendation.ShouldChunk
	}
	return data
}

// gateNames lists the gate ids in judgment order for the SYSTEM_RULES line.
func gateNames() []string {
	names := make([]string, len(models.AllGates))
	for i, g := range models.AllGates {
		names[i] = string(g)
	}
	return names
}

// trailingQuestion returns the last non-empty output line when it reads as
// a question to the user, else "".
func trailingQuestion(output string) string {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "?") {
			return line
		}
		return ""
	}
	return ""
}

// clarificationQuestion picks the question attached to a partial result.
func clarificationQuestion(output string) string {
	if q := trailingQuestion(output); q != "" {
		return q
	}
	return "The task stopped with partial results. Reply with direction to continue."
}

// sleepCtx waits out d unless ctx dies first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
