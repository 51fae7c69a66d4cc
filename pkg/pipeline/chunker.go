package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pm-runner/pmrunner/ent"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/pm-runner/pmrunner/pkg/queue"
	"github.com/pm-runner/pmrunner/pkg/review"
	"github.com/pm-runner/pmrunner/pkg/trace"
)

// chunkRun is the mutable state of one chunked execution. Subtask slots are
// written only by applyResult, which runs on the caller's goroutine; the
// parallel path collects results over a channel first.
type chunkRun struct {
	task     *ent.QueueTask
	taskType models.TaskType
	tracer   *trace.Tracer
	chunked  *models.ChunkedTask
	byID     map[string]int
	failFast bool
}

// subtaskResult carries one subtask's terminal state back to the
// coordinating goroutine.
type subtaskResult struct {
	index      int
	status     models.SubtaskStatus
	result     *models.TaskResult
	iterations int
	retries    int
	reason     string
}

// runChunked decomposes the task per the plan, runs the subtasks in the
// chosen mode, and aggregates their results into one terminal state. A nil
// result means ctx died mid-run.
func (p *Pipeline) runChunked(ctx context.Context, task *ent.QueueTask, plan *models.ExecutionPlan, tracer *trace.Tracer) (*queue.ExecutionResult, int) {
	subtasks := buildSubtasks(task.ID, plan)
	mode := chunkExecutionMode(plan)

	run := &chunkRun{
		task:     task,
		taskType: queue.WireTaskType(task.TaskType),
		tracer:   tracer,
		chunked: &models.ChunkedTask{
			ParentTaskID:        task.ID,
			Subtasks:            subtasks,
			ExecutionMode:       mode,
			AggregationStrategy: models.AggregateUnion,
			Status:              models.ChunkAnalyzing,
			CreatedAt:           time.Now().UTC(),
		},
		byID:     indexByID(subtasks),
		failFast: p.cfg.Planner.FailFast,
	}

	slog.Info("Pipeline: task decomposed",
		"task_id", task.ID,
		"subtasks", len(subtasks),
		"execution_mode", string(mode),
		"strategy", string(plan.ExecutionStrategy))

	// Announce the decomposition before any subtask starts.
	p.publishStep(ctx, task.ID, "", events.StepChunkingStart, map[string]any{
		"reason":           plan.ChunkingRecommendation.Reason,
		"estimated_chunks": plan.ChunkingRecommendation.EstimatedChunks,
	})
	p.publishStep(ctx, task.ID, "", events.StepChunkingAnalysis, analysisDetail(plan, mode))
	p.publishChunking(ctx, task.ID, plan, mode)
	p.appendTaskEvent(ctx, task.ID, models.TaskEvent{
		Type:    events.EventTypeChunking,
		Message: fmt.Sprintf("decomposed into %d subtasks (%s)", len(subtasks), mode),
		Data: map[string]any{
			"plan_id":        plan.PlanID,
			"execution_mode": string(mode),
		},
	})
	for i := range run.chunked.Subtasks {
		sub := &run.chunked.Subtasks[i]
		p.publishStep(ctx, task.ID, sub.SubtaskID, events.StepSubtaskCreated, map[string]any{
			"execution_order": sub.ExecutionOrder,
			"dependencies":    sub.Dependencies,
		})
		p.publishSubtask(ctx, task.ID, sub.SubtaskID, sub.ExecutionOrder, models.SubtaskPending, "")
	}
	tracer.Log(models.TraceChunkingPlan, chunkingPlanData(plan, run.chunked))

	// Parallel runs hold subagent slots for the whole fan-out. When the
	// pool cannot cover the decomposition, degrade to sequential rather
	// than fail the task.
	if mode == models.ExecutionModeParallel {
		if err := p.limits.ReserveSubagents(len(subtasks)); err != nil {
			slog.Warn("Pipeline: subagent reservation failed, running sequentially",
				"task_id", task.ID,
				"subtasks", len(subtasks),
				"error", err)
			mode = models.ExecutionModeSequential
			run.chunked.ExecutionMode = mode
		} else {
			defer p.limits.ReleaseSubagents(len(subtasks))
		}
	}

	run.chunked.Status = models.ChunkExecuting
	if mode == models.ExecutionModeParallel {
		p.runParallel(ctx, run)
	} else {
		p.runSequential(ctx, run)
	}
	if ctx.Err() != nil {
		return nil, totalIterations(run)
	}

	run.chunked.Status = models.ChunkAggregating
	return p.aggregate(ctx, run), totalIterations(run)
}

// runParallel fans the subtasks out, one goroutine each, then folds the
// results back in execution order.
func (p *Pipeline) runParallel(ctx context.Context, run *chunkRun) {
	results := make(chan subtaskResult, len(run.chunked.Subtasks))
	var wg sync.WaitGroup

	for i := range run.chunked.Subtasks {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			results <- p.runSubtask(ctx, run, index)
		}(i)
	}

	wg.Wait()
	close(results)

	collected := make([]subtaskResult, 0, len(run.chunked.Subtasks))
	for r := range results {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})
	for _, r := range collected {
		applyResult(run, r)
	}
}

// runSequential runs subtasks in execution order. A subtask whose
// dependencies did not complete fails without invoking the executor.
func (p *Pipeline) runSequential(ctx context.Context, run *chunkRun) {
	for i := range run.chunked.Subtasks {
		if ctx.Err() != nil {
			return
		}
		sub := run.chunked.Subtasks[i]
		if !depsSatisfied(run, sub) {
			r := p.failSubtask(ctx, run.task.ID, subtaskResult{index: i}, sub, "Dependencies not satisfied")
			applyResult(run, r)
			if run.failFast {
				return
			}
			continue
		}
		r := p.runSubtask(ctx, run, i)
		applyResult(run, r)
		if r.status != models.SubtaskComplete && run.failFast {
			return
		}
	}
}

// runSubtask drives one subtask through review loops, mirroring the single
// path but keyed by (task, subtask) in the retry history and the evidence
// inventory.
func (p *Pipeline) runSubtask(ctx context.Context, run *chunkRun, index int) subtaskResult {
	task := run.task
	sub := run.chunked.Subtasks[index]
	out := subtaskResult{index: index}

	p.publishSubtask(ctx, task.ID, sub.SubtaskID, sub.ExecutionOrder, models.SubtaskRunning, "")
	p.publishStep(ctx, task.ID, sub.SubtaskID, events.StepSubtaskStart, map[string]any{
		"execution_order": sub.ExecutionOrder,
	})

	if err := p.evidence.RegisterOperation(task.SessionID, sub.SubtaskID); err != nil {
		slog.Warn("Pipeline: operation registration failed",
			"task_id", task.ID,
			"subtask_id", sub.SubtaskID,
			"error", err)
	}

	in := review.RunInput{
		Namespace:  p.namespace,
		TaskID:     task.ID,
		SubtaskID:  sub.SubtaskID,
		TaskType:   run.taskType,
		Prompt:     sub.Prompt,
		WorkingDir: p.cfg.ExecutorWorkingDir(),
		Tracer:     run.tracer,
	}

	for {
		if err := p.limits.CheckTimeBudget(task.ID); err != nil {
			return p.failSubtask(ctx, task.ID, out, sub, err.Error())
		}

		outcome, err := p.runLoop(ctx, sub.SubtaskID, in)
		if err != nil {
			if ctx.Err() != nil {
				out.status = models.SubtaskFailed
				out.reason = "context ended"
				return out
			}
			return p.failSubtask(ctx, task.ID, out, sub, fmt.Sprintf("subtask aborted: %v", err))
		}
		out.iterations += outcome.Iterations

		if outcome.FinalVerdict.Passed() {
			p.retries.Reset(task.ID, sub.SubtaskID)
			if err := p.debitFileBudget(task.ID, outcome.Result); err != nil {
				return p.failSubtask(ctx, task.ID, out, sub, err.Error())
			}
			if err := p.recordSuccessEvidence(task.SessionID, sub.SubtaskID, operationTypeSubtask, outcome.Result); err != nil {
				return p.failSubtask(ctx, task.ID, out, sub, fmt.Sprintf("evidence collection failed: %v", err))
			}
			out.status = models.SubtaskComplete
			out.result = outcome.Result
			p.publishSubtask(ctx, task.ID, sub.SubtaskID, sub.ExecutionOrder, models.SubtaskComplete, "")
			p.publishStep(ctx, task.ID, sub.SubtaskID, events.StepSubtaskComplete, map[string]any{
				"iterations": out.iterations,
			})
			return out
		}

		decision := p.retries.Decide(task.ID, sub.SubtaskID, outcome.Result, &outcome.FinalVerdict)
		if decision.Kind == models.RetryAgain && outcome.FinalVerdict.Decision == models.DecisionRetry {
			out.retries++
			p.publishSubtask(ctx, task.ID, sub.SubtaskID, sub.ExecutionOrder, models.SubtaskRetrying, string(decision.FailureType))
			p.publishStep(ctx, task.ID, sub.SubtaskID, events.StepSubtaskRetry, map[string]any{
				"attempt":      out.retries,
				"failure_type": string(decision.FailureType),
				"delay":        decision.Delay.String(),
			})
			if err := sleepCtx(ctx, decision.Delay); err != nil {
				out.status = models.SubtaskFailed
				out.reason = "context ended"
				return out
			}
			continue
		}

		reason := outcome.EscalateHint
		if decision.Kind == models.RetryEscalate {
			reason = decision.Reason
		}
		if reason == "" {
			reason = "review loop did not pass"
		}
		out.result = outcome.Result
		return p.failSubtask(ctx, task.ID, out, sub, reason)
	}
}

// failSubtask marks the result FAILED and publishes the transition.
func (p *Pipeline) failSubtask(ctx context.Context, taskID string, out subtaskResult, sub models.SubtaskDefinition, reason string) subtaskResult {
	out.status = models.SubtaskFailed
	out.reason = reason
	p.publishSubtask(ctx, taskID, sub.SubtaskID, sub.ExecutionOrder, models.SubtaskFailed, reason)
	p.publishStep(ctx, taskID, sub.SubtaskID, events.StepSubtaskFailed, map[string]any{
		"reason": reason,
	})
	slog.Warn("Pipeline: subtask failed",
		"task_id", taskID,
		"subtask_id", sub.SubtaskID,
		"reason", reason)
	return out
}

// aggregate folds subtask results into the task's terminal state: a union
// of modified files plus per-subtask summaries. With fail-fast off, a run
// with at least one completed subtask still lands COMPLETE; its output
// lists the failures.
func (p *Pipeline) aggregate(ctx context.Context, run *chunkRun) *queue.ExecutionResult {
	task := run.task

	var completed, failed []string
	for i := range run.chunked.Subtasks {
		switch run.chunked.Subtasks[i].Status {
		case models.SubtaskComplete:
			completed = append(completed, run.chunked.Subtasks[i].SubtaskID)
		case models.SubtaskFailed:
			failed = append(failed, run.chunked.Subtasks[i].SubtaskID)
		}
	}

	files := unionFiles(run.chunked.Subtasks)
	parts := make([]string, 0, len(run.chunked.Subtasks))
	for i := range run.chunked.Subtasks {
		sub := &run.chunked.Subtasks[i]
		switch sub.Status {
		case models.SubtaskComplete:
			parts = append(parts, fmt.Sprintf("[%s] %s", sub.SubtaskID, sub.Result.Output))
		case models.SubtaskFailed:
			parts = append(parts, fmt.Sprintf("[%s] FAILED: %s", sub.SubtaskID, sub.FailureReason))
		default:
			parts = append(parts, fmt.Sprintf("[%s] not started", sub.SubtaskID))
		}
	}

	detail := map[string]any{
		"completed":      len(completed),
		"failed":         len(failed),
		"files_modified": files,
	}
	if len(failed) > 0 {
		strategy := p.retries.ChooseRecoveryStrategy(task.ID, failed, completed, dependencyMap(run.chunked.Subtasks))
		detail["recovery_strategy"] = string(strategy)
		slog.Info("Pipeline: recovery strategy chosen",
			"task_id", task.ID,
			"failed", len(failed),
			"strategy", string(strategy))
	}
	p.publishStep(ctx, task.ID, "", events.StepChunkingAggregation, detail)

	filesSummary := "none"
	if len(files) > 0 {
		filesSummary = strings.Join(files, ", ")
	}
	output := fmt.Sprintf("%d/%d subtasks complete; files modified: %s\n\n%s",
		len(completed), len(run.chunked.Subtasks), filesSummary, strings.Join(parts, "\n\n"))

	now := time.Now().UTC()
	run.chunked.CompletedAt = &now

	var res *queue.ExecutionResult
	switch {
	case len(failed) == 0:
		run.chunked.Status = models.ChunkComplete
		res = &queue.ExecutionResult{Status: models.TaskStatusComplete, Output: output}
	case run.failFast || len(completed) == 0:
		run.chunked.Status = models.ChunkFailed
		reason := firstFailureReason(run.chunked.Subtasks)
		report := p.retries.BuildEscalationReport(task.ID, "", reason, run.tracer.Path())
		p.storeEscalationReport(task.SessionID, task.ID, report)
		res = errorResult(reason, output)
	default:
		run.chunked.Status = models.ChunkComplete
		res = &queue.ExecutionResult{Status: models.TaskStatusComplete, Output: output}
	}

	p.publishStep(ctx, task.ID, "", events.StepChunkingComplete, map[string]any{
		"status": string(run.chunked.Status),
	})
	return res
}

// buildSubtasks materializes the plan's subtask prompts. Dependency edges
// translate into sibling-id references; a cyclic analysis contributes none
// so the run cannot deadlock on its own graph.
func buildSubtasks(taskID string, plan *models.ExecutionPlan) []models.SubtaskDefinition {
	prompts := plan.ChunkingRecommendation.SubtaskPrompts
	subs := make([]models.SubtaskDefinition, len(prompts))
	for i, prompt := range prompts {
		subs[i] = models.SubtaskDefinition{
			SubtaskID:      fmt.Sprintf("%s-sub-%d", taskID, i+1),
			ParentTaskID:   taskID,
			Prompt:         prompt,
			Status:         models.SubtaskPending,
			ExecutionOrder: i + 1,
		}
	}
	deps := plan.DependencyAnalysis
	if deps != nil && !deps.HasCycles {
		for _, e := range deps.Edges {
			from, to := e[0], e[1]
			if from < 0 || from >= len(subs) || to < 0 || to >= len(subs) {
				continue
			}
			subs[to].Dependencies = append(subs[to].Dependencies, subs[from].SubtaskID)
		}
	}
	return subs
}

// chunkExecutionMode maps the plan strategy to a scheduling mode. Mixed
// strategies run sequentially; the dependency checks inside the loop keep
// the ordering guarantees without a group scheduler.
func chunkExecutionMode(plan *models.ExecutionPlan) models.ExecutionMode {
	if plan.ExecutionStrategy == models.StrategyParallel {
		return models.ExecutionModeParallel
	}
	return models.ExecutionModeSequential
}

func indexByID(subtasks []models.SubtaskDefinition) map[string]int {
	byID := make(map[string]int, len(subtasks))
	for i := range subtasks {
		byID[subtasks[i].SubtaskID] = i
	}
	return byID
}

func depsSatisfied(run *chunkRun, sub models.SubtaskDefinition) bool {
	for _, dep := range sub.Dependencies {
		i, ok := run.byID[dep]
		if !ok || run.chunked.Subtasks[i].Status != models.SubtaskComplete {
			return false
		}
	}
	return true
}

// applyResult writes one subtask's terminal state back into the chunk.
func applyResult(run *chunkRun, r subtaskResult) {
	sub := &run.chunked.Subtasks[r.index]
	sub.Status = r.status
	sub.Result = r.result
	sub.RetryCount = r.retries
	sub.Iterations = r.iterations
	sub.FailureReason = r.reason
}

// unionFiles merges FilesModified across subtasks, first-seen order, deduped.
func unionFiles(subtasks []models.SubtaskDefinition) []string {
	seen := make(map[string]struct{})
	var files []string
	for i := range subtasks {
		result := subtasks[i].Result
		if result == nil {
			continue
		}
		for _, f := range result.FilesModified {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	return files
}

func firstFailureReason(subtasks []models.SubtaskDefinition) string {
	for i := range subtasks {
		if subtasks[i].Status == models.SubtaskFailed {
			return fmt.Sprintf("subtask %s failed: %s", subtasks[i].SubtaskID, subtasks[i].FailureReason)
		}
	}
	return "subtask execution failed"
}

func dependencyMap(subtasks []models.SubtaskDefinition) map[string][]string {
	deps := make(map[string][]string, len(subtasks))
	for i := range subtasks {
		deps[subtasks[i].SubtaskID] = subtasks[i].Dependencies
	}
	return deps
}

func totalIterations(run *chunkRun) int {
	total := 0
	for i := range run.chunked.Subtasks {
		total += run.chunked.Subtasks[i].Iterations
	}
	return total
}

// analysisDetail is the CHUNKING_ANALYSIS progress payload.
func analysisDetail(plan *models.ExecutionPlan, mode models.ExecutionMode) map[string]any {
	detail := map[string]any{
		"strategy":       string(plan.ExecutionStrategy),
		"execution_mode": string(mode),
		"size_category":  string(plan.SizeEstimation.SizeCategory),
	}
	if deps := plan.DependencyAnalysis; deps != nil {
		detail["dependency_edges"] = len(deps.Edges)
		detail["parallel_groups"] = len(deps.ParallelGroups)
		detail["has_cycles"] = deps.HasCycles
	}
	return detail
}

// chunkingPlanData is the CHUNKING_PLAN trace line.
func chunkingPlanData(plan *models.ExecutionPlan, chunked *models.ChunkedTask) map[string]any {
	subs := make([]map[string]any, len(chunked.Subtasks))
	for i := range chunked.Subtasks {
		sub := &chunked.Subtasks[i]
		subs[i] = map[string]any{
			"subtask_id":      sub.SubtaskID,
			"prompt":          sub.Prompt,
			"execution_order": sub.ExecutionOrder,
			"dependencies":    sub.Dependencies,
		}
	}
	return map[string]any{
		"plan_id":        plan.PlanID,
		"execution_mode": string(chunked.ExecutionMode),
		"strategy":       string(plan.ExecutionStrategy),
		"subtasks":       subs,
	}
}
