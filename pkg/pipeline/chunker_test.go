package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/executor"
	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routedExecutor answers by prompt content so concurrent subtasks each get
// their own scripted result.
type routedExecutor struct {
	mu     sync.Mutex
	calls  []executor.ExecuteInput
	routes []route
}

type route struct {
	match  string
	result *models.TaskResult
}

func (r *routedExecutor) Execute(_ context.Context, in executor.ExecuteInput) (*models.TaskResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, in)
	for _, rt := range r.routes {
		if strings.Contains(in.Prompt, rt.match) {
			return rt.result, nil
		}
	}
	return nil, fmt.Errorf("no route for prompt %q", in.Prompt)
}

func (r *routedExecutor) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *routedExecutor) allCalls() []executor.ExecuteInput {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]executor.ExecuteInput(nil), r.calls...)
}

func (p *capturingPublisher) chunkingEvents() []events.ChunkingPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.ChunkingPayload(nil), p.chunking...)
}

// stepDetailFor returns the detail of the first progress payload matching
// both step and subtask.
func (p *capturingPublisher) stepDetailFor(step, subtaskID string) (map[string]any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pl := range p.progress {
		if pl.Step == step && pl.SubtaskID == subtaskID {
			return pl.Detail, true
		}
	}
	return nil, false
}

func countSteps(steps []string, step string) int {
	n := 0
	for _, s := range steps {
		if s == step {
			n++
		}
	}
	return n
}

func TestPipeline_ChunksNumberedListInParallel(t *testing.T) {
	exec := &routedExecutor{}
	f := newFixture(t, exec)
	for _, name := range []string{"schema.sql", "shared.go", "api.go", "ui.go", "api_test.go"} {
		writeWorkFile(t, f.workDir, name, "content\n")
	}
	exec.routes = []route{
		{match: "Build DB schema", result: verifiedResult(f.workDir, "Built the schema.", "schema.sql", "shared.go")},
		{match: "Build API", result: verifiedResult(f.workDir, "Built the API.", "api.go", "shared.go")},
		{match: "Build UI", result: verifiedResult(f.workDir, "Built the UI.", "ui.go")},
		{match: "Add tests", result: verifiedResult(f.workDir, "Added tests.", "api_test.go")},
	}

	task := newTask("task-par", "1. Build DB schema 2. Build API 3. Build UI 4. Add tests", queuetask.TaskTypeImplementation)
	res := f.pipeline.Execute(context.Background(), task)

	require.NotNil(t, res)
	assert.Equal(t, models.TaskStatusComplete, res.Status)
	assert.True(t, strings.HasPrefix(res.Output,
		"4/4 subtasks complete; files modified: schema.sql, shared.go, api.go, ui.go, api_test.go"),
		"output was: %s", res.Output)
	for i := 1; i <= 4; i++ {
		assert.Contains(t, res.Output, fmt.Sprintf("[%s-sub-%d]", task.ID, i))
	}

	require.Equal(t, 4, exec.callCount())
	seen := make(map[string]bool)
	for _, c := range exec.allCalls() {
		seen[c.ID] = true
		assert.True(t, strings.HasPrefix(c.ID, task.ID+"-sub-"), "unexpected executor id %s", c.ID)
		assert.Equal(t, f.workDir, c.WorkingDir)
	}
	assert.Len(t, seen, 4)

	chunks := f.pub.chunkingEvents()
	require.Len(t, chunks, 1)
	assert.Equal(t, 4, chunks[0].SubtaskCount)
	assert.Equal(t, models.ExecutionModeParallel, chunks[0].ExecutionMode)
	assert.Equal(t, models.StrategyParallel, chunks[0].Strategy)
	assert.Equal(t, "pipelines", chunks[0].Namespace)

	steps := f.pub.steps()
	require.NotEmpty(t, steps)
	assert.Equal(t, events.StepChunkingStart, steps[0])
	assert.Equal(t, events.StepChunkingAnalysis, steps[1])
	assert.Equal(t, 4, countSteps(steps, events.StepSubtaskCreated))
	assert.Equal(t, 4, countSteps(steps, events.StepSubtaskComplete))
	assert.Equal(t, 1, countSteps(steps, events.StepChunkingAggregation))
	assert.Equal(t, events.StepChunkingComplete, steps[len(steps)-1])

	taskEvents := f.appender.all()
	require.Len(t, taskEvents, 1)
	assert.Equal(t, events.EventTypeChunking, taskEvents[0].Type)
	assert.Equal(t, "decomposed into 4 subtasks (parallel)", taskEvents[0].Message)

	entries := readTrace(t, f.cfg, task.ID)
	assert.Equal(t, 1, countTrace(entries, models.TraceChunkingPlan))
	assert.Equal(t, 4, countTrace(entries, models.TraceLLMRequest))
	assert.Equal(t, models.TraceUserRequest, entries[0].Event)
	assert.Equal(t, models.TraceFinalSummary, entries[len(entries)-1].Event)
	for _, e := range entries {
		if e.Event == models.TraceChunkingPlan {
			subs, ok := e.Data["subtasks"].([]any)
			require.True(t, ok, "chunking plan entry missing subtasks")
			assert.Len(t, subs, 4)
		}
	}

	report := readEvidenceReport(t, f.cfg, task.SessionID)
	assert.Equal(t, models.ResultStatusComplete, report.Verdict)
	assert.Equal(t, 4, report.TotalItems)
	assert.Empty(t, report.Operations.Missing)

	assert.Zero(t, f.pipeline.locks.ExecutorSlotsInUse())
	assert.Zero(t, f.pipeline.limits.SubagentsInUse())
}

func TestPipeline_SequentialChainRunsInOrder(t *testing.T) {
	exec := &routedExecutor{}
	f := newFixture(t, exec)
	writeWorkFile(t, f.workDir, "db.go", "package db\n")
	writeWorkFile(t, f.workDir, "api.go", "package api\n")
	writeWorkFile(t, f.workDir, "web.go", "package web\n")
	exec.routes = []route{
		{match: "set up the database", result: verifiedResult(f.workDir, "Database ready.", "db.go")},
		{match: "create the API", result: verifiedResult(f.workDir, "API ready.", "api.go")},
		{match: "build the frontend", result: verifiedResult(f.workDir, "Frontend ready.", "web.go")},
	}

	task := newTask("task-seq",
		"First set up the database, then create the API that uses it, after that build the frontend",
		queuetask.TaskTypeImplementation)
	res := f.pipeline.Execute(context.Background(), task)

	require.NotNil(t, res)
	assert.Equal(t, models.TaskStatusComplete, res.Status)
	assert.True(t, strings.HasPrefix(res.Output, "3/3 subtasks complete"), "output was: %s", res.Output)

	calls := exec.allCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, task.ID+"-sub-1", calls[0].ID)
	assert.Equal(t, task.ID+"-sub-2", calls[1].ID)
	assert.Equal(t, task.ID+"-sub-3", calls[2].ID)

	chunks := f.pub.chunkingEvents()
	require.Len(t, chunks, 1)
	assert.Equal(t, models.ExecutionModeSequential, chunks[0].ExecutionMode)
	assert.Equal(t, models.StrategySequential, chunks[0].Strategy)

	detail, ok := f.pub.stepDetailFor(events.StepSubtaskCreated, task.ID+"-sub-2")
	require.True(t, ok)
	assert.Equal(t, []string{task.ID + "-sub-1"}, detail["dependencies"])

	assert.Equal(t,
		[]models.SubtaskStatus{models.SubtaskPending, models.SubtaskRunning, models.SubtaskComplete},
		f.pub.subtaskTimeline(task.ID+"-sub-2"))
}

func TestPipeline_FailFastStopsChain(t *testing.T) {
	exec := &routedExecutor{}
	f := newFixture(t, exec, func(cfg *config.Config) {
		cfg.Planner.FailFast = true
	})
	writeWorkFile(t, f.workDir, "db.go", "package db\n")
	exec.routes = []route{
		{match: "set up the database", result: verifiedResult(f.workDir, "Started.\nTODO: wire the pool", "db.go")},
	}

	task := newTask("task-ff",
		"First set up the database, then create the API that uses it, after that build the frontend",
		queuetask.TaskTypeImplementation)
	res := f.pipeline.Execute(context.Background(), task)

	require.NotNil(t, res)
	assert.Equal(t, models.TaskStatusError, res.Status)
	assert.Equal(t,
		fmt.Sprintf("subtask %s-sub-1 failed: max_iterations reached", task.ID),
		res.ErrorMessage)
	assert.Contains(t, res.Output, "0/3 subtasks complete")
	assert.Contains(t, res.Output, fmt.Sprintf("[%s-sub-2] not started", task.ID))
	assert.Contains(t, res.Output, fmt.Sprintf("[%s-sub-3] not started", task.ID))

	require.Equal(t, f.cfg.Review.MaxIterations, exec.callCount())
	for _, c := range exec.allCalls() {
		assert.Equal(t, task.ID+"-sub-1", c.ID)
		assert.Contains(t, c.Prompt, "set up the database")
	}

	// Downstream subtasks never left PENDING.
	assert.Equal(t, []models.SubtaskStatus{models.SubtaskPending}, f.pub.subtaskTimeline(task.ID+"-sub-2"))
	assert.Equal(t, []models.SubtaskStatus{models.SubtaskPending}, f.pub.subtaskTimeline(task.ID+"-sub-3"))

	assert.True(t, hasEscalationLog(rawLogNames(t, f.cfg, task.SessionID), task.ID))
}

func TestPipeline_DependencyGateSkipsDownstream(t *testing.T) {
	exec := &routedExecutor{}
	f := newFixture(t, exec)
	writeWorkFile(t, f.workDir, "db.go", "package db\n")
	exec.routes = []route{
		{match: "set up the database", result: verifiedResult(f.workDir, "Started.\nTODO: wire the pool", "db.go")},
	}

	task := newTask("task-deps",
		"First set up the database, then create the API that uses it, after that build the frontend",
		queuetask.TaskTypeImplementation)
	res := f.pipeline.Execute(context.Background(), task)

	require.NotNil(t, res)
	assert.Equal(t, models.TaskStatusError, res.Status)
	assert.Equal(t,
		fmt.Sprintf("subtask %s-sub-1 failed: max_iterations reached", task.ID),
		res.ErrorMessage)
	assert.Contains(t, res.Output, fmt.Sprintf("[%s-sub-2] FAILED: Dependencies not satisfied", task.ID))
	assert.Contains(t, res.Output, fmt.Sprintf("[%s-sub-3] FAILED: Dependencies not satisfied", task.ID))

	// Only the first subtask ever reached the executor.
	require.Equal(t, f.cfg.Review.MaxIterations, exec.callCount())

	steps := f.pub.steps()
	assert.Equal(t, 3, countSteps(steps, events.StepSubtaskFailed))

	detail, ok := f.pub.stepDetail(events.StepChunkingAggregation)
	require.True(t, ok)
	assert.Equal(t, string(models.RecoveryRetryFailedOnly), detail["recovery_strategy"])
	assert.Equal(t, 0, detail["completed"])
	assert.Equal(t, 3, detail["failed"])
}

func TestPipeline_DegradedParallelRunCompletes(t *testing.T) {
	exec := &routedExecutor{}
	f := newFixture(t, exec)
	for _, name := range []string{"schema.sql", "shared.go", "api.go", "ui.go", "api_test.go"} {
		writeWorkFile(t, f.workDir, name, "content\n")
	}
	exec.routes = []route{
		{match: "Build DB schema", result: verifiedResult(f.workDir, "Built the schema.", "schema.sql", "shared.go")},
		{match: "Build API", result: verifiedResult(f.workDir, "Built the API.", "api.go", "shared.go")},
		{match: "Build UI", result: verifiedResult(f.workDir, "Partial UI.\nTODO: finish styles", "ui.go")},
		{match: "Add tests", result: verifiedResult(f.workDir, "Added tests.", "api_test.go")},
	}

	task := newTask("task-degraded", "1. Build DB schema 2. Build API 3. Build UI 4. Add tests", queuetask.TaskTypeImplementation)
	res := f.pipeline.Execute(context.Background(), task)

	require.NotNil(t, res)
	assert.Equal(t, models.TaskStatusComplete, res.Status)
	assert.True(t, strings.HasPrefix(res.Output, "3/4 subtasks complete"), "output was: %s", res.Output)
	assert.Contains(t, res.Output, fmt.Sprintf("[%s-sub-3] FAILED: max_iterations reached", task.ID))

	// Three first-try passes plus a full review loop on the failing subtask.
	assert.Equal(t, 3+f.cfg.Review.MaxIterations, exec.callCount())

	detail, ok := f.pub.stepDetail(events.StepChunkingAggregation)
	require.True(t, ok)
	assert.Equal(t, string(models.RecoveryRetryFailedOnly), detail["recovery_strategy"])

	completeDetail, ok := f.pub.stepDetail(events.StepChunkingComplete)
	require.True(t, ok)
	assert.Equal(t, string(models.ChunkComplete), completeDetail["status"])

	report := readEvidenceReport(t, f.cfg, task.SessionID)
	assert.Equal(t, models.ResultStatusIncomplete, report.Verdict)
	assert.Equal(t, []string{task.ID + "-sub-3"}, report.Operations.Missing)
}
