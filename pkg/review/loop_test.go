package review

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/executor"
	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/pm-runner/pmrunner/pkg/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedExecutor returns queued results in order, repeating the last one
// when the loop outlasts the script.
type scriptedExecutor struct {
	mu    sync.Mutex
	calls []executor.ExecuteInput
	queue []scripted
}

type scripted struct {
	result *models.TaskResult
	err    error
}

func (s *scriptedExecutor) Execute(_ context.Context, in executor.ExecuteInput) (*models.TaskResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, in)
	if len(s.queue) == 0 {
		return nil, fmt.Errorf("script exhausted after %d calls", len(s.calls))
	}
	next := s.queue[0]
	if len(s.queue) > 1 {
		s.queue = s.queue[1:]
	}
	return next.result, next.err
}

// capturingPublisher records every progress payload.
type capturingPublisher struct {
	mu       sync.Mutex
	payloads []events.TaskProgressPayload
}

func (p *capturingPublisher) PublishTaskProgress(_ context.Context, payload events.TaskProgressPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturingPublisher) steps() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.payloads))
	for i, pl := range p.payloads {
		out[i] = pl.Step
	}
	return out
}

func newTestLoop(exec Executor, pub ProgressPublisher) *Loop {
	return NewLoop(config.DefaultReviewConfig(), config.DefaultExecutorConfig(), exec, pub)
}

func runInput(dir string) RunInput {
	return RunInput{
		Namespace:  "loops",
		TaskID:     "task-1",
		TaskType:   models.TaskTypeImplementation,
		Prompt:     "Implement the parser",
		WorkingDir: dir,
	}
}

func readTraceEntries(t *testing.T, path string) []models.TraceEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []models.TraceEntry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for sc.Scan() {
		var e models.TraceEntry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, sc.Err())
	return entries
}

func countTrace(entries []models.TraceEntry, event models.TraceEvent) int {
	n := 0
	for _, e := range entries {
		if e.Event == event {
			n++
		}
	}
	return n
}

func TestLoop_PassFirstIteration(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "parser.go", "package parser\n\nfunc Parse(s string) string { return s }\n")

	exec := &scriptedExecutor{queue: []scripted{
		{result: verifiedResult(dir, "Implemented Parse.", "parser.go")},
	}}
	pub := &capturingPublisher{}
	loop := newTestLoop(exec, pub)

	outcome, err := loop.Run(context.Background(), runInput(dir))
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.Iterations)
	assert.Equal(t, models.DecisionPass, outcome.FinalVerdict.Decision)
	assert.False(t, outcome.Escalated)
	require.NotNil(t, outcome.Result)
	assert.Equal(t, []string{"parser.go"}, outcome.Result.FilesModified)

	require.Len(t, exec.calls, 1)
	assert.Equal(t, "task-1", exec.calls[0].ID)
	assert.Equal(t, "Implement the parser", exec.calls[0].Prompt)
	assert.Equal(t, dir, exec.calls[0].WorkingDir)

	assert.Equal(t, []string{
		events.StepReviewLoopStart,
		events.StepReviewIterationStart,
		events.StepQualityJudgment,
		events.StepReviewIterationEnd,
		events.StepReviewLoopEnd,
	}, pub.steps())
}

func TestLoop_RejectThenPass(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "parser.go", "package parser\n\nfunc Parse(s string) string { return s }\n")

	exec := &scriptedExecutor{queue: []scripted{
		{result: verifiedResult(dir, "Wrote the lexer half // 残り省略", "parser.go")},
		{result: verifiedResult(dir, "Implemented the full parser.", "parser.go")},
	}}
	pub := &capturingPublisher{}
	loop := newTestLoop(exec, pub)

	registry := trace.NewRegistry(t.TempDir())
	in := runInput(dir)
	in.Tracer = registry.Open(in.TaskID, "s1")

	outcome, err := loop.Run(context.Background(), in)
	require.NoError(t, err)
	registry.Close(in.TaskID)

	assert.Equal(t, 2, outcome.Iterations)
	assert.Equal(t, models.DecisionPass, outcome.FinalVerdict.Decision)
	assert.False(t, outcome.Escalated)

	// Second invocation carries the modification prompt, not the original.
	require.Len(t, exec.calls, 2)
	assert.Equal(t, "Implement the parser", exec.calls[0].Prompt)
	assert.Contains(t, exec.calls[1].Prompt, "Failed checks:")
	assert.Contains(t, exec.calls[1].Prompt, "Q3")
	assert.Contains(t, exec.calls[1].Prompt, "Original request:\nImplement the parser")

	assert.Equal(t, []string{
		events.StepReviewLoopStart,
		events.StepReviewIterationStart,
		events.StepQualityJudgment,
		events.StepRejectionDetails,
		events.StepModificationPrompt,
		events.StepReviewIterationEnd,
		events.StepReviewIterationStart,
		events.StepQualityJudgment,
		events.StepReviewIterationEnd,
		events.StepReviewLoopEnd,
	}, pub.steps())

	entries := readTraceEntries(t, in.Tracer.Path())
	assert.Equal(t, 2, countTrace(entries, models.TraceLLMRequest))
	assert.Equal(t, 2, countTrace(entries, models.TraceLLMResponse))
	assert.Equal(t, 2, countTrace(entries, models.TraceQualityJudgment))
	assert.Equal(t, 1, countTrace(entries, models.TraceRejectionDetails))
	assert.Equal(t, 2, countTrace(entries, models.TraceIterationEnd))

	// Judgments in order: REJECT then PASS.
	var decisions []string
	for _, e := range entries {
		if e.Event == models.TraceQualityJudgment {
			decisions = append(decisions, e.Data["decision"].(string))
		}
	}
	assert.Equal(t, []string{"REJECT", "PASS"}, decisions)
}

func TestLoop_MaxIterationsEscalates(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "parser.go", "package parser\n")

	exec := &scriptedExecutor{queue: []scripted{
		{result: verifiedResult(dir, "TODO: finish the parser", "parser.go")},
	}}
	pub := &capturingPublisher{}
	loop := newTestLoop(exec, pub)

	registry := trace.NewRegistry(t.TempDir())
	in := runInput(dir)
	in.Tracer = registry.Open(in.TaskID, "s1")

	outcome, err := loop.Run(context.Background(), in)
	require.NoError(t, err)
	registry.Close(in.TaskID)

	assert.Equal(t, 5, outcome.Iterations)
	assert.True(t, outcome.Escalated)
	assert.Equal(t, "max_iterations reached", outcome.EscalateHint)
	assert.Equal(t, models.DecisionReject, outcome.FinalVerdict.Decision)
	assert.Len(t, exec.calls, 5)

	// No sixth request.
	entries := readTraceEntries(t, in.Tracer.Path())
	assert.Equal(t, 5, countTrace(entries, models.TraceLLMRequest))
	assert.Equal(t, 5, countTrace(entries, models.TraceQualityJudgment))
}

func TestLoop_ConsecutiveRetriesEscalateEarly(t *testing.T) {
	exec := &scriptedExecutor{queue: []scripted{
		{result: nil, err: nil}, // no result at all: unjudgeable
	}}
	pub := &capturingPublisher{}
	loop := newTestLoop(exec, pub)

	outcome, err := loop.Run(context.Background(), runInput(t.TempDir()))
	require.NoError(t, err)

	// Bound is 2: the third consecutive unjudgeable result escalates.
	assert.Equal(t, 3, outcome.Iterations)
	assert.True(t, outcome.Escalated)
	assert.Contains(t, outcome.EscalateHint, "consecutive")
	assert.Equal(t, models.DecisionRetry, outcome.FinalVerdict.Decision)
	assert.Len(t, exec.calls, 3)
}

func TestLoop_RetrySamePromptThenPass(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "parser.go", "package parser\n")

	exec := &scriptedExecutor{queue: []scripted{
		{err: errors.New("executor transport down")},
		{result: verifiedResult(dir, "Implemented the parser.", "parser.go")},
	}}
	loop := newTestLoop(exec, nil)

	outcome, err := loop.Run(context.Background(), runInput(dir))
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Iterations)
	assert.Equal(t, models.DecisionPass, outcome.FinalVerdict.Decision)
	assert.False(t, outcome.Escalated)

	// RETRY re-invokes with the unchanged prompt.
	require.Len(t, exec.calls, 2)
	assert.Equal(t, exec.calls[0].Prompt, exec.calls[1].Prompt)
}

func TestLoop_CancelledContext(t *testing.T) {
	exec := &scriptedExecutor{}
	loop := newTestLoop(exec, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := loop.Run(ctx, runInput(t.TempDir()))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, outcome)
	assert.Empty(t, exec.calls)
}

func TestLoop_SubtaskAttribution(t *testing.T) {
	dir := t.TempDir()
	writeWorkFile(t, dir, "db.go", "package db\n")

	exec := &scriptedExecutor{queue: []scripted{
		{result: verifiedResult(dir, "Built the schema.", "db.go")},
	}}
	pub := &capturingPublisher{}
	loop := newTestLoop(exec, pub)

	registry := trace.NewRegistry(t.TempDir())
	in := runInput(dir)
	in.SubtaskID = "task-1-sub-1"
	in.Tracer = registry.Open(in.TaskID, "s1")

	outcome, err := loop.Run(context.Background(), in)
	require.NoError(t, err)
	registry.Close(in.TaskID)

	assert.Equal(t, "task-1-sub-1", outcome.SubtaskID)

	// The executor sees the subtask id; events and trace lines carry both ids.
	require.Len(t, exec.calls, 1)
	assert.Equal(t, "task-1-sub-1", exec.calls[0].ID)
	for _, payload := range pub.payloads {
		assert.Equal(t, "task-1", payload.TaskID)
		assert.Equal(t, "task-1-sub-1", payload.SubtaskID)
		assert.Equal(t, "loops", payload.Namespace)
	}
	for _, entry := range readTraceEntries(t, in.Tracer.Path()) {
		assert.Equal(t, "task-1-sub-1", entry.SubtaskID)
	}
}
