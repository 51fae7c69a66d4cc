package trace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pm-runner/pmrunner/pkg/models"
)

func writeTraceFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conversation-task-1-20260514T093000Z.jsonl")
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func line(event string, iteration string) string {
	l := `{"timestamp":"2026-05-14T09:30:00Z","event":"` + event + `","session_id":"s1","task_id":"t1"`
	if iteration != "" {
		l += `,"iteration_index":` + iteration
	}
	return l + `}`
}

func TestVerifyTracerOutput(t *testing.T) {
	r := NewRegistry(t.TempDir())
	tr := r.Open("task-1", "session-1")
	require.NotNil(t, tr)

	tr.Log(models.TraceUserRequest, map[string]any{"prompt": "Implement feature X"})
	tr.Log(models.TraceSystemRules, nil)
	tr.LogIteration(models.TraceLLMRequest, 0, nil)
	tr.LogIteration(models.TraceLLMResponse, 0, nil)
	tr.LogIteration(models.TraceQualityJudgment, 0, map[string]any{"verdict": "REJECT"})
	tr.LogIteration(models.TraceRejectionDetails, 0, nil)
	tr.LogIteration(models.TraceIterationEnd, 0, nil)
	tr.LogIteration(models.TraceLLMRequest, 1, nil)
	tr.LogIteration(models.TraceLLMResponse, 1, nil)
	tr.LogIteration(models.TraceQualityJudgment, 1, map[string]any{"verdict": "PASS"})
	tr.LogIteration(models.TraceIterationEnd, 1, nil)
	tr.Log(models.TraceFinalSummary, map[string]any{"status": "COMPLETE"})
	path := tr.Path()
	r.Close("task-1")

	result, err := Verify(path)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, 12, result.TotalLines)
	assert.Equal(t, 12, result.ValidLines)
	assert.Empty(t, result.InvalidLines)
	assert.Equal(t, 2, result.TotalIterations)
	assert.True(t, result.FinalSummaryLast)

	assert.Equal(t, 2, result.EventCounts[models.TraceLLMRequest])
	assert.Equal(t, 2, result.EventCounts[models.TraceLLMResponse])
	assert.Equal(t, 2, result.EventCounts[models.TraceQualityJudgment])
	assert.Equal(t, 1, result.EventCounts[models.TraceRejectionDetails])
	assert.Equal(t, 1, result.EventCounts[models.TraceFinalSummary])
}

func TestVerifyReportsInvalidLines(t *testing.T) {
	path := writeTraceFile(t,
		line("USER_REQUEST", ""),
		"this is not json",
		line("LLM_REQUEST", "0"),
		`{"timestamp":"2026-05-14T09:30:00Z","event":"WIBBLE","task_id":"t1"}`,
		`{"event":"LLM_RESPONSE","task_id":"t1"}`,
	)

	result, err := Verify(path)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, 5, result.TotalLines)
	assert.Equal(t, 2, result.ValidLines)
	// Bad JSON, unknown event kind, and a missing timestamp.
	assert.Equal(t, []int{2, 4, 5}, result.InvalidLines)
}

func TestVerifyFinalSummaryMustBeLast(t *testing.T) {
	path := writeTraceFile(t,
		line("USER_REQUEST", ""),
		line("FINAL_SUMMARY", ""),
		line("LLM_REQUEST", "0"),
	)

	result, err := Verify(path)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.False(t, result.FinalSummaryLast)
	assert.Empty(t, result.InvalidLines)
}

func TestVerifyFinalSummaryAtMostOnce(t *testing.T) {
	path := writeTraceFile(t,
		line("USER_REQUEST", ""),
		line("FINAL_SUMMARY", ""),
		line("FINAL_SUMMARY", ""),
	)

	result, err := Verify(path)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.False(t, result.FinalSummaryLast)
}

func TestVerifyNoFinalSummaryIsNotAViolation(t *testing.T) {
	path := writeTraceFile(t,
		line("USER_REQUEST", ""),
		line("LLM_REQUEST", "0"),
	)

	result, err := Verify(path)
	require.NoError(t, err)

	// An unfinished trace breaks no ordering rule; it is simply incomplete.
	assert.True(t, result.Valid)
	assert.True(t, result.FinalSummaryLast)
}

func TestVerifyIterationCountDerivesFromMaxIndex(t *testing.T) {
	path := writeTraceFile(t,
		line("LLM_REQUEST", "0"),
		line("LLM_REQUEST", "4"),
		line("LLM_REQUEST", "2"),
	)

	result, err := Verify(path)
	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalIterations)
}

func TestVerifyNoIterationsAnywhere(t *testing.T) {
	path := writeTraceFile(t,
		line("USER_REQUEST", ""),
		line("FINAL_SUMMARY", ""),
	)

	result, err := Verify(path)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalIterations)
}

func TestVerifyEmptyFileIsInvalid(t *testing.T) {
	path := writeTraceFile(t)

	result, err := Verify(path)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, 0, result.TotalLines)
	assert.True(t, result.FinalSummaryLast)
}

func TestVerifyMissingFile(t *testing.T) {
	_, err := Verify(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open trace file")
}
