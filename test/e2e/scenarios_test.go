package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/evidence"
	"github.com/pm-runner/pmrunner/pkg/models"
)

func TestE2E_SingleTaskHappyPath(t *testing.T) {
	app := NewTestApp(t)
	app.Executor.Script("Fix typo in README", Step{
		Output: "Fixed the typo.",
		Files:  map[string]string{"README.md": "# pm-runner\n"},
	})

	taskID := app.SubmitTask(t, map[string]any{
		"session_id":    "s1",
		"task_group_id": "g1",
		"prompt":        "Fix typo in README",
	})

	task := app.AwaitStatus(t, taskID, "COMPLETE")
	assert.Equal(t, "Fixed the typo.", task["output"])
	assert.Equal(t, "s1", task["session_id"])
	assert.Equal(t, "g1", task["task_group_id"])

	// One iteration: exactly one request/response pair, a passing
	// judgment, and the closing summary last.
	entries := app.ReadTrace(t, taskID)
	assert.Equal(t, 1, CountTrace(entries, models.TraceLLMRequest))
	assert.Equal(t, 1, CountTrace(entries, models.TraceLLMResponse))
	assert.Equal(t, 1, CountTrace(entries, models.TraceQualityJudgment))
	assert.Equal(t, 1, CountTrace(entries, models.TraceFinalSummary))
	assert.Equal(t, models.TraceFinalSummary, entries[len(entries)-1].Event)

	// The session was finalized with evidence for the operation, and the
	// index hash holds up.
	report := app.ReadEvidenceReport(t, "s1")
	assert.Equal(t, models.ResultStatusComplete, report.Verdict)
	assert.Equal(t, 1, report.TotalItems)
	require.NoError(t, evidence.NewStore(app.Config.EvidenceDir()).VerifySessionIntegrity("s1"))
}

func TestE2E_RejectedWorkIsRepromptedThenPasses(t *testing.T) {
	app := NewTestApp(t)
	app.Executor.Script("Implement feature X",
		Step{Output: "partial work\n// 残り省略"},
		Step{
			Output: "Implemented feature X end to end.",
			Files:  map[string]string{"feature_x.go": "package feature\n"},
		},
	)

	taskID := app.SubmitTask(t, map[string]any{"prompt": "Implement feature X"})
	task := app.AwaitStatus(t, taskID, "COMPLETE")
	assert.Equal(t, "Implemented feature X end to end.", task["output"])

	require.Equal(t, 2, app.Executor.CallCount())
	second := app.Executor.Calls()[1]
	assert.Contains(t, second.Prompt, "failed quality review")
	assert.Contains(t, second.Prompt, "Implement feature X")

	entries := app.ReadTrace(t, taskID)
	assert.Equal(t, 2, CountTrace(entries, models.TraceQualityJudgment))
	assert.Equal(t, 1, CountTrace(entries, models.TraceRejectionDetails))
}

func TestE2E_ExhaustedReviewEscalatesToError(t *testing.T) {
	app := NewTestApp(t)
	// Every iteration fails the omission gate; the last step repeats.
	app.Executor.Script("Refactor the parser", Step{Output: "half done\n// 残り省略"})

	taskID := app.SubmitTask(t, map[string]any{
		"session_id": "s-esc",
		"prompt":     "Refactor the parser",
	})

	task := app.AwaitStatus(t, taskID, "ERROR")
	assert.Contains(t, task["error_message"], "max_iterations reached")
	assert.Equal(t, app.Config.Review.MaxIterations, app.Executor.CallCount())

	entries := app.ReadTrace(t, taskID)
	assert.Equal(t, app.Config.Review.MaxIterations, CountTrace(entries, models.TraceLLMRequest))

	// The escalation report landed next to the session's raw evidence.
	names := app.RawLogNames(t, "s-esc")
	found := false
	for _, n := range names {
		if strings.HasPrefix(n, taskID+"-escalation") {
			found = true
		}
	}
	assert.True(t, found, "expected an escalation report in %v", names)
}

func TestE2E_NumberedListFansOutInParallel(t *testing.T) {
	app := NewTestApp(t)
	app.Executor.Script("Build DB schema", Step{
		Output: "Built the schema.",
		Files:  map[string]string{"schema.sql": "create table t();\n", "shared.go": "package shared\n"},
	})
	app.Executor.Script("Build API", Step{
		Output: "Built the API.",
		Files:  map[string]string{"api.go": "package api\n", "shared.go": "package shared\n"},
	})
	app.Executor.Script("Build UI", Step{
		Output: "Built the UI.",
		Files:  map[string]string{"ui.go": "package ui\n"},
	})
	app.Executor.Script("Add tests", Step{
		Output: "Added tests.",
		Files:  map[string]string{"api_test.go": "package api\n"},
	})

	taskID := app.SubmitTask(t, map[string]any{
		"prompt": "1. Build DB schema 2. Build API 3. Build UI 4. Add tests",
	})
	app.AwaitStatus(t, taskID, "COMPLETE")

	// Four subtasks, each its own executor invocation.
	calls := app.Executor.Calls()
	require.Len(t, calls, 4)
	seen := map[string]bool{}
	for _, c := range calls {
		assert.Contains(t, c.ID, taskID, "subtask ids derive from the task id")
		seen[c.ID] = true
	}
	assert.Len(t, seen, 4, "each subtask runs exactly once")

	entries := app.ReadTrace(t, taskID)
	assert.Equal(t, 1, CountTrace(entries, models.TraceChunkingPlan))
	assert.Equal(t, 4, CountTrace(entries, models.TraceLLMRequest))
}

func TestE2E_SequentialChainFailsFast(t *testing.T) {
	app := NewTestApp(t, WithConfig(func(cfg *config.Config) {
		cfg.Planner.FailFast = true
	}))
	// The first link never produces acceptable work.
	app.Executor.Script("set up the database", Step{Output: "half a schema\n// 残り省略"})
	app.Executor.Script("create the API", Step{Output: "Built the API."})
	app.Executor.Script("build the frontend", Step{Output: "Built the frontend."})

	taskID := app.SubmitTask(t, map[string]any{
		"prompt": "First set up the database, then create the API that uses it, after that build the frontend",
	})
	app.AwaitStatus(t, taskID, "ERROR")

	// Downstream links never started.
	for _, c := range app.Executor.Calls() {
		assert.NotContains(t, c.Prompt, "create the API")
		assert.NotContains(t, c.Prompt, "build the frontend")
	}
}
