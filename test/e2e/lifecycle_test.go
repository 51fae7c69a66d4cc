package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/models"
)

func TestE2E_CancelAbortsInFlightTask(t *testing.T) {
	app := NewTestApp(t)
	app.Executor.Script("Refactor the billing module", Step{Output: "never returned"})
	app.Executor.Block()

	taskID := app.SubmitTask(t, map[string]any{"prompt": "Refactor the billing module"})

	// Wait for a poller to claim and park inside the executor.
	app.AwaitStatus(t, taskID, "RUNNING")
	awaitCondition(t, 5*time.Second, 10*time.Millisecond, "executor never invoked", func() bool {
		return app.Executor.CallCount() > 0
	})

	resp := app.CancelTask(t, taskID)
	assert.Equal(t, "CANCELLED", resp["status"])

	task := app.AwaitStatus(t, taskID, "CANCELLED")
	assert.Equal(t, "CANCELLED", task["status"])

	// The parked call was the only one; cancellation did not re-invoke.
	assert.Equal(t, 1, app.Executor.CallCount())
}

func TestE2E_ClarificationRoundTrip(t *testing.T) {
	app := NewTestApp(t, WithConfig(func(cfg *config.Config) {
		cfg.Review.MaxIterations = 2
	}))
	app.Executor.Script("Summarize the auth flow",
		Step{Output: "Partial notes on the login path.", Status: models.ResultStatusIncomplete},
		Step{Output: "Partial notes on the login path.", Status: models.ResultStatusIncomplete},
		Step{
			Output: "Full summary written.",
			Files:  map[string]string{"auth_summary.md": "# Auth flow\n"},
		},
	)

	taskID := app.SubmitTask(t, map[string]any{
		"prompt":    "Summarize the auth flow",
		"task_type": "READ_INFO",
	})

	// The partial read-only result surfaces as a question, not an error.
	task := app.AwaitStatus(t, taskID, "AWAITING_RESPONSE")
	clarification, ok := task["clarification"].(map[string]any)
	require.True(t, ok, "awaiting task carries no clarification: %v", task)
	assert.NotEmpty(t, clarification["question"])
	assert.Contains(t, task["output"], "Partial notes")

	resp := app.ReplyTask(t, taskID, "Focus on the OAuth path")
	assert.Equal(t, "QUEUED", resp["status"])

	task = app.AwaitStatus(t, taskID, "COMPLETE")
	assert.Equal(t, "Full summary written.", task["output"])

	calls := app.Executor.Calls()
	require.Len(t, calls, 3)
	last := calls[2]
	assert.Contains(t, last.Prompt, "Summarize the auth flow")
	assert.Contains(t, last.Prompt, "User response: Focus on the OAuth path")
}

func TestE2E_TaskGroupsAndListing(t *testing.T) {
	app := NewTestApp(t)
	app.Executor.Script("Rename the config key", Step{
		Output: "Renamed.",
		Files:  map[string]string{"config.yaml": "key: new\n"},
	})
	app.Executor.Script("Bump the dependency", Step{
		Output: "Bumped.",
		Files:  map[string]string{"go.mod": "module demo\n"},
	})

	first := app.SubmitTask(t, map[string]any{
		"task_group_id": "release-42",
		"prompt":        "Rename the config key",
	})
	second := app.SubmitTask(t, map[string]any{
		"task_group_id": "release-42",
		"prompt":        "Bump the dependency",
	})
	app.AwaitStatus(t, first, "COMPLETE")
	app.AwaitStatus(t, second, "COMPLETE")

	listed := app.getJSON(t, "/api/tasks?task_group=release-42", 200)
	assert.EqualValues(t, 2, listed["count"])

	byStatus := app.getJSON(t, "/api/tasks?status=complete", 200)
	assert.EqualValues(t, 2, byStatus["count"])

	groups := app.getJSON(t, "/api/task-groups", 200)
	taskGroups, ok := groups["task_groups"].([]any)
	require.True(t, ok)
	found := false
	for _, g := range taskGroups {
		group := g.(map[string]any)
		if group["task_group_id"] == "release-42" {
			found = true
			assert.EqualValues(t, 2, group["task_count"])
		}
	}
	assert.True(t, found, "group release-42 missing from %v", taskGroups)
}

func TestE2E_HealthSurfaces(t *testing.T) {
	app := NewTestApp(t)

	health := app.getJSON(t, "/api/health", 200)
	assert.Equal(t, "healthy", health["status"])
	checks, ok := health["checks"].(map[string]any)
	require.True(t, ok)
	db := checks["database"].(map[string]any)
	assert.Equal(t, "healthy", db["status"])

	ns := app.getJSON(t, "/api/namespace", 200)
	assert.Equal(t, "e2e", ns["namespace"])
	assert.Equal(t, app.Config.StateDir, ns["state_dir"])

	qh := app.getJSON(t, "/api/queue/health", 200)
	assert.Equal(t, "healthy", qh["status"])
	pool, ok := qh["pool"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, pool["is_healthy"])
}

func TestE2E_ManyTasksAcrossPollers(t *testing.T) {
	app := NewTestApp(t, WithPollerCount(3))
	app.Executor.Script("touch file", Step{
		Output: "Touched.",
		Files:  map[string]string{"touched.txt": "ok\n"},
	})

	ids := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		ids = append(ids, app.SubmitTask(t, map[string]any{"prompt": "touch file"}))
	}
	for _, id := range ids {
		app.AwaitStatus(t, id, "COMPLETE")
	}

	// Every enqueued task ran exactly once: no double claims.
	assert.Equal(t, 6, app.Executor.CallCount())
}
