package e2e

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// SubmitTask posts a task and returns the assigned task id.
func (app *TestApp) SubmitTask(t *testing.T, body map[string]any) string {
	t.Helper()
	resp := app.postJSON(t, "/api/tasks", body, http.StatusOK)
	taskID, ok := resp["task_id"].(string)
	require.True(t, ok, "POST /api/tasks returned no task_id: %v", resp)
	require.Equal(t, "QUEUED", resp["status"])
	return taskID
}

// GetTask retrieves a task by id.
func (app *TestApp) GetTask(t *testing.T, taskID string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/tasks/"+taskID, http.StatusOK)
}

// CancelTask cancels a task, expecting success.
func (app *TestApp) CancelTask(t *testing.T, taskID string) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/tasks/"+taskID+"/cancel", nil, http.StatusOK)
}

// ReplyTask answers a clarification on an AWAITING_RESPONSE task.
func (app *TestApp) ReplyTask(t *testing.T, taskID, response string) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/tasks/"+taskID+"/reply", map[string]any{"response": response}, http.StatusOK)
}

// AwaitStatus polls the task until it reaches the wanted status, then
// returns its final wire form. Hitting a different terminal status fails
// immediately with the task's error message.
func (app *TestApp) AwaitStatus(t *testing.T, taskID, want string) map[string]any {
	t.Helper()
	terminal := map[string]bool{"COMPLETE": true, "ERROR": true, "CANCELLED": true}

	deadline := time.After(15 * time.Second)
	for {
		select {
		case <-deadline:
			task := app.GetTask(t, taskID)
			t.Fatalf("task %s never reached %s, last status %v", taskID, want, task["status"])
			return nil
		default:
			task := app.GetTask(t, taskID)
			status, _ := task["status"].(string)
			if status == want {
				return task
			}
			if terminal[status] {
				t.Fatalf("task %s reached %s instead of %s (error: %v)",
					taskID, status, want, task["error_message"])
				return nil
			}
			time.Sleep(25 * time.Millisecond)
		}
	}
}

func (app *TestApp) postJSON(t *testing.T, path string, body any, expectedStatus int) map[string]any {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "POST %s: unexpected status", path)
	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]any {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// ReadTrace parses the conversation trace written for one task.
func (app *TestApp) ReadTrace(t *testing.T, taskID string) []models.TraceEntry {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(app.Config.TracesDir(), "conversation-"+taskID+"-*.jsonl"))
	require.NoError(t, err)
	require.Len(t, matches, 1, "expected one trace file for %s", taskID)

	f, err := os.Open(matches[0])
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

// CountTrace counts the entries of one event kind.
func CountTrace(entries []models.TraceEntry, event models.TraceEvent) int {
	n := 0
	for _, e := range entries {
		if e.Event == event {
			n++
		}
	}
	return n
}

// ReadEvidenceReport parses the finalized session report.
func (app *TestApp) ReadEvidenceReport(t *testing.T, sessionID string) models.EvidenceReport {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(app.Config.EvidenceDir(), sessionID, "report.json"))
	require.NoError(t, err)
	var report models.EvidenceReport
	require.NoError(t, json.Unmarshal(data, &report))
	return report
}

// RawLogNames lists the raw evidence log files of one session.
func (app *TestApp) RawLogNames(t *testing.T, sessionID string) []string {
	t.Helper()
	dirEntries, err := os.ReadDir(filepath.Join(app.Config.EvidenceDir(), sessionID, "raw_logs"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		names = append(names, e.Name())
	}
	return names
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}
