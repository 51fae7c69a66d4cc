// Package trace writes per-task conversation traces for the orchestration
// pipeline.
//
// Each task gets one JSONL file under the namespace state directory. Lines
// capture the full conversation: the user request, system rules, chunking
// plans, every LLM request/response pair, quality judgments, rejection
// details, and the final summary. The trace is the raw substrate for
// escalation reports and session integrity checks.
//
// Design constraints:
//   - All Tracer methods are nil-safe (no-op on nil receiver) so pipeline
//     stages don't need nil checks before every log call.
//   - Registry is the sole owner of JSONL persistence; stages never open
//     files themselves.
//   - The pipeline opens a tracer via Registry.Open at claim time and closes
//     it at finalization; FINAL_SUMMARY is an ordinary log call, Close writes
//     nothing extra.
package trace

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pm-runner/pmrunner/pkg/models"
)

// Tracer is a handle for writing trace lines for one task.
//
// Expectations:
//   - All methods are nil-safe (no-op when called on nil *Tracer)
//   - Concurrent writes are safe (mutex-protected)
//   - Every line carries the task's session_id and task_id
type Tracer struct {
	taskID    string
	sessionID string
	path      string
	masker    Masker
	mu        sync.Mutex
	f         *os.File
}

// Masker scrubs credential-shaped strings from trace line data before it is
// written. Implemented by *masking.Service; nil passes data through.
type Masker interface {
	MaskMap(data map[string]any) map[string]any
}

// Registry maps task IDs to open Tracers.
// It is the sole authority for creating and closing trace files.
//
// Expectations:
//   - Open creates the trace directory if absent
//   - Open returns the existing tracer without re-opening when called twice
//     for the same taskID
//   - Get returns nil for unknown task IDs, and nil is safe to log against
//   - Close flushes and evicts; a later Open for the same task starts a new
//     file with a fresh timestamp
type Registry struct {
	dir     string
	masker  Masker
	mu      sync.Mutex
	tracers map[string]*Tracer
}

// NewRegistry creates a Registry that writes one JSONL file per task
// under dir.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:     dir,
		tracers: make(map[string]*Tracer),
	}
}

// SetMasker installs the secret masker applied to the data of every trace
// line written by tracers opened after the call.
func (r *Registry) SetMasker(m Masker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.masker = m
}

// Open creates a trace file for taskID and registers the tracer. If a tracer
// for taskID is already open (a review loop re-entry), the existing one is
// returned. Returns nil when the file cannot be created; nil tracers swallow
// log calls so the pipeline keeps running without a trace.
func (r *Registry) Open(taskID, sessionID string) *Tracer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tracers[taskID]; ok {
		return t
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		slog.Error("Could not create trace directory", "dir", r.dir, "error", err)
		return nil
	}
	name := fmt.Sprintf("conversation-%s-%s.jsonl", taskID, time.Now().UTC().Format("20060102T150405Z"))
	path := filepath.Join(r.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("Could not open trace file", "path", path, "error", err)
		return nil
	}

	t := &Tracer{taskID: taskID, sessionID: sessionID, path: path, masker: r.masker, f: f}
	r.tracers[taskID] = t
	return t
}

// Get returns the tracer for taskID, or nil if not found.
func (r *Registry) Get(taskID string) *Tracer {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracers[taskID]
}

// Close flushes and closes taskID's trace file and removes it from the
// registry. Safe to call on a nil *Registry or an unknown taskID.
func (r *Registry) Close(taskID string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	t, ok := r.tracers[taskID]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.tracers, taskID)
	r.mu.Unlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.f != nil {
		_ = t.f.Close()
		t.f = nil
	}
}

// Path returns the trace file path. Escalation reports embed this so a human
// can replay the conversation.
func (t *Tracer) Path() string {
	if t == nil {
		return ""
	}
	return t.path
}

// Log appends one line with no iteration or subtask position. Used for
// task-level lines: USER_REQUEST, SYSTEM_RULES, CHUNKING_PLAN, FINAL_SUMMARY.
func (t *Tracer) Log(event models.TraceEvent, data map[string]any) {
	t.write(event, nil, "", data)
}

// LogIteration appends one line positioned inside a review iteration.
// Iterations are 0-indexed.
func (t *Tracer) LogIteration(event models.TraceEvent, iteration int, data map[string]any) {
	t.write(event, &iteration, "", data)
}

// LogSubtask appends one line attributed to a subtask. iteration is the
// 0-indexed review iteration within that subtask; pass a negative value for
// lines not tied to an iteration.
func (t *Tracer) LogSubtask(event models.TraceEvent, subtaskID string, iteration int, data map[string]any) {
	var iter *int
	if iteration >= 0 {
		iter = &iteration
	}
	t.write(event, iter, subtaskID, data)
}

// write appends one JSON line, stamping timestamp and identity. Unknown
// event kinds are dropped with a log so the file never contains lines that
// verification would reject.
func (t *Tracer) write(event models.TraceEvent, iteration *int, subtaskID string, data map[string]any) {
	if t == nil {
		return
	}
	if !event.IsValid() {
		slog.Error("Dropping trace line with unknown event", "event", string(event), "task_id", t.taskID)
		return
	}

	if t.masker != nil {
		data = t.masker.MaskMap(data)
	}

	entry := models.TraceEntry{
		Timestamp:      time.Now().UTC(),
		Event:          event,
		SessionID:      t.sessionID,
		TaskID:         t.taskID,
		IterationIndex: iteration,
		SubtaskID:      subtaskID,
		Data:           data,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		slog.Error("Could not marshal trace line", "task_id", t.taskID, "error", err)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.f == nil {
		return
	}
	if _, err := fmt.Fprintf(t.f, "%s\n", line); err != nil {
		slog.Error("Could not write trace line", "path", t.path, "error", err)
	}
}
