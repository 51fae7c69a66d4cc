// Package limits enforces per-task resource budgets (file operations, test
// executions, wall-clock time) and the global subagent ceiling. Checks are
// fail-closed: exceeding a budget, or checking a task that never registered
// one, denies the operation with E206.
package limits

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/errcode"
)

// Overrides narrows or widens a task's budgets at registration. Zero fields
// fall back to the configured defaults; non-zero values are clamped into the
// allowed ranges rather than rejected.
type Overrides struct {
	MaxFiles   int `json:"max_files,omitempty"`
	MaxTests   int `json:"max_tests,omitempty"`
	MaxSeconds int `json:"max_seconds,omitempty"`
}

// Usage is a point-in-time snapshot of one task's budget consumption.
type Usage struct {
	TaskID     string        `json:"task_id"`
	MaxFiles   int           `json:"max_files"`
	FilesUsed  int           `json:"files_used"`
	MaxTests   int           `json:"max_tests"`
	TestsUsed  int           `json:"tests_used"`
	MaxSeconds int           `json:"max_seconds"`
	Elapsed    time.Duration `json:"elapsed"`
}

// budget is the mutable per-task state. Guarded by Manager.mu.
type budget struct {
	maxFiles   int
	maxTests   int
	maxSeconds int
	filesUsed  int
	testsUsed  int
	startedAt  time.Time
}

// Manager tracks registered task budgets and the shared subagent pool.
type Manager struct {
	mu        sync.Mutex
	defaults  config.LimitsConfig
	budgets   map[string]*budget
	subagents int

	now func() time.Time
}

// NewManager creates a limit manager seeded with the configured defaults.
func NewManager(defaults *config.LimitsConfig) *Manager {
	d := config.DefaultLimitsConfig()
	if defaults != nil {
		d = defaults
	}
	return &Manager{
		defaults: *d,
		budgets:  make(map[string]*budget),
		now:      time.Now,
	}
}

// Register opens a budget for taskID, applying overrides clamped into the
// allowed ranges. Re-registering resets counters and the time budget, which
// is what a re-claimed task after recovery needs.
func (m *Manager) Register(taskID string, o *Overrides) Usage {
	b := &budget{
		maxFiles:   m.defaults.MaxFiles,
		maxTests:   m.defaults.MaxTests,
		maxSeconds: m.defaults.MaxSeconds,
		startedAt:  m.now(),
	}
	if o != nil {
		if o.MaxFiles != 0 {
			b.maxFiles = clamp(o.MaxFiles, config.MinMaxFiles, config.MaxMaxFiles)
		}
		if o.MaxTests != 0 {
			b.maxTests = clamp(o.MaxTests, config.MinMaxTests, config.MaxMaxTests)
		}
		if o.MaxSeconds != 0 {
			b.maxSeconds = clamp(o.MaxSeconds, config.MinMaxSeconds, config.MaxMaxSeconds)
		}
	}

	m.mu.Lock()
	m.budgets[taskID] = b
	u := m.usageLocked(taskID, b)
	m.mu.Unlock()

	slog.Debug("Task budget registered",
		"task_id", taskID,
		"max_files", b.maxFiles,
		"max_tests", b.maxTests,
		"max_seconds", b.maxSeconds)

	return u
}

// Unregister drops taskID's budget. Unknown ids are a no-op so finalization
// paths can call it unconditionally.
func (m *Manager) Unregister(taskID string) {
	m.mu.Lock()
	delete(m.budgets, taskID)
	m.mu.Unlock()
}

// CheckFileOp consumes one file-operation slot from taskID's budget. The
// slot is only consumed when the operation is allowed; a denied operation
// leaves the counter untouched.
func (m *Manager) CheckFileOp(taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.budgets[taskID]
	if !ok {
		return noBudgetError(taskID)
	}
	if b.filesUsed >= b.maxFiles {
		return errcode.Newf(errcode.CodeResourceLimit,
			"file operation limit reached (%d/%d)", b.filesUsed, b.maxFiles).
			WithDetail("task_id", taskID).
			WithDetail("limit", "file_operations").
			WithDetail("max", b.maxFiles)
	}
	b.filesUsed++
	return nil
}

// CheckTestExec consumes one test-execution slot from taskID's budget.
func (m *Manager) CheckTestExec(taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.budgets[taskID]
	if !ok {
		return noBudgetError(taskID)
	}
	if b.testsUsed >= b.maxTests {
		return errcode.Newf(errcode.CodeResourceLimit,
			"test execution limit reached (%d/%d)", b.testsUsed, b.maxTests).
			WithDetail("task_id", taskID).
			WithDetail("limit", "test_executions").
			WithDetail("max", b.maxTests)
	}
	b.testsUsed++
	return nil
}

// CheckTimeBudget compares taskID's elapsed wall-clock time against its
// max_seconds budget. The pipeline consults this at every yield point.
func (m *Manager) CheckTimeBudget(taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.budgets[taskID]
	if !ok {
		return noBudgetError(taskID)
	}
	elapsed := m.now().Sub(b.startedAt)
	limit := time.Duration(b.maxSeconds) * time.Second
	if elapsed > limit {
		return errcode.Newf(errcode.CodeResourceLimit,
			"time budget exhausted (%s elapsed, %s allowed)",
			elapsed.Round(time.Second), limit).
			WithDetail("task_id", taskID).
			WithDetail("limit", "time_budget").
			WithDetail("max_seconds", b.maxSeconds)
	}
	return nil
}

// SuggestChunkSize returns how many of totalFiles the task can still touch:
// its remaining file capacity, clamped to the requested total. Unknown tasks
// get zero, consistent with fail-closed checks.
func (m *Manager) SuggestChunkSize(taskID string, totalFiles int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.budgets[taskID]
	if !ok || totalFiles <= 0 {
		return 0
	}
	remaining := b.maxFiles - b.filesUsed
	if remaining <= 0 {
		return 0
	}
	if remaining > totalFiles {
		return totalFiles
	}
	return remaining
}

// ReserveSubagents takes n slots from the global subagent pool, failing with
// E206 when the reservation would exceed the ceiling.
func (m *Manager) ReserveSubagents(n int) error {
	if n <= 0 {
		return errcode.Newf(errcode.CodeResourceLimit, "invalid subagent reservation %d", n)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.subagents+n > config.SubagentCeiling {
		return errcode.Newf(errcode.CodeResourceLimit,
			"subagent ceiling (%d) would be exceeded: %d in use, %d requested",
			config.SubagentCeiling, m.subagents, n).
			WithDetail("limit", "subagents").
			WithDetail("in_use", m.subagents).
			WithDetail("requested", n)
	}
	m.subagents += n
	return nil
}

// ReleaseSubagents returns n slots to the pool. Releasing more than was
// reserved clamps to zero and logs; it indicates a caller bug but must not
// poison the pool for other tasks.
func (m *Manager) ReleaseSubagents(n int) {
	if n <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if n > m.subagents {
		slog.Warn("Subagent over-release clamped",
			"released", n, "in_use", m.subagents)
		m.subagents = 0
		return
	}
	m.subagents -= n
}

// SubagentsInUse reports the current subagent reservation count.
func (m *Manager) SubagentsInUse() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subagents
}

// Snapshot returns taskID's current usage, or false when no budget is
// registered.
func (m *Manager) Snapshot(taskID string) (Usage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.budgets[taskID]
	if !ok {
		return Usage{}, false
	}
	return m.usageLocked(taskID, b), true
}

func (m *Manager) usageLocked(taskID string, b *budget) Usage {
	return Usage{
		TaskID:     taskID,
		MaxFiles:   b.maxFiles,
		FilesUsed:  b.filesUsed,
		MaxTests:   b.maxTests,
		TestsUsed:  b.testsUsed,
		MaxSeconds: b.maxSeconds,
		Elapsed:    m.now().Sub(b.startedAt),
	}
}

func noBudgetError(taskID string) error {
	return errcode.Newf(errcode.CodeResourceLimit,
		"no budget registered for task %s", taskID).
		WithDetail("task_id", taskID)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
