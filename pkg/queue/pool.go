package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// availabilityRecheckInterval is how often a degraded pool re-probes the
// executor so claims resume without a restart.
const availabilityRecheckInterval = 30 * time.Second

// PollerPool manages the pollers for one namespace, the cancellation
// registry for in-flight tasks, stale-task recovery, and executor
// availability gating.
type PollerPool struct {
	store    *Store
	pipeline TaskPipeline
	exec     AvailabilityChecker
	cfg      *config.QueueConfig
	pub      PollerPublisher
	observer Observer
	pollers  []*Poller
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Task cancel registry: task_id → cancel function
	activeTasks map[string]context.CancelFunc
	mu          sync.RWMutex
	started     bool

	// Degraded state: set while the executor is unavailable or
	// unauthenticated; pollers pause claiming until it clears.
	degraded       bool
	degradedReason string

	// Stale-task recovery state
	recovery recoveryState
}

// NewPollerPool creates a poller pool. exec, pub, and observer may be nil;
// a nil exec disables availability gating.
func NewPollerPool(store *Store, pipeline TaskPipeline, exec AvailabilityChecker, cfg *config.QueueConfig, pub PollerPublisher, observer Observer) *PollerPool {
	return &PollerPool{
		store:       store,
		pipeline:    pipeline,
		exec:        exec,
		cfg:         cfg,
		pub:         pub,
		observer:    observer,
		pollers:     make([]*Poller, 0, cfg.PollerCount),
		stopCh:      make(chan struct{}),
		activeTasks: make(map[string]context.CancelFunc),
	}
}

// Start runs the startup recovery sweep, probes the executor, and spawns
// the poller goroutines plus the background sweeps. It is safe to call
// multiple times; subsequent calls are no-ops.
func (p *PollerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Poller pool already started, ignoring duplicate Start call",
			"namespace", p.store.Namespace())
		return nil
	}
	p.started = true

	slog.Info("Starting poller pool",
		"namespace", p.store.Namespace(),
		"poller_count", p.cfg.PollerCount)

	// Requeue tasks stranded in RUNNING by a previous crash before any
	// poller claims work.
	recovered, err := p.store.RecoverStaleTasks(ctx, p.cfg.StaleTaskThreshold)
	if err != nil {
		return fmt.Errorf("startup stale-task recovery failed: %w", err)
	}
	p.recovery.record(recovered)
	if recovered > 0 {
		slog.Warn("Startup recovery requeued stale tasks", "count", recovered)
	}

	p.checkExecutor(ctx)

	count := p.cfg.PollerCount
	if count <= 0 {
		count = 1
	}
	for i := 0; i < count; i++ {
		pollerID := fmt.Sprintf("poller-%d", i+1)
		poller := NewPoller(pollerID, p.store, p.pipeline, p, p.cfg, p.pub, p.observer)
		p.pollers = append(p.pollers, poller)
		poller.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runRecoverySweep(ctx)
	}()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runAvailabilityChecks(ctx)
	}()

	slog.Info("Poller pool started")
	return nil
}

// Stop signals all pollers to stop and waits for them to finish. Pollers
// finish their in-flight tasks before exiting (graceful shutdown).
func (p *PollerPool) Stop() {
	slog.Info("Stopping poller pool gracefully")

	active := p.activeTaskIDs()
	if len(active) > 0 {
		slog.Info("Waiting for in-flight tasks to complete",
			"count", len(active),
			"task_ids", active)
	}

	for _, poller := range p.pollers {
		poller.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Poller pool stopped gracefully")
}

// RegisterTask stores a cancel function for manual cancellation.
func (p *PollerPool) RegisterTask(taskID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTasks[taskID] = cancel
}

// UnregisterTask removes the cancel function when processing ends.
func (p *PollerPool) UnregisterTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTasks, taskID)
}

// CancelTask aborts the in-flight pipeline for a task. Returns true if the
// task was running here and its context was cancelled. The status flip to
// CANCELLED is the store's job; this only interrupts the work.
func (p *PollerPool) CancelTask(taskID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeTasks[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// ClaimsPaused reports whether pollers should skip claiming, and why.
func (p *PollerPool) ClaimsPaused() (bool, string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.degraded, p.degradedReason
}

// Health returns the current health status of the pool.
func (p *PollerPool) Health(ctx context.Context) *PoolHealth {
	counts, err := p.store.CountByStatus(ctx)
	dbHealthy := err == nil
	var dbError string
	queueDepth := 0
	var byStatus map[models.TaskStatus]int
	if err != nil {
		slog.Error("Failed to query task counts for health check", "error", err)
		dbError = fmt.Sprintf("task count query failed: %v", err)
	} else {
		queueDepth = counts[models.TaskStatusQueued]
		byStatus = counts
	}

	pollerStats := make([]PollerHealth, len(p.pollers))
	activePollers := 0
	for i, poller := range p.pollers {
		stats := poller.Health()
		pollerStats[i] = stats
		if stats.Status == string(PollerStatusWorking) {
			activePollers++
		}
	}

	p.mu.RLock()
	activeTasks := len(p.activeTasks)
	degraded := p.degraded
	degradedReason := p.degradedReason
	p.mu.RUnlock()

	lastSweep, recovered := p.recovery.snapshot()

	return &PoolHealth{
		IsHealthy:         dbHealthy && len(p.pollers) > 0 && !degraded,
		DBReachable:       dbHealthy,
		DBError:           dbError,
		Namespace:         p.store.Namespace(),
		Degraded:          degraded,
		DegradedReason:    degradedReason,
		TotalPollers:      len(p.pollers),
		ActivePollers:     activePollers,
		ActiveTasks:       activeTasks,
		QueueDepth:        queueDepth,
		TasksByStatus:     byStatus,
		PollerStats:       pollerStats,
		LastRecoverySweep: lastSweep,
		TasksRecovered:    recovered,
	}
}

// runAvailabilityChecks re-probes the executor periodically so a degraded
// pool recovers on its own once the executor comes back.
func (p *PollerPool) runAvailabilityChecks(ctx context.Context) {
	if p.exec == nil {
		return
	}
	ticker := time.NewTicker(availabilityRecheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.checkExecutor(ctx)
		}
	}
}

// checkExecutor probes availability and auth, moving the pool in or out of
// the degraded state. Degradation pauses claims instead of failing tasks.
func (p *PollerPool) checkExecutor(ctx context.Context) {
	if p.exec == nil {
		return
	}
	if !p.exec.IsAvailable(ctx) {
		p.setDegraded(ctx, "executor unavailable")
		return
	}
	if auth := p.exec.CheckAuth(ctx); !auth.OK {
		reason := auth.Reason
		if reason == "" {
			reason = "executor not authenticated"
		}
		p.setDegraded(ctx, reason)
		return
	}
	p.clearDegraded()
}

func (p *PollerPool) setDegraded(ctx context.Context, reason string) {
	p.mu.Lock()
	changed := !p.degraded || p.degradedReason != reason
	p.degraded = true
	p.degradedReason = reason
	p.mu.Unlock()

	if !changed {
		return
	}
	slog.Warn("Poller pool degraded, claims paused", "reason", reason)
	if p.pub == nil {
		return
	}
	payload := events.PollerStatusPayload{
		Type:      events.EventTypePollerStatus,
		Namespace: p.store.Namespace(),
		PollerID:  "pool",
		Status:    "degraded",
		Reason:    reason,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := p.pub.PublishPollerStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish poller.status event", "error", err)
	}
}

func (p *PollerPool) clearDegraded() {
	p.mu.Lock()
	was := p.degraded
	p.degraded = false
	p.degradedReason = ""
	p.mu.Unlock()

	if was {
		slog.Info("Poller pool recovered, claims resumed")
	}
}

// activeTaskIDs returns ids of currently processing tasks (for logging).
func (p *PollerPool) activeTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeTasks))
	for id := range p.activeTasks {
		ids = append(ids, id)
	}
	return ids
}
