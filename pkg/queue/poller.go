package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/pm-runner/pmrunner/ent"
	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// ClarificationPrefix marks pipeline errors that are really questions for
// the user. The pipeline is the only producer of this prefix; the poller is
// the only consumer, converting matching ERROR results into
// AWAITING_RESPONSE while preserving any partial output.
const ClarificationPrefix = "AWAITING_CLARIFICATION:"

// PollerStatus is the activity state of one poller.
type PollerStatus string

const (
	// PollerStatusIdle means the poller is between tasks.
	PollerStatusIdle PollerStatus = "idle"
	// PollerStatusWorking means the poller holds an in-flight task.
	PollerStatusWorking PollerStatus = "working"
)

// PollerPublisher broadcasts poller lifecycle events.
//
// Implemented by events.Publisher; defined as an interface here to enable
// testing without a live NOTIFY channel. A nil publisher disables
// broadcasting.
type PollerPublisher interface {
	PublishPollerStatus(ctx context.Context, payload events.PollerStatusPayload) error
}

// Poller is a single long-lived claim loop. Each tick claims at most one
// task and runs it through the pipeline to a terminal status before
// claiming again, so a poller never holds more than one in-flight task.
// Concurrency beyond that happens inside the pipeline (subtask fan-out).
type Poller struct {
	id       string
	store    *Store
	pipeline TaskPipeline
	registry TaskRegistry
	cfg      *config.QueueConfig
	pub      PollerPublisher
	observer Observer

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// health tracking
	mu             sync.Mutex
	status         PollerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewPoller creates a poller. pub and observer may be nil.
func NewPoller(id string, store *Store, pipeline TaskPipeline, registry TaskRegistry, cfg *config.QueueConfig, pub PollerPublisher, observer Observer) *Poller {
	return &Poller{
		id:           id,
		store:        store,
		pipeline:     pipeline,
		registry:     registry,
		cfg:          cfg,
		pub:          pub,
		observer:     observer,
		stopCh:       make(chan struct{}),
		status:       PollerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start launches the poll loop in a goroutine.
func (p *Poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go p.run(ctx)
}

// Stop signals the loop to exit and waits for the in-flight task, if any,
// to finish.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// Health returns a snapshot of this poller's state.
func (p *Poller) Health() PollerHealth {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PollerHealth{
		ID:             p.id,
		Status:         string(p.status),
		CurrentTaskID:  p.currentTaskID,
		TasksProcessed: p.tasksProcessed,
		LastActivity:   p.lastActivity,
	}
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	slog.Info("Poller started", "poller_id", p.id, "namespace", p.store.Namespace())
	p.publishLifecycle(ctx, "started", "")
	p.notify(PollStarted, "")
	defer func() {
		slog.Info("Poller stopped", "poller_id", p.id)
		p.publishLifecycle(context.Background(), "stopped", "")
		p.notify(PollStopped, "")
	}()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		default:
			if err := p.pollOnce(ctx); err != nil {
				switch {
				case errors.Is(err, ErrNoTasksAvailable):
					p.notify(PollNoTask, "")
					p.sleep(p.pollInterval())
				case errors.Is(err, ErrAlreadyClaimed), errors.Is(err, ErrClaimsPaused):
					p.sleep(p.pollInterval())
				default:
					slog.Error("Poller tick failed", "poller_id", p.id, "error", err)
					p.notify(PollError, "")
					p.sleep(time.Second)
				}
			}
		}
	}
}

// pollOnce claims one task, runs the pipeline, and writes the terminal
// status. It returns sentinel errors for benign no-work conditions.
func (p *Poller) pollOnce(ctx context.Context) error {
	if paused, _ := p.registry.ClaimsPaused(); paused {
		return ErrClaimsPaused
	}

	task, err := p.store.Claim(ctx)
	if err != nil {
		return err
	}

	slog.Info("Task claimed",
		"poller_id", p.id,
		"task_id", task.ID,
		"task_type", task.TaskType,
		"attempt", task.Attempt)
	p.notify(PollClaimed, task.ID)
	p.setWorking(task.ID)
	defer p.setIdle()

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.registry.RegisterTask(task.ID, cancel)
	defer p.registry.UnregisterTask(task.ID)

	go p.runHeartbeat(taskCtx, task.ID)

	result := p.pipeline.Execute(taskCtx, task)
	if result == nil {
		result = synthesizeResult(taskCtx)
	}

	// Terminal write on a fresh context so finalization survives
	// pipeline-context cancellation.
	finCtx, finCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer finCancel()
	p.finalize(finCtx, task, result)

	p.mu.Lock()
	p.tasksProcessed++
	p.mu.Unlock()
	return nil
}

// finalize writes the terminal status, fail-closed: any result it cannot
// interpret becomes ERROR. An "AWAITING_CLARIFICATION:" prefix in the error
// message converts the failure into a clarification request instead,
// preserving partial output.
func (p *Poller) finalize(ctx context.Context, task *ent.QueueTask, result *ExecutionResult) {
	var err error
	terminal := result.Status

	switch result.Status {
	case models.TaskStatusComplete:
		_, err = p.store.UpdateStatus(ctx, task.ID, models.TaskStatusComplete, StatusUpdate{Output: result.Output})

	case models.TaskStatusAwaitingResponse:
		if result.Clarification == nil {
			terminal = models.TaskStatusError
			_, err = p.store.UpdateStatus(ctx, task.ID, models.TaskStatusError, StatusUpdate{
				ErrorMessage: "pipeline returned AWAITING_RESPONSE without a clarification",
				Output:       result.Output,
			})
			break
		}
		_, err = p.store.SetAwaitingResponse(ctx, task.ID, *result.Clarification, result.Output)

	case models.TaskStatusCancelled:
		message := result.ErrorMessage
		if message == "" {
			message = "task cancelled"
		}
		_, err = p.store.UpdateStatus(ctx, task.ID, models.TaskStatusCancelled, StatusUpdate{ErrorMessage: message})

	case models.TaskStatusError:
		if question, ok := strings.CutPrefix(result.ErrorMessage, ClarificationPrefix); ok {
			terminal = models.TaskStatusAwaitingResponse
			clarification := models.Clarification{Question: strings.TrimSpace(question)}
			_, err = p.store.SetAwaitingResponse(ctx, task.ID, clarification, result.Output)
			break
		}
		_, err = p.store.UpdateStatus(ctx, task.ID, models.TaskStatusError, StatusUpdate{
			ErrorMessage: result.ErrorMessage,
			Output:       result.Output,
		})

	default:
		terminal = models.TaskStatusError
		_, err = p.store.UpdateStatus(ctx, task.ID, models.TaskStatusError, StatusUpdate{
			ErrorMessage: fmt.Sprintf("pipeline returned unexpected status %q", result.Status),
		})
	}

	if err != nil {
		// Cancelled-while-running tasks land here: the record is already
		// terminal and the write is refused. Nothing more to do.
		slog.Error("Failed to finalize task",
			"poller_id", p.id,
			"task_id", task.ID,
			"status", terminal,
			"error", err)
		p.notify(PollError, task.ID)
		return
	}

	slog.Info("Task finalized", "poller_id", p.id, "task_id", task.ID, "status", terminal)
	if terminal == models.TaskStatusError {
		p.notify(PollError, task.ID)
	} else {
		p.notify(PollCompleted, task.ID)
	}
}

// synthesizeResult covers a pipeline that returned nil, mapping the context
// state to a terminal status.
func synthesizeResult(ctx context.Context) *ExecutionResult {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return &ExecutionResult{Status: models.TaskStatusCancelled, ErrorMessage: "task cancelled"}
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &ExecutionResult{Status: models.TaskStatusError, ErrorMessage: "task deadline exceeded"}
	default:
		return &ExecutionResult{Status: models.TaskStatusError, ErrorMessage: "pipeline returned no result"}
	}
}

// runHeartbeat refreshes updated_at on the claimed task until the task
// context ends. The store ignores heartbeats once the task leaves RUNNING.
func (p *Poller) runHeartbeat(ctx context.Context, taskID string) {
	interval := p.cfg.HeartbeatInterval
	if interval <= 0 {
		interval = p.cfg.StaleTaskThreshold / 2
	}
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.store.Heartbeat(ctx, taskID); err != nil {
				slog.Warn("Task heartbeat failed",
					"poller_id", p.id,
					"task_id", taskID,
					"error", err)
			}
		}
	}
}

// pollInterval returns the base interval with uniform symmetric jitter so
// concurrent pollers do not thundering-herd the queue.
func (p *Poller) pollInterval() time.Duration {
	base := p.cfg.PollInterval
	jitter := p.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// sleep waits for the duration unless the poller is stopped first.
func (p *Poller) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}

func (p *Poller) setWorking(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = PollerStatusWorking
	p.currentTaskID = taskID
	p.lastActivity = time.Now()
}

func (p *Poller) setIdle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = PollerStatusIdle
	p.currentTaskID = ""
	p.lastActivity = time.Now()
}

func (p *Poller) notify(event PollEvent, taskID string) {
	if p.observer == nil {
		return
	}
	p.observer(p.id, event, taskID)
}

// publishLifecycle broadcasts a poller.status transient event, best effort.
func (p *Poller) publishLifecycle(ctx context.Context, status, reason string) {
	if p.pub == nil {
		return
	}
	payload := events.PollerStatusPayload{
		Type:      events.EventTypePollerStatus,
		Namespace: p.store.Namespace(),
		PollerID:  p.id,
		Status:    status,
		Reason:    reason,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := p.pub.PublishPollerStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish poller.status event", "poller_id", p.id, "error", err)
	}
}
