// Package cleanup provides the retention service: periodic deletion of
// terminal tasks and delivered queue events past their TTLs.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/pm-runner/pmrunner/ent"
	"github.com/pm-runner/pmrunner/ent/queueevent"
	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes terminal tasks (COMPLETE, ERROR, CANCELLED) past task_ttl
//   - Deletes queue event rows past event_ttl
//
// All operations are idempotent and namespace-scoped. A zero TTL disables
// the corresponding sweep; the service does not start when both are zero.
type Service struct {
	config    *config.RetentionConfig
	client    *ent.Client
	namespace string

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service for one namespace.
func NewService(cfg *config.RetentionConfig, client *ent.Client, namespace string) *Service {
	return &Service{
		config:    cfg,
		client:    client,
		namespace: namespace,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	if s.config.CleanupInterval <= 0 || (s.config.TaskTTL <= 0 && s.config.EventTTL <= 0) {
		slog.Info("Retention service disabled",
			"task_ttl", s.config.TaskTTL,
			"event_ttl", s.config.EventTTL,
			"interval", s.config.CleanupInterval)
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"task_ttl", s.config.TaskTTL,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.sweepTerminalTasks(ctx)
	s.sweepDeliveredEvents(ctx)
}

// SweepOnce runs both sweeps immediately, outside the background loop.
func (s *Service) SweepOnce(ctx context.Context) {
	s.runAll(ctx)
}

func (s *Service) sweepTerminalTasks(ctx context.Context) {
	if s.config.TaskTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.TaskTTL)

	count, err := s.client.QueueTask.Delete().
		Where(
			queuetask.NamespaceEQ(s.namespace),
			queuetask.StatusIn(queuetask.StatusComplete, queuetask.StatusError, queuetask.StatusCancelled),
			queuetask.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: terminal task sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted terminal tasks", "count", count, "cutoff", cutoff)
	}
}

func (s *Service) sweepDeliveredEvents(ctx context.Context) {
	if s.config.EventTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.EventTTL)

	count, err := s.client.QueueEvent.Delete().
		Where(
			queueevent.NamespaceEQ(s.namespace),
			queueevent.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: event sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted queue events", "count", count, "cutoff", cutoff)
	}
}
