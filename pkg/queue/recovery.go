package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// recoveryState tracks stale-task sweep metrics (thread-safe).
type recoveryState struct {
	mu        sync.Mutex
	lastSweep time.Time
	recovered int
}

func (r *recoveryState) record(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastSweep = time.Now()
	r.recovered += n
}

func (r *recoveryState) snapshot() (time.Time, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastSweep, r.recovered
}

// runRecoverySweep periodically requeues stale RUNNING tasks while the
// process is up, backing up the startup sweep across long uptimes. Sweeps
// are idempotent: the conditional requeue makes overlapping sweepers
// harmless.
func (p *PollerPool) runRecoverySweep(ctx context.Context) {
	interval := p.cfg.RecoverySweepInterval
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
			if err := p.sweepStaleTasks(ctx); err != nil {
				slog.Error("Stale-task sweep failed", "error", err)
			}
		}
	}
}

// sweepStaleTasks runs one recovery pass and records its metrics.
func (p *PollerPool) sweepStaleTasks(ctx context.Context) error {
	recovered, err := p.store.RecoverStaleTasks(ctx, p.cfg.StaleTaskThreshold)
	if err != nil {
		return err
	}
	p.recovery.record(recovered)
	if recovered > 0 {
		slog.Warn("Recovery sweep requeued stale tasks",
			"count", recovered,
			"namespace", p.store.Namespace())
	}
	return nil
}
