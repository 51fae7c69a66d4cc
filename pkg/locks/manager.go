// Package locks provides in-process file locking and the global executor
// semaphore. Holders reference locks by lock_id; the manager owns the lock
// records themselves.
package locks

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/pm-runner/pmrunner/pkg/errcode"
	"github.com/pm-runner/pmrunner/pkg/models"
)

// DefaultTTL is how long a lock may be held before the expiry sweep flags
// it as leaked. Expiry never releases a lock; it only surfaces the leak.
const DefaultTTL = 10 * time.Minute

// Manager enforces the file-lock compatibility matrix and the global
// executor ceiling. All methods are safe for concurrent use.
type Manager struct {
	mu     sync.Mutex
	byPath map[string][]*models.Lock
	byID   map[string]*models.Lock
	ttl    time.Duration

	executorSlots int64
	executors     *semaphore.Weighted
	slotHolders   map[string]struct{}
}

// NewManager creates a lock manager. ttl bounds how long a lock may be held
// before the expiry sweep reports it; executorSlots is the global executor
// ceiling (config.ExecutorCeiling in production).
func NewManager(ttl time.Duration, executorSlots int) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		byPath:        make(map[string][]*models.Lock),
		byID:          make(map[string]*models.Lock),
		ttl:           ttl,
		executorSlots: int64(executorSlots),
		executors:     semaphore.NewWeighted(int64(executorSlots)),
		slotHolders:   make(map[string]struct{}),
	}
}

// AcquireLock acquires a single lock on path for holder. Conflicting
// acquires fail with E401 immediately; callers decide retry/backoff.
// The compatibility matrix applies to the holder's own locks too, so a
// holder cannot stack a WRITE on its own READ.
func (m *Manager) AcquireLock(path, holder string, lockType models.LockType) (*models.Lock, error) {
	if !lockType.IsValid() {
		return nil, errcode.Newf(errcode.CodeLockAcquisition, "invalid lock type %q", lockType)
	}
	if path == "" || holder == "" {
		return nil, errcode.New(errcode.CodeLockAcquisition, "path and holder are required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.acquireLocked(path, holder, lockType)
}

// acquireLocked does the actual acquisition. Caller holds m.mu.
func (m *Manager) acquireLocked(path, holder string, lockType models.LockType) (*models.Lock, error) {
	for _, held := range m.byPath[path] {
		if !lockType.CompatibleWith(held.Type) {
			return nil, errcode.Newf(errcode.CodeLockAcquisition,
				"cannot acquire %s on %s: held as %s by %s", lockType, path, held.Type, held.HolderID).
				WithDetail("path", path).
				WithDetail("requested_type", string(lockType)).
				WithDetail("held_type", string(held.Type)).
				WithDetail("held_by", held.HolderID)
		}
	}

	now := time.Now().UTC()
	lock := &models.Lock{
		LockID:     uuid.New().String(),
		FilePath:   path,
		HolderID:   holder,
		Type:       lockType,
		AcquiredAt: now,
		ExpiresAt:  now.Add(m.ttl),
	}
	m.byPath[path] = append(m.byPath[path], lock)
	m.byID[lock.LockID] = lock

	slog.Debug("Lock acquired",
		"lock_id", lock.LockID, "path", path, "holder", holder, "type", string(lockType))

	return lock, nil
}

// AcquireMultipleLocks acquires locks on every path or none. Paths are
// sorted (and deduplicated) before acquisition so concurrent callers walk
// the same order and cannot deadlock each other. On a mid-batch conflict,
// locks already acquired are released and E401 is returned.
func (m *Manager) AcquireMultipleLocks(paths []string, holder string, lockType models.LockType) ([]*models.Lock, error) {
	if len(paths) == 0 {
		return nil, errcode.New(errcode.CodeLockAcquisition, "no paths given")
	}

	sorted := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)

	m.mu.Lock()
	defer m.mu.Unlock()

	acquired := make([]*models.Lock, 0, len(sorted))
	for _, p := range sorted {
		lock, err := m.acquireLocked(p, holder, lockType)
		if err != nil {
			for _, got := range acquired {
				m.releaseLocked(got.LockID)
			}
			return nil, fmt.Errorf("batch acquisition failed at %s: %w", p, err)
		}
		acquired = append(acquired, lock)
	}
	return acquired, nil
}

// ReleaseLock releases a lock by id. Unknown ids fail with E402.
func (m *Manager) ReleaseLock(lockID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[lockID]; !ok {
		return errcode.Newf(errcode.CodeLockRelease, "unknown lock_id %s", lockID).
			WithDetail("lock_id", lockID)
	}
	m.releaseLocked(lockID)
	return nil
}

// releaseLocked removes a lock from both maps. Caller holds m.mu.
func (m *Manager) releaseLocked(lockID string) {
	lock, ok := m.byID[lockID]
	if !ok {
		return
	}
	delete(m.byID, lockID)

	held := m.byPath[lock.FilePath]
	for i, l := range held {
		if l.LockID == lockID {
			m.byPath[lock.FilePath] = append(held[:i], held[i+1:]...)
			break
		}
	}
	if len(m.byPath[lock.FilePath]) == 0 {
		delete(m.byPath, lock.FilePath)
	}

	slog.Debug("Lock released", "lock_id", lockID, "path", lock.FilePath, "holder", lock.HolderID)
}

// ReleaseHolder releases every lock held by holder and returns how many
// were released. Used by task finalization so a crashed pipeline never
// leaves locks behind.
func (m *Manager) ReleaseHolder(holder string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []string
	for id, lock := range m.byID {
		if lock.HolderID == holder {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		m.releaseLocked(id)
	}
	return len(ids)
}

// HeldLocks returns a snapshot of all currently held locks.
func (m *Manager) HeldLocks() []models.Lock {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Lock, 0, len(m.byID))
	for _, lock := range m.byID {
		out = append(out, *lock)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AcquiredAt.Before(out[j].AcquiredAt) })
	return out
}

// AutoReleaseExpiredLocks scans for locks past their TTL. Expired locks are
// NOT released: silently breaking mutual exclusion by time is forbidden, so
// the sweep raises E405 naming the leaked locks and leaves them held.
// Holders must release explicitly (or via ReleaseHolder at finalization).
func (m *Manager) AutoReleaseExpiredLocks(now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []string
	for _, lock := range m.byID {
		if now.After(lock.ExpiresAt) {
			expired = append(expired, fmt.Sprintf("%s on %s held by %s since %s",
				lock.Type, lock.FilePath, lock.HolderID, lock.AcquiredAt.Format(time.RFC3339)))
		}
	}
	if len(expired) == 0 {
		return nil
	}

	sort.Strings(expired)
	return errcode.Newf(errcode.CodeForbiddenAutoRelease,
		"%d lock(s) exceeded their TTL and require explicit release", len(expired)).
		WithDetail("expired_locks", expired)
}

// AcquireGlobalSemaphore takes one executor slot without blocking. When the
// ceiling is reached, or executorID already holds a slot, it fails with
// E404.
func (m *Manager) AcquireGlobalSemaphore(executorID string) error {
	m.mu.Lock()
	if _, dup := m.slotHolders[executorID]; dup {
		m.mu.Unlock()
		return errcode.Newf(errcode.CodeSemaphoreExceeded, "executor %s already holds a slot", executorID)
	}
	m.mu.Unlock()

	if !m.executors.TryAcquire(1) {
		return errcode.Newf(errcode.CodeSemaphoreExceeded,
			"executor ceiling (%d) reached", m.executorSlots).
			WithDetail("executor_id", executorID)
	}

	m.mu.Lock()
	m.slotHolders[executorID] = struct{}{}
	m.mu.Unlock()

	slog.Debug("Executor slot acquired", "executor_id", executorID)
	return nil
}

// WaitGlobalSemaphore blocks until an executor slot is free or ctx is done.
// Subtask fan-out uses this; the non-blocking variant is for callers that
// want the E404 failure instead of queueing.
func (m *Manager) WaitGlobalSemaphore(ctx context.Context, executorID string) error {
	m.mu.Lock()
	if _, dup := m.slotHolders[executorID]; dup {
		m.mu.Unlock()
		return errcode.Newf(errcode.CodeSemaphoreExceeded, "executor %s already holds a slot", executorID)
	}
	m.mu.Unlock()

	if err := m.executors.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for executor slot: %w", err)
	}

	m.mu.Lock()
	m.slotHolders[executorID] = struct{}{}
	m.mu.Unlock()

	slog.Debug("Executor slot acquired after wait", "executor_id", executorID)
	return nil
}

// ReleaseGlobalSemaphore returns an executor slot. Releasing a slot the
// executor does not hold fails with E402.
func (m *Manager) ReleaseGlobalSemaphore(executorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slotHolders[executorID]; !ok {
		return errcode.Newf(errcode.CodeLockRelease,
			"executor %s does not hold a slot", executorID)
	}
	delete(m.slotHolders, executorID)
	m.executors.Release(1)

	slog.Debug("Executor slot released", "executor_id", executorID)
	return nil
}

// ExecutorSlotsInUse reports how many executor slots are currently held.
func (m *Manager) ExecutorSlotsInUse() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slotHolders)
}
