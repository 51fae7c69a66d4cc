package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pm-runner/pmrunner/ent"
	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/pkg/database"
	"github.com/pm-runner/pmrunner/pkg/models"
	testdb "github.com/pm-runner/pmrunner/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNamespace = "test-ns"

// newStoreForTest creates a store on a fresh test schema.
func newStoreForTest(t *testing.T) (*Store, *database.Client) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	return NewStore(dbClient.Client, testNamespace, nil), dbClient
}

// seedTask inserts a task row directly, bypassing Enqueue, so tests control
// status and timestamps.
func seedTask(ctx context.Context, t *testing.T, client *ent.Client, ns, id, sessionID, groupID string, status queuetask.Status, ts time.Time) *ent.QueueTask {
	t.Helper()
	task, err := client.QueueTask.Create().
		SetID(id).
		SetNamespace(ns).
		SetTaskGroupID(groupID).
		SetSessionID(sessionID).
		SetStatus(status).
		SetPrompt("work for " + id).
		SetCreatedAt(ts).
		SetUpdatedAt(ts).
		Save(ctx)
	require.NoError(t, err)
	return task
}

func TestEnqueueDefaults(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	task, err := store.Enqueue(ctx, EnqueueInput{Prompt: "Add retry logic to the upload path"})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, testNamespace, task.Namespace)
	assert.Equal(t, queuetask.StatusQueued, task.Status)
	assert.Equal(t, queuetask.TaskTypeImplementation, task.TaskType)
	assert.Equal(t, "sess-"+task.ID, task.SessionID)
	assert.Equal(t, task.ID, task.TaskGroupID)
	assert.Zero(t, task.Attempt)

	// The event log opens with the QUEUED transition
	require.Len(t, task.Events, 1)
	assert.Equal(t, string(models.TaskStatusQueued), task.Events[0].Data["status"])
}

func TestEnqueueInfersTaskType(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	task, err := store.Enqueue(ctx, EnqueueInput{Prompt: "What changed in the last release?"})
	require.NoError(t, err)
	assert.Equal(t, queuetask.TaskTypeReadInfo, task.TaskType)

	task, err = store.Enqueue(ctx, EnqueueInput{Prompt: "Summarize the failure modes of the claim path"})
	require.NoError(t, err)
	assert.Equal(t, queuetask.TaskTypeReport, task.TaskType)
}

func TestEnqueueExplicitFields(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	task, err := store.Enqueue(ctx, EnqueueInput{
		TaskID:      "task-explicit",
		SessionID:   "sess-shared",
		TaskGroupID: "group-1",
		Prompt:      "Fix the flaky watcher shutdown",
		TaskType:    models.TaskTypeLightEdit,
	})
	require.NoError(t, err)

	assert.Equal(t, "task-explicit", task.ID)
	assert.Equal(t, "sess-shared", task.SessionID)
	assert.Equal(t, "group-1", task.TaskGroupID)
	assert.Equal(t, queuetask.TaskTypeLightEdit, task.TaskType)
}

func TestEnqueueValidation(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	_, err := store.Enqueue(ctx, EnqueueInput{Prompt: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt")

	_, err = store.Enqueue(ctx, EnqueueInput{Prompt: "do something", TaskType: "NONSENSE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task type")

	_, err = store.Enqueue(ctx, EnqueueInput{TaskID: "dup-1", Prompt: "first"})
	require.NoError(t, err)
	_, err = store.Enqueue(ctx, EnqueueInput{TaskID: "dup-1", Prompt: "second"})
	assert.ErrorIs(t, err, ErrTaskExists)
}

func TestClaimOrdersByCreationTime(t *testing.T) {
	store, dbClient := newStoreForTest(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	seedTask(ctx, t, dbClient.Client, testNamespace, "task-b", "sess-b", "task-b", queuetask.StatusQueued, base)
	seedTask(ctx, t, dbClient.Client, testNamespace, "task-a", "sess-a", "task-a", queuetask.StatusQueued, base.Add(time.Second))
	seedTask(ctx, t, dbClient.Client, testNamespace, "task-c", "sess-c", "task-c", queuetask.StatusQueued, base.Add(2*time.Second))

	first, err := store.Claim(ctx)
	require.NoError(t, err)
	assert.Equal(t, "task-b", first.ID)
	assert.Equal(t, queuetask.StatusRunning, first.Status)
	require.Len(t, first.Events, 1)
	assert.Equal(t, string(models.TaskStatusRunning), first.Events[0].Data["status"])

	second, err := store.Claim(ctx)
	require.NoError(t, err)
	assert.Equal(t, "task-a", second.ID)

	third, err := store.Claim(ctx)
	require.NoError(t, err)
	assert.Equal(t, "task-c", third.ID)

	_, err = store.Claim(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestClaimEmptyQueue(t *testing.T) {
	store, _ := newStoreForTest(t)

	task, err := store.Claim(context.Background())
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
	assert.Nil(t, task)
}

func TestClaimNamespaceScoped(t *testing.T) {
	store, dbClient := newStoreForTest(t)
	ctx := context.Background()

	seedTask(ctx, t, dbClient.Client, "other-ns", "foreign-task", "sess-f", "foreign-task", queuetask.StatusQueued, time.Now())

	_, err := store.Claim(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

// TestClaimLostRace pins the conditional-update claim semantics: a claimer
// that selected a task another process claims first must get
// ErrAlreadyClaimed without mutating the row.
func TestClaimLostRace(t *testing.T) {
	store, dbClient := newStoreForTest(t)
	ctx := context.Background()

	seedTask(ctx, t, dbClient.Client, testNamespace, "contested", "sess-1", "contested", queuetask.StatusQueued, time.Now().Add(-time.Minute))

	// A raw transaction claims the task but holds the row lock open, so the
	// store's SELECT still sees it as queued and its conditional UPDATE
	// blocks on the lock.
	tx, err := dbClient.DB().BeginTx(ctx, nil)
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx,
		`UPDATE queue_tasks SET status = 'running', updated_at = now() WHERE task_id = $1`,
		"contested")
	require.NoError(t, err)

	claimErr := make(chan error, 1)
	go func() {
		_, err := store.Claim(ctx)
		claimErr <- err
	}()

	// Let the claimer select the row and block on the uncommitted update.
	time.Sleep(250 * time.Millisecond)
	require.NoError(t, tx.Commit())

	err = <-claimErr
	assert.ErrorIs(t, err, ErrAlreadyClaimed)

	// The loser wrote nothing: no RUNNING event, no attempt bump.
	task, err := store.GetItem(ctx, "contested")
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusRunning, task.Status)
	assert.Empty(t, task.Events)
	assert.Zero(t, task.Attempt)
}

// TestConcurrentClaimsSingleWinner races several claimers on one queued
// task: exactly one wins and the task transitions to RUNNING exactly once.
func TestConcurrentClaimsSingleWinner(t *testing.T) {
	store, dbClient := newStoreForTest(t)
	ctx := context.Background()

	seedTask(ctx, t, dbClient.Client, testNamespace, "single", "sess-1", "single", queuetask.StatusQueued, time.Now().Add(-time.Minute))

	const claimers = 4
	start := make(chan struct{})
	errCh := make(chan error, claimers)
	var winners int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			<-start
			task, err := store.Claim(ctx)
			if err != nil {
				errCh <- fmt.Errorf("claimer-%d: %w", n, err)
				return
			}
			mu.Lock()
			winners++
			mu.Unlock()
			if task.ID != "single" {
				errCh <- fmt.Errorf("claimer-%d claimed unexpected task %s", n, task.ID)
			}
		}(i)
	}
	close(start)
	wg.Wait()
	close(errCh)

	// Losers back off with a sentinel; either the claim raced and lost or
	// the queue was already drained by the winner.
	for err := range errCh {
		if !errors.Is(err, ErrAlreadyClaimed) && !errors.Is(err, ErrNoTasksAvailable) {
			t.Fatalf("unexpected claim error: %v", err)
		}
	}
	assert.Equal(t, int64(1), winners, "exactly one claimer should win")

	task, err := store.GetItem(ctx, "single")
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusRunning, task.Status)
	assert.Len(t, task.Events, 1, "the task should be claimed exactly once")
}

func TestUpdateStatusLifecycle(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	_, err := store.Enqueue(ctx, EnqueueInput{TaskID: "lifecycle", Prompt: "implement the thing"})
	require.NoError(t, err)
	claimed, err := store.Claim(ctx)
	require.NoError(t, err)

	updated, err := store.UpdateStatus(ctx, claimed.ID, models.TaskStatusComplete, StatusUpdate{Output: "all gates passed"})
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusComplete, updated.Status)
	require.NotNil(t, updated.Output)
	assert.Equal(t, "all gates passed", *updated.Output)

	// QUEUED, RUNNING, COMPLETE
	require.Len(t, updated.Events, 3)
	assert.Equal(t, string(models.TaskStatusComplete), updated.Events[2].Data["status"])
}

func TestUpdateStatusRejectsIllegalTransitions(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	t.Run("queued cannot jump to complete", func(t *testing.T) {
		task, err := store.Enqueue(ctx, EnqueueInput{Prompt: "queued task"})
		require.NoError(t, err)

		_, err = store.UpdateStatus(ctx, task.ID, models.TaskStatusComplete, StatusUpdate{})
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		_, err := store.Enqueue(ctx, EnqueueInput{TaskID: "frozen", Prompt: "fail me"})
		require.NoError(t, err)
		claimed, err := store.Claim(ctx)
		require.NoError(t, err)
		_, err = store.UpdateStatus(ctx, claimed.ID, models.TaskStatusError, StatusUpdate{ErrorMessage: "executor crashed"})
		require.NoError(t, err)

		_, err = store.UpdateStatus(ctx, claimed.ID, models.TaskStatusQueued, StatusUpdate{})
		assert.ErrorIs(t, err, ErrIllegalTransition)
		_, err = store.UpdateStatus(ctx, claimed.ID, models.TaskStatusRunning, StatusUpdate{})
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		task, err := store.Enqueue(ctx, EnqueueInput{Prompt: "another task"})
		require.NoError(t, err)

		_, err = store.UpdateStatus(ctx, task.ID, "BOGUS", StatusUpdate{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid task status")
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := store.UpdateStatus(ctx, "no-such-task", models.TaskStatusCancelled, StatusUpdate{})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestClarificationFlow(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	task, err := store.Enqueue(ctx, EnqueueInput{TaskID: "needs-answer", Prompt: "Deploy the service"})
	require.NoError(t, err)
	_, err = store.Claim(ctx)
	require.NoError(t, err)

	clar := models.Clarification{Question: "Which cluster?", Context: "prod and staging both match"}
	waiting, err := store.SetAwaitingResponse(ctx, task.ID, clar, "notes so far")
	require.NoError(t, err)

	assert.Equal(t, queuetask.StatusAwaitingResponse, waiting.Status)
	require.NotNil(t, waiting.Clarification)
	assert.Equal(t, "Which cluster?", waiting.Clarification.Question)
	assert.Equal(t, "prod and staging both match", waiting.Clarification.Context)
	assert.False(t, waiting.Clarification.AskedAt.IsZero())
	require.NotNil(t, waiting.Output)
	assert.Equal(t, "notes so far", *waiting.Output)

	// The event log records the question
	last := waiting.Events[len(waiting.Events)-1]
	assert.Equal(t, "Which cluster?", last.Message)

	replied, err := store.Reply(ctx, task.ID, "staging")
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusQueued, replied.Status)
	assert.Equal(t, 1, replied.Attempt)
	assert.Nil(t, replied.Clarification)
	assert.Contains(t, replied.Prompt, "Deploy the service")
	assert.Contains(t, replied.Prompt, "Clarification: Which cluster?")
	assert.Contains(t, replied.Prompt, "User response: staging")

	// The requeued task is claimable again
	reclaimed, err := store.Claim(ctx)
	require.NoError(t, err)
	assert.Equal(t, task.ID, reclaimed.ID)
	assert.Equal(t, queuetask.StatusRunning, reclaimed.Status)
}

func TestSetAwaitingResponseRequiresRunning(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	task, err := store.Enqueue(ctx, EnqueueInput{Prompt: "still queued"})
	require.NoError(t, err)

	_, err = store.SetAwaitingResponse(ctx, task.ID, models.Clarification{Question: "why?"}, "")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestReplyValidation(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	task, err := store.Enqueue(ctx, EnqueueInput{Prompt: "no question pending"})
	require.NoError(t, err)

	_, err = store.Reply(ctx, task.ID, "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response must not be empty")

	_, err = store.Reply(ctx, task.ID, "unsolicited answer")
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = store.Reply(ctx, "no-such-task", "hello")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestCancelLifecycle(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	t.Run("queued task", func(t *testing.T) {
		task, err := store.Enqueue(ctx, EnqueueInput{Prompt: "cancel me"})
		require.NoError(t, err)

		cancelled, err := store.Cancel(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, queuetask.StatusCancelled, cancelled.Status)

		_, err = store.Cancel(ctx, task.ID)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("awaiting task", func(t *testing.T) {
		task, err := store.Enqueue(ctx, EnqueueInput{TaskID: "waiting-cancel", Prompt: "ask then cancel"})
		require.NoError(t, err)
		_, err = store.Claim(ctx)
		require.NoError(t, err)
		_, err = store.SetAwaitingResponse(ctx, task.ID, models.Clarification{Question: "which one?"}, "")
		require.NoError(t, err)

		cancelled, err := store.Cancel(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, queuetask.StatusCancelled, cancelled.Status)
	})

	t.Run("complete task refuses", func(t *testing.T) {
		task, err := store.Enqueue(ctx, EnqueueInput{TaskID: "done-cancel", Prompt: "finish first"})
		require.NoError(t, err)
		_, err = store.Claim(ctx)
		require.NoError(t, err)
		_, err = store.UpdateStatus(ctx, task.ID, models.TaskStatusComplete, StatusUpdate{Output: "done"})
		require.NoError(t, err)

		_, err = store.Cancel(ctx, task.ID)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestAppendEventUpdatedAt(t *testing.T) {
	store, _ := newStoreForTest(t)
	ctx := context.Background()

	task, err := store.Enqueue(ctx, EnqueueInput{Prompt: "track progress"})
	require.NoError(t, err)

	// A later event timestamp advances updated_at
	future := time.Now().Add(time.Hour)
	err = store.AppendEvent(ctx, task.ID, models.TaskEvent{Type: "pipeline.milestone", Message: "plan built", Timestamp: future})
	require.NoError(t, err)

	advanced, err := store.GetItem(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, advanced.Events, 2)
	assert.WithinDuration(t, future, advanced.UpdatedAt, time.Millisecond)

	// An older event timestamp still appends but leaves updated_at alone
	err = store.AppendEvent(ctx, task.ID, models.TaskEvent{Type: "pipeline.milestone", Message: "backfilled", Timestamp: time.Now().Add(-time.Hour)})
	require.NoError(t, err)

	unchanged, err := store.GetItem(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, unchanged.Events, 3)
	assert.True(t, unchanged.UpdatedAt.Equal(advanced.UpdatedAt), "updated_at must not move backwards")

	// A zero timestamp is defaulted
	err = store.AppendEvent(ctx, task.ID, models.TaskEvent{Type: "pipeline.milestone", Message: "no timestamp"})
	require.NoError(t, err)

	final, err := store.GetItem(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, final.Events, 4)
	assert.False(t, final.Events[3].Timestamp.IsZero())
}

func TestHeartbeatOnlyTouchesRunning(t *testing.T) {
	store, dbClient := newStoreForTest(t)
	ctx := context.Background()

	staleBeat := time.Now().Add(-time.Hour)
	running := seedTask(ctx, t, dbClient.Client, testNamespace, "beating", "sess-1", "beating", queuetask.StatusRunning, staleBeat)

	err := store.Heartbeat(ctx, running.ID)
	require.NoError(t, err)

	refreshed, err := store.GetItem(ctx, running.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.UpdatedAt.After(staleBeat))
	assert.WithinDuration(t, time.Now(), refreshed.UpdatedAt, 5*time.Second)

	// Once the task leaves RUNNING, heartbeats become no-ops
	_, err = store.UpdateStatus(ctx, running.ID, models.TaskStatusComplete, StatusUpdate{Output: "done"})
	require.NoError(t, err)
	before, err := store.GetItem(ctx, running.ID)
	require.NoError(t, err)

	err = store.Heartbeat(ctx, running.ID)
	require.NoError(t, err)

	after, err := store.GetItem(ctx, running.ID)
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.Equal(before.UpdatedAt))
}

func TestNamespaceIsolation(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	storeA := NewStore(dbClient.Client, "team-a", nil)
	storeB := NewStore(dbClient.Client, "team-b", nil)

	task, err := storeA.Enqueue(ctx, EnqueueInput{Prompt: "team-a work"})
	require.NoError(t, err)

	// Another namespace cannot see or touch the task
	_, err = storeB.GetItem(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNamespaceMismatch)
	_, err = storeB.Cancel(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNamespaceMismatch)
	_, err = storeB.Claim(ctx)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	tasks, err := storeB.List(ctx, models.TaskFilters{})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	_, err = storeA.GetItem(ctx, "missing-task")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListFilters(t *testing.T) {
	store, dbClient := newStoreForTest(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	seedTask(ctx, t, dbClient.Client, testNamespace, "t-1", "sess-1", "g-1", queuetask.StatusQueued, base)
	seedTask(ctx, t, dbClient.Client, testNamespace, "t-2", "sess-1", "g-2", queuetask.StatusQueued, base.Add(time.Second))
	seedTask(ctx, t, dbClient.Client, testNamespace, "t-3", "sess-2", "g-2", queuetask.StatusRunning, base.Add(2*time.Second))
	seedTask(ctx, t, dbClient.Client, "other-ns", "t-4", "sess-1", "g-1", queuetask.StatusQueued, base)

	all, err := store.List(ctx, models.TaskFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "t-1", all[0].ID, "oldest first")

	queued, err := store.GetByStatus(ctx, models.TaskStatusQueued)
	require.NoError(t, err)
	assert.Len(t, queued, 2)

	bySession, err := store.GetBySession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, bySession, 2)

	byGroup, err := store.GetByTaskGroup(ctx, "g-2")
	require.NoError(t, err)
	assert.Len(t, byGroup, 2)

	combined, err := store.List(ctx, models.TaskFilters{SessionID: "sess-1", Status: models.TaskStatusQueued})
	require.NoError(t, err)
	require.Len(t, combined, 2)

	limited, err := store.List(ctx, models.TaskFilters{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "t-2", limited[0].ID)

	_, err = store.List(ctx, models.TaskFilters{Status: "NOPE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status filter")
}

func TestGetAllTaskGroups(t *testing.T) {
	store, dbClient := newStoreForTest(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	seedTask(ctx, t, dbClient.Client, testNamespace, "t-1", "sess-1", "g-1", queuetask.StatusQueued, base)
	seedTask(ctx, t, dbClient.Client, testNamespace, "t-2", "sess-1", "g-2", queuetask.StatusQueued, base.Add(time.Second))
	seedTask(ctx, t, dbClient.Client, testNamespace, "t-3", "sess-1", "g-1", queuetask.StatusComplete, base.Add(3*time.Second))
	seedTask(ctx, t, dbClient.Client, "other-ns", "t-4", "sess-1", "g-3", queuetask.StatusQueued, base)

	groups, err := store.GetAllTaskGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Ordered by latest activity, oldest group first
	assert.Equal(t, "g-2", groups[0].TaskGroupID)
	assert.Equal(t, 1, groups[0].TaskCount)
	assert.Equal(t, "g-1", groups[1].TaskGroupID)
	assert.Equal(t, 2, groups[1].TaskCount)
	assert.WithinDuration(t, base.Add(3*time.Second), groups[1].LatestCreatedAt, time.Millisecond)
}

func TestCountByStatus(t *testing.T) {
	store, dbClient := newStoreForTest(t)
	ctx := context.Background()

	counts, err := store.CountByStatus(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 6, "every status should be present, zero-filled")
	for status, n := range counts {
		assert.Zero(t, n, "status %s should start at zero", status)
	}

	base := time.Now().Add(-time.Minute)
	seedTask(ctx, t, dbClient.Client, testNamespace, "q-1", "sess-1", "q-1", queuetask.StatusQueued, base)
	seedTask(ctx, t, dbClient.Client, testNamespace, "q-2", "sess-1", "q-2", queuetask.StatusQueued, base)
	seedTask(ctx, t, dbClient.Client, testNamespace, "r-1", "sess-1", "r-1", queuetask.StatusRunning, base)
	seedTask(ctx, t, dbClient.Client, testNamespace, "c-1", "sess-1", "c-1", queuetask.StatusComplete, base)
	seedTask(ctx, t, dbClient.Client, "other-ns", "x-1", "sess-1", "x-1", queuetask.StatusQueued, base)

	counts, err = store.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[models.TaskStatusQueued])
	assert.Equal(t, 1, counts[models.TaskStatusRunning])
	assert.Equal(t, 1, counts[models.TaskStatusComplete])
	assert.Equal(t, 0, counts[models.TaskStatusError])
}

func TestRecoverStaleTasks(t *testing.T) {
	store, dbClient := newStoreForTest(t)
	ctx := context.Background()

	staleBeat := time.Now().Add(-10 * time.Minute)
	stale := seedTask(ctx, t, dbClient.Client, testNamespace, "stale-1", "sess-1", "stale-1", queuetask.StatusRunning, staleBeat)
	fresh := seedTask(ctx, t, dbClient.Client, testNamespace, "fresh-1", "sess-2", "fresh-1", queuetask.StatusRunning, time.Now())
	queued := seedTask(ctx, t, dbClient.Client, testNamespace, "queued-1", "sess-3", "queued-1", queuetask.StatusQueued, staleBeat)

	recovered, err := store.RecoverStaleTasks(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	// The stale task is requeued with an incremented attempt and an audit
	// entry naming the lost heartbeat.
	requeued, err := store.GetItem(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusQueued, requeued.Status)
	assert.Equal(t, 1, requeued.Attempt)
	require.NotEmpty(t, requeued.Events)
	assert.Contains(t, requeued.Events[len(requeued.Events)-1].Message, "requeued: no heartbeat since")

	// Healthy and queued tasks are untouched
	untouched, err := store.GetItem(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusRunning, untouched.Status)
	assert.Zero(t, untouched.Attempt)

	still, err := store.GetItem(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, queuetask.StatusQueued, still.Status)
	assert.Zero(t, still.Attempt)

	// A second sweep finds nothing
	recovered, err = store.RecoverStaleTasks(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, recovered)
}
