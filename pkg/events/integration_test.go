package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pm-runner/pmrunner/pkg/database"
	"github.com/pm-runner/pmrunner/pkg/models"
	testdb "github.com/pm-runner/pmrunner/test/database"
)

// notifyTestEnv wires the real publisher, listener, and catch-up reader
// against a real PostgreSQL database (testcontainers locally, service
// container in CI).
type notifyTestEnv struct {
	dbClient  *database.Client
	publisher *Publisher
	catchup   *CatchupReader
	listener  *NotifyListener
	received  chan map[string]any
	namespace string
	channel   string
}

func setupNotifyTest(t *testing.T) *notifyTestEnv {
	t.Helper()

	shared := testdb.NewSharedTestDB(t)
	dbClient := shared.NewClient(t)
	ctx := context.Background()

	namespace := "eventstest"
	env := &notifyTestEnv{
		dbClient:  dbClient,
		publisher: NewPublisher(dbClient.DB(), namespace),
		catchup:   NewCatchupReader(dbClient.DB()),
		received:  make(chan map[string]any, 64),
		namespace: namespace,
		channel:   TasksChannel(namespace),
	}

	// The listener opens its own dedicated pgx connection. NOTIFY/LISTEN is
	// database-level, so the schema-scoped string works fine.
	env.listener = NewNotifyListener(shared.ConnString(), func(channel string, payload []byte) {
		msg := make(map[string]any)
		if err := json.Unmarshal(payload, &msg); err != nil {
			t.Logf("unparseable NOTIFY payload: %v", err)
			return
		}
		env.received <- msg
	})
	require.NoError(t, env.listener.Start(ctx))
	t.Cleanup(func() { env.listener.Stop(context.Background()) })

	require.NoError(t, env.listener.Subscribe(ctx, env.channel))

	return env
}

// next reads one delivered NOTIFY payload or fails the test after timeout.
func (env *notifyTestEnv) next(t *testing.T, timeout time.Duration) map[string]any {
	t.Helper()
	select {
	case msg := <-env.received:
		return msg
	case <-time.After(timeout):
		t.Fatal("timed out waiting for NOTIFY delivery")
		return nil
	}
}

func nowStamp() string {
	return time.Now().Format(time.RFC3339Nano)
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	err := env.publisher.PublishTaskStatus(ctx, TaskStatusPayload{
		Type:      EventTypeTaskStatus,
		Namespace: env.namespace,
		TaskID:    "task-1",
		Status:    models.TaskStatusQueued,
		Timestamp: nowStamp(),
	})
	require.NoError(t, err)

	err = env.publisher.PublishTaskStatus(ctx, TaskStatusPayload{
		Type:      EventTypeTaskStatus,
		Namespace: env.namespace,
		TaskID:    "task-1",
		Status:    models.TaskStatusRunning,
		Timestamp: nowStamp(),
	})
	require.NoError(t, err)

	// Query persisted rows via the catch-up reader
	events, err := env.catchup.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, EventTypeTaskStatus, events[0].Payload["type"])
	assert.Equal(t, "QUEUED", events[0].Payload["status"])
	assert.Equal(t, "RUNNING", events[1].Payload["status"])
	assert.Equal(t, "task-1", events[0].Payload["task_id"])

	// IDs should be incrementing, and injected into replayed payloads
	assert.Greater(t, events[1].ID, events[0].ID)
	assert.Equal(t, events[0].ID, events[0].Payload["db_event_id"])

	// Both events arrive via NOTIFY too, in publish order
	first := env.next(t, 5*time.Second)
	assert.Equal(t, "QUEUED", first["status"])
	assert.NotNil(t, first["db_event_id"], "live payload should carry the cursor id")
	second := env.next(t, 5*time.Second)
	assert.Equal(t, "RUNNING", second["status"])
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	err := env.publisher.PublishPollerStatus(ctx, PollerStatusPayload{
		Type:      EventTypePollerStatus,
		Namespace: env.namespace,
		PollerID:  "poller-1",
		Status:    PollerStatusStarted,
		Timestamp: nowStamp(),
	})
	require.NoError(t, err)

	// Delivered live...
	msg := env.next(t, 5*time.Second)
	assert.Equal(t, EventTypePollerStatus, msg["type"])
	assert.Equal(t, "poller-1", msg["poller_id"])

	// ...but never persisted
	events, err := env.catchup.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_ProgressEventOrdering(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	steps := []string{
		StepReviewLoopStart,
		StepReviewIterationStart,
		StepQualityJudgment,
		StepReviewIterationEnd,
		StepReviewLoopEnd,
	}
	for i, step := range steps {
		payload := TaskProgressPayload{
			Type:      EventTypeTaskProgress,
			Namespace: env.namespace,
			TaskID:    "task-7",
			Step:      step,
			Timestamp: nowStamp(),
		}
		if step != StepReviewLoopStart && step != StepReviewLoopEnd {
			payload.Iteration = 1
		}
		if step == StepQualityJudgment {
			payload.Verdict = "ACCEPT"
		}
		require.NoError(t, env.publisher.PublishTaskProgress(ctx, payload), "step %d", i)
	}

	// Live delivery preserves publish order
	for _, want := range steps {
		msg := env.next(t, 5*time.Second)
		assert.Equal(t, want, msg["step"])
	}

	// Catch-up replays the same order
	events, err := env.catchup.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, len(steps))
	for i, want := range steps {
		assert.Equal(t, want, events[i].Payload["step"])
	}
}

func TestIntegration_CatchupCursorSplicing(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishSubtaskStatus(ctx, SubtaskStatusPayload{
			Type:      EventTypeSubtaskStatus,
			Namespace: env.namespace,
			TaskID:    "task-3",
			SubtaskID: "task-3-sub-1",
			Index:     i,
			Status:    models.SubtaskRunning,
			Timestamp: nowStamp(),
		})
		require.NoError(t, err)
	}

	all, err := env.catchup.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Resume from the first event's cursor — only events 2 and 3 replay.
	tail, err := env.catchup.EventsSince(ctx, env.channel, all[0].ID, 100)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, float64(2), tail[0].Payload["index"])
	assert.Equal(t, float64(3), tail[1].Payload["index"])

	// Limit caps the replay window.
	capped, err := env.catchup.EventsSince(ctx, env.channel, 0, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestIntegration_OversizedPayloadTruncatedOnWire(t *testing.T) {
	env := setupNotifyTest(t)
	ctx := context.Background()

	bigOutput := make([]byte, 9000)
	for i := range bigOutput {
		bigOutput[i] = 'z'
	}
	err := env.publisher.PublishTaskProgress(ctx, TaskProgressPayload{
		Type:      EventTypeTaskProgress,
		Namespace: env.namespace,
		TaskID:    "task-big",
		Step:      StepModificationPrompt,
		Detail:    map[string]any{"prompt": string(bigOutput)},
		Timestamp: nowStamp(),
	})
	require.NoError(t, err)

	// The live NOTIFY payload is the truncation envelope with routing fields.
	msg := env.next(t, 5*time.Second)
	assert.Equal(t, true, msg["truncated"])
	assert.Equal(t, "task-big", msg["task_id"])
	assert.NotNil(t, msg["db_event_id"])
	assert.NotContains(t, msg, "detail")

	// The persisted row keeps the full payload for catch-up.
	events, err := env.catchup.EventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	detail, ok := events[0].Payload["detail"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, detail["prompt"], 9000)
}

func TestIntegration_NamespaceChannelsAreIsolated(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	dbClient := shared.NewClient(t)
	ctx := context.Background()

	pubA := NewPublisher(dbClient.DB(), "nsa")
	pubB := NewPublisher(dbClient.DB(), "nsb")

	received := make(chan map[string]any, 16)
	listener := NewNotifyListener(shared.ConnString(), func(channel string, payload []byte) {
		msg := make(map[string]any)
		require.NoError(t, json.Unmarshal(payload, &msg))
		received <- msg
	})
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	// Only subscribe to namespace A.
	require.NoError(t, listener.Subscribe(ctx, TasksChannel("nsa")))

	require.NoError(t, pubB.PublishTaskStatus(ctx, TaskStatusPayload{
		Type: EventTypeTaskStatus, Namespace: "nsb", TaskID: "b-1",
		Status: models.TaskStatusQueued, Timestamp: nowStamp(),
	}))
	require.NoError(t, pubA.PublishTaskStatus(ctx, TaskStatusPayload{
		Type: EventTypeTaskStatus, Namespace: "nsa", TaskID: "a-1",
		Status: models.TaskStatusQueued, Timestamp: nowStamp(),
	}))

	// Only the namespace A event is delivered.
	select {
	case msg := <-received:
		assert.Equal(t, "a-1", msg["task_id"])
		assert.Equal(t, "nsa", msg["namespace"])
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for namespace A event")
	}
	select {
	case msg := <-received:
		t.Fatalf("unexpected cross-namespace delivery: %v", msg)
	case <-time.After(300 * time.Millisecond):
	}

	// Catch-up is channel-scoped the same way.
	reader := NewCatchupReader(dbClient.DB())
	eventsA, err := reader.EventsSince(ctx, TasksChannel("nsa"), 0, 100)
	require.NoError(t, err)
	require.Len(t, eventsA, 1)
	assert.Equal(t, "a-1", eventsA[0].Payload["task_id"])
}
