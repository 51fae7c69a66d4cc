package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pm-runner/pmrunner/ent"
	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/models"
	"github.com/pm-runner/pmrunner/pkg/planner"
)

// StatusPublisher broadcasts task lifecycle transitions.
//
// Implemented by events.Publisher; defined as an interface here to keep the
// store decoupled from the event plane and enable testing without a live
// NOTIFY channel. A nil publisher disables broadcasting; publish failures
// are logged and never abort the transition.
type StatusPublisher interface {
	PublishTaskStatus(ctx context.Context, payload events.TaskStatusPayload) error
}

// Store owns all task records in one namespace. Every read and write is
// namespace-scoped; rows from other namespaces are invisible. Status values
// are stored lowercase and converted to the wire-format enums at this
// boundary.
type Store struct {
	client    *ent.Client
	namespace string
	pub       StatusPublisher
}

// NewStore creates a Store scoped to one namespace. pub may be nil.
func NewStore(client *ent.Client, namespace string, pub StatusPublisher) *Store {
	return &Store{client: client, namespace: namespace, pub: pub}
}

// Namespace returns the isolation key this store is scoped to.
func (s *Store) Namespace() string {
	return s.namespace
}

// EnqueueInput carries the caller-supplied fields of a new task.
// TaskID, TaskType, SessionID, and TaskGroupID are optional.
type EnqueueInput struct {
	SessionID   string
	TaskGroupID string
	Prompt      string
	TaskID      string
	TaskType    models.TaskType
}

// StatusUpdate carries the optional fields of a status transition.
type StatusUpdate struct {
	ErrorMessage string
	Output       string
}

// Enqueue inserts a new QUEUED task. A missing task id is generated, a
// missing task type is inferred from the prompt, a missing session id
// defaults to "sess-{task_id}", and a missing task group id defaults to the
// task id (a single-task thread).
func (s *Store) Enqueue(ctx context.Context, in EnqueueInput) (*ent.QueueTask, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, fmt.Errorf("prompt must not be empty")
	}

	taskType := in.TaskType
	if taskType == "" {
		taskType = planner.InferTaskType(in.Prompt)
	}
	if !taskType.IsValid() {
		return nil, fmt.Errorf("invalid task type %q", in.TaskType)
	}

	taskID := in.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}
	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = "sess-" + taskID
	}
	taskGroupID := in.TaskGroupID
	if taskGroupID == "" {
		taskGroupID = taskID
	}

	now := time.Now()
	task, err := s.client.QueueTask.Create().
		SetID(taskID).
		SetNamespace(s.namespace).
		SetTaskGroupID(taskGroupID).
		SetSessionID(sessionID).
		SetStatus(queuetask.StatusQueued).
		SetPrompt(in.Prompt).
		SetTaskType(entTaskType(taskType)).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		SetEvents([]models.TaskEvent{statusEvent(models.TaskStatusQueued, "", now)}).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: %s", ErrTaskExists, taskID)
		}
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	s.publishStatus(ctx, task)
	return task, nil
}

// Claim atomically selects the oldest QUEUED task in the namespace and
// transitions it to RUNNING. At most one concurrent claimer wins a given
// task: the transition is a conditional update predicated on the status
// still being QUEUED, so a loser gets ErrAlreadyClaimed without mutating
// the row. ErrNoTasksAvailable means the queue is empty.
func (s *Store) Claim(ctx context.Context) (*ent.QueueTask, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	oldest, err := tx.QueueTask.Query().
		Where(
			queuetask.NamespaceEQ(s.namespace),
			queuetask.StatusEQ(queuetask.StatusQueued),
		).
		Order(ent.Asc(queuetask.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query queued tasks: %w", err)
	}

	now := time.Now()
	n, err := tx.QueueTask.Update().
		Where(
			queuetask.IDEQ(oldest.ID),
			queuetask.StatusEQ(queuetask.StatusQueued),
		).
		SetStatus(queuetask.StatusRunning).
		SetUpdatedAt(now).
		SetEvents(append(oldest.Events, statusEvent(models.TaskStatusRunning, "", now))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyClaimed, oldest.ID)
	}

	claimed, err := tx.QueueTask.Get(ctx, oldest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	s.publishStatus(ctx, claimed)
	return claimed, nil
}

// UpdateStatus transitions a task to next, refusing moves the state machine
// forbids. Recovery (RUNNING back to QUEUED) is deliberately not reachable
// here; it belongs to RecoverStaleTasks.
func (s *Store) UpdateStatus(ctx context.Context, taskID string, next models.TaskStatus, upd StatusUpdate) (*ent.QueueTask, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("invalid task status %q", next)
	}
	task, err := s.getOwned(ctx, taskID)
	if err != nil {
		return nil, err
	}
	current := WireStatus(task.Status)
	if !current.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: cannot move %s task to %s", ErrIllegalTransition, current, next)
	}

	now := time.Now()
	q := s.client.QueueTask.Update().
		Where(
			queuetask.IDEQ(taskID),
			queuetask.StatusEQ(task.Status),
		).
		SetStatus(entStatus(next)).
		SetUpdatedAt(now).
		SetEvents(append(task.Events, statusEvent(next, upd.ErrorMessage, now)))
	if upd.Output != "" {
		q.SetOutput(upd.Output)
	}
	if upd.ErrorMessage != "" {
		q.SetErrorMessage(upd.ErrorMessage)
	}

	n, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrConcurrentModification, taskID)
	}
	return s.refetchAndPublish(ctx, taskID)
}

// SetAwaitingResponse transitions a RUNNING task to AWAITING_RESPONSE and
// stores the clarification. Partial output, when present, is persisted so
// READ_INFO and REPORT tasks keep what they produced before the question.
func (s *Store) SetAwaitingResponse(ctx context.Context, taskID string, clarification models.Clarification, output string) (*ent.QueueTask, error) {
	task, err := s.getOwned(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != queuetask.StatusRunning {
		return nil, fmt.Errorf("%w: cannot move %s task to %s",
			ErrIllegalTransition, WireStatus(task.Status), models.TaskStatusAwaitingResponse)
	}
	if clarification.AskedAt.IsZero() {
		clarification.AskedAt = time.Now()
	}

	now := time.Now()
	q := s.client.QueueTask.Update().
		Where(
			queuetask.IDEQ(taskID),
			queuetask.StatusEQ(queuetask.StatusRunning),
		).
		SetStatus(queuetask.StatusAwaitingResponse).
		SetClarification(&clarification).
		SetUpdatedAt(now).
		SetEvents(append(task.Events, statusEvent(models.TaskStatusAwaitingResponse, clarification.Question, now)))
	if output != "" {
		q.SetOutput(output)
	}

	n, err := q.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set awaiting response: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrConcurrentModification, taskID)
	}
	return s.refetchAndPublish(ctx, taskID)
}

// Reply answers an AWAITING_RESPONSE task and requeues it. The response is
// appended to the prompt context, the clarification is cleared, and the
// attempt counter is incremented.
func (s *Store) Reply(ctx context.Context, taskID, response string) (*ent.QueueTask, error) {
	if strings.TrimSpace(response) == "" {
		return nil, fmt.Errorf("response must not be empty")
	}
	task, err := s.getOwned(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != queuetask.StatusAwaitingResponse {
		return nil, fmt.Errorf("%w: cannot reply to a %s task",
			ErrIllegalTransition, WireStatus(task.Status))
	}

	question := ""
	if task.Clarification != nil {
		question = task.Clarification.Question
	}
	prompt := fmt.Sprintf("%s\n\nClarification: %s\nUser response: %s", task.Prompt, question, response)

	now := time.Now()
	n, err := s.client.QueueTask.Update().
		Where(
			queuetask.IDEQ(taskID),
			queuetask.StatusEQ(queuetask.StatusAwaitingResponse),
		).
		SetStatus(queuetask.StatusQueued).
		SetPrompt(prompt).
		ClearClarification().
		AddAttempt(1).
		SetUpdatedAt(now).
		SetEvents(append(task.Events, statusEvent(models.TaskStatusQueued, "clarification reply received", now))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to requeue replied task: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrConcurrentModification, taskID)
	}
	return s.refetchAndPublish(ctx, taskID)
}

// Cancel transitions a QUEUED, RUNNING, or AWAITING_RESPONSE task to
// CANCELLED. Terminal tasks refuse with ErrIllegalTransition. Cancelling a
// RUNNING task only flips the record; aborting its in-flight pipeline is
// the poller pool's job (CancelTask).
func (s *Store) Cancel(ctx context.Context, taskID string) (*ent.QueueTask, error) {
	task, err := s.getOwned(ctx, taskID)
	if err != nil {
		return nil, err
	}
	current := WireStatus(task.Status)
	if !current.CanTransitionTo(models.TaskStatusCancelled) {
		return nil, fmt.Errorf("%w: cannot cancel a %s task", ErrIllegalTransition, current)
	}

	now := time.Now()
	n, err := s.client.QueueTask.Update().
		Where(
			queuetask.IDEQ(taskID),
			queuetask.StatusEQ(task.Status),
		).
		SetStatus(queuetask.StatusCancelled).
		SetUpdatedAt(now).
		SetEvents(append(task.Events, statusEvent(models.TaskStatusCancelled, "", now))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrConcurrentModification, taskID)
	}
	return s.refetchAndPublish(ctx, taskID)
}

// AppendEvent appends one entry to the task's ordered event log. An event
// timestamp later than updated_at advances it; older timestamps leave it
// unchanged so updated_at stays monotonic. The log assumes a single writer
// per task (the poller that claimed it).
func (s *Store) AppendEvent(ctx context.Context, taskID string, event models.TaskEvent) error {
	task, err := s.getOwned(ctx, taskID)
	if err != nil {
		return err
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	upd := s.client.QueueTask.UpdateOneID(taskID).
		SetEvents(append(task.Events, event))
	if event.Timestamp.After(task.UpdatedAt) {
		upd.SetUpdatedAt(event.Timestamp)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append task event: %w", err)
	}
	return nil
}

// Heartbeat refreshes updated_at on a RUNNING task so the stale-task sweep
// does not requeue it mid-run. A task that already left RUNNING is ignored.
func (s *Store) Heartbeat(ctx context.Context, taskID string) error {
	_, err := s.client.QueueTask.Update().
		Where(
			queuetask.IDEQ(taskID),
			queuetask.NamespaceEQ(s.namespace),
			queuetask.StatusEQ(queuetask.StatusRunning),
		).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat task: %w", err)
	}
	return nil
}

// GetItem retrieves a single task by id.
func (s *Store) GetItem(ctx context.Context, taskID string) (*ent.QueueTask, error) {
	return s.getOwned(ctx, taskID)
}

// List retrieves tasks matching the filters, ordered by created_at ascending.
func (s *Store) List(ctx context.Context, filters models.TaskFilters) ([]*ent.QueueTask, error) {
	q := s.client.QueueTask.Query().
		Where(queuetask.NamespaceEQ(s.namespace))
	if filters.Status != "" {
		if !filters.Status.IsValid() {
			return nil, fmt.Errorf("invalid status filter %q", filters.Status)
		}
		q = q.Where(queuetask.StatusEQ(entStatus(filters.Status)))
	}
	if filters.SessionID != "" {
		q = q.Where(queuetask.SessionIDEQ(filters.SessionID))
	}
	if filters.TaskGroupID != "" {
		q = q.Where(queuetask.TaskGroupIDEQ(filters.TaskGroupID))
	}
	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		q = q.Offset(filters.Offset)
	}

	tasks, err := q.Order(ent.Asc(queuetask.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetBySession retrieves all tasks under one evidence session.
func (s *Store) GetBySession(ctx context.Context, sessionID string) ([]*ent.QueueTask, error) {
	return s.List(ctx, models.TaskFilters{SessionID: sessionID})
}

// GetByStatus retrieves all tasks in one lifecycle status.
func (s *Store) GetByStatus(ctx context.Context, status models.TaskStatus) ([]*ent.QueueTask, error) {
	return s.List(ctx, models.TaskFilters{Status: status})
}

// GetByTaskGroup retrieves all tasks in one conversation thread.
func (s *Store) GetByTaskGroup(ctx context.Context, taskGroupID string) ([]*ent.QueueTask, error) {
	return s.List(ctx, models.TaskFilters{TaskGroupID: taskGroupID})
}

// GetAllTaskGroups summarizes every task group in the namespace, ordered by
// latest activity ascending.
func (s *Store) GetAllTaskGroups(ctx context.Context) ([]models.TaskGroupSummary, error) {
	var rows []struct {
		TaskGroupID string    `json:"task_group_id"`
		Count       int       `json:"count"`
		Latest      time.Time `json:"max"`
	}
	err := s.client.QueueTask.Query().
		Where(queuetask.NamespaceEQ(s.namespace)).
		GroupBy(queuetask.FieldTaskGroupID).
		Aggregate(ent.Count(), ent.Max(queuetask.FieldCreatedAt)).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task groups: %w", err)
	}

	groups := make([]models.TaskGroupSummary, 0, len(rows))
	for _, r := range rows {
		groups = append(groups, models.TaskGroupSummary{
			TaskGroupID:     r.TaskGroupID,
			TaskCount:       r.Count,
			LatestCreatedAt: r.Latest,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].LatestCreatedAt.Before(groups[j].LatestCreatedAt)
	})
	return groups, nil
}

// CountByStatus returns the task count per lifecycle status, with zero
// entries for statuses that have no tasks. The QUEUED entry is the queue
// depth reported by health.
func (s *Store) CountByStatus(ctx context.Context) (map[models.TaskStatus]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.QueueTask.Query().
		Where(queuetask.NamespaceEQ(s.namespace)).
		GroupBy(queuetask.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by status: %w", err)
	}

	counts := map[models.TaskStatus]int{
		models.TaskStatusQueued:           0,
		models.TaskStatusRunning:          0,
		models.TaskStatusComplete:         0,
		models.TaskStatusError:            0,
		models.TaskStatusCancelled:        0,
		models.TaskStatusAwaitingResponse: 0,
	}
	for _, r := range rows {
		counts[WireStatus(queuetask.Status(r.Status))] = r.Count
	}
	return counts, nil
}

// RecoverStaleTasks requeues RUNNING tasks whose updated_at is older than
// maxAge. This is the distinguished internal RUNNING-to-QUEUED transition:
// each row is requeued at most once (the conditional update re-checks both
// status and staleness), its attempt counter is incremented, and the number
// of recovered tasks is returned. Called on startup and by the periodic
// sweep.
func (s *Store) RecoverStaleTasks(ctx context.Context, maxAge time.Duration) (int, error) {
	threshold := time.Now().Add(-maxAge)

	stale, err := s.client.QueueTask.Query().
		Where(
			queuetask.NamespaceEQ(s.namespace),
			queuetask.StatusEQ(queuetask.StatusRunning),
			queuetask.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale tasks: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	slog.Warn("Detected stale running tasks", "count", len(stale), "namespace", s.namespace)

	recovered := 0
	for _, task := range stale {
		requeued, err := s.requeueStaleTask(ctx, task, threshold)
		if err != nil {
			slog.Error("Failed to requeue stale task", "task_id", task.ID, "error", err)
			continue
		}
		if requeued {
			recovered++
		}
	}
	return recovered, nil
}

// requeueStaleTask requeues a single stale task. Returns false when the row
// was claimed or finished concurrently and nothing was written.
func (s *Store) requeueStaleTask(ctx context.Context, task *ent.QueueTask, threshold time.Time) (bool, error) {
	now := time.Now()
	message := fmt.Sprintf("requeued: no heartbeat since %s", task.UpdatedAt.Format(time.RFC3339))

	n, err := s.client.QueueTask.Update().
		Where(
			queuetask.IDEQ(task.ID),
			queuetask.StatusEQ(queuetask.StatusRunning),
			queuetask.UpdatedAtLT(threshold),
		).
		SetStatus(queuetask.StatusQueued).
		AddAttempt(1).
		SetUpdatedAt(now).
		SetEvents(append(task.Events, statusEvent(models.TaskStatusQueued, message, now))).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to requeue task: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	requeued, err := s.client.QueueTask.Get(ctx, task.ID)
	if err != nil {
		return true, fmt.Errorf("failed to refetch requeued task: %w", err)
	}
	slog.Info("Stale task requeued", "task_id", task.ID, "attempt", requeued.Attempt)
	s.publishStatus(ctx, requeued)
	return true, nil
}

// getOwned fetches a task by id and verifies it belongs to this namespace.
func (s *Store) getOwned(ctx context.Context, taskID string) (*ent.QueueTask, error) {
	task, err := s.client.QueueTask.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task.Namespace != s.namespace {
		return nil, fmt.Errorf("%w: %s", ErrNamespaceMismatch, taskID)
	}
	return task, nil
}

// refetchAndPublish reloads the task after a conditional update and
// broadcasts its new status.
func (s *Store) refetchAndPublish(ctx context.Context, taskID string) (*ent.QueueTask, error) {
	task, err := s.client.QueueTask.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch task: %w", err)
	}
	s.publishStatus(ctx, task)
	return task, nil
}

// publishStatus broadcasts a task.status event, best effort.
func (s *Store) publishStatus(ctx context.Context, task *ent.QueueTask) {
	if s.pub == nil {
		return
	}
	payload := events.TaskStatusPayload{
		Type:        events.EventTypeTaskStatus,
		Namespace:   s.namespace,
		TaskID:      task.ID,
		TaskGroupID: task.TaskGroupID,
		SessionID:   task.SessionID,
		Status:      WireStatus(task.Status),
		Attempt:     task.Attempt,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if task.ErrorMessage != nil {
		payload.ErrorMessage = *task.ErrorMessage
	}
	if err := s.pub.PublishTaskStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish task.status event", "task_id", task.ID, "error", err)
	}
}

// statusEvent builds the event-log entry for one lifecycle transition.
func statusEvent(status models.TaskStatus, message string, ts time.Time) models.TaskEvent {
	return models.TaskEvent{
		Type:      events.EventTypeTaskStatus,
		Timestamp: ts,
		Message:   message,
		Data:      map[string]any{"status": string(status)},
	}
}

// WireStatus converts a stored status to its wire-format enum.
func WireStatus(s queuetask.Status) models.TaskStatus {
	return models.TaskStatus(strings.ToUpper(string(s)))
}

// WireTaskType converts a stored task type to its wire-format enum.
func WireTaskType(t queuetask.TaskType) models.TaskType {
	return models.TaskType(strings.ToUpper(string(t)))
}

// entStatus converts a wire-format status to its stored form.
func entStatus(s models.TaskStatus) queuetask.Status {
	return queuetask.Status(strings.ToLower(string(s)))
}

// entTaskType converts a wire-format task type to its stored form.
func entTaskType(t models.TaskType) queuetask.TaskType {
	return queuetask.TaskType(strings.ToLower(string(t)))
}
