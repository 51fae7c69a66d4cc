package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher publishes task events for NOTIFY delivery.
// Persistent events are stored in the queue_events table then broadcast via
// NOTIFY; transient events (poller lifecycle) are broadcast only.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Internally, payloads are marshaled to JSON and routed to the
// namespace channel via persistAndNotify or notifyOnly.
type Publisher struct {
	db        *sql.DB
	namespace string
	channel   string
}

// NewPublisher creates a Publisher scoped to one namespace.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB, namespace string) *Publisher {
	return &Publisher{
		db:        db,
		namespace: namespace,
		channel:   TasksChannel(namespace),
	}
}

// Namespace returns the namespace this publisher is scoped to.
func (p *Publisher) Namespace() string {
	return p.namespace
}

// --- Typed public methods ---

// PublishTaskStatus persists and broadcasts a task.status event.
// Used for every task lifecycle transition.
func (p *Publisher) PublishTaskStatus(ctx context.Context, payload TaskStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TaskID, payloadJSON)
}

// PublishTaskProgress persists and broadcasts a task.progress event.
// Used for review iteration and chunking pipeline steps.
func (p *Publisher) PublishTaskProgress(ctx context.Context, payload TaskProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal TaskProgressPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TaskID, payloadJSON)
}

// PublishSubtaskStatus persists and broadcasts a subtask.status event.
// Used for subtask lifecycle transitions inside a chunked task.
func (p *Publisher) PublishSubtaskStatus(ctx context.Context, payload SubtaskStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SubtaskStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TaskID, payloadJSON)
}

// PublishChunking persists and broadcasts a task.chunking event.
// Published once per task when the planner decomposes it.
func (p *Publisher) PublishChunking(ctx context.Context, payload ChunkingPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ChunkingPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.TaskID, payloadJSON)
}

// PublishPollerStatus broadcasts a poller.status transient event (no DB
// persistence). Poller lifecycle has no owning task row to catch up from.
func (p *Publisher) PublishPollerStatus(ctx context.Context, payload PollerStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal PollerStatusPayload: %w", err)
	}
	return p.notifyOnly(ctx, payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to queue_events and
// broadcasts via NOTIFY in a single transaction (pg_notify is transactional —
// held until COMMIT). The serial row id is injected into the NOTIFY payload
// as db_event_id so subscribers can track their catch-up cursor.
func (p *Publisher) persistAndNotify(ctx context.Context, taskID string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to queue_events (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO queue_events (namespace, task_id, channel, payload, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		p.namespace, taskID, p.channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", p.channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", p.channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the subscriber
// needs to fetch the complete event from the queue_events table.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		Namespace string `json:"namespace"`
		TaskID    string `json:"task_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"namespace": routing.Namespace,
		"task_id":   routing.TaskID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
