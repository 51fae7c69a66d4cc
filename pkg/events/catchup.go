package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// CatchupEvent is one replayed row from the queue_events table. ID is the
// serial row id — the same value delivered as db_event_id in live NOTIFY
// payloads, so subscribers can splice catch-up and live streams without
// gaps or duplicates.
type CatchupEvent struct {
	ID      int64
	Payload map[string]any
}

// CatchupReader replays persisted events for subscribers that (re)connect
// after events were published. Query by channel and last-seen id; the
// db_event_id field is injected into each payload from the row id, matching
// what live NOTIFY delivery carries.
type CatchupReader struct {
	db *sql.DB
}

// NewCatchupReader creates a CatchupReader over the given database handle.
func NewCatchupReader(db *sql.DB) *CatchupReader {
	return &CatchupReader{db: db}
}

// EventsSince returns up to limit events on channel with id > sinceID,
// oldest first. Pass sinceID 0 to replay from the beginning.
func (r *CatchupReader) EventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, payload FROM queue_events WHERE channel = $1 AND id > $2 ORDER BY id ASC LIMIT $3`,
		channel, sinceID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("catchup query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []CatchupEvent
	for rows.Next() {
		var (
			id      int64
			rawJSON []byte
		)
		if err := rows.Scan(&id, &rawJSON); err != nil {
			return nil, fmt.Errorf("catchup scan failed: %w", err)
		}

		payload := make(map[string]any)
		if err := json.Unmarshal(rawJSON, &payload); err != nil {
			return nil, fmt.Errorf("catchup payload unmarshal failed for event %d: %w", id, err)
		}
		// The stored payload doesn't contain db_event_id (it's only added to
		// the NOTIFY payload at publish time), so add it here from the row id.
		payload["db_event_id"] = id

		events = append(events, CatchupEvent{ID: id, Payload: payload})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catchup rows error: %w", err)
	}
	return events, nil
}
