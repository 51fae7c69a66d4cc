package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateClaimIndexes creates the partial indexes backing the hot queue scans.
// Ent cannot express partial indexes, so they live here and in the SQL
// migrations; test setups that use Ent auto-migration call this directly.
func CreateClaimIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Claim scan: oldest QUEUED task per namespace. The WHERE clause keeps
	// the index tiny regardless of how much terminal history accumulates.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS queue_tasks_claim_scan
		ON queue_tasks (namespace, created_at)
		WHERE status = 'queued'`)
	if err != nil {
		return fmt.Errorf("failed to create claim scan index: %w", err)
	}

	// Recovery sweep: RUNNING tasks whose updated_at went stale.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS queue_tasks_stale_scan
		ON queue_tasks (namespace, updated_at)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create stale scan index: %w", err)
	}

	return nil
}
