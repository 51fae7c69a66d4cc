package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/pm-runner/pmrunner/ent/queuetask"
	"github.com/pm-runner/pmrunner/pkg/database"
	testdb "github.com/pm-runner/pmrunner/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestClaimScanQuery(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Three queued tasks in one namespace, one in another
	base := time.Now().Add(-time.Minute)
	for i, id := range []string{"task-b", "task-a", "task-c"} {
		_, err := client.QueueTask.Create().
			SetID(id).
			SetNamespace("team-a").
			SetTaskGroupID(id).
			SetSessionID("sess-" + id).
			SetPrompt("do something").
			SetCreatedAt(base.Add(time.Duration(i) * time.Second)).
			SetUpdatedAt(base.Add(time.Duration(i) * time.Second)).
			Save(ctx)
		require.NoError(t, err)
	}
	_, err := client.QueueTask.Create().
		SetID("task-other-ns").
		SetNamespace("team-b").
		SetTaskGroupID("task-other-ns").
		SetSessionID("sess-x").
		SetPrompt("other namespace").
		SetCreatedAt(base.Add(-time.Hour)).
		SetUpdatedAt(base.Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// The claim scan must return the oldest QUEUED task of the requested
	// namespace only, never leaking across namespaces.
	row := client.DB().QueryRowContext(ctx,
		`SELECT task_id FROM queue_tasks
		WHERE namespace = $1 AND status = 'queued'
		ORDER BY created_at ASC
		LIMIT 1`,
		"team-a",
	)
	var taskID string
	require.NoError(t, row.Scan(&taskID))
	assert.Equal(t, "task-b", taskID)

	// Terminal tasks drop out of the scan.
	err = client.QueueTask.UpdateOneID("task-b").
		SetStatus(queuetask.StatusComplete).
		Exec(ctx)
	require.NoError(t, err)

	row = client.DB().QueryRowContext(ctx,
		`SELECT task_id FROM queue_tasks
		WHERE namespace = $1 AND status = 'queued'
		ORDER BY created_at ASC
		LIMIT 1`,
		"team-a",
	)
	require.NoError(t, row.Scan(&taskID))
	assert.Equal(t, "task-a", taskID)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "test")

		cfg, err := database.LoadConfigFromEnv()

		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "pmrunner", cfg.User)
		assert.Equal(t, "pmrunner", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "admin")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "production")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("DB_MAX_OPEN_CONNS", "50")

		cfg, err := database.LoadConfigFromEnv()

		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, 50, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")

		_, err := database.LoadConfigFromEnv()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}
