// Package util provides the shared PostgreSQL fixture for integration tests.
//
// Every test gets an isolated schema inside one shared database. Locally the
// database is a testcontainer started once per package; in CI it is the
// service container named by CI_DATABASE_URL.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/pm-runner/pmrunner/ent"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var shared struct {
	once    sync.Once
	connStr string
	err     error
}

// SetupTestDatabase creates a fresh schema for the calling test, runs Ent
// auto-migration in it, and returns the Ent client plus the raw pool. The
// schema is dropped and both handles closed via t.Cleanup.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()

	base := GetBaseConnectionString(t)
	schemaName := GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	_ = admin.Close()
	t.Logf("Created test schema: %s", schemaName)

	// The search_path rides on the connection string so every pooled
	// connection lands in the test schema, not just the first one.
	db, err := stdsql.Open("pgx", AddSearchPathToConnString(base, schemaName))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		_, err := db.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
		if err != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schemaName, err)
		}
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// GetBaseConnectionString returns the connection string of the shared
// database without any search_path. LISTEN subscribers and multi-pool tests
// use it to open dedicated connections.
func GetBaseConnectionString(t *testing.T) string {
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return url
	}

	shared.once.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared PostgreSQL testcontainer for all tests")

		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			shared.err = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}
		shared.connStr, shared.err = container.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, shared.err, "Failed to setup shared test container")
	return shared.connStr
}

// GenerateSchemaName derives a unique schema name from the test name,
// sanitized and truncated to stay inside PostgreSQL's 63-char identifier
// limit, with a random suffix so parallel runs of one test never collide.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate random bytes for schema name: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends a search_path parameter so every pooled
// connection opens into the given schema.
func AddSearchPathToConnString(connStr, schemaName string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schemaName
}
