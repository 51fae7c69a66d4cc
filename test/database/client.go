// Package database provides ready-made database clients for integration tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/pm-runner/pmrunner/pkg/database"
	"github.com/pm-runner/pmrunner/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient returns a *database.Client bound to a fresh per-test schema.
// Ent auto-migration builds the tables; the partial claim indexes are added
// separately since Ent's schema cannot express them. Schema drop and
// connection close are registered by the underlying fixture.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateClaimIndexes(context.Background(), drv))

	return database.NewClientFromEnt(entClient, db)
}
