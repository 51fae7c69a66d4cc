// Package database provides the PostgreSQL client and migration utilities.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
	"github.com/pm-runner/pmrunner/ent"
)

//go:embed migrations
var migrationsFS embed.FS

// Config holds the connection and pool settings for the queue database.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func (c Config) dsn() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Client is the Ent client plus the raw *sql.DB it runs on. Both views share
// one connection pool: Ent for the queue store, raw SQL for health checks and
// the publisher's insert+NOTIFY transactions.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB exposes the shared connection pool.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an already-open Ent client. Test harnesses use this
// to hand their per-schema clients to code that wants a *Client.
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewClient opens the database, applies pending migrations, and returns a
// ready client. The connection is verified with a ping before any migration
// runs so config mistakes surface as a single clear error.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := applyMigrations(ctx, db, cfg.Database, drv); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{Client: entClient, db: db}, nil
}

// applyMigrations runs the embedded SQL migrations with golang-migrate, then
// creates the partial claim indexes Ent cannot express. Migration files are
// compiled into the binary; the schema source of truth is ent/schema with a
// hand-written SQL file per change under pkg/database/migrations.
func applyMigrations(ctx context.Context, db *stdsql.DB, dbName string, drv *entsql.Driver) error {
	if err := requireEmbeddedMigrations(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, dbName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source. m.Close() would also close the shared *sql.DB
	// handed to postgres.WithInstance, killing the Ent client with it.
	if err := src.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	if err := CreateClaimIndexes(ctx, drv); err != nil {
		return fmt.Errorf("failed to create claim indexes: %w", err)
	}
	return nil
}

// requireEmbeddedMigrations fails fast when the binary was built without any
// .sql files under the embedded migrations directory.
func requireEmbeddedMigrations() error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("no embedded migration files found - binary may be built incorrectly")
		}
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return nil
		}
	}
	return fmt.Errorf("no embedded migration files found - binary may be built incorrectly")
}
