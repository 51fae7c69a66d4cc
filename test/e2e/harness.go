// Package e2e boots a complete pm-runner instance — database, queue store,
// pipeline, poller pool, and HTTP control plane — against a scripted
// executor, and drives it the way a client would: over HTTP only.
package e2e

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pm-runner/pmrunner/pkg/api"
	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/database"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/evidence"
	"github.com/pm-runner/pmrunner/pkg/limits"
	"github.com/pm-runner/pmrunner/pkg/locks"
	"github.com/pm-runner/pmrunner/pkg/masking"
	"github.com/pm-runner/pmrunner/pkg/pipeline"
	"github.com/pm-runner/pmrunner/pkg/queue"
	"github.com/pm-runner/pmrunner/pkg/trace"
	testdb "github.com/pm-runner/pmrunner/test/database"
)

// TestApp is one fully wired orchestrator instance bound to a random port.
type TestApp struct {
	Config   *config.Config
	DBClient *database.Client
	Store    *queue.Store
	Executor *ScriptedExecutor
	Pool     *queue.PollerPool
	Server   *api.Server

	// BaseURL is where the HTTP control plane listens,
	// e.g. "http://127.0.0.1:54321".
	BaseURL string
	// WorkDir is the executor working directory scripted steps write into.
	WorkDir string

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	pollerCount int
	exec        *ScriptedExecutor
	tweaks      []func(*config.Config)
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithPollerCount sets the number of poller goroutines.
func WithPollerCount(n int) TestAppOption {
	return func(c *testAppConfig) { c.pollerCount = n }
}

// WithExecutor injects a pre-scripted executor.
func WithExecutor(exec *ScriptedExecutor) TestAppOption {
	return func(c *testAppConfig) { c.exec = exec }
}

// WithConfig applies a config tweak after the defaults are built.
func WithConfig(tweak func(*config.Config)) TestAppOption {
	return func(c *testAppConfig) { c.tweaks = append(c.tweaks, tweak) }
}

// NewTestApp creates and starts a full pm-runner test instance. Shutdown is
// registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{pollerCount: 1}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.exec == nil {
		tc.exec = NewScriptedExecutor()
	}

	workDir := t.TempDir()
	cfg := testConfig(t, workDir, tc.pollerCount)
	for _, tweak := range tc.tweaks {
		tweak(cfg)
	}

	// Database: per-test schema on the shared container.
	dbClient := testdb.NewTestClient(t)

	// Event publishing — real, backed by the test DB's NOTIFY channel.
	publisher := events.NewPublisher(dbClient.DB(), cfg.Namespace.Name)

	store := queue.NewStore(dbClient.Client, cfg.Namespace.Name, publisher)

	// Persistence-boundary services, wired the way main() wires them.
	masker := masking.NewService(cfg.Masking)
	evidenceStore := evidence.NewStore(cfg.EvidenceDir())
	evidenceStore.SetMasker(masker)
	traceRegistry := trace.NewRegistry(cfg.TracesDir())
	traceRegistry.SetMasker(masker)

	taskPipeline := pipeline.New(cfg,
		tc.exec,
		locks.NewManager(time.Minute, config.ExecutorCeiling),
		limits.NewManager(cfg.Limits),
		evidenceStore,
		traceRegistry,
		store,
		publisher,
	)

	ctx := context.Background()
	pool := queue.NewPollerPool(store, taskPipeline, tc.exec, cfg.Queue, publisher, nil)
	require.NoError(t, pool.Start(ctx))

	server := api.NewServer(cfg, dbClient, store, pool)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = server.StartWithListener(ln)
	}()

	app := &TestApp{
		Config:   cfg,
		DBClient: dbClient,
		Store:    store,
		Executor: tc.exec,
		Pool:     pool,
		Server:   server,
		BaseURL:  "http://" + ln.Addr().String(),
		WorkDir:  workDir,
		t:        t,
	}

	t.Cleanup(func() {
		pool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	return app
}

// testConfig builds a config with fast polling and backoff so scenarios
// finish in test time. The background recovery sweep is effectively
// disabled; stale-task recovery has its own integration tests.
func testConfig(t *testing.T, workDir string, pollerCount int) *config.Config {
	t.Helper()

	fast := config.BackoffConfig{Initial: time.Millisecond, Multiplier: 1.0, Max: time.Millisecond}
	cfg := &config.Config{
		Namespace: &config.NamespaceConfig{Name: "e2e", ProjectDir: workDir},
		StateDir:  t.TempDir(),
		Server:    config.DefaultServerConfig(),
		Queue: &config.QueueConfig{
			PollerCount:             pollerCount,
			PollInterval:            50 * time.Millisecond,
			PollIntervalJitter:      0,
			StaleTaskThreshold:      30 * time.Second,
			RecoverySweepInterval:   1 * time.Hour,
			HeartbeatInterval:       30 * time.Second,
			GracefulShutdownTimeout: 10 * time.Second,
		},
		Limits:    config.DefaultLimitsConfig(),
		Review:    config.DefaultReviewConfig(),
		Retry:     config.DefaultRetryConfig(),
		Planner:   config.DefaultPlannerConfig(),
		Executor:  config.DefaultExecutorConfig(),
		Retention: config.DefaultRetentionConfig(),
		Masking:   config.DefaultMaskingConfig(),
	}
	cfg.Executor.WorkingDir = workDir
	cfg.Limits.MaxFiles = 20
	cfg.Retry.Backoff = fast
	cfg.Retry.RateLimitBackoff = fast
	cfg.Retry.TimeoutBackoff = fast
	return cfg
}
