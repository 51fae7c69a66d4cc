// pm-runner orchestrator server. Provides the HTTP control plane, runs the
// queue pollers, and drives claimed tasks through the planning and review
// pipeline against the executor backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pm-runner/pmrunner/pkg/api"
	"github.com/pm-runner/pmrunner/pkg/cleanup"
	"github.com/pm-runner/pmrunner/pkg/config"
	"github.com/pm-runner/pmrunner/pkg/database"
	"github.com/pm-runner/pmrunner/pkg/events"
	"github.com/pm-runner/pmrunner/pkg/evidence"
	"github.com/pm-runner/pmrunner/pkg/executor"
	"github.com/pm-runner/pmrunner/pkg/limits"
	"github.com/pm-runner/pmrunner/pkg/locks"
	"github.com/pm-runner/pmrunner/pkg/masking"
	"github.com/pm-runner/pmrunner/pkg/pipeline"
	"github.com/pm-runner/pmrunner/pkg/queue"
	"github.com/pm-runner/pmrunner/pkg/trace"
	"github.com/pm-runner/pmrunner/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("PMRUNNER_CONFIG_DIR", "."),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting pm-runner",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration (resolves namespace and state dir)
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Provision the namespace state tree
	for _, dir := range []string{cfg.EvidenceDir(), cfg.TracesDir(), cfg.ReportsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("Failed to create state directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	// 3. Initialize database (pgx pool + embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 4. Event publisher (persist + NOTIFY on the namespace channel)
	eventPublisher := events.NewPublisher(dbClient.DB(), cfg.Namespace.Name)

	// 5. Queue store
	store := queue.NewStore(dbClient.Client, cfg.Namespace.Name, eventPublisher)

	// 6. Executor backend
	// Note: grpc.NewClient dials lazily; the connection is made on first RPC
	var exec executor.Executor
	if cfg.Executor.UseStub {
		exec = executor.NewStubExecutor()
		slog.Warn("Using stub executor, tasks complete without side effects")
	} else {
		grpcClient, err := executor.NewClient(cfg.Executor.GRPCAddress)
		if err != nil {
			slog.Error("Failed to initialize executor client",
				"addr", cfg.Executor.GRPCAddress, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := grpcClient.Close(); err != nil {
				slog.Error("Error closing executor client", "error", err)
			}
		}()
		exec = grpcClient
		slog.Info("Executor client initialized", "addr", cfg.Executor.GRPCAddress)
	}

	// 7. Shared managers and the task pipeline
	lockMgr := locks.NewManager(locks.DefaultTTL, config.ExecutorCeiling)
	limitMgr := limits.NewManager(cfg.Limits)
	masker := masking.NewService(cfg.Masking)
	evidenceStore := evidence.NewStore(cfg.EvidenceDir())
	evidenceStore.SetMasker(masker)
	traceRegistry := trace.NewRegistry(cfg.TracesDir())
	traceRegistry.SetMasker(masker)
	taskPipeline := pipeline.New(cfg, exec, lockMgr, limitMgr, evidenceStore, traceRegistry, store, eventPublisher)

	// 8. Start poller pool (runs the startup stale-task sweep first)
	pool := queue.NewPollerPool(store, taskPipeline, exec, cfg.Queue, eventPublisher, nil)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start poller pool", "error", err)
		os.Exit(1)
	}

	// 9. Start retention service
	retention := cleanup.NewService(cfg.Retention, dbClient.Client, cfg.Namespace.Name)
	retention.Start(ctx)

	// 10. Start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, store, pool)
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("pm-runner started successfully",
		"namespace", cfg.Namespace.Name,
		"pollers", cfg.Queue.PollerCount,
		"port", cfg.Server.Port)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: pollers, then HTTP, then retention, then DB
	pollerShutdownCtx, pollerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer pollerCancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Poller pool stopped gracefully")
	case <-pollerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, in-flight tasks will be requeued by stale recovery")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	retention.Stop()

	slog.Info("Shutdown complete")
}
