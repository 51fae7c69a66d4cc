package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, configDir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte(content), 0644)
	require.NoError(t, err)
}

func TestInitializeWithoutConfigFile(t *testing.T) {
	// A fresh checkout has no pmrunner.yaml; everything runs on defaults
	// with the namespace derived from the working directory.
	configDir := t.TempDir()

	cfg, err := Initialize(context.Background(), configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Namespace.AutoDerived)
	require.NoError(t, ValidateNamespace(cfg.Namespace.Name))

	assert.Equal(t, DefaultQueueConfig(), cfg.Queue)
	assert.Equal(t, DefaultLimitsConfig(), cfg.Limits)
	assert.Equal(t, DefaultReviewConfig(), cfg.Review)
	assert.Equal(t, DefaultRetryConfig(), cfg.Retry)
	assert.Equal(t, DefaultServerConfig(), cfg.Server)

	assert.Equal(t, filepath.Base(cfg.StateDir), cfg.Namespace.Name)
	assert.Equal(t, "pm-runner-queue-"+cfg.Namespace.Name, cfg.TableName())
}

func TestInitializeMergesUserConfigOverDefaults(t *testing.T) {
	configDir := t.TempDir()
	projectDir := t.TempDir()

	writeConfigFile(t, configDir, `
namespace: team-a
project_dir: `+projectDir+`
state_dir: `+filepath.Join(configDir, "state")+`

queue:
  poller_count: 3
  poll_interval: 2s

limits:
  max_files: 10

review:
  max_iterations: 3

planner:
  execution_mode: sequential
`)

	cfg, err := Initialize(context.Background(), configDir)

	require.NoError(t, err)

	// Explicit values applied
	assert.Equal(t, "team-a", cfg.Namespace.Name)
	assert.False(t, cfg.Namespace.AutoDerived)
	assert.Equal(t, 3, cfg.Queue.PollerCount)
	assert.Equal(t, 2*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 10, cfg.Limits.MaxFiles)
	assert.Equal(t, 3, cfg.Review.MaxIterations)
	assert.Equal(t, ExecutionModeSequential, cfg.Planner.ExecutionMode)

	// Unset fields keep defaults
	assert.Equal(t, 10*time.Minute, cfg.Queue.StaleTaskThreshold)
	assert.Equal(t, 10, cfg.Limits.MaxTests)
	assert.Equal(t, 64*1024, cfg.Review.FilePreviewBytes)
	assert.True(t, cfg.Planner.ChunkingEnabled())

	// State dir is namespace-scoped
	assert.Equal(t, filepath.Join(configDir, "state", "team-a"), cfg.StateDir)
}

func TestInitializeExplicitFalseOverridesDefaultTrue(t *testing.T) {
	configDir := t.TempDir()

	writeConfigFile(t, configDir, `
namespace: team-a
planner:
  auto_chunk: false
  analyze_dependencies: false
`)

	cfg, err := Initialize(context.Background(), configDir)

	require.NoError(t, err)
	assert.False(t, cfg.Planner.ChunkingEnabled())
	assert.False(t, cfg.Planner.DependencyAnalysisEnabled())
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()
	writeConfigFile(t, configDir, `{{{`)

	_, err := Initialize(context.Background(), configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()
	writeConfigFile(t, configDir, `
namespace: team-a
limits:
  max_files: 99
`)

	_, err := Initialize(context.Background(), configDir)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "max_files")
}

func TestInitializeRejectsReservedNamespace(t *testing.T) {
	configDir := t.TempDir()
	writeConfigFile(t, configDir, `namespace: default`)

	_, err := Initialize(context.Background(), configDir)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNamespace)
}

func TestInitializeExpandsEnvironmentVariables(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("PMRUNNER_TEST_NS", "env-ns")

	writeConfigFile(t, configDir, `namespace: {{.PMRUNNER_TEST_NS}}`)

	cfg, err := Initialize(context.Background(), configDir)

	require.NoError(t, err)
	assert.Equal(t, "env-ns", cfg.Namespace.Name)
}

func TestLoadYAMLMissingFileIsNotAnError(t *testing.T) {
	loader := &configLoader{configDir: t.TempDir()}

	target := &PMRunnerYAMLConfig{}
	err := loader.loadYAML(ConfigFileName, target)

	require.NoError(t, err)
	assert.Equal(t, &PMRunnerYAMLConfig{}, target)
}

func TestStateDirDefaultsToHomeDirectory(t *testing.T) {
	stateDir, err := resolveStateDir("", "team-a")

	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pm-runner", "state", "team-a"), stateDir)
}

func TestConfigDerivedPaths(t *testing.T) {
	cfg := validTestConfig()
	cfg.StateDir = "/var/lib/pmrunner/team-a"

	assert.Equal(t, "/var/lib/pmrunner/team-a/evidence", cfg.EvidenceDir())
	assert.Equal(t, "/var/lib/pmrunner/team-a/traces", cfg.TracesDir())
	assert.Equal(t, "/var/lib/pmrunner/team-a/reports", cfg.ReportsDir())
}

func TestExecutorWorkingDirFallsBackToProjectDir(t *testing.T) {
	cfg := validTestConfig()
	cfg.Executor.WorkingDir = ""
	cfg.Namespace.ProjectDir = "/src/team-a"

	assert.Equal(t, "/src/team-a", cfg.ExecutorWorkingDir())

	cfg.Executor.WorkingDir = "/elsewhere"
	assert.Equal(t, "/elsewhere", cfg.ExecutorWorkingDir())
}
