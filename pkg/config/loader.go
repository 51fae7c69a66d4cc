package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the single YAML file the loader reads from configDir.
const ConfigFileName = "pmrunner.yaml"

// PMRunnerYAMLConfig represents the complete pmrunner.yaml file structure.
// Every section is optional; omitted sections take built-in defaults.
type PMRunnerYAMLConfig struct {
	Namespace  string           `yaml:"namespace"`
	ProjectDir string           `yaml:"project_dir"`
	StateDir   string           `yaml:"state_dir"`
	Server     *ServerConfig    `yaml:"server"`
	Queue      *QueueConfig     `yaml:"queue"`
	Limits     *LimitsConfig    `yaml:"limits"`
	Review     *ReviewConfig    `yaml:"review"`
	Retry      *RetryConfig     `yaml:"retry"`
	Planner    *PlannerConfig   `yaml:"planner"`
	Executor   *ExecutorConfig  `yaml:"executor"`
	Retention  *RetentionConfig `yaml:"retention"`
	Masking    *MaskingConfig   `yaml:"masking"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load pmrunner.yaml from configDir (missing file → all defaults)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Merge user config over built-in defaults
//  4. Resolve the namespace (explicit or derived from the project path)
//  5. Resolve the namespace-scoped state directory
//  6. Validate all sections
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := NewValidator(cfg).ValidateAll(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"namespace", cfg.Namespace.Name,
		"namespace_auto_derived", cfg.Namespace.AutoDerived,
		"table_name", cfg.TableName(),
		"state_dir", cfg.StateDir)

	return cfg, nil
}

// load is the internal loader (not exported).
func load(configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	userCfg := &PMRunnerYAMLConfig{}
	if err := loader.loadYAML(ConfigFileName, userCfg); err != nil {
		return nil, NewLoadError(ConfigFileName, err)
	}

	// Start each section from defaults, then merge user config on top so
	// unset fields keep their default values.
	server := DefaultServerConfig()
	queue := DefaultQueueConfig()
	limits := DefaultLimitsConfig()
	review := DefaultReviewConfig()
	retry := DefaultRetryConfig()
	planner := DefaultPlannerConfig()
	executor := DefaultExecutorConfig()
	retention := DefaultRetentionConfig()
	masking := DefaultMaskingConfig()

	if userCfg.Server != nil {
		if err := mergo.Merge(server, userCfg.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}
	if userCfg.Queue != nil {
		if err := mergo.Merge(queue, userCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if userCfg.Limits != nil {
		if err := mergo.Merge(limits, userCfg.Limits, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge limits config: %w", err)
		}
	}
	if userCfg.Review != nil {
		if err := mergo.Merge(review, userCfg.Review, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge review config: %w", err)
		}
	}
	if userCfg.Retry != nil {
		if err := mergo.Merge(retry, userCfg.Retry, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retry config: %w", err)
		}
	}
	if userCfg.Planner != nil {
		if err := mergo.Merge(planner, userCfg.Planner, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge planner config: %w", err)
		}
		// mergo treats false as a zero value and keeps the default; the
		// tri-state pointers are resolved manually so explicit false wins.
		if userCfg.Planner.AutoChunk != nil {
			planner.AutoChunk = userCfg.Planner.AutoChunk
		}
		if userCfg.Planner.AnalyzeDependencies != nil {
			planner.AnalyzeDependencies = userCfg.Planner.AnalyzeDependencies
		}
	}
	if userCfg.Executor != nil {
		if err := mergo.Merge(executor, userCfg.Executor, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge executor config: %w", err)
		}
	}
	if userCfg.Retention != nil {
		if err := mergo.Merge(retention, userCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}
	if userCfg.Masking != nil {
		if err := mergo.Merge(masking, userCfg.Masking, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge masking config: %w", err)
		}
		if userCfg.Masking.Enabled != nil {
			masking.Enabled = userCfg.Masking.Enabled
		}
	}

	projectDir := userCfg.ProjectDir
	if projectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		projectDir = wd
	}

	namespace, err := ResolveNamespace(userCfg.Namespace, projectDir)
	if err != nil {
		return nil, err
	}

	stateDir, err := resolveStateDir(userCfg.StateDir, namespace.Name)
	if err != nil {
		return nil, err
	}

	return &Config{
		configDir: configDir,
		Namespace: namespace,
		StateDir:  stateDir,
		Server:    server,
		Queue:     queue,
		Limits:    limits,
		Review:    review,
		Retry:     retry,
		Planner:   planner,
		Executor:  executor,
		Retention: retention,
		Masking:   masking,
	}, nil
}

// resolveStateDir resolves the namespace-scoped state root. The base
// defaults to ~/.pm-runner/state.
func resolveStateDir(base, namespace string) (string, error) {
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory for state dir: %w", err)
		}
		base = filepath.Join(home, ".pm-runner", "state")
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("failed to resolve state dir %q: %w", base, err)
	}
	return filepath.Join(abs, namespace), nil
}

type configLoader struct {
	configDir string
}

// loadYAML reads one YAML file into target. A missing file is not an
// error: a fresh checkout runs entirely on defaults.
func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file found, using defaults", "path", path)
			return nil
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}
	return nil
}
