// Package config loads and validates the lumen.yaml configuration file.
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

// Config is the fully resolved application configuration.
type Config struct {
	Queue    *QueueConfig
	Provider *ProviderConfig
}

// lumenYAMLConfig represents the complete lumen.yaml file structure.
type lumenYAMLConfig struct {
	Queue    *QueueConfig    `yaml:"queue"`
	Provider *ProviderConfig `yaml:"provider"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read lumen.yaml from configDir (missing file is fine, defaults apply)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge with built-in defaults (YAML overrides defaults)
//  5. Validate
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg := &Config{
		Queue:    DefaultQueueConfig(),
		Provider: DefaultProviderConfig(),
	}

	path := filepath.Join(configDir, "lumen.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info("No lumen.yaml found, using built-in defaults")
			return cfg, validate(cfg)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var yamlCfg lumenYAMLConfig
	if err := yaml.Unmarshal(ExpandEnv(data), &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if yamlCfg.Queue != nil {
		if err := mergo.Merge(cfg.Queue, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if yamlCfg.Provider != nil {
		if err := mergo.Merge(cfg.Provider, yamlCfg.Provider, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge provider config: %w", err)
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"provider_mode", cfg.Provider.Mode,
		"poll_interval", cfg.Queue.PollInterval)
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Queue.PollInterval <= 0 {
		return fmt.Errorf("queue.poll_interval must be positive")
	}
	if cfg.Queue.MaxRunTime <= 0 {
		return fmt.Errorf("queue.max_run_time must be positive")
	}
	if cfg.Queue.LeaseTTL <= 0 {
		return fmt.Errorf("queue.lease_ttl must be positive")
	}
	switch cfg.Provider.Mode {
	case ProviderModeStub, ProviderModeGRPC:
	default:
		return fmt.Errorf("provider.mode must be %q or %q, got %q",
			ProviderModeStub, ProviderModeGRPC, cfg.Provider.Mode)
	}
	if cfg.Provider.Mode == ProviderModeGRPC && cfg.Provider.Addr == "" {
		return fmt.Errorf("provider.addr is required when provider.mode is grpc")
	}
	return nil
}
