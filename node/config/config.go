package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pastelnetwork/pastel-oracle-node/node/constant"
)

//go:embed default_config.json
var defaultConfigJSON []byte

func validateConfig(cfg *Config) error {
	// Validate log level
	if cfg.LogLevel < 0 || cfg.LogLevel > 5 {
		return fmt.Errorf("log level must be between 0 and 5")
	}

	// Validate log format
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return fmt.Errorf("log format must be 'json' or 'console'")
	}

	// Set defaults for state config
	if cfg.StateBackend == "" {
		cfg.StateBackend = StateBackendGoLevelDB
	}
	switch cfg.StateBackend {
	case StateBackendGoLevelDB, StateBackendPebbleDB, StateBackendMemDB:
	default:
		return fmt.Errorf("state backend must be 'goleveldb', 'pebbledb' or 'memdb'")
	}

	if len(cfg.AdminAddresses) == 0 {
		return fmt.Errorf("at least one admin address is required")
	}

	// Set defaults for API server
	if cfg.APIPort == 0 {
		cfg.APIPort = 8080
	}
	if cfg.APIPort < 0 || cfg.APIPort > 65535 {
		return fmt.Errorf("api port must be between 1 and 65535")
	}

	// Set defaults for ledger cleanup
	if cfg.LedgerCleanupIntervalSeconds == 0 {
		cfg.LedgerCleanupIntervalSeconds = 3600
	}
	if cfg.LedgerRetentionPeriodSeconds == 0 {
		cfg.LedgerRetentionPeriodSeconds = 30 * 24 * 3600
	}
	if cfg.LedgerCleanupIntervalSeconds < 0 || cfg.LedgerRetentionPeriodSeconds < 0 {
		return fmt.Errorf("ledger intervals must be positive")
	}

	// Set defaults for ledger retries
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoffSeconds == 0 {
		cfg.RetryBackoffSeconds = 1
	}

	if cfg.Params != nil {
		if err := cfg.Params.ValidateBasic(); err != nil {
			return fmt.Errorf("invalid oracle params: %w", err)
		}
	}

	return nil
}

// Save writes the given config to <NodeDir>/config/poracled_config.json.
func Save(cfg *Config, basePath string) error {
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	configDir := filepath.Join(basePath, constant.ConfigSubdir)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, constant.ConfigFileName)
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads, validates and returns the config from
// <BasePath>/config/poracled_config.json. NodeHome defaults to basePath.
func Load(basePath string) (Config, error) {
	configFile := filepath.Join(basePath, constant.ConfigSubdir, constant.ConfigFileName)
	data, err := os.ReadFile(filepath.Clean(configFile))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.NodeHome == "" {
		cfg.NodeHome = basePath
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDefaultConfig loads the default configuration from embedded JSON
func LoadDefaultConfig() (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(defaultConfigJSON, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	return &cfg, nil
}
