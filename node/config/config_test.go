package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pastelnetwork/pastel-oracle-node/node/constant"
	"github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"
)

func TestValidateConfig(t *testing.T) {
	badParams := types.DefaultParams()
	badParams.MinNumberOfOracles = 0

	testCases := []struct {
		name        string
		config      *Config
		expectError bool
		errorMsg    string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "Valid config with all fields",
			config: &Config{
				LogLevel:                     2,
				LogFormat:                    "json",
				StateBackend:                 StateBackendPebbleDB,
				AdminAddresses:               []string{"admin"},
				APIPort:                      9000,
				LedgerCleanupIntervalSeconds: 60,
				LedgerRetentionPeriodSeconds: 600,
				MaxRetries:                   5,
				RetryBackoffSeconds:          2,
			},
			expectError: false,
		},
		{
			name: "Invalid log level (negative)",
			config: &Config{
				LogLevel:       -1,
				LogFormat:      "json",
				AdminAddresses: []string{"admin"},
			},
			expectError: true,
			errorMsg:    "log level must be between 0 and 5",
		},
		{
			name: "Invalid log level (too high)",
			config: &Config{
				LogLevel:       6,
				LogFormat:      "json",
				AdminAddresses: []string{"admin"},
			},
			expectError: true,
			errorMsg:    "log level must be between 0 and 5",
		},
		{
			name: "Invalid log format",
			config: &Config{
				LogLevel:       2,
				LogFormat:      "xml",
				AdminAddresses: []string{"admin"},
			},
			expectError: true,
			errorMsg:    "log format must be 'json' or 'console'",
		},
		{
			name: "Invalid state backend",
			config: &Config{
				LogFormat:      "json",
				StateBackend:   "rocksdb",
				AdminAddresses: []string{"admin"},
			},
			expectError: true,
			errorMsg:    "state backend must be",
		},
		{
			name: "Missing admin",
			config: &Config{
				LogFormat: "json",
			},
			expectError: true,
			errorMsg:    "at least one admin address is required",
		},
		{
			name: "Negative ledger interval",
			config: &Config{
				LogFormat:                    "json",
				AdminAddresses:               []string{"admin"},
				LedgerCleanupIntervalSeconds: -1,
			},
			expectError: true,
			errorMsg:    "ledger intervals must be positive",
		},
		{
			name: "Invalid params override",
			config: &Config{
				LogFormat:      "json",
				AdminAddresses: []string{"admin"},
				Params:         &badParams,
			},
			expectError: true,
			errorMsg:    "invalid oracle params",
		},
		{
			name: "Config with defaults applied",
			config: &Config{
				LogLevel:       2,
				LogFormat:      "json",
				AdminAddresses: []string{"admin"},
			},
			expectError: false,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, StateBackendGoLevelDB, cfg.StateBackend)
				assert.Equal(t, 8080, cfg.APIPort)
				assert.Equal(t, 3600, cfg.LedgerCleanupIntervalSeconds)
				assert.Equal(t, 30*24*3600, cfg.LedgerRetentionPeriodSeconds)
				assert.Equal(t, 3, cfg.MaxRetries)
				assert.Equal(t, 1, cfg.RetryBackoffSeconds)
				assert.Equal(t, types.DefaultParams(), cfg.GenesisParams())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateConfig(tc.config)

			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
				return
			}
			require.NoError(t, err)
			if tc.validate != nil {
				tc.validate(t, tc.config)
			}
		})
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, validateConfig(cfg))

	assert.Equal(t, 1, cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, StateBackendGoLevelDB, cfg.StateBackend)
	assert.NotEmpty(t, cfg.AdminAddresses)
	assert.Nil(t, cfg.Params)
}

func TestSaveAndLoad(t *testing.T) {
	home := t.TempDir()

	params := types.DefaultParams()
	params.MinNumberOfOracles = 4

	cfg := &Config{
		LogLevel:       0,
		LogFormat:      "json",
		AdminAddresses: []string{"admin-a", "admin-b"},
		BridgeContract: "bridge",
		Params:         &params,
	}
	require.NoError(t, Save(cfg, home))

	info, err := os.Stat(filepath.Join(home, constant.ConfigSubdir, constant.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, home, loaded.NodeHome)
	assert.Equal(t, "bridge", loaded.BridgeContract)
	assert.True(t, loaded.IsAdmin("admin-b"))
	assert.False(t, loaded.IsAdmin("bridge"))
	assert.Equal(t, uint32(4), loaded.GenesisParams().MinNumberOfOracles)
	assert.Equal(t, 8080, loaded.APIPort)
}

func TestLoadErrors(t *testing.T) {
	home := t.TempDir()

	_, err := Load(home)
	require.ErrorContains(t, err, "failed to read config file")

	dir := filepath.Join(home, constant.ConfigSubdir)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, constant.ConfigFileName), []byte("{"), 0o600))

	_, err = Load(home)
	require.ErrorContains(t, err, "failed to unmarshal config")

	require.NoError(t, os.WriteFile(filepath.Join(dir, constant.ConfigFileName), []byte(`{"log_format":"json"}`), 0o600))
	_, err = Load(home)
	require.ErrorContains(t, err, "at least one admin address is required")
}
