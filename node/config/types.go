package config

import "github.com/pastelnetwork/pastel-oracle-node/x/oracle/types"

// StateBackend selects the cosmos-db backend of the oracle state.
type StateBackend string

const (
	StateBackendGoLevelDB StateBackend = "goleveldb"
	StateBackendPebbleDB  StateBackend = "pebbledb"
	StateBackendMemDB     StateBackend = "memdb"
)

type Config struct {
	// Log Config
	LogLevel   int    `json:"log_level"`   // e.g., 0 = debug, 1 = info, etc.
	LogFormat  string `json:"log_format"`  // "json" or "console"
	LogSampler bool   `json:"log_sampler"` // if true, samples logs (e.g., 1 in 5)

	// Node Config
	NodeHome     string       `json:"node_home"`     // Node home directory (default: ~/.poracle)
	StateBackend StateBackend `json:"state_backend"` // goleveldb, pebbledb or memdb (default: goleveldb)

	// Access control
	AdminAddresses []string `json:"admin_addresses"` // Addresses allowed to run admin operations
	BridgeContract string   `json:"bridge_contract"` // Bridge contract set at genesis, may be changed later by an admin

	// API Server Config
	APIPort int `json:"api_port"` // Port for the HTTP API (default: 8080)

	// History ledger
	LedgerCleanupIntervalSeconds int `json:"ledger_cleanup_interval_seconds"` // How often to prune the ledger (default: 3600)
	LedgerRetentionPeriodSeconds int `json:"ledger_retention_period_seconds"` // How long consensus records and payouts are kept (default: 30 days)
	MaxRetries                   int `json:"max_retries"`                     // Max attempts for ledger writes (default: 3)
	RetryBackoffSeconds          int `json:"retry_backoff_seconds"`           // Initial backoff between ledger write attempts (default: 1)

	// Oracle params written at genesis; nil means the module defaults.
	Params *types.Params `json:"params,omitempty"`
}

// GenesisParams returns the params used to bootstrap a fresh state.
func (c *Config) GenesisParams() types.Params {
	if c.Params != nil {
		return *c.Params
	}
	return types.DefaultParams()
}

// IsAdmin reports whether addr is one of the configured admins.
func (c *Config) IsAdmin(addr string) bool {
	for _, a := range c.AdminAddresses {
		if a == addr {
			return true
		}
	}
	return false
}
