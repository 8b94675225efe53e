package constant

import "os"

// <NodeDir>/                    (e.g., /home/oracle/.poracle)
// └── config/
//	└── poracled_config.json
// └── data/
//	└── oracle_state.db/
//	└── ledger.db

const (
	NodeDir = ".poracle"

	ConfigSubdir   = "config"
	ConfigFileName = "poracled_config.json"

	DataSubdir     = "data"
	StateDBName    = "oracle_state"
	LedgerFileName = "ledger.db"

	// EnvPrefix prefixes the environment variables bound to CLI flags.
	EnvPrefix = "PORACLE"
)

var DefaultNodeHome = os.ExpandEnv("$HOME/") + NodeDir
