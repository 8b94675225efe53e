package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pastelnetwork/pastel-oracle-node/node/constant"
)

const (
	flagHome     = "home"
	flagLogLevel = "log-level"
	flagAPIPort  = "api-port"
)

// NewRootCmd builds the poracled command tree. Persistent flags can also be
// set through PORACLE_* environment variables, e.g. PORACLE_HOME.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(constant.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "poracled",
		Short:         "Pastel TxID Status Oracle Daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagHome, constant.DefaultNodeHome, "node home directory")
	rootCmd.PersistentFlags().Int(flagLogLevel, -1, "log level override (0 = debug ... 5 = panic)")
	rootCmd.PersistentFlags().Int(flagAPIPort, 0, "api port override")
	_ = v.BindPFlags(rootCmd.PersistentFlags())

	InitRootCmd(rootCmd, v)

	return rootCmd
}
