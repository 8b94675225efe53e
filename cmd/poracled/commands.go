package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pastelnetwork/pastel-oracle-node/node/config"
	"github.com/pastelnetwork/pastel-oracle-node/node/constant"
	"github.com/pastelnetwork/pastel-oracle-node/node/core"
	"github.com/pastelnetwork/pastel-oracle-node/node/logger"
)

// Set at build time with -ldflags "-X main.Version=... -X main.Commit=...".
var (
	Version = "dev"
	Commit  = ""
)

func InitRootCmd(rootCmd *cobra.Command, v *viper.Viper) {
	rootCmd.AddCommand(initCmd(v))
	rootCmd.AddCommand(startCmd(v))
	rootCmd.AddCommand(exportCmd(v))
	rootCmd.AddCommand(versionCmd())
}

// loadConfig reads the config under --home and applies flag and environment
// overrides on top of it.
func loadConfig(v *viper.Viper) (config.Config, error) {
	cfg, err := config.Load(v.GetString(flagHome))
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if lvl := v.GetInt(flagLogLevel); lvl >= 0 {
		cfg.LogLevel = lvl
	}
	if port := v.GetInt(flagAPIPort); port > 0 {
		cfg.APIPort = port
	}
	return cfg, nil
}

func initCmd(v *viper.Viper) *cobra.Command {
	var (
		admins []string
		bridge string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config to the node home",
		RunE: func(cmd *cobra.Command, args []string) error {
			home := v.GetString(flagHome)
			configFile := filepath.Join(home, constant.ConfigSubdir, constant.ConfigFileName)
			if _, err := os.Stat(configFile); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", configFile)
			}

			cfg, err := config.LoadDefaultConfig()
			if err != nil {
				return err
			}
			if len(admins) > 0 {
				cfg.AdminAddresses = admins
			}
			if bridge != "" {
				cfg.BridgeContract = bridge
			}
			if port := v.GetInt(flagAPIPort); port > 0 {
				cfg.APIPort = port
			}

			if err := config.Save(cfg, home); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📝 Config written to %s\n", configFile)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&admins, "admin", nil, "admin address (repeatable)")
	cmd.Flags().StringVar(&bridge, "bridge-contract", "", "bridge contract allowed to add txids for monitoring")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}

func startCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the oracle node",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			log := logger.Init(cfg)

			n, err := core.New(cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := n.Stop(); err != nil {
					log.Error().Err(err).Msg("failed to stop node cleanly")
				}
			}()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return n.Start(ctx)
		},
	}
}

func exportCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the persistent oracle state as genesis JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			n, err := core.New(cfg, zerolog.Nop())
			if err != nil {
				return err
			}
			defer n.Stop()

			gs, err := n.ExportGenesis(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to export state: %w", err)
			}

			out, err := json.MarshalIndent(gs, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print poracled version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Name:       %s\n", "poracled")
			fmt.Fprintf(cmd.OutOrStdout(), "Version:    %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit:     %s\n", Commit)
		},
	}
}
