package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scbunn/neomodel/config"
	"github.com/scbunn/neomodel/observability"
)

var (
	configFile string

	cfg    *config.Config
	logger *observability.Logger
)

var rootCmd = &cobra.Command{
	Use:   "neomodel",
	Short: "neomodel - typed object-graph mapping for Neo4j",
	Long: `neomodel maps typed node models to Neo4j property graphs.

The CLI offers a connectivity check and a node browser against the
database configured in the config file.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "neomodel.yaml",
		"path to the configuration file")
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig loads configuration and builds the logger before any
// command runs. Missing config files fall back to defaults.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	loader := config.NewLoader(config.NewValidator())
	loaded, err := loader.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	cfg = loaded

	level := observability.ParseLevel(cfg.Logging.Level)
	var handler = observability.NewTextHandler(os.Stderr, level)
	if cfg.Logging.Format == "json" {
		handler = observability.NewJSONHandler(os.Stderr, level)
	}
	logger = observability.NewLogger(handler, "neomodel")

	return nil
}
