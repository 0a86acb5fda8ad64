package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/flowsim/config"
	"github.com/rustyeddy/flowsim/internal/logger"
	"github.com/rustyeddy/flowsim/ledger"
)

var rootCmd = &cobra.Command{
	Use:   "flowsim",
	Short: "A personal finance network simulator",
	Long: `Flowsim models personal finances as a directed graph of income
sources, accounts and expenses, then projects future balances by replaying
scheduled and recurring transfers over a time window.

It provides tools for:
  - Projecting account balances over an arbitrary date range
  - Reporting structural metrics of the money graph
  - Seeding, importing and exporting ledger records
  - Keeping the ledger in a local SQLite database`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgPath   string
	ownerFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "f", "", "path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&ownerFlag, "owner", "", "owner id (overrides config)")
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func owner(cfg *config.Config) string {
	if ownerFlag != "" {
		return ownerFlag
	}
	return cfg.Owner
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg.Log.Level, cfg.Log.Pretty)
}

func openStore(cfg *config.Config) (*ledger.SQLite, error) {
	st, err := ledger.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", cfg.Database.Path, err)
	}
	return st, nil
}
