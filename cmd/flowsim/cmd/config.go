package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/flowsim/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a default config file",
	Long: `Write a configuration file with default settings. The format is
chosen by extension: .yaml/.yml for YAML, anything else for JSON.

Example:
  flowsim config init flowsim.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(args[0]); err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", args[0])
	return nil
}
