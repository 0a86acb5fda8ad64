package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/flowsim/ledger"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Dump the owner's ledger to CSV files",
	Long: `Write nodes.csv, edges.csv and transactions.csv for the owner
into the given directory, in the format accepted by import.

Example:
  flowsim export ./backup`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := args[0]
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := ledger.ExportCSV(cmd.Context(), st, owner(cfg), dir); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("Exported ledger for %s to %s\n", owner(cfg), dir)
	return nil
}
