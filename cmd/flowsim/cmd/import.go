package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xyproto/unzip"

	"github.com/rustyeddy/flowsim/ledger"
)

var importCmd = &cobra.Command{
	Use:   "import <nodes.csv> <edges.csv> <transactions.csv> | import <bundle.zip>",
	Short: "Load ledger records from CSV files or a zip bundle",
	Long: `Import nodes, edges and transactions into the configured
database. Accepts three CSV files (each may be .xz compressed), or a
single zip bundle containing nodes.csv, edges.csv and transactions.csv.

Examples:
  flowsim import nodes.csv edges.csv transactions.csv
  flowsim import transactions.csv.xz nodes.csv edges.csv
  flowsim import ledger-bundle.zip`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	nodesPath, edgesPath, txnsPath, err := importPaths(args)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()

	nodes, err := ledger.ImportNodes(ctx, st, nodesPath)
	if err != nil {
		return fmt.Errorf("import nodes: %w", err)
	}
	edges, err := ledger.ImportEdges(ctx, st, edgesPath)
	if err != nil {
		return fmt.Errorf("import edges: %w", err)
	}
	txns, err := ledger.ImportTransactions(ctx, st, txnsPath)
	if err != nil {
		return fmt.Errorf("import transactions: %w", err)
	}

	log.Info().Int("nodes", nodes).Int("edges", edges).Int("transactions", txns).Msg("import complete")
	fmt.Printf("Imported %d nodes, %d edges, %d transactions into %s\n",
		nodes, edges, txns, cfg.Database.Path)

	return nil
}

// importPaths resolves the three CSV paths from the arguments, extracting
// a zip bundle into a temp directory when one is given.
func importPaths(args []string) (nodes, edges, txns string, err error) {
	if len(args) == 1 && strings.HasSuffix(args[0], ".zip") {
		dir, err := os.MkdirTemp("", "flowsim-import-*")
		if err != nil {
			return "", "", "", err
		}
		if err := unzip.Extract(args[0], dir); err != nil {
			return "", "", "", fmt.Errorf("extract %s: %w", args[0], err)
		}
		return filepath.Join(dir, "nodes.csv"),
			filepath.Join(dir, "edges.csv"),
			filepath.Join(dir, "transactions.csv"), nil
	}

	if len(args) != 3 {
		return "", "", "", fmt.Errorf("expected three CSV files or one .zip bundle")
	}

	// Accept the three files in any order, keyed by filename.
	for _, a := range args {
		name := strings.TrimSuffix(filepath.Base(a), ".xz")
		switch name {
		case "nodes.csv":
			nodes = a
		case "edges.csv":
			edges = a
		case "transactions.csv":
			txns = a
		default:
			return "", "", "", fmt.Errorf("unrecognized ledger file %q (want nodes.csv, edges.csv, transactions.csv)", a)
		}
	}
	if nodes == "" || edges == "" || txns == "" {
		return "", "", "", fmt.Errorf("need nodes.csv, edges.csv and transactions.csv")
	}
	return nodes, edges, txns, nil
}
