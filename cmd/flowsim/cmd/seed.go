package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/flowsim/internal/id"
	"github.com/rustyeddy/flowsim/ledger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a small demo ledger",
	Long: `Write a small example ledger into the configured database:
a salary income source feeding a checking account, with one recurring
monthly transfer between them.

Afterwards, try:
  flowsim metrics -f flowsim.yaml
  flowsim simulate -f flowsim.yaml --start 2026-01-01T00:00:00Z --end 2026-03-01T00:00:00Z`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	own := owner(cfg)

	salary := ledger.Node{
		ID:      id.New(),
		Name:    "Salary",
		Kind:    ledger.Income,
		Balance: decimal.Zero,
		Owner:   own,
	}
	checking := ledger.Node{
		ID:      id.New(),
		Name:    "Checking",
		Kind:    ledger.Account,
		Balance: decimal.NewFromInt(1000),
		Owner:   own,
	}
	payroll := ledger.Edge{
		ID:     id.New(),
		Source: salary.ID,
		Target: checking.ID,
		Weight: decimal.NewFromInt(5000),
		Owner:  own,
	}
	payday := ledger.Transaction{
		ID:        id.New(),
		EdgeID:    payroll.ID,
		Amount:    decimal.NewFromInt(5000),
		Scheduled: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Recurring: true,
		Interval:  30 * 24 * time.Hour,
		Owner:     own,
	}

	for _, n := range []ledger.Node{salary, checking} {
		if err := st.PutNode(ctx, n); err != nil {
			return fmt.Errorf("seed node %s: %w", n.Name, err)
		}
	}
	if err := st.PutEdge(ctx, payroll); err != nil {
		return fmt.Errorf("seed edge: %w", err)
	}
	if err := st.PutTransaction(ctx, payday); err != nil {
		return fmt.Errorf("seed transaction: %w", err)
	}

	log.Info().Str("owner", own).Str("db", cfg.Database.Path).Msg("demo ledger written")
	fmt.Printf("Seeded demo ledger for %s in %s:\n", own, cfg.Database.Path)
	fmt.Printf("  Salary (INCOME, 0.00) -> Checking (ACCOUNT, 1000.00)\n")
	fmt.Printf("  5000.00 every 720h starting 2026-01-01\n")

	return nil
}
