package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/flowsim/config"
	"github.com/rustyeddy/flowsim/sim"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project balances over a date range",
	Long: `Replay the owner's scheduled and recurring transfers over a
half-open window [start, end) and print the projected balance of every
node. Stored balances are not modified.

The window comes from the config file's window section, or from the
--start/--end flags (RFC 3339 timestamps).

Example:
  flowsim simulate -f flowsim.yaml --start 2026-01-01T00:00:00Z --end 2026-03-01T00:00:00Z`,
	RunE: runSimulate,
}

var (
	startFlag string
	endFlag   string
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVar(&startFlag, "start", "", "window start, RFC 3339 (overrides config)")
	simulateCmd.Flags().StringVar(&endFlag, "end", "", "window end, RFC 3339 (overrides config)")
}

func window(cfg *config.Config) (time.Time, time.Time, error) {
	ws, we := startFlag, endFlag
	if ws == "" {
		ws = cfg.Window.Start
	}
	if we == "" {
		we = cfg.Window.End
	}
	if ws == "" || we == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("both --start and --end are required (or a window section in the config)")
	}
	start, err := time.Parse(time.RFC3339, ws)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, we)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse end: %w", err)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start must be before end")
	}
	return start, end, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	start, end, err := window(cfg)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	engine, err := sim.NewEngine(ctx, st, owner(cfg))
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	engine.SetLogger(log)

	result, err := engine.Simulate(ctx, start, end)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	g := engine.Graph()
	fmt.Printf("Projection for %s over [%s, %s):\n\n",
		owner(cfg), start.Format(time.RFC3339), end.Format(time.RFC3339))
	for _, nodeID := range g.VertexIDs() {
		v, _ := g.Vertex(nodeID)
		fmt.Printf("  %-24s %-8s %14s -> %14s\n", v.Name, v.Kind, v.Balance.StringFixed(2), result[nodeID].StringFixed(2))
	}
	fmt.Printf("\nNet flow: %s (conserved)\n", result.NetFlow().StringFixed(2))

	return nil
}
