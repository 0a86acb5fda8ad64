// sim/engine.go
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/flowsim/graph"
	"github.com/rustyeddy/flowsim/ledger"
)

// Engine projects balances for exactly one owner. The graph snapshot is
// loaded once at construction and never mutated, so an Engine holds no
// locks; run one per owner, concurrently if the store allows it.
type Engine struct {
	owner string
	graph *graph.Graph
	store ledger.Store
	log   zerolog.Logger
}

// NewEngine loads owner's graph from the store and returns an engine over
// that snapshot. Store failures propagate unchanged; an owner with no
// records yields a working engine over an empty graph.
func NewEngine(ctx context.Context, st ledger.Store, owner string) (*Engine, error) {
	g, err := graph.Load(ctx, st, owner)
	if err != nil {
		return nil, fmt.Errorf("owner %q: %w", owner, err)
	}
	return &Engine{
		owner: owner,
		graph: g,
		store: st,
		log:   zerolog.Nop(),
	}, nil
}

// SetLogger attaches a logger for debug output. The default discards.
func (e *Engine) SetLogger(log zerolog.Logger) {
	e.log = log
}

func (e *Engine) Graph() *graph.Graph { return e.graph }

// Simulate replays the owner's transactions over [start, end) and returns
// the projected balance per node. Stored balances are never written back;
// this is a pure projection.
func (e *Engine) Simulate(ctx context.Context, start, end time.Time) (Result, error) {
	txns, err := e.store.Transactions(ctx, e.owner)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	res, err := Project(e.graph, txns, start, end)
	if err != nil {
		return nil, err
	}

	e.log.Debug().
		Str("owner", e.owner).
		Int("vertices", e.graph.Order()).
		Int("transactions", len(txns)).
		Time("start", start).
		Time("end", end).
		Msg("projection complete")

	return res, nil
}

// Metrics reports structural statistics of the loaded graph. It is
// independent of any Simulate call and of any time window.
func (e *Engine) Metrics() graph.Metrics {
	return e.graph.Metrics()
}
