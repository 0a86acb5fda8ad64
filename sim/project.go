// sim/project.go
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/flowsim/graph"
	"github.com/rustyeddy/flowsim/ledger"
)

var (
	// ErrBadRecurrence marks a recurring transaction with a missing or
	// non-positive interval, which would never terminate below.
	ErrBadRecurrence = errors.New("recurring transaction with non-positive interval")

	// ErrUnknownEdge marks a transaction whose edge is absent from the
	// graph snapshot.
	ErrUnknownEdge = errors.New("transaction references unknown edge")
)

// Result maps every vertex id to its projected balance.
type Result map[string]decimal.Decimal

// NetFlow sums the projected balances. Transfers conserve money, so it
// always equals the pre-projection net flow.
func (r Result) NetFlow() decimal.Decimal {
	sum := decimal.Zero
	for _, b := range r {
		sum = sum.Add(b)
	}
	return sum
}

// Project replays txns over the half-open window [start, end) on top of
// g's loaded balances and returns the projected balance of every vertex.
// It is a pure function: g is not modified and no state survives the call.
//
// Two rules apply per transaction, independently of each other:
//
//  1. The scheduled occurrence fires when start <= scheduled < end.
//  2. A recurring transaction fires once per interval step after its
//     schedule, for every step strictly before end. There is no lower
//     bound against start: steps that land before the window still fire.
//     That replay-from-origin behavior is the pinned contract of this
//     engine (see TestProjectReplaysEpochsBeforeWindowStart); changing it
//     is a versioned behavior change, not a cleanup.
//
// Callers are responsible for start <= end; an inverted window applies no
// occurrences and returns the seeded balances.
func Project(g *graph.Graph, txns []ledger.Transaction, start, end time.Time) (Result, error) {
	out := make(Result, g.Order())
	for _, id := range g.VertexIDs() {
		v, _ := g.Vertex(id)
		out[id] = v.Balance
	}

	for _, t := range txns {
		if t.Owner != g.Owner() {
			continue
		}
		if t.Recurring && t.Interval <= 0 {
			return nil, fmt.Errorf("transaction %q: %w", t.ID, ErrBadRecurrence)
		}
		arc, ok := g.Arc(t.EdgeID)
		if !ok {
			return nil, fmt.Errorf("transaction %q: %w: %q", t.ID, ErrUnknownEdge, t.EdgeID)
		}

		if !t.Scheduled.Before(start) && t.Scheduled.Before(end) {
			out[arc.Source] = out[arc.Source].Sub(t.Amount)
			out[arc.Target] = out[arc.Target].Add(t.Amount)
		}

		if t.Recurring {
			for next := t.Scheduled.Add(t.Interval); next.Before(end); next = next.Add(t.Interval) {
				out[arc.Source] = out[arc.Source].Sub(t.Amount)
				out[arc.Target] = out[arc.Target].Add(t.Amount)
			}
		}
	}

	return out, nil
}
