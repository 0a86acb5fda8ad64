package graph

import (
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/flowsim/ledger"
)

// Metrics summarizes the loaded graph's structure. NetFlow is the sum of
// loaded balances, independent of any projection.
type Metrics struct {
	TotalNodes   int
	TotalEdges   int
	IncomeNodes  int
	ExpenseNodes int
	NetFlow      decimal.Decimal
}

func (g *Graph) Metrics() Metrics {
	m := Metrics{
		TotalNodes: len(g.vertices),
		TotalEdges: len(g.arcs),
		NetFlow:    decimal.Zero,
	}
	for _, v := range g.vertices {
		switch v.Kind {
		case ledger.Income:
			m.IncomeNodes++
		case ledger.Expense:
			m.ExpenseNodes++
		}
		m.NetFlow = m.NetFlow.Add(v.Balance)
	}
	return m
}
