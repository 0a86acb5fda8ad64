// ledger/ledger.go
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a node in the money graph.
type Kind string

const (
	Income  Kind = "INCOME"
	Account Kind = "ACCOUNT"
	Expense Kind = "EXPENSE"
)

func (k Kind) Valid() bool {
	switch k {
	case Income, Account, Expense:
		return true
	}
	return false
}

// Node is a financial vertex: an income source, an account, or an expense.
// Every node belongs to exactly one owner.
type Node struct {
	ID      string
	Name    string
	Kind    Kind
	Balance decimal.Decimal
	Owner   string
}

// Edge is a directed transfer channel between two nodes of the same owner.
// Weight is a nominal amount; transactions carry their own.
type Edge struct {
	ID     string
	Source string
	Target string
	Weight decimal.Decimal
	Owner  string
}

// Transaction is a scheduled transfer of Amount along one edge, from the
// edge's source to its target. When Recurring is set, Interval must be a
// positive duration between occurrences.
type Transaction struct {
	ID        string
	EdgeID    string
	Amount    decimal.Decimal
	Scheduled time.Time
	Recurring bool
	Interval  time.Duration
	Owner     string
}

// Store is the owner-scoped record provider the simulation reads from.
type Store interface {
	Nodes(ctx context.Context, owner string) ([]Node, error)
	Edges(ctx context.Context, owner string) ([]Edge, error)
	Transactions(ctx context.Context, owner string) ([]Transaction, error)
}

func (n Node) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("node: id is required")
	}
	if n.Owner == "" {
		return fmt.Errorf("node %q: owner is required", n.ID)
	}
	if !n.Kind.Valid() {
		return fmt.Errorf("node %q: unknown kind %q", n.ID, n.Kind)
	}
	return nil
}

func (e Edge) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("edge: id is required")
	}
	if e.Source == "" || e.Target == "" {
		return fmt.Errorf("edge %q: source and target are required", e.ID)
	}
	if e.Owner == "" {
		return fmt.Errorf("edge %q: owner is required", e.ID)
	}
	return nil
}

func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction: id is required")
	}
	if t.EdgeID == "" {
		return fmt.Errorf("transaction %q: edge id is required", t.ID)
	}
	if t.Owner == "" {
		return fmt.Errorf("transaction %q: owner is required", t.ID)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction %q: amount must be positive, got %s", t.ID, t.Amount)
	}
	if t.Recurring && t.Interval <= 0 {
		return fmt.Errorf("transaction %q: recurring requires a positive interval", t.ID)
	}
	return nil
}
