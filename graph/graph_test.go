package graph

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/flowsim/ledger"
)

type memStore struct {
	nodes []ledger.Node
	edges []ledger.Edge
}

func (m *memStore) Nodes(_ context.Context, owner string) ([]ledger.Node, error) {
	var out []ledger.Node
	for _, n := range m.nodes {
		if n.Owner == owner {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memStore) Edges(_ context.Context, owner string) ([]ledger.Edge, error) {
	var out []ledger.Edge
	for _, e := range m.edges {
		if e.Owner == owner {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) Transactions(context.Context, string) ([]ledger.Transaction, error) {
	return nil, nil
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func demoStore() *memStore {
	return &memStore{
		nodes: []ledger.Node{
			{ID: "salary", Name: "Salary", Kind: ledger.Income, Balance: dec(0), Owner: "alice"},
			{ID: "checking", Name: "Checking", Kind: ledger.Account, Balance: dec(1000), Owner: "alice"},
			{ID: "rent", Name: "Rent", Kind: ledger.Expense, Balance: dec(0), Owner: "alice"},
			{ID: "vault", Name: "Vault", Kind: ledger.Account, Balance: dec(77), Owner: "bob"},
		},
		edges: []ledger.Edge{
			{ID: "e1", Source: "salary", Target: "checking", Weight: dec(5000), Owner: "alice"},
			{ID: "e2", Source: "checking", Target: "rent", Weight: dec(1200), Owner: "alice"},
		},
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	g, err := Load(context.Background(), demoStore(), "alice")
	assert.NoError(t, err)

	assert.Equal(t, "alice", g.Owner())
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.Size())

	v, ok := g.Vertex("checking")
	assert.True(t, ok)
	assert.Equal(t, ledger.Account, v.Kind)
	assert.True(t, v.Balance.Equal(dec(1000)))

	a, ok := g.Arc("e1")
	assert.True(t, ok)
	assert.Equal(t, "salary", a.Source)
	assert.Equal(t, "checking", a.Target)

	assert.Equal(t, []string{"checking", "rent", "salary"}, g.VertexIDs())
}

func TestLoadNeverCrossesOwners(t *testing.T) {
	t.Parallel()

	g, err := Load(context.Background(), demoStore(), "alice")
	assert.NoError(t, err)

	_, ok := g.Vertex("vault")
	assert.False(t, ok, "bob's vault leaked into alice's graph")
}

func TestLoadEmptyOwner(t *testing.T) {
	t.Parallel()

	g, err := Load(context.Background(), demoStore(), "nobody")
	assert.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.VertexIDs())
}

func TestLoadDanglingEdge(t *testing.T) {
	t.Parallel()

	st := demoStore()
	st.edges = append(st.edges, ledger.Edge{
		ID: "bad", Source: "salary", Target: "ghost", Owner: "alice",
	})

	_, err := Load(context.Background(), st, "alice")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	g, err := Load(context.Background(), demoStore(), "alice")
	assert.NoError(t, err)

	m := g.Metrics()
	assert.Equal(t, 3, m.TotalNodes)
	assert.Equal(t, 2, m.TotalEdges)
	assert.Equal(t, 1, m.IncomeNodes)
	assert.Equal(t, 1, m.ExpenseNodes)
	assert.True(t, m.NetFlow.Equal(dec(1000)), "net flow = %s", m.NetFlow)
}

func TestMetricsIsolatedVertexCounts(t *testing.T) {
	t.Parallel()

	st := demoStore()
	st.nodes = append(st.nodes, ledger.Node{
		ID: "stash", Name: "Stash", Kind: ledger.Account, Balance: dec(500), Owner: "alice",
	})

	g, err := Load(context.Background(), st, "alice")
	assert.NoError(t, err)

	m := g.Metrics()
	assert.Equal(t, 4, m.TotalNodes)
	assert.Equal(t, 2, m.TotalEdges)
	assert.True(t, m.NetFlow.Equal(dec(1500)), "net flow = %s", m.NetFlow)
}

func TestMetricsEmptyGraph(t *testing.T) {
	t.Parallel()

	g, err := Load(context.Background(), &memStore{}, "nobody")
	assert.NoError(t, err)

	m := g.Metrics()
	assert.Equal(t, Metrics{NetFlow: decimal.Zero}, m)
}
