package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/flowsim/ledger"
)

// memStore is an in-memory ledger.Store. Each list call filters by owner,
// like the real store does, and any set error is returned as-is.
type memStore struct {
	nodes []ledger.Node
	edges []ledger.Edge
	txns  []ledger.Transaction

	nodesErr error
	edgesErr error
	txnsErr  error
}

func (m *memStore) Nodes(_ context.Context, owner string) ([]ledger.Node, error) {
	if m.nodesErr != nil {
		return nil, m.nodesErr
	}
	var out []ledger.Node
	for _, n := range m.nodes {
		if n.Owner == owner {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memStore) Edges(_ context.Context, owner string) ([]ledger.Edge, error) {
	if m.edgesErr != nil {
		return nil, m.edgesErr
	}
	var out []ledger.Edge
	for _, e := range m.edges {
		if e.Owner == owner {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) Transactions(_ context.Context, owner string) ([]ledger.Transaction, error) {
	if m.txnsErr != nil {
		return nil, m.txnsErr
	}
	var out []ledger.Transaction
	for _, t := range m.txns {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestEngineSimulate(t *testing.T) {
	t.Parallel()

	st := payrollStore(recurring(t0, 30*day))
	e, err := NewEngine(context.Background(), st, "alice")
	assert.NoError(t, err)

	res, err := e.Simulate(context.Background(), t0, t0.Add(60*day))
	assert.NoError(t, err)

	assert.True(t, res["b"].Equal(dec(11000)), "b = %s", res["b"])
	assert.True(t, res["a"].Equal(dec(-10000)), "a = %s", res["a"])
}

func TestEngineMetricsIndependentOfSimulate(t *testing.T) {
	t.Parallel()

	st := payrollStore(recurring(t0, 30*day))
	e, err := NewEngine(context.Background(), st, "alice")
	assert.NoError(t, err)

	want := func() {
		m := e.Metrics()
		assert.Equal(t, 2, m.TotalNodes)
		assert.Equal(t, 1, m.TotalEdges)
		assert.Equal(t, 1, m.IncomeNodes)
		assert.Equal(t, 0, m.ExpenseNodes)
		assert.True(t, m.NetFlow.Equal(dec(1000)), "net flow = %s", m.NetFlow)
	}

	want()

	_, err = e.Simulate(context.Background(), t0, t0.Add(60*day))
	assert.NoError(t, err)

	// Simulation is a pure projection; the loaded graph is untouched.
	want()
}

func TestEngineEmptyOwner(t *testing.T) {
	t.Parallel()

	e, err := NewEngine(context.Background(), &memStore{}, "nobody")
	assert.NoError(t, err)

	res, err := e.Simulate(context.Background(), t0, t0.Add(day))
	assert.NoError(t, err)
	assert.Empty(t, res)

	m := e.Metrics()
	assert.Equal(t, 0, m.TotalNodes)
	assert.Equal(t, 0, m.TotalEdges)
	assert.Equal(t, 0, m.IncomeNodes)
	assert.Equal(t, 0, m.ExpenseNodes)
	assert.True(t, m.NetFlow.IsZero())
}

func TestEngineScopedToOwner(t *testing.T) {
	t.Parallel()

	st := payrollStore(recurring(t0, 30*day))
	st.nodes = append(st.nodes, ledger.Node{
		ID: "z", Name: "Other", Kind: ledger.Account, Balance: dec(999), Owner: "bob",
	})

	e, err := NewEngine(context.Background(), st, "alice")
	assert.NoError(t, err)

	res, err := e.Simulate(context.Background(), t0, t0.Add(day))
	assert.NoError(t, err)

	_, ok := res["z"]
	assert.False(t, ok, "bob's node leaked into alice's projection")
	assert.Equal(t, 2, e.Metrics().TotalNodes)
}

func TestEngineStoreFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")

	t.Run("nodes", func(t *testing.T) {
		t.Parallel()
		_, err := NewEngine(context.Background(), &memStore{nodesErr: boom}, "alice")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("edges", func(t *testing.T) {
		t.Parallel()
		st := payrollStore()
		st.edgesErr = boom
		_, err := NewEngine(context.Background(), st, "alice")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("transactions", func(t *testing.T) {
		t.Parallel()
		st := payrollStore()
		e, err := NewEngine(context.Background(), st, "alice")
		assert.NoError(t, err)

		st.txnsErr = boom
		_, err = e.Simulate(context.Background(), t0, t0.Add(time.Hour))
		assert.ErrorIs(t, err, boom)
	})
}
