// Package graph builds the per-owner directed money graph the simulation
// runs against. The representation is deliberately plain: a vertex map and
// an arc index, nothing more.
package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/flowsim/ledger"
)

// Vertex carries the point-in-time snapshot of one node.
type Vertex struct {
	ID      string
	Name    string
	Kind    ledger.Kind
	Balance decimal.Decimal
}

// Arc is a directed transfer channel between two vertices.
type Arc struct {
	ID     string
	Source string
	Target string
	Weight decimal.Decimal
}

// Graph is an immutable snapshot of one owner's nodes and edges. Isolated
// vertices are preserved so metrics stay correct.
type Graph struct {
	owner    string
	vertices map[string]Vertex
	arcs     map[string]Arc
}

// Load fetches every node and edge belonging to owner and builds the
// graph. An owner with no nodes yields a valid empty graph.
func Load(ctx context.Context, st ledger.Store, owner string) (*Graph, error) {
	nodes, err := st.Nodes(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("load nodes: %w", err)
	}
	edges, err := st.Edges(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}

	g := &Graph{
		owner:    owner,
		vertices: make(map[string]Vertex, len(nodes)),
		arcs:     make(map[string]Arc, len(edges)),
	}
	for _, n := range nodes {
		g.vertices[n.ID] = Vertex{ID: n.ID, Name: n.Name, Kind: n.Kind, Balance: n.Balance}
	}
	for _, e := range edges {
		if _, ok := g.vertices[e.Source]; !ok {
			return nil, fmt.Errorf("edge %q: unknown source node %q", e.ID, e.Source)
		}
		if _, ok := g.vertices[e.Target]; !ok {
			return nil, fmt.Errorf("edge %q: unknown target node %q", e.ID, e.Target)
		}
		g.arcs[e.ID] = Arc{ID: e.ID, Source: e.Source, Target: e.Target, Weight: e.Weight}
	}
	return g, nil
}

func (g *Graph) Owner() string { return g.owner }

// Order is the number of vertices, Size the number of arcs.
func (g *Graph) Order() int { return len(g.vertices) }
func (g *Graph) Size() int  { return len(g.arcs) }

func (g *Graph) Vertex(id string) (Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

func (g *Graph) Arc(id string) (Arc, bool) {
	a, ok := g.arcs[id]
	return a, ok
}

// VertexIDs returns every vertex id in lexical order.
func (g *Graph) VertexIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
