// ledger/schema.go
package ledger

// Balances, weights and amounts are stored as TEXT so decimal values
// round-trip exactly. Intervals are stored as integer nanoseconds.
const Schema = `
CREATE TABLE IF NOT EXISTS nodes (
	node_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	kind TEXT NOT NULL,
	balance TEXT NOT NULL,
	owner TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS edges (
	edge_id TEXT PRIMARY KEY,
	source_id TEXT NOT NULL,
	target_id TEXT NOT NULL,
	weight TEXT NOT NULL,
	owner TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	txn_id TEXT PRIMARY KEY,
	edge_id TEXT NOT NULL,
	amount TEXT NOT NULL,
	scheduled DATETIME NOT NULL,
	recurring INTEGER NOT NULL DEFAULT 0,
	interval_ns INTEGER NOT NULL DEFAULT 0,
	owner TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_nodes_owner ON nodes(owner);
CREATE INDEX IF NOT EXISTS idx_edges_owner ON edges(owner);
CREATE INDEX IF NOT EXISTS idx_txns_owner ON transactions(owner);
CREATE INDEX IF NOT EXISTS idx_txns_scheduled ON transactions(scheduled);
`
