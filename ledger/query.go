package ledger

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Nodes returns every node belonging to owner. An owner with no nodes
// yields an empty slice, not an error.
func (s *SQLite) Nodes(ctx context.Context, owner string) ([]Node, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT node_id, name, kind, balance, owner
		FROM nodes
		WHERE owner = ?
		ORDER BY node_id ASC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Node
	for rows.Next() {
		var n Node
		var kind, balance string
		if err := rows.Scan(&n.ID, &n.Name, &kind, &balance, &n.Owner); err != nil {
			return nil, err
		}
		n.Kind = Kind(kind)
		if n.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *SQLite) Edges(ctx context.Context, owner string) ([]Edge, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT edge_id, source_id, target_id, weight, owner
		FROM edges
		WHERE owner = ?
		ORDER BY edge_id ASC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Edge
	for rows.Next() {
		var e Edge
		var weight string
		if err := rows.Scan(&e.ID, &e.Source, &e.Target, &weight, &e.Owner); err != nil {
			return nil, err
		}
		if e.Weight, err = decimal.NewFromString(weight); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLite) Transactions(ctx context.Context, owner string) ([]Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT txn_id, edge_id, amount, scheduled, recurring, interval_ns, owner
		FROM transactions
		WHERE owner = ?
		ORDER BY scheduled ASC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// TransactionsBetween returns owner transactions scheduled within
// [start, end). Note the projection engine deliberately does not use this:
// recurring transactions scheduled before the window still expand.
func (s *SQLite) TransactionsBetween(ctx context.Context, owner string, start, end time.Time) ([]Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT txn_id, edge_id, amount, scheduled, recurring, interval_ns, owner
		FROM transactions
		WHERE owner = ? AND scheduled >= ? AND scheduled < ?
		ORDER BY scheduled ASC`, owner, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]Transaction, error) {
	var out []Transaction
	for rows.Next() {
		var t Transaction
		var amount string
		var intervalNS int64
		if err := rows.Scan(&t.ID, &t.EdgeID, &amount, &t.Scheduled, &t.Recurring, &intervalNS, &t.Owner); err != nil {
			return nil, err
		}
		var err error
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		t.Interval = time.Duration(intervalNS)
		out = append(out, t)
	}
	return out, rows.Err()
}
