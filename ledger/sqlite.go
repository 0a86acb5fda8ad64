package ledger

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) PutNode(ctx context.Context, n Node) error {
	if err := n.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO nodes (node_id, name, kind, balance, owner, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(node_id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind,
			balance = excluded.balance,
			owner = excluded.owner,
			updated_at = excluded.updated_at`,
		n.ID, n.Name, string(n.Kind), n.Balance.String(), n.Owner, now, now,
	)
	return err
}

func (s *SQLite) PutEdge(ctx context.Context, e Edge) error {
	if err := e.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO edges (edge_id, source_id, target_id, weight, owner, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(edge_id) DO UPDATE SET
			source_id = excluded.source_id,
			target_id = excluded.target_id,
			weight = excluded.weight,
			owner = excluded.owner,
			updated_at = excluded.updated_at`,
		e.ID, e.Source, e.Target, e.Weight.String(), e.Owner, now, now,
	)
	return err
}

func (s *SQLite) PutTransaction(ctx context.Context, t Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (txn_id, edge_id, amount, scheduled, recurring, interval_ns, owner, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(txn_id) DO UPDATE SET
			edge_id = excluded.edge_id,
			amount = excluded.amount,
			scheduled = excluded.scheduled,
			recurring = excluded.recurring,
			interval_ns = excluded.interval_ns,
			owner = excluded.owner,
			updated_at = excluded.updated_at`,
		t.ID, t.EdgeID, t.Amount.String(), t.Scheduled.UTC(), t.Recurring, int64(t.Interval), t.Owner, now, now,
	)
	return err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
