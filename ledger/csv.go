// ledger/csv.go
package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ulikunitz/xz"
)

var nodeHeader = []string{"node_id", "name", "kind", "balance", "owner"}
var edgeHeader = []string{"edge_id", "source_id", "target_id", "weight", "owner"}
var txnHeader = []string{"txn_id", "edge_id", "amount", "scheduled", "recurring", "interval", "owner"}

// openLedgerFile opens a CSV file for reading, transparently decompressing
// a .xz suffix.
func openLedgerFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}
	r, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return struct {
		io.Reader
		io.Closer
	}{r, f}, nil
}

func readRecords(path string, header []string) ([][]string, error) {
	rc, err := openLedgerFile(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: missing header", path)
	}
	if len(rows[0]) != len(header) {
		return nil, fmt.Errorf("read %s: expected %d columns, got %d", path, len(header), len(rows[0]))
	}
	return rows[1:], nil
}

// ImportNodes loads node records from a CSV (optionally .xz) file into the
// store and reports how many were written.
func ImportNodes(ctx context.Context, s *SQLite, path string) (int, error) {
	rows, err := readRecords(path, nodeHeader)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		balance, err := decimal.NewFromString(row[3])
		if err != nil {
			return i, fmt.Errorf("%s row %d: balance: %w", path, i+1, err)
		}
		n := Node{ID: row[0], Name: row[1], Kind: Kind(row[2]), Balance: balance, Owner: row[4]}
		if err := s.PutNode(ctx, n); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}

func ImportEdges(ctx context.Context, s *SQLite, path string) (int, error) {
	rows, err := readRecords(path, edgeHeader)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		weight, err := decimal.NewFromString(row[3])
		if err != nil {
			return i, fmt.Errorf("%s row %d: weight: %w", path, i+1, err)
		}
		e := Edge{ID: row[0], Source: row[1], Target: row[2], Weight: weight, Owner: row[4]}
		if err := s.PutEdge(ctx, e); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}

func ImportTransactions(ctx context.Context, s *SQLite, path string) (int, error) {
	rows, err := readRecords(path, txnHeader)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		amount, err := decimal.NewFromString(row[2])
		if err != nil {
			return i, fmt.Errorf("%s row %d: amount: %w", path, i+1, err)
		}
		scheduled, err := time.Parse(time.RFC3339, row[3])
		if err != nil {
			return i, fmt.Errorf("%s row %d: scheduled: %w", path, i+1, err)
		}
		recurring, err := strconv.ParseBool(row[4])
		if err != nil {
			return i, fmt.Errorf("%s row %d: recurring: %w", path, i+1, err)
		}
		var interval time.Duration
		if row[5] != "" {
			if interval, err = time.ParseDuration(row[5]); err != nil {
				return i, fmt.Errorf("%s row %d: interval: %w", path, i+1, err)
			}
		}
		t := Transaction{
			ID:        row[0],
			EdgeID:    row[1],
			Amount:    amount,
			Scheduled: scheduled,
			Recurring: recurring,
			Interval:  interval,
			Owner:     row[6],
		}
		if err := s.PutTransaction(ctx, t); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}

// ExportCSV dumps every record the store holds for owner into nodes.csv,
// edges.csv and transactions.csv under dir.
func ExportCSV(ctx context.Context, st Store, owner, dir string) error {
	nodes, err := st.Nodes(ctx, owner)
	if err != nil {
		return err
	}
	edges, err := st.Edges(ctx, owner)
	if err != nil {
		return err
	}
	txns, err := st.Transactions(ctx, owner)
	if err != nil {
		return err
	}

	nodeRows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		nodeRows = append(nodeRows, []string{n.ID, n.Name, string(n.Kind), n.Balance.String(), n.Owner})
	}
	if err := writeCSV(filepath.Join(dir, "nodes.csv"), nodeHeader, nodeRows); err != nil {
		return err
	}

	edgeRows := make([][]string, 0, len(edges))
	for _, e := range edges {
		edgeRows = append(edgeRows, []string{e.ID, e.Source, e.Target, e.Weight.String(), e.Owner})
	}
	if err := writeCSV(filepath.Join(dir, "edges.csv"), edgeHeader, edgeRows); err != nil {
		return err
	}

	txnRows := make([][]string, 0, len(txns))
	for _, t := range txns {
		interval := ""
		if t.Recurring {
			interval = t.Interval.String()
		}
		txnRows = append(txnRows, []string{
			t.ID,
			t.EdgeID,
			t.Amount.String(),
			t.Scheduled.UTC().Format(time.RFC3339),
			strconv.FormatBool(t.Recurring),
			interval,
			t.Owner,
		})
	}
	return writeCSV(filepath.Join(dir, "transactions.csv"), txnHeader, txnRows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
