package ledger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ulikunitz/xz"
)

func seedStore(t *testing.T, s *SQLite) {
	t.Helper()
	ctx := context.Background()

	assert.NoError(t, s.PutNode(ctx, Node{ID: "n1", Name: "Salary", Kind: Income, Balance: dec("0"), Owner: "alice"}))
	assert.NoError(t, s.PutNode(ctx, Node{ID: "n2", Name: "Checking", Kind: Account, Balance: dec("1000.25"), Owner: "alice"}))
	assert.NoError(t, s.PutEdge(ctx, Edge{ID: "e1", Source: "n1", Target: "n2", Weight: dec("5000"), Owner: "alice"}))
	assert.NoError(t, s.PutTransaction(ctx, Transaction{
		ID:        "t1",
		EdgeID:    "e1",
		Amount:    dec("5000"),
		Scheduled: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Recurring: true,
		Interval:  720 * time.Hour,
		Owner:     "alice",
	}))
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	src, _ := newTestSQLite(t)
	seedStore(t, src)

	dir := t.TempDir()
	ctx := context.Background()
	assert.NoError(t, ExportCSV(ctx, src, "alice", dir))

	dst, _ := newTestSQLite(t)

	n, err := ImportNodes(ctx, dst, filepath.Join(dir, "nodes.csv"))
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = ImportEdges(ctx, dst, filepath.Join(dir, "edges.csv"))
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = ImportTransactions(ctx, dst, filepath.Join(dir, "transactions.csv"))
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	nodes, err := dst.Nodes(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, nodes, 2)
	assert.True(t, nodes[1].Balance.Equal(dec("1000.25")), "balance = %s", nodes[1].Balance)

	txns, err := dst.Transactions(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.True(t, txns[0].Recurring)
	assert.Equal(t, 720*time.Hour, txns[0].Interval)
	assert.True(t, txns[0].Scheduled.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestImportCompressedCSV(t *testing.T) {
	t.Parallel()

	src, _ := newTestSQLite(t)
	seedStore(t, src)

	dir := t.TempDir()
	ctx := context.Background()
	assert.NoError(t, ExportCSV(ctx, src, "alice", dir))

	plain := filepath.Join(dir, "nodes.csv")
	packed := plain + ".xz"
	compressFile(t, plain, packed)

	dst, _ := newTestSQLite(t)
	n, err := ImportNodes(ctx, dst, packed)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	nodes, err := dst.Nodes(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func compressFile(t *testing.T, src, dst string) {
	t.Helper()

	in, err := os.Open(src)
	assert.NoError(t, err)
	defer in.Close()

	out, err := os.Create(dst)
	assert.NoError(t, err)

	w, err := xz.NewWriter(out)
	assert.NoError(t, err)

	_, err = io.Copy(w, in)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, out.Close())
}

func TestImportRejectsWrongShape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nodes.csv")
	assert.NoError(t, os.WriteFile(path, []byte("just,two\n"), 0644))

	dst, _ := newTestSQLite(t)
	_, err := ImportNodes(context.Background(), dst, path)
	assert.Error(t, err)
}
