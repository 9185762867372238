// Package storetest builds SQLite fixture databases for tests.
package storetest

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite" // SQLite driver
)

// Row is one transactions row to insert.
type Row struct {
	Created   string
	PlaidJSON string
}

const schema = `
	CREATE TABLE transactions (
		transaction_id TEXT PRIMARY KEY,
		created TEXT NOT NULL,
		plaid_json TEXT
	)
`

// NewDatabase writes rows into a fresh transactions table under
// t.TempDir() and returns the file path.
func NewDatabase(t *testing.T, rows ...Row) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transactions.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open fixture database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	for i, row := range rows {
		_, err := db.Exec(
			`INSERT INTO transactions (transaction_id, created, plaid_json) VALUES (?, ?, ?)`,
			fmt.Sprintf("txn-%03d", i),
			row.Created,
			row.PlaidJSON,
		)
		if err != nil {
			t.Fatalf("failed to insert row %d: %v", i, err)
		}
	}

	return path
}
