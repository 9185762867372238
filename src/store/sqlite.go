package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"plaid-report/src/config"
	"plaid-report/src/contracts"
)

// recentTransactionsQuery is the fixed report query. created is cast to
// text so the driver does not reformat DATETIME columns; ordering uses the
// raw column, not the alias.
var recentTransactionsQuery = fmt.Sprintf(`
	SELECT
		CAST(created AS TEXT) AS created,
		json_extract(plaid_json, '$.name') AS name,
		json_extract(plaid_json, '$.amount') AS amount
	FROM transactions
	ORDER BY transactions.created DESC
	LIMIT %d
`, config.RowLimit)

// SQLiteStore is a read-only SQLite implementation of Store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens path read-only. A missing file is an error, it is
// never created.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	return &SQLiteStore{db: db}, nil
}

// readOnlyDSN builds a file: URI for path with mode=ro. The path is made
// absolute and given an empty authority, so a leading "//" is never read as
// a host name.
func readOnlyDSN(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	escaped := strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(path)
	return "file://" + escaped + "?mode=ro"
}

// RecentTransactions runs the fixed report query.
func (s *SQLiteStore) RecentTransactions(ctx context.Context) ([]contracts.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, recentTransactionsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []contracts.Transaction

	for rows.Next() {
		var created, name, amount interface{}

		if err := rows.Scan(&created, &name, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn := contracts.Transaction{
			Created: textValue(created).String,
			Name:    textValue(name),
			Amount:  textValue(amount),
		}

		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
