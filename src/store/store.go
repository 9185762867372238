// Package store reads transaction records for the report.
package store

import (
	"context"

	"plaid-report/src/contracts"
)

// Store defines the read-only access the report needs.
type Store interface {
	// RecentTransactions returns up to config.RowLimit transactions,
	// newest first by created.
	RecentTransactions(ctx context.Context) ([]contracts.Transaction, error)

	// Close closes the store connection
	Close() error
}
