package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/buger/jsonparser"

	"plaid-report/src/config"
	"plaid-report/src/contracts"
)

// Record is a raw transactions row: the created value and the plaid_json text.
type Record struct {
	Created   string
	PlaidJSON string
}

// MemoryStore is an in-memory implementation of Store.
// It applies the same extraction, ordering and limit as the SQLite query.
// Useful for testing.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryStore creates a new in-memory store holding records.
func NewMemoryStore(records ...Record) *MemoryStore {
	s := &MemoryStore{}
	s.records = append(s.records, records...)
	return s
}

// Add appends a raw record.
func (s *MemoryStore) Add(created, plaidJSON string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, Record{Created: created, PlaidJSON: plaidJSON})
}

// RecentTransactions returns up to config.RowLimit records, newest first.
func (s *MemoryStore) RecentTransactions(ctx context.Context) ([]contracts.Transaction, error) {
	s.mu.RLock()
	sorted := make([]Record, len(s.records))
	copy(sorted, s.records)
	s.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Created > sorted[j].Created
	})
	if len(sorted) > config.RowLimit {
		sorted = sorted[:config.RowLimit]
	}

	txns := make([]contracts.Transaction, 0, len(sorted))
	for _, rec := range sorted {
		name, err := extractField([]byte(rec.PlaidJSON), "name")
		if err != nil {
			return nil, fmt.Errorf("failed to extract name: %w", err)
		}
		amount, err := extractField([]byte(rec.PlaidJSON), "amount")
		if err != nil {
			return nil, fmt.Errorf("failed to extract amount: %w", err)
		}

		txns = append(txns, contracts.Transaction{
			Created: rec.Created,
			Name:    name,
			Amount:  amount,
		})
	}

	return txns, nil
}

// extractField mirrors json_extract(payload, '$.key'): a missing key or a
// JSON null gives a null value, strings are unescaped, booleans become 1/0
// and objects or arrays are returned as JSON text.
func extractField(payload []byte, key string) (sql.NullString, error) {
	value, dataType, _, err := jsonparser.Get(payload, key)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return sql.NullString{}, nil
	}
	if err != nil {
		return sql.NullString{}, fmt.Errorf("malformed JSON: %w", err)
	}

	switch dataType {
	case jsonparser.Null, jsonparser.NotExist:
		return sql.NullString{}, nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return sql.NullString{}, fmt.Errorf("malformed JSON: %w", err)
		}
		return sql.NullString{String: s, Valid: true}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return sql.NullString{}, fmt.Errorf("malformed JSON: %w", err)
		}
		if b {
			return sql.NullString{String: "1", Valid: true}, nil
		}
		return sql.NullString{String: "0", Valid: true}, nil
	case jsonparser.Number:
		return sql.NullString{String: normalizeNumber(string(value)), Valid: true}, nil
	default:
		return sql.NullString{String: string(value), Valid: true}, nil
	}
}

// normalizeNumber renders a JSON number the way json_extract returns it:
// integers unchanged, reals through formatReal (4.50 becomes 4.5, 100.00
// becomes 100.0).
func normalizeNumber(raw string) string {
	if !strings.ContainsAny(raw, ".eE") {
		return raw
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return formatReal(f)
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
