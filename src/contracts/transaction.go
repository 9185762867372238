// Package contracts defines the row types shared by the store and the renderers.
package contracts

import "database/sql"

// Transaction is one row of the recent-transactions report.
type Transaction struct {
	// Creation timestamp as stored in the transactions table.
	Created string
	// Payee name extracted from plaid_json. Null when the key is absent.
	Name sql.NullString
	// Amount extracted from plaid_json, kept as text. Null when the key is absent.
	Amount sql.NullString
}

// NameOrEmpty returns the name, or "" when it is null.
func (t Transaction) NameOrEmpty() string {
	if !t.Name.Valid {
		return ""
	}
	return t.Name.String
}

// AmountOrEmpty returns the amount text, or "" when it is null.
func (t Transaction) AmountOrEmpty() string {
	if !t.Amount.Valid {
		return ""
	}
	return t.Amount.String
}
