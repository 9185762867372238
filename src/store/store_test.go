package store

import (
	"context"
	"fmt"
	"testing"

	"plaid-report/src/config"
	"plaid-report/src/contracts"
	"plaid-report/src/store/storetest"
)

// storeFactory builds a Store holding rows. Every test in this file runs
// against both implementations so they stay interchangeable.
type storeFactory func(t *testing.T, rows []storetest.Row) Store

func factories() map[string]storeFactory {
	return map[string]storeFactory{
		"sqlite": func(t *testing.T, rows []storetest.Row) Store {
			st, err := NewSQLiteStore(storetest.NewDatabase(t, rows...))
			if err != nil {
				t.Fatalf("NewSQLiteStore failed: %v", err)
			}
			return st
		},
		"memory": func(t *testing.T, rows []storetest.Row) Store {
			st := NewMemoryStore()
			for _, row := range rows {
				st.Add(row.Created, row.PlaidJSON)
			}
			return st
		},
	}
}

func dailyRows(n int) []storetest.Row {
	rows := make([]storetest.Row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, storetest.Row{
			Created:   fmt.Sprintf("2024-01-%02d 09:00:00", i),
			PlaidJSON: fmt.Sprintf(`{"name":"Merchant %d","amount":%d.25}`, i, i),
		})
	}
	return rows
}

func fetch(t *testing.T, st Store) []contracts.Transaction {
	t.Helper()
	defer st.Close()

	txns, err := st.RecentTransactions(context.Background())
	if err != nil {
		t.Fatalf("RecentTransactions failed: %v", err)
	}
	return txns
}

func TestRecentTransactions_LimitAndOrder(t *testing.T) {
	for name, newStore := range factories() {
		t.Run(name, func(t *testing.T) {
			txns := fetch(t, newStore(t, dailyRows(15)))

			if len(txns) != config.RowLimit {
				t.Fatalf("Expected %d transactions, got %d", config.RowLimit, len(txns))
			}
			if txns[0].Created != "2024-01-15 09:00:00" {
				t.Errorf("Expected newest transaction first, got %s", txns[0].Created)
			}
			if txns[len(txns)-1].Created != "2024-01-06 09:00:00" {
				t.Errorf("Expected tenth newest transaction last, got %s", txns[len(txns)-1].Created)
			}
			for i := 1; i < len(txns); i++ {
				if txns[i-1].Created < txns[i].Created {
					t.Errorf("Transactions not in descending order at %d: %s before %s", i, txns[i-1].Created, txns[i].Created)
				}
			}
			if txns[0].NameOrEmpty() != "Merchant 15" {
				t.Errorf("Expected name 'Merchant 15', got %q", txns[0].NameOrEmpty())
			}
			if txns[0].AmountOrEmpty() != "15.25" {
				t.Errorf("Expected amount '15.25', got %q", txns[0].AmountOrEmpty())
			}
		})
	}
}

func TestRecentTransactions_FewerThanLimit(t *testing.T) {
	for name, newStore := range factories() {
		t.Run(name, func(t *testing.T) {
			txns := fetch(t, newStore(t, dailyRows(3)))

			if len(txns) != 3 {
				t.Fatalf("Expected 3 transactions, got %d", len(txns))
			}
			if txns[2].Created != "2024-01-01 09:00:00" {
				t.Errorf("Expected oldest transaction last, got %s", txns[2].Created)
			}
		})
	}
}

func TestRecentTransactions_Empty(t *testing.T) {
	for name, newStore := range factories() {
		t.Run(name, func(t *testing.T) {
			txns := fetch(t, newStore(t, nil))
			if len(txns) != 0 {
				t.Errorf("Expected no transactions, got %d", len(txns))
			}
		})
	}
}

func TestRecentTransactions_PayloadExtraction(t *testing.T) {
	rows := []storetest.Row{
		{Created: "2024-03-05", PlaidJSON: `{"name":"Coffee","amount":4.50}`},
		{Created: "2024-03-04", PlaidJSON: `{"amount":12}`},
		{Created: "2024-03-03", PlaidJSON: `{"name":"Refund"}`},
		{Created: "2024-03-02", PlaidJSON: `{"name":null,"amount":"7.25"}`},
		{Created: "2024-03-01", PlaidJSON: `{"name":"Café \"Bleu\"","amount":-3}`},
	}

	want := []struct {
		name      string
		nameNull  bool
		amount    string
		amountNil bool
	}{
		{name: "Coffee", amount: "4.5"},
		{nameNull: true, amount: "12"},
		{name: "Refund", amountNil: true},
		{nameNull: true, amount: "7.25"},
		{name: `Café "Bleu"`, amount: "-3"},
	}

	for storeName, newStore := range factories() {
		t.Run(storeName, func(t *testing.T) {
			txns := fetch(t, newStore(t, rows))
			if len(txns) != len(want) {
				t.Fatalf("Expected %d transactions, got %d", len(want), len(txns))
			}

			for i, w := range want {
				got := txns[i]
				if got.Name.Valid == w.nameNull {
					t.Errorf("row %d: expected name null=%v, got valid=%v", i, w.nameNull, got.Name.Valid)
				}
				if !w.nameNull && got.Name.String != w.name {
					t.Errorf("row %d: expected name %q, got %q", i, w.name, got.Name.String)
				}
				if got.Amount.Valid == w.amountNil {
					t.Errorf("row %d: expected amount null=%v, got valid=%v", i, w.amountNil, got.Amount.Valid)
				}
				if !w.amountNil && got.Amount.String != w.amount {
					t.Errorf("row %d: expected amount %q, got %q", i, w.amount, got.Amount.String)
				}
			}
		})
	}
}

func TestRecentTransactions_RealAmounts(t *testing.T) {
	rows := []storetest.Row{
		{Created: "2024-04-05", PlaidJSON: `{"name":"Rent","amount":100.00}`},
		{Created: "2024-04-04", PlaidJSON: `{"name":"House","amount":1234567.89}`},
		{Created: "2024-04-03", PlaidJSON: `{"name":"Tiny","amount":0.00001}`},
		{Created: "2024-04-02", PlaidJSON: `{"name":"Huge","amount":1e20}`},
		{Created: "2024-04-01", PlaidJSON: `{"name":"Payroll","amount":-2500.0}`},
	}
	want := []string{"100.0", "1234567.89", "1.0e-05", "1.0e+20", "-2500.0"}

	for name, newStore := range factories() {
		t.Run(name, func(t *testing.T) {
			txns := fetch(t, newStore(t, rows))
			if len(txns) != len(want) {
				t.Fatalf("Expected %d transactions, got %d", len(want), len(txns))
			}
			for i, w := range want {
				if got := txns[i].AmountOrEmpty(); got != w {
					t.Errorf("row %d (%s): expected amount %q, got %q", i, txns[i].NameOrEmpty(), w, got)
				}
			}
		})
	}
}
