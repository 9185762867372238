package render

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"

	"plaid-report/src/contracts"
)

type jsonRow struct {
	Created string      `json:"created"`
	Name    *string     `json:"name"`
	Amount  interface{} `json:"amount"`
}

// JSONRenderer prints the rows as an indented JSON array.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, txns []contracts.Transaction) error {
	rows := make([]jsonRow, 0, len(txns))
	for _, txn := range txns {
		row := jsonRow{Created: txn.Created}
		if txn.Name.Valid {
			name := txn.Name.String
			row.Name = &name
		}
		if txn.Amount.Valid {
			row.Amount = jsonAmount(txn.Amount.String)
		}
		rows = append(rows, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// jsonAmount emits numeric amounts as JSON numbers and anything else as the
// original string.
func jsonAmount(raw string) interface{} {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	return json.Number(d.String())
}
