package render

import (
	"bufio"
	"io"

	"plaid-report/src/contracts"
)

// ListRenderer prints one row per line with columns joined by Separator,
// no header and NULL as empty. This matches the sqlite3 shell's default
// list mode.
type ListRenderer struct {
	Separator string
}

func (r ListRenderer) Render(w io.Writer, txns []contracts.Transaction) error {
	bw := bufio.NewWriter(w)
	for _, txn := range txns {
		bw.WriteString(txn.Created)
		bw.WriteString(r.Separator)
		bw.WriteString(txn.NameOrEmpty())
		bw.WriteString(r.Separator)
		bw.WriteString(txn.AmountOrEmpty())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
