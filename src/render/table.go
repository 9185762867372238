package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"plaid-report/src/contracts"
	"plaid-report/src/sanitize"
)

// DefaultNameWidth caps the name column in table output.
const DefaultNameWidth = 40

// TableRenderer prints a bordered table with a header row. Names are
// flattened to one line before truncation.
type TableRenderer struct {
	NameWidth int
	Border    lipgloss.Border
}

// NewTableRenderer returns a TableRenderer with the default name width and
// a normal border.
func NewTableRenderer() TableRenderer {
	return TableRenderer{
		NameWidth: DefaultNameWidth,
		Border:    lipgloss.NormalBorder(),
	}
}

func (r TableRenderer) Render(w io.Writer, txns []contracts.Transaction) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	amountStyle := cellStyle.Align(lipgloss.Right)

	t := table.New().
		Border(r.Border).
		Headers("created", "name", "amount").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2:
				return amountStyle
			default:
				return cellStyle
			}
		})

	for _, txn := range txns {
		amount := ""
		if txn.Amount.Valid {
			amount = FormatAmount(txn.Amount.String)
		}
		t.Row(txn.Created, Truncate(sanitize.Cell(txn.NameOrEmpty()), r.NameWidth, true), amount)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}
