// Package render formats report rows for output.
package render

import (
	"fmt"
	"io"

	"plaid-report/src/config"
	"plaid-report/src/contracts"
)

// Renderer writes transactions to w in a single format.
// Renderers never reorder or drop rows.
type Renderer interface {
	Render(w io.Writer, txns []contracts.Transaction) error
}

// New returns the renderer for a config format name.
func New(format string) (Renderer, error) {
	switch format {
	case config.FormatList, "":
		return ListRenderer{Separator: "|"}, nil
	case config.FormatTable:
		return NewTableRenderer(), nil
	case config.FormatJSON:
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
