// Package sanitize cleans payload text before it is laid out in a table.
// Names come straight from bank data and may carry escape sequences or
// line breaks that would break cell alignment.
package sanitize

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape sequences.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Cell returns s as a single-line table cell: escape sequences removed,
// control characters (newlines and tabs included) replaced by a space and
// runs of whitespace collapsed.
func Cell(s string) string {
	s = StripANSI(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
