package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

// VisualWidth is the number of terminal columns a cell value occupies.
// Wide runes (CJK, emoji) count as two.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate fits a cell value into maxLen columns. With ellipsis set, a cut
// value ends in "..." as long as the cell is wider than the marker.
func Truncate(s string, maxLen int, ellipsis bool) string {
	s = strings.TrimSpace(s)
	switch {
	case maxLen <= 0:
		return ""
	case VisualWidth(s) <= maxLen:
		return s
	case ellipsis && maxLen > 3:
		return runewidth.Truncate(s, maxLen, "...")
	default:
		return runewidth.Truncate(s, maxLen, "")
	}
}

// FormatAmount renders a numeric amount with two decimal places. Text that
// is not a number is returned unchanged.
func FormatAmount(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return d.StringFixed(2)
}
