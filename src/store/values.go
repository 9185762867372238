package store

import (
	"database/sql"
	"math"
	"strconv"
	"strings"
)

// formatReal renders a REAL the way SQLite converts it to text ("%!.15g"):
// 15 significant digits, exponent form only below 1e-4 or from 1e15, and a
// mantissa that always carries a decimal point (100.0, 1.0e-05).
func formatReal(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}

	s := strconv.FormatFloat(f, 'g', 15, 64)
	mantissa, exponent := s, ""
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mantissa, exponent = s[:i], s[i:]
	}
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	return mantissa + exponent
}

// textValue converts a driver value to the text the sqlite3 shell prints.
// NULL stays null.
func textValue(v interface{}) sql.NullString {
	switch x := v.(type) {
	case nil:
		return sql.NullString{}
	case int64:
		return sql.NullString{String: strconv.FormatInt(x, 10), Valid: true}
	case float64:
		return sql.NullString{String: formatReal(x), Valid: true}
	case string:
		return sql.NullString{String: x, Valid: true}
	case []byte:
		return sql.NullString{String: string(x), Valid: true}
	default:
		var ns sql.NullString
		if err := ns.Scan(x); err != nil {
			return sql.NullString{}
		}
		return ns
	}
}
