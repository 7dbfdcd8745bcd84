package utils

import (
	"strconv"
	"strings"
)

// ToFloat parses a spreadsheet-style numeric cell into a float64.
// It tolerates surrounding whitespace, thousands separators, a leading
// currency symbol, and accounting-style parentheses for negatives.
// Empty or unparseable cells yield (0, false).
func ToFloat(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		f = -f
	}
	return f, true
}

// NormalizeHeader lowercases a CSV header cell and collapses separators so
// that "Post Date", "post_date" and "POST-DATE" all map to "post_date".
func NormalizeHeader(cell string) string {
	h := strings.ToLower(strings.TrimSpace(cell))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}
