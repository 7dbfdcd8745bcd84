package loader

import (
	"regexp"
	"strings"
)

// categoryPatterns maps description fragments to coarse transaction
// categories, checked in order. The patterns mirror the conventions of the
// upstream statement feeds (e.g. "ACH_ADV", "CHK", "WIR").
var categoryPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"ACH", regexp.MustCompile(`ACH|ACH_ADV|ACH_FILE`)},
	{"CHECK", regexp.MustCompile(`CHECK|CHK|DRAFT`)},
	{"WIRE", regexp.MustCompile(`WIRE|WIR`)},
	{"DEPOSIT", regexp.MustCompile(`DEP|DEPOSIT`)},
	{"FEE", regexp.MustCompile(`FEE|CHARGE|SERVICE`)},
}

// Categorize derives a coarse transaction-type tag from a free-text
// description. It returns the empty string when no pattern applies.
func Categorize(description string) string {
	upper := strings.ToUpper(description)
	for _, cp := range categoryPatterns {
		if cp.pattern.MatchString(upper) {
			return cp.name
		}
	}
	return ""
}
