// Package money normalizes the free-form numbers found in hand-edited
// shift reports into exact two-decimal values. Sheets mix thousand
// separators, comma decimal marks and stray currency symbols, so parsing
// is lenient: anything unreadable becomes zero instead of an error.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonNumeric = regexp.MustCompile(`[^0-9,.\-]`)

// dot-separated groups of three, e.g. "8.000" or "1.250.000"
var dotThousands = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// Parse converts a raw cell value to a decimal rounded to two places.
// It never fails: empty or unparsable input yields zero.
func Parse(raw string) decimal.Decimal {
	s := nonNumeric.ReplaceAllString(raw, "")
	if s == "" || s == "-" {
		return decimal.Zero
	}

	switch {
	case strings.Contains(s, ","):
		// Comma is the decimal mark, dots are thousand separators
		// ("1.234,56" -> 1234.56). Several commas mean the commas are
		// themselves thousand separators ("1,234,567").
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
	case dotThousands.MatchString(s):
		// "8.000" is eight thousand, not eight.
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

// ParseInt is the integer variant of Parse, truncating toward zero.
func ParseInt(raw string) int {
	return int(Parse(raw).IntPart())
}

// LooksNumeric reports whether a text cell holds a number rather than a
// label. Used by the scanners to tell a value apart from the start of a
// neighboring block.
func LooksNumeric(raw string) bool {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if s == "" {
		return false
	}
	s = strings.NewReplacer(".", "", ",", "", "-", "").Replace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
