// Package report runs the fixed battery of membership metrics and prints
// each result as a table on stdout.
package report

import (
	"fmt"
	"time"
)

// DateFormat is the required layout for date arguments. Month and day must
// be zero-padded to two digits.
const DateFormat = "2006-01-02"

// ParseDate parses s strictly as a YYYY-MM-DD calendar date. The error names
// the offending argument so the user knows which of the two dates is wrong.
func ParseDate(label, s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD: %w", label, s, err)
	}
	return t, nil
}
