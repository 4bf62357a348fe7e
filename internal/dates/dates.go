// Package dates parses corpus date strings into a date plus an
// approximate-precision flag. Corpus records carry anything from a full
// date down to a bare year; the merge engine only trusts a replacement
// date when it is more precise than the one it would overwrite.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// ISO is the storage format for dates throughout the record store.
const ISO = "2006-01-02"

// Parse interprets a corpus date string. Full dates (YYYY-MM-DD) are exact;
// month (YYYY-MM) and year (YYYY) forms are approximate and resolve to the
// first day of the period.
func Parse(value string) (time.Time, bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(ISO, trimmed); err == nil {
		return t, false, nil
	}
	if t, err := time.Parse("2006-01", trimmed); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse("2006", trimmed); err == nil {
		return t, true, nil
	}
	return time.Time{}, false, fmt.Errorf("unrecognized date %q", trimmed)
}

// Format renders a date in the storage format.
func Format(t time.Time) string {
	return t.Format(ISO)
}
