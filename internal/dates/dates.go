// Package dates normalizes textual dates into comparable integer keys.
//
// The external date format is MM-DD-YYYY: fixed width, zero-padded month and
// day, four-digit year, dash separators. A normalized Key orders by calendar
// time, so range checks are plain integer comparisons.
package dates

import (
	"fmt"
	"time"

	"expensetracker/internal/core"
)

// Key is a calendar date encoded as year*10000 + month*100 + day.
// Chronological order of valid dates equals numeric order of keys.
type Key int

// Year bounds accepted by Normalize. Anything outside is rejected even if it
// is a real Gregorian date.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Normalize parses a MM-DD-YYYY string into a Key.
//
// It returns core.ErrInvalidFormat for anything that is not exactly ten
// characters, not dash-separated at the expected positions, not numeric in
// the month/day/year fields, not a real Gregorian date, or outside the
// MinYear..MaxYear bound. A date like 02-30-2024 is rejected outright rather
// than rolled over to March; accepting the rollover would store the expense
// under a different day than the one the user typed.
func Normalize(s string) (Key, error) {
	if len(s) != 10 || s[2] != '-' || s[5] != '-' {
		return 0, core.ErrInvalidFormat
	}
	month, ok := parseField(s[0:2])
	if !ok {
		return 0, core.ErrInvalidFormat
	}
	day, ok := parseField(s[3:5])
	if !ok {
		return 0, core.ErrInvalidFormat
	}
	year, ok := parseField(s[6:10])
	if !ok {
		return 0, core.ErrInvalidFormat
	}
	if year < MinYear || year > MaxYear {
		return 0, core.ErrInvalidFormat
	}
	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2).
	// Round-trip the components to catch that and treat it as a failure.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return 0, core.ErrInvalidFormat
	}
	return Key(year*10000 + month*100 + day), nil
}

// MustNormalize is Normalize for literals in seed data and tests.
// It panics on invalid input.
func MustNormalize(s string) Key {
	k, err := Normalize(s)
	if err != nil {
		panic("dates: invalid date literal " + s)
	}
	return k
}

// parseField interprets a zero-padded ASCII digit run as a decimal number.
// strconv.Atoi is too lenient here: it accepts signs and would let inputs
// like "+1-01-2024" through.
func parseField(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// Year returns the key's four-digit year.
func (k Key) Year() int { return int(k) / 10000 }

// Month returns the key's month, 1-12.
func (k Key) Month() int { return int(k) / 100 % 100 }

// Day returns the key's day of month.
func (k Key) Day() int { return int(k) % 100 }

// Time returns the key as a time.Time at midnight UTC.
func (k Key) Time() time.Time {
	return time.Date(k.Year(), time.Month(k.Month()), k.Day(), 0, 0, 0, 0, time.UTC)
}

// String renders the key back in the external MM-DD-YYYY format.
func (k Key) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", k.Month(), k.Day(), k.Year())
}
