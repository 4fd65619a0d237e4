// Package dates contains the calendar arithmetic used by the reservation engine.
// All values are normalised to midnight UTC so that a stay is measured in whole nights.
package dates

import (
	"math"
	"strings"
	"time"
)

// Layout is the canonical date format (YYYY-MM-DD)
const Layout = "2006-01-02"

const day = 24 * time.Hour

// Parse parses a date string.
// Accepts YYYY-MM-DD and RFC 3339 timestamps. Returns ok=false on invalid input.
// A timestamp keeps the calendar date of its own offset; the time of day is dropped,
// so two timestamps on the same date give an empty stay.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(Layout, s); err == nil {
		return t, true
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}

	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// Truncate drops the time of day and converts to UTC
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Format renders t as YYYY-MM-DD
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Nights returns checkOut - checkIn in days.
// The result is negative when checkOut is before checkIn.
func Nights(checkIn, checkOut time.Time) float64 {
	return float64(checkOut.Sub(checkIn)) / float64(day)
}

// NightsBetween is Nights over raw strings.
// Returns NaN if either side does not parse; validate with Parse first.
func NightsBetween(checkIn, checkOut string) float64 {
	in, ok := Parse(checkIn)
	if !ok {
		return math.NaN()
	}
	out, ok := Parse(checkOut)
	if !ok {
		return math.NaN()
	}
	return Nights(in, out)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share at least one instant.
// Intervals that only touch (aEnd == bStart) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Contains reports start <= d < end
func Contains(start, end, d time.Time) bool {
	return !d.Before(start) && d.Before(end)
}
