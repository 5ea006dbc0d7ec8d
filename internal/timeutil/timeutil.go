package timeutil

import (
	"time"
	_ "time/tzdata" // containers often ship without zoneinfo
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ReferenceZone is the zone every canonical date is computed in.
const ReferenceZone = "America/New_York"

var eastern = loadEastern()

func loadEastern() *time.Location {
	loc, err := time.LoadLocation(ReferenceZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Eastern returns the reference location used for day comparisons.
func Eastern() *time.Location {
	return eastern
}

// ParseEasternDate parses a YYYY-MM-DD date string as midnight in the reference zone.
func ParseEasternDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, eastern)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CanonicalDate formats the instant as its calendar date in the reference zone.
func CanonicalDate(t time.Time) string {
	return t.In(eastern).Format(DateLayout)
}

// AddDays moves t by n calendar days in the reference zone, keeping the wall clock.
func AddDays(t time.Time, n int) time.Time {
	return t.In(eastern).AddDate(0, 0, n)
}

// DateWindow returns the canonical dates `before` days ahead of and `after` days past target.
func DateWindow(target time.Time, before, after int) (string, string) {
	return CanonicalDate(AddDays(target, -before)), CanonicalDate(AddDays(target, after))
}
