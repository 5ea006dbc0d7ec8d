package testutil

import (
	"time"

	"github.com/preston-bernstein/nhl-results-service/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp or panics; intended for tests.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}

// EasternAt returns hour:minute Eastern on a YYYY-MM-DD date, the way puck
// drop times are quoted. It panics on a malformed date.
func EasternAt(date string, hour, minute int) time.Time {
	day, err := timeutil.ParseEasternDate(date)
	if err != nil {
		panic(err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, timeutil.Eastern())
}
