package results

import (
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-results-service/internal/logging"
	"github.com/preston-bernstein/nhl-results-service/internal/timeutil"
)

// Kind names a reference date.
type Kind string

const (
	KindToday     Kind = "today"
	KindYesterday Kind = "yesterday"
)

// DefaultTestToday is "today" in test mode when no override is configured.
const DefaultTestToday = "2025-02-23"

// ReferenceOptions configures how reference dates are resolved.
type ReferenceOptions struct {
	TestMode  bool
	Today     string
	Yesterday string
	Now       func() time.Time
	Logger    *slog.Logger
}

// ReferenceDates supplies the dates treated as today and yesterday.
// In test mode both are resolved once at construction; otherwise they follow
// the wall clock on every call so a long-running process rolls over at midnight.
type ReferenceDates struct {
	testMode  bool
	today     time.Time
	yesterday time.Time
	now       func() time.Time
	logger    *slog.Logger
}

// NewReferenceDates resolves the configured overrides.
func NewReferenceDates(opts ReferenceOptions) *ReferenceDates {
	r := &ReferenceDates{
		testMode: opts.TestMode,
		now:      opts.Now,
		logger:   opts.Logger,
	}
	if r.now == nil {
		r.now = time.Now
	}
	if !r.testMode {
		return r
	}

	fallback, _ := timeutil.ParseEasternDate(DefaultTestToday)
	r.today = r.resolve(KindToday, opts.Today, fallback)
	r.yesterday = r.resolve(KindYesterday, opts.Yesterday, timeutil.AddDays(r.today, -1))
	return r
}

// TestMode reports whether the dates are pinned.
func (r *ReferenceDates) TestMode() bool {
	return r.testMode
}

// Today returns the reference "today" in the Eastern zone.
func (r *ReferenceDates) Today() time.Time {
	if r.testMode {
		return r.today
	}
	return r.resolve(KindToday, "", time.Time{})
}

// Yesterday returns the reference "yesterday" in the Eastern zone.
func (r *ReferenceDates) Yesterday() time.Time {
	if r.testMode {
		return r.yesterday
	}
	return r.resolve(KindYesterday, "", time.Time{})
}

// resolve parses a test-mode override as midnight Eastern, falling back when it
// is empty or malformed. Outside test mode it reads the clock.
func (r *ReferenceDates) resolve(kind Kind, override string, fallback time.Time) time.Time {
	if !r.testMode {
		now := r.now().In(timeutil.Eastern())
		if kind == KindYesterday {
			return timeutil.AddDays(now, -1)
		}
		return now
	}

	override = strings.TrimSpace(override)
	if override == "" {
		return fallback
	}
	parsed, err := timeutil.ParseEasternDate(override)
	if err != nil {
		logging.Warn(r.logger, "invalid reference date override",
			slog.String("kind", string(kind)),
			slog.String("value", override),
			slog.String(logging.FieldDate, timeutil.CanonicalDate(fallback)),
			"error", err,
		)
		return fallback
	}
	return parsed
}
