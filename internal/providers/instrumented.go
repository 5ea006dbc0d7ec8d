package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-results-service/internal/logging"
	"github.com/preston-bernstein/nhl-results-service/internal/metrics"
)

// instrumentedProvider records every fetch in metrics and logs its outcome.
// It makes exactly one call to the wrapped provider per fetch.
type instrumentedProvider struct {
	inner    ScoresProvider
	name     string
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewInstrumentedProvider wraps inner with metrics and logging.
func NewInstrumentedProvider(inner ScoresProvider, name string, recorder *metrics.Recorder, logger *slog.Logger) ScoresProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		recorder: recorder,
		logger:   logger,
	}
}

func (p *instrumentedProvider) FetchScores(ctx context.Context, startDate, endDate string) ([]games.Day, error) {
	logger := logging.FromContext(ctx, p.logger)
	if p.inner == nil {
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := time.Now()
	days, err := p.inner.FetchScores(ctx, startDate, endDate)
	elapsed := time.Since(start)
	p.recorder.RecordProviderAttempt(p.name, elapsed, err)

	window := []any{
		slog.String(logging.FieldStartDate, startDate),
		slog.String(logging.FieldEndDate, endDate),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, p.name, "provider fetch failed", append(window, "error", err)...)
		return nil, err
	}

	logWithProvider(ctx, logger, slog.LevelDebug, p.name, "provider fetch complete", append(window, slog.Int(logging.FieldCount, len(days)))...)
	return days, nil
}
