package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
)

// StaticProvider returns the provided days with no error.
type StaticProvider struct {
	Days []games.Day
}

func (p StaticProvider) FetchScores(ctx context.Context, startDate, endDate string) ([]games.Day, error) {
	_ = ctx
	_ = startDate
	_ = endDate
	return p.Days, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchScores(ctx context.Context, startDate, endDate string) ([]games.Day, error) {
	return nil, p.Err
}

// Window is one requested date range.
type Window struct {
	Start string
	End   string
}

// RecordingProvider returns Days/Err and remembers every requested window.
type RecordingProvider struct {
	Days []games.Day
	Err  error

	mu    sync.Mutex
	calls []Window
}

func (p *RecordingProvider) FetchScores(ctx context.Context, startDate, endDate string) ([]games.Day, error) {
	_ = ctx
	p.mu.Lock()
	p.calls = append(p.calls, Window{Start: startDate, End: endDate})
	p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Days, nil
}

// Calls returns a copy of the requested windows.
func (p *RecordingProvider) Calls() []Window {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Window(nil), p.calls...)
}
