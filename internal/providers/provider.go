package providers

import (
	"context"

	"github.com/preston-bernstein/nhl-results-service/internal/domain/games"
)

// ScoresProvider defines how upstream scores are fetched and normalized.
// startDate and endDate are inclusive YYYY-MM-DD strings. An empty result is
// not an error: it means no games were scheduled in the window.
type ScoresProvider interface {
	FetchScores(ctx context.Context, startDate, endDate string) ([]games.Day, error)
}
