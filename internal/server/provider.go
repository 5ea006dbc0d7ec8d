package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nhl-results-service/internal/config"
	"github.com/preston-bernstein/nhl-results-service/internal/providers"
	"github.com/preston-bernstein/nhl-results-service/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-results-service/internal/providers/nhlscores"
)

const (
	providerNHLScores = "nhlscores"
	providerFixture   = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScoresProvider {
	switch strings.ToLower(cfg.Provider) {
	case providerNHLScores, "":
		return newScoresClient(cfg)
	case providerFixture:
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to nhlscores", slog.String("provider", cfg.Provider))
		}
		return newScoresClient(cfg)
	}
}

func newScoresClient(cfg config.Config) *nhlscores.Client {
	return nhlscores.NewClient(nhlscores.Config{
		BaseURL: cfg.Scores.BaseURL,
		Timeout: cfg.Scores.Timeout,
	})
}
