package config

import "time"

// ScoresConfig controls how we talk to the NHL score API.
type ScoresConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadScores() ScoresConfig {
	return ScoresConfig{
		BaseURL: envOrDefault(envScoresBaseURL, defaultScoresBaseURL),
		Timeout: durationEnvOrDefault(envScoresTimeout, defaultScoresTimeout),
	}
}
