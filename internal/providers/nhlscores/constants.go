package nhlscores

import "time"

const (
	providerName       = "nhlscores"
	defaultBaseURL     = "https://nhl-score-api.herokuapp.com"
	scoresPath         = "/api/scores"
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 4 << 20
	maxErrorBodyChars  = 240
)
