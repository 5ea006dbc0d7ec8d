package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port      string
	Provider  string
	Scores    ScoresConfig
	TestDates TestDatesConfig
	Metrics   MetricsConfig
	Log       LogConfig
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; variables
// already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  envOrDefault(envProvider, defaultProvider),
		Scores:    loadScores(),
		TestDates: loadTestDates(),
		Metrics:   loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}
