package config

import "time"

const (
	envPort              = "PORT"
	envProvider          = "PROVIDER"
	envScoresBaseURL     = "NHL_SCORES_BASE_URL"
	envScoresTimeout     = "NHL_SCORES_TIMEOUT"
	envUseTestDates      = "USE_TEST_DATES"
	envTestTodayDate     = "TEST_TODAY_DATE"
	envTestYesterdayDate = "TEST_YESTERDAY_DATE"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"

	defaultPort          = "3000"
	defaultProvider      = "nhlscores"
	defaultScoresBaseURL = "https://nhl-score-api.herokuapp.com"
	defaultScoresTimeout = 10 * time.Second
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nhl-results-service"
	defaultLogLevel      = "info"
	defaultLogFormat     = "json"
)
