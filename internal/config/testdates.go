package config

// TestDatesConfig pins the reference dates for demos and reproducible runs.
// Today and Yesterday are raw YYYY-MM-DD strings; they are parsed and
// validated when the reference dates are built.
type TestDatesConfig struct {
	Enabled   bool
	Today     string
	Yesterday string
}

func loadTestDates() TestDatesConfig {
	return TestDatesConfig{
		Enabled:   boolEnvOrDefault(envUseTestDates, false),
		Today:     envOrDefault(envTestTodayDate, ""),
		Yesterday: envOrDefault(envTestYesterdayDate, ""),
	}
}
