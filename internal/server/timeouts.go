package server

import "time"

// Page renders wait on one upstream call bounded by the score client timeout,
// so the write deadline sits above it.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
