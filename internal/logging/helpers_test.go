package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "ignored")
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "text", Level: "debug", Output: &buf})

	Debug(logger, "debugging")
	Error(logger, "fetch failed", errors.New("boom"), FieldTeam, "TOR")

	out := buf.String()
	if !strings.Contains(out, "debugging") {
		t.Fatalf("expected debug line, got %q", out)
	}
	if !strings.Contains(out, "error=boom") || !strings.Contains(out, "team=TOR") {
		t.Fatalf("expected error and team fields, got %q", out)
	}
}
