package config

import (
	"testing"
	"time"
)

func TestEnvOrDefaultTrimsAndTreatsBlankAsUnset(t *testing.T) {
	t.Setenv("STR_TEST", "   ")
	if got := envOrDefault("STR_TEST", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}

	t.Setenv("STR_TEST", " 2025-02-23 ")
	if got := envOrDefault("STR_TEST", "fallback"); got != "2025-02-23" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		val      string
		expected time.Duration
	}{
		{"", 10 * time.Second},
		{"2s", 2 * time.Second},
		{" 1m30s ", 90 * time.Second},
		{"soon", 10 * time.Second},
		{"-1s", 10 * time.Second},
		{"0s", 10 * time.Second},
	}

	for _, tc := range cases {
		t.Setenv("DURATION_TEST", tc.val)
		if got := durationEnvOrDefault("DURATION_TEST", 10*time.Second); got != tc.expected {
			t.Fatalf("expected %s for %q, got %s", tc.expected, tc.val, got)
		}
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"on", true},
		{"false", false},
		{"No", false},
		{"0", false},
		{"off", false},
		{"maybe", true},
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}
