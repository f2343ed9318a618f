package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		shouldAppear bool
	}{
		{name: "trace sees trace", logLevel: "trace", messageLevel: "trace", shouldAppear: true},
		{name: "trace sees info", logLevel: "trace", messageLevel: "info", shouldAppear: true},
		{name: "debug blocks trace", logLevel: "debug", messageLevel: "trace", shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", shouldAppear: true},
		{name: "info blocks debug", logLevel: "info", messageLevel: "debug", shouldAppear: false},
		{name: "info sees info", logLevel: "info", messageLevel: "info", shouldAppear: true},
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", shouldAppear: false},
		{name: "error blocks info", logLevel: "error", messageLevel: "info", shouldAppear: false},
		{name: "invalid level defaults to warn", logLevel: "chatty", messageLevel: "info", shouldAppear: false},
		{name: "empty level defaults to warn", logLevel: "", messageLevel: "debug", shouldAppear: false},
		{name: "level is case-insensitive", logLevel: " DEBUG ", messageLevel: "debug", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.logLevel)

			switch tt.messageLevel {
			case "trace":
				logger.LogTrace("the message")
			case "debug":
				logger.LogDebug("the message")
			case "info":
				logger.LogInfo("the message")
			}

			appeared := strings.Contains(buf.String(), "the message")
			if appeared != tt.shouldAppear {
				t.Errorf("message appeared = %v, want %v (output %q)", appeared, tt.shouldAppear, buf.String())
			}
		})
	}
}

func TestNormalizeLogLevel(t *testing.T) {
	tests := map[string]string{
		"trace":   "trace",
		"INFO":    "info",
		"  Warn ": "warn",
		"":        "warn",
		"verbose": "warn",
	}

	for input, want := range tests {
		if got := normalizeLogLevel(input); got != want {
			t.Errorf("normalizeLogLevel(%q) = %q, want %q", input, got, want)
		}
	}
}
