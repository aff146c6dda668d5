package logger

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, v := range tests {
		if got := parseLevel(v.in); got != v.want {
			t.Errorf("parseLevel(%q) = %v, want %v", v.in, got, v.want)
		}
	}
}

func TestNewWithoutFile(t *testing.T) {
	log := New("debug", "")
	if !log.Enabled(nil, slog.LevelDebug) {
		t.Error("debug logger should report debug as enabled")
	}

	log = New("warn", "")
	if log.Enabled(nil, slog.LevelInfo) {
		t.Error("warn logger should not report info as enabled")
	}
}
