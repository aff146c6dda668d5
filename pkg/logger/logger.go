// Package logger configures slog for the command line tools: a text
// handler on stderr, fanned out to a rotated JSON file when one is
// configured.
package logger

import (
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

func New(level, file string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	console := slog.NewTextHandler(os.Stderr, opts)
	if file == "" {
		return slog.New(console)
	}

	rotated := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    64, // MB
		MaxBackups: 8,
		MaxAge:     30, // days
		Compress:   true,
	}

	return slog.New(slogmulti.Fanout(
		console,
		slog.NewJSONHandler(rotated, opts),
	))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
