package api

import (
	"context"
	"log/slog"
)

// LevelTrace sits below debug; handle traffic is noisy.
const LevelTrace slog.Level = slog.LevelDebug - 4

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
