package mesh

import (
	"context"
	"log/slog"
)

// LevelTrace sits right above Info so that assembly traces can be kept while
// debug output is dropped.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs an assembly event at LevelTrace.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
