package sink

import (
	"context"
	"log/slog"
)

// LevelTrace is the [slog.Level] trace messages are recorded at.
const LevelTrace = slog.Level(-8)

// DefaultContextProvider returns the context passed to [slog.Logger.Log] by
// sinks created with [Slog].
//
//nolint:gochecknoglobals
var DefaultContextProvider = context.TODO

// Slog returns a Sink that records each severity on l. The message is the
// console-style rendering of the arguments, prefix included. "log" records
// at [slog.LevelInfo].
func Slog(l *slog.Logger) Sink {
	if l == nil {
		return Discard
	}

	record := func(level slog.Level) Func {
		return func(args ...any) {
			l.Log(DefaultContextProvider(), level, Sprint(args...))
		}
	}

	return Funcs{
		"trace": record(LevelTrace),
		"debug": record(slog.LevelDebug),
		"log":   record(slog.LevelInfo),
		"info":  record(slog.LevelInfo),
		"warn":  record(slog.LevelWarn),
		"error": record(slog.LevelError),
	}
}
