// Package zapsink adapts a [zap.Logger] to a [sink.Sink].
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ardnew/clog/sink"
)

// New returns a Sink writing to l. Zap has no trace or log level: trace is
// recorded at debug and log at info.
//
// The caller zap records is the sink itself. How many frames separate it from
// user code depends on the binder in use, so callers wanting user frames
// configure l with [zap.AddCallerSkip].
func New(l *zap.Logger) sink.Sink {
	if l == nil {
		return sink.Discard
	}

	at := func(lvl zapcore.Level) sink.Func {
		return func(args ...any) {
			if ce := l.Check(lvl, sink.Sprint(args...)); ce != nil {
				ce.Write()
			}
		}
	}

	return sink.Funcs{
		"trace": at(zapcore.DebugLevel),
		"debug": at(zapcore.DebugLevel),
		"log":   at(zapcore.InfoLevel),
		"info":  at(zapcore.InfoLevel),
		"warn":  at(zapcore.WarnLevel),
		"error": at(zapcore.ErrorLevel),
	}
}
