// Package logrussink adapts a logrus logger to a [sink.Sink].
package logrussink

import (
	"github.com/sirupsen/logrus"

	"github.com/ardnew/clog/sink"
)

// New returns a Sink writing to l. Log is recorded at info.
func New(l logrus.Ext1FieldLogger) sink.Sink {
	if l == nil {
		return sink.Discard
	}

	wrap := func(fn func(args ...any)) sink.Func {
		return func(args ...any) { fn(sink.Sprint(args...)) }
	}

	return sink.Funcs{
		"trace": wrap(l.Trace),
		"debug": wrap(l.Debug),
		"log":   wrap(l.Info),
		"info":  wrap(l.Info),
		"warn":  wrap(l.Warn),
		"error": wrap(l.Error),
	}
}
