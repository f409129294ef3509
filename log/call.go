package log

import (
	"github.com/ardnew/clog/pkg"
)

// Call forwards args to the sink capability called method, without level
// filtering. It returns [pkg.ErrMethodNotFound] if the sink lacks it.
func (l *Logger) Call(method string, args ...any) error {
	fn, ok := l.Sink().Method(method)
	if !ok {
		return pkg.ErrMethodNotFound.Wrapf("%q", method)
	}

	fn(args...)

	return nil
}

// Table renders data as a table. Columns, if given, restricts the columns
// shown.
func (l *Logger) Table(data any, columns ...string) error {
	if columns == nil {
		return l.Call("table", data)
	}

	return l.Call("table", data, columns)
}

// Assert writes args when cond is false.
func (l *Logger) Assert(cond bool, args ...any) error {
	return l.Call("assert", append([]any{cond}, args...)...)
}

// Clear clears the console.
func (l *Logger) Clear() error { return l.Call("clear") }

// Group starts an indented group, optionally preceded by a label.
func (l *Logger) Group(label ...any) error { return l.Call("group", label...) }

// GroupEnd ends the innermost group.
func (l *Logger) GroupEnd() error { return l.Call("groupEnd") }
