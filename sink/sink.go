// Package sink defines the output targets a logger delegates to.
//
// A [Sink] exposes named capabilities. The severity names ("trace", "debug",
// "log", "info", "warn", "error") are the methods loggers bind against;
// anything else ("table", "assert", "clear", ...) is an extra capability a
// logger forwards without level filtering.
package sink

import (
	"fmt"
	"strings"
)

// Func is a callable output capability.
type Func func(args ...any)

// Sink is an output target with named capabilities.
type Sink interface {
	// Method returns the capability called name, if the sink provides it.
	Method(name string) (Func, bool)
}

// Funcs is a Sink backed by a map of named callables. Nil entries are
// treated as missing.
type Funcs map[string]Func

// Method implements [Sink].
func (f Funcs) Method(name string) (Func, bool) {
	fn, ok := f[name]

	return fn, ok && fn != nil
}

// Discard is a Sink with no capabilities. Loggers bound to it output nothing.
var Discard Sink = discard{}

type discard struct{}

func (discard) Method(string) (Func, bool) { return nil, false }

// Nop discards its arguments.
func Nop(...any) {}

// Resolve returns the capability called name, else the sink's "log"
// capability, else [Nop]. Binders use it so a sink that only knows how to
// log still receives every severity.
func Resolve(s Sink, name string) Func {
	if s == nil {
		return Nop
	}

	if fn, ok := s.Method(name); ok {
		return fn
	}

	if fn, ok := s.Method("log"); ok {
		return fn
	}

	return Nop
}

// Sprint formats args the way a console does: operands are rendered with
// their default formats and always separated by a single space.
func Sprint(args ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
