// Package sinktest provides a recording Sink for tests.
package sinktest

import (
	"slices"
	"sync"

	"github.com/ardnew/clog/sink"
)

// Severities are the method names a Recorder provides by default.
//
//nolint:gochecknoglobals
var Severities = []string{"trace", "debug", "log", "info", "warn", "error"}

// Call is one recorded invocation.
type Call struct {
	Method string
	Args   []any
}

// Line returns the console-style rendering of the call's arguments.
func (c Call) Line() string { return sink.Sprint(c.Args...) }

// Recorder is a Sink that records every call made through its methods.
type Recorder struct {
	mu      sync.Mutex
	methods []string
	calls   []Call
}

// NewRecorder returns a Recorder providing the named methods, or
// [Severities] if none are given.
func NewRecorder(methods ...string) *Recorder {
	if len(methods) == 0 {
		methods = Severities
	}

	return &Recorder{methods: slices.Clone(methods)}
}

// Method implements [sink.Sink].
func (r *Recorder) Method(name string) (sink.Func, bool) {
	if !slices.Contains(r.methods, name) {
		return nil, false
	}

	return func(args ...any) {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.calls = append(r.calls, Call{Method: name, Args: slices.Clone(args)})
	}, true
}

// Calls returns the recorded calls, in order. With method names given, only
// calls to those methods are returned.
func (r *Recorder) Calls(methods ...string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Call

	for _, c := range r.calls {
		if len(methods) == 0 || slices.Contains(methods, c.Method) {
			out = append(out, c)
		}
	}

	return out
}

// Lines returns the rendered arguments of the calls selected as in Calls.
func (r *Recorder) Lines(methods ...string) []string {
	calls := r.Calls(methods...)
	out := make([]string, len(calls))

	for i, c := range calls {
		out[i] = c.Line()
	}

	return out
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = nil
}
