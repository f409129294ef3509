// Package metrics counts the calls delivered to a sink.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ardnew/clog/sink"
)

// Sink forwards every capability of the wrapped sink and counts each call
// delivered, labeled by method name. It is a [prometheus.Collector].
type Sink struct {
	next  sink.Sink
	calls *prometheus.CounterVec
}

var (
	_ sink.Sink            = (*Sink)(nil)
	_ prometheus.Collector = (*Sink)(nil)
)

// New wraps next. Counters are named <namespace>_sink_calls_total.
func New(next sink.Sink, namespace string) *Sink {
	if next == nil {
		next = sink.Discard
	}

	return &Sink{
		next: next,
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sink",
			Name:      "calls_total",
			Help:      "Number of calls delivered to the sink, by method.",
		}, []string{"method"}),
	}
}

// Method implements [sink.Sink].
func (s *Sink) Method(name string) (sink.Func, bool) {
	fn, ok := s.next.Method(name)
	if !ok {
		return nil, false
	}

	counter := s.calls.WithLabelValues(name)

	return func(args ...any) {
		counter.Inc()
		fn(args...)
	}, true
}

// Describe implements [prometheus.Collector].
func (s *Sink) Describe(ch chan<- *prometheus.Desc) { s.calls.Describe(ch) }

// Collect implements [prometheus.Collector].
func (s *Sink) Collect(ch chan<- prometheus.Metric) { s.calls.Collect(ch) }
