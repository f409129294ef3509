package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/sink"
	"github.com/ardnew/clog/sink/logrussink"
	"github.com/ardnew/clog/sink/metrics"
	"github.com/ardnew/clog/sink/zapsink"
)

// backends constructs the sinks selectable with emit --sink. Each writes
// every severity to w.
var backends = map[string]func(w io.Writer) sink.Sink{
	"console": func(w io.Writer) sink.Sink { return sink.NewConsole(w, w) },
	"slog": func(w io.Writer) sink.Sink {
		return sink.Slog(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: sink.LevelTrace,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}

				return a
			},
		})))
	},
	"zap": func(w io.Writer) sink.Sink {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.TimeKey = ""

		return zapsink.New(zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)))
	},
	"logrus": func(w io.Writer) sink.Sink {
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.TraceLevel)
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		})

		return logrussink.New(l)
	},
}

// BackendNames returns the names accepted by emit --sink.
func BackendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Vars returns the variables interpolated into command flag tags.
func Vars() kong.Vars {
	return kong.Vars{"emitSinks": strings.Join(BackendNames(), ", ")}
}

func backend(name string, w io.Writer) (sink.Sink, error) {
	mk, ok := backends[name]
	if !ok {
		return nil, pkg.ErrInvalidArgument.Wrapf("unknown sink %q", name)
	}

	return mk(w), nil
}

// counted wraps s with a call counter registered in a private registry.
func counted(s sink.Sink) (*metrics.Sink, *prometheus.Registry) {
	m := metrics.New(s, pkg.Name)
	reg := prometheus.NewRegistry()
	reg.MustRegister(m)

	return m, reg
}

// writeCounts prints the nonzero call counters gathered from reg, one
// "method<TAB>count" line each.
func writeCounts(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			n := m.GetCounter().GetValue()
			if n == 0 {
				continue
			}

			var method string

			for _, lp := range m.GetLabel() {
				if lp.GetName() == "method" {
					method = lp.GetValue()
				}
			}

			if _, err := fmt.Fprintf(w, "%s\t%g\n", method, n); err != nil {
				return err
			}
		}
	}

	return nil
}
