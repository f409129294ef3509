package cmd

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/style"
)

// Emit outputs a message through the root or a named logger, subject to its
// effective level.
type Emit struct {
	Level   string   `arg:"" help:"Severity of the message" name:"level"`
	Message []string `arg:"" help:"Message operands"         name:"message"`

	Name  string `help:"Logger name (default: the root)"                          short:"n"`
	Style string `help:"Binding strategy (auto, ansi, css, lipgloss, plain, ...)" short:"s"`
	Sink  string `help:"Output backend (${emitSinks})"`
	Count bool   `help:"Report the calls delivered to the sink"`
}

// Run executes the emit command.
func (e *Emit) Run(ctx context.Context) error {
	root := loggerFrom(ctx)

	lv, err := parseLevel(root, e.Level)
	if err != nil {
		return err
	}

	if lv == level.Silent {
		return pkg.ErrInvalidLevel.Wrapf("%s is not an output severity", lv)
	}

	lg, err := target(root, e.Name)
	if err != nil {
		return err
	}

	if e.Style != "" {
		b, err := style.Lookup(e.Style)
		if err != nil {
			return err
		}

		lg.SetConfig(b)
	}

	w := outputFrom(ctx)

	if e.Sink != "" {
		s, err := backend(e.Sink, w)
		if err != nil {
			return err
		}

		lg.Use(s)
	}

	var reg prometheus.Gatherer

	if e.Count {
		m, r := counted(lg.Sink())
		lg.Use(m)

		reg = r
	}

	if !lg.Enabled(lv) {
		log.Debug("message suppressed", "level", lv, "effective", lg.Level())

		if reg != nil {
			return writeCounts(w, reg)
		}

		return nil
	}

	args := make([]any, len(e.Message))
	for i, s := range e.Message {
		args[i] = s
	}

	lg.Print(lv, args...)

	if reg != nil {
		return writeCounts(w, reg)
	}

	return nil
}
