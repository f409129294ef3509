// Package style provides binding strategies: functions that derive the
// callable a logger invokes for a severity from a sink, the severity and the
// logger's name. Binders decide prefixes, symbols and colors.
package style

import (
	"slices"
	"sort"

	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/sink"
)

// Reset ends an ANSI color sequence.
const Reset = "\x1b[0m"

// Binder derives the callable bound for severity l of a logger named name
// (empty for the root) writing to s.
type Binder func(s sink.Sink, l level.Level, name string) sink.Func

// Symbols maps each output severity to the glyph shown in its prefix.
type Symbols [level.Silent]string

// For returns the symbol of l, or the empty string if l is not an output
// severity.
func (s Symbols) For(l level.Level) string {
	if l < level.Trace || l >= level.Silent {
		return ""
	}

	return s[l]
}

//nolint:gochecknoglobals
var (
	// Unicode is the symbol set for terminals that render Unicode.
	Unicode = Symbols{
		level.Trace: "◔",
		level.Debug: "◌",
		level.Log:   "●",
		level.Info:  "⚡️",
		level.Warn:  "▲",
		level.Error: "✖",
	}

	// Fallback is the symbol set for terminals limited to legacy code pages.
	Fallback = Symbols{
		level.Trace: "»",
		level.Debug: "*",
		level.Log:   "•",
		level.Info:  "i",
		level.Warn:  "‼",
		level.Error: "×",
	}
)

// Prefix returns the prefix a logger named name emits for symbol sym:
// "sym name:" for a named logger and "sym" for the root.
func Prefix(sym, name string) string {
	if name == "" {
		return sym
	}

	return sym + " " + name + ":"
}

// Env returns a Binder that prepends the colored prefix of each severity to
// the arguments of every call. A severity with no color in pal is not
// wrapped in escape sequences.
func Env(sym Symbols, pal Palette) Binder {
	return func(s sink.Sink, l level.Level, name string) sink.Func {
		p := Prefix(sym.For(l), name)
		if c := pal.For(l); c != "" {
			p = c + p + Reset
		}

		return bind(sink.Resolve(s, l.String()), p)
	}
}

// Simple returns a Binder using the [Fallback] symbols without color.
func Simple() Binder { return Env(Fallback, Palette{}) }

// Plain returns a Binder that adds nothing to the arguments.
func Plain() Binder {
	return func(s sink.Sink, l level.Level, _ string) sink.Func {
		return sink.Resolve(s, l.String())
	}
}

// CSS returns a Binder for consoles that style output with a "%c" directive:
// the prefix is preceded by "%c" and followed by a "color: #rrggbb" argument.
func CSS(sym Symbols, colors Colors) Binder {
	return func(s sink.Sink, l level.Level, name string) sink.Func {
		p := Prefix(sym.For(l), name)

		c := colors.For(l)
		if c == "" {
			return bind(sink.Resolve(s, l.String()), p)
		}

		return bind(sink.Resolve(s, l.String()), "%c"+p, "color: "+c)
	}
}

// Auto returns a Binder suited to the process's terminal: [Unicode] symbols
// when the terminal renders Unicode, else [Fallback]; [ANSI] colors when the
// environment supports color, else none.
func Auto() Binder {
	sym := Fallback
	if UnicodeSupported() {
		sym = Unicode
	}

	if ColorSupported() {
		return Env(sym, ANSI)
	}

	return Env(sym, Palette{})
}

func bind(fn sink.Func, lead ...any) sink.Func {
	lead = slices.Clip(lead)

	return func(args ...any) {
		fn(append(lead, args...)...)
	}
}

//nolint:gochecknoglobals
var named = map[string]func() Binder{
	"auto":      Auto,
	"ansi":      func() Binder { return Env(Unicode, ANSI) },
	"truecolor": func() Binder { return Env(Unicode, Browser.Truecolor()) },
	"css":       func() Binder { return CSS(Unicode, Browser) },
	"lipgloss":  func() Binder { return Lipgloss(Unicode, DefaultStyles()) },
	"simple":    Simple,
	"plain":     Plain,
}

// Names returns the sorted names accepted by [Lookup].
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup returns the Binder registered under name.
func Lookup(name string) (Binder, error) {
	mk, ok := named[name]
	if !ok {
		return nil, pkg.ErrInvalidArgument.Wrapf("unknown style %q", name)
	}

	return mk(), nil
}
