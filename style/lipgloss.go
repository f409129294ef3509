package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/sink"
)

// Styles maps each output severity to a lipgloss style for its prefix.
type Styles [level.Silent]lipgloss.Style

// DefaultStyles returns bold prefixes in the [Browser] colors.
func DefaultStyles() Styles {
	var s Styles

	for l, c := range Browser {
		s[l] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
	}

	return s
}

// Lipgloss returns a Binder rendering each prefix with its style. Lipgloss
// degrades the styling to what the output supports.
func Lipgloss(sym Symbols, styles Styles) Binder {
	return func(s sink.Sink, l level.Level, name string) sink.Func {
		p := Prefix(sym.For(l), name)
		if l >= level.Trace && l < level.Silent {
			p = styles[l].Render(p)
		}

		return bind(sink.Resolve(s, l.String()), p)
	}
}
