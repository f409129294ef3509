package style

import (
	"strconv"
	"strings"

	"github.com/ardnew/clog/level"
)

// Palette maps each output severity to the ANSI escape sequence that
// selects its color.
type Palette [level.Silent]string

// For returns the escape sequence of l, or the empty string.
func (p Palette) For(l level.Level) string {
	if l < level.Trace || l >= level.Silent {
		return ""
	}

	return p[l]
}

// Colors maps each output severity to a "#rrggbb" color.
type Colors [level.Silent]string

// For returns the color of l, or the empty string.
func (c Colors) For(l level.Level) string {
	if l < level.Trace || l >= level.Silent {
		return ""
	}

	return c[l]
}

// Truecolor returns the 24-bit ANSI palette of c. Malformed colors map to
// no color.
func (c Colors) Truecolor() Palette {
	var p Palette

	for l, hex := range c {
		r, g, b, ok := parseHex(hex)
		if !ok {
			continue
		}

		p[l] = "\x1b[38;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" +
			strconv.Itoa(b) + "m"
	}

	return p
}

func parseHex(s string) (r, g, b int, ok bool) {
	s, found := strings.CutPrefix(s, "#")
	if !found || len(s) != 6 {
		return 0, 0, 0, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}

	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

//nolint:gochecknoglobals
var (
	// ANSI is the 16-color terminal palette.
	ANSI = Palette{
		level.Trace: "\x1b[90m",
		level.Debug: "\x1b[34m",
		level.Log:   "\x1b[90m",
		level.Info:  "\x1b[32m",
		level.Warn:  "\x1b[33m",
		level.Error: "\x1b[31m",
	}

	// Browser is the muted palette used in browser consoles.
	Browser = Colors{
		level.Trace: "#95bdb7",
		level.Debug: "#ad95b8",
		level.Log:   "#808080",
		level.Info:  "#b6bd73",
		level.Warn:  "#88a1bb",
		level.Error: "#bf6c69",
	}
)
