// Package level defines the totally ordered set of severities used to filter
// log calls, and the schemes that select which of them a logger recognizes.
package level

import (
	"iter"
	"strconv"
	"strings"

	"github.com/ardnew/clog/pkg"
)

// Level is a logging severity. Its numeric value is its rank: a call at level
// L is emitted when L is at least the effective minimum level.
type Level int8

// Severities in ascending rank. [Silent] is only meaningful as a minimum level.
const (
	Trace  Level = iota // trace
	Debug               // debug
	Log                 // log
	Info                // info
	Warn                // warn
	Error               // error
	Silent              // silent
)

var names = [...]string{
	Trace:  "trace",
	Debug:  "debug",
	Log:    "log",
	Info:   "info",
	Warn:   "warn",
	Error:  "error",
	Silent: "silent",
}

// All returns an iterator over every defined severity in ascending rank,
// including [Silent].
func All() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for l := Trace; l <= Silent; l++ {
			if !yield(l) {
				return
			}
		}
	}
}

// Valid reports whether l is one of the defined severities.
func (l Level) Valid() bool { return l >= Trace && l <= Silent }

// Rank returns the comparison rank of l.
func (l Level) Rank() int { return int(l) }

// String returns the lowercase name of l, which is also the name of the sink
// method that outputs it.
func (l Level) String() string {
	if !l.Valid() {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}

	return names[l]
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, pkg.ErrInvalidLevel.Wrapf("%d", int(l))
	}

	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [Parse].
func (l *Level) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*l = v

	return nil
}

// Parse returns the severity named by s. Matching ignores case and
// surrounding whitespace. "warning" is accepted as an alias of "warn".
func Parse(s string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	if key == "warning" {
		return Warn, nil
	}

	for l, name := range names {
		if name == key {
			return Level(l), nil
		}
	}

	return Silent, pkg.ErrInvalidLevel.Wrapf("%q", s)
}
