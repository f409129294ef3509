package level

import (
	"iter"
	"slices"

	"github.com/ardnew/clog/pkg"
)

// Scheme is the set of severities a logger recognizes, together with the
// level a root logger falls back to when nothing else applies.
//
// [Silent] is recognized by every scheme. The zero Scheme behaves as [Six].
type Scheme struct {
	levels   []Level
	fallback Level
}

var (
	// Six recognizes trace, debug, log, info, warn and error.
	Six = NewScheme(Trace, Debug, Log, Info, Warn, Error)

	// Five recognizes trace, debug, info, warn and error. Calls at [Log] are
	// never emitted under this scheme.
	Five = NewScheme(Trace, Debug, Info, Warn, Error)
)

// NewScheme returns a scheme recognizing the given output severities.
// Invalid levels and [Silent] are dropped, duplicates are collapsed, and the
// fallback is the lowest recognized severity.
func NewScheme(levels ...Level) Scheme {
	var s Scheme

	for _, l := range levels {
		if l.Valid() && l != Silent && !slices.Contains(s.levels, l) {
			s.levels = append(s.levels, l)
		}
	}

	slices.Sort(s.levels)

	s.fallback = Trace
	if len(s.levels) > 0 {
		s.fallback = s.levels[0]
	}

	return s
}

// WithFallback returns a copy of s that falls back to l. Levels s does not
// recognize leave the fallback unchanged.
func (s Scheme) WithFallback(l Level) Scheme {
	s = s.orDefault()

	if s.Recognizes(l) {
		s.levels = slices.Clone(s.levels)
		s.fallback = l
	}

	return s
}

// Fallback returns the level used when no explicit, persisted, default or
// inherited level applies.
func (s Scheme) Fallback() Level {
	return s.orDefault().fallback
}

// Recognizes reports whether l is [Silent] or one of the output severities
// of s.
func (s Scheme) Recognizes(l Level) bool {
	return l == Silent || slices.Contains(s.orDefault().levels, l)
}

// Outputs returns an iterator over the output severities of s in ascending
// rank. [Silent] is never included.
func (s Scheme) Outputs() iter.Seq[Level] {
	return slices.Values(s.orDefault().levels)
}

// Names returns the names of every level s recognizes, [Silent] last.
func (s Scheme) Names() []string {
	s = s.orDefault()

	names := make([]string, 0, len(s.levels)+1)
	for _, l := range s.levels {
		names = append(names, l.String())
	}

	return append(names, Silent.String())
}

// Parse is like [Parse] but also rejects levels s does not recognize.
func (s Scheme) Parse(str string) (Level, error) {
	l, err := Parse(str)
	if err != nil {
		return l, err
	}

	if !s.Recognizes(l) {
		return Silent, pkg.ErrInvalidLevel.Wrapf("%q not in scheme", str)
	}

	return l, nil
}

// Lookup returns the level s recognizes whose name is exactly name. Unlike
// [Scheme.Parse], case, whitespace and aliases are not accepted.
func (s Scheme) Lookup(name string) (Level, bool) {
	for l := range All() {
		if l.String() == name && s.Recognizes(l) {
			return l, true
		}
	}

	return Silent, false
}

func (s Scheme) orDefault() Scheme {
	if len(s.levels) == 0 {
		return Six
	}

	return s
}
