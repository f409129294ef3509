package log

import (
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/sink"
	"github.com/ardnew/clog/store"
	"github.com/ardnew/clog/style"
)

// Logger is a node in a logger hierarchy: the unnamed root or one of its
// named children. It is safe for concurrent use.
//
// Each output method checks the severity against [Logger.Level] at call
// time, so a level change (including a persisted one) takes effect on the
// next call without rebinding.
type Logger struct {
	mu   sync.Mutex
	name string
	root *Logger
	config

	explicit    level.Level
	hasExplicit bool
	def         level.Level
	hasDefault  bool

	funcs    [level.Silent]sink.Func
	children map[string]*Logger
	order    []string
}

// New creates a root [Logger]. The default configuration is described by
// [WithDefaults]; opts override it.
func New(opts ...Option) *Logger {
	l := &Logger{config: makeConfig(opts...)}

	// No need to lock: nothing else has a reference to l yet.
	l.bindLocked()

	return l
}

// Name returns the logger's name, or the empty string for the root.
func (l *Logger) Name() string { return l.name }

// Root returns the root of the hierarchy l belongs to.
func (l *Logger) Root() *Logger {
	if l.root == nil {
		return l
	}

	return l.root
}

// Scheme returns the severities l recognizes.
func (l *Logger) Scheme() level.Scheme { return l.scheme }

// Store returns the store persisting l's level override.
func (l *Logger) Store() store.Store { return l.store }

// StoreKey returns the key under which l's level is persisted.
func (l *Logger) StoreKey() string { return l.storeKey(l.name) }

// Sink returns the sink l currently writes to.
func (l *Logger) Sink() sink.Sink {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.sink
}

// Level returns the effective minimum severity of l. It is the first of:
// the explicit level; the persisted level, which is then kept as the
// explicit level; the default level; the root's level; the scheme fallback.
func (l *Logger) Level() level.Level {
	l.mu.Lock()
	lv, ok := l.resolveLocked()
	l.mu.Unlock()

	if ok {
		return lv
	}

	if l.root != nil {
		return l.root.Level()
	}

	return l.scheme.Fallback()
}

// resolveLocked returns the level set on l itself, if any.
func (l *Logger) resolveLocked() (level.Level, bool) {
	if l.hasExplicit {
		return l.explicit, true
	}

	if v, err := l.store.Get(l.StoreKey()); err == nil {
		if lv, ok := l.scheme.Lookup(v); ok {
			l.explicit, l.hasExplicit = lv, true

			return lv, true
		}
	}

	if l.hasDefault {
		return l.def, true
	}

	return 0, false
}

// Enabled reports whether a call at severity lv would be output.
func (l *Logger) Enabled(lv level.Level) bool {
	return l.bound(lv) != nil
}

// bound returns the callable for lv if a call at lv is currently enabled.
func (l *Logger) bound(lv level.Level) sink.Func {
	if lv < level.Trace || lv >= level.Silent {
		return nil
	}

	l.mu.Lock()
	fn := l.funcs[lv]
	l.mu.Unlock()

	if fn == nil || lv.Rank() < l.Level().Rank() {
		return nil
	}

	return fn
}

// Print outputs args at severity lv if enabled.
func (l *Logger) Print(lv level.Level, args ...any) {
	if fn := l.bound(lv); fn != nil {
		fn(args...)
	}
}

// Trace outputs args at [level.Trace].
func (l *Logger) Trace(args ...any) { l.Print(level.Trace, args...) }

// Debug outputs args at [level.Debug].
func (l *Logger) Debug(args ...any) { l.Print(level.Debug, args...) }

// Log outputs args at [level.Log].
func (l *Logger) Log(args ...any) { l.Print(level.Log, args...) }

// Info outputs args at [level.Info].
func (l *Logger) Info(args ...any) { l.Print(level.Info, args...) }

// Warn outputs args at [level.Warn].
func (l *Logger) Warn(args ...any) { l.Print(level.Warn, args...) }

// Error outputs args at [level.Error].
func (l *Logger) Error(args ...any) { l.Print(level.Error, args...) }

// SetLevel sets the explicit level of l and persists it. Levels the scheme
// does not recognize are ignored. Store failures are ignored.
func (l *Logger) SetLevel(lv level.Level) *Logger {
	if !l.scheme.Recognizes(lv) {
		return l
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.explicit, l.hasExplicit = lv, true
	_ = l.store.Set(l.StoreKey(), lv.String())

	return l
}

// SetDefaultLevel sets the level used when neither an explicit nor a
// persisted level applies. It has no effect if the store holds a value for
// l when called.
func (l *Logger) SetDefaultLevel(lv level.Level) *Logger {
	if !l.scheme.Recognizes(lv) {
		return l
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if v, err := l.store.Get(l.StoreKey()); err != nil || v == "" {
		l.def, l.hasDefault = lv, true
	}

	return l
}

// ResetLevel clears the explicit level of l and removes its persisted value.
// The default level, if any, is kept.
func (l *Logger) ResetLevel() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.hasExplicit = false
	_ = l.store.Del(l.StoreKey())

	return l
}

// Use replaces the sink of l and rebinds its output methods. Children
// already created keep their sink. If s is nil, [sink.Discard] is used.
func (l *Logger) Use(s sink.Sink) *Logger {
	if s == nil {
		s = sink.Discard
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sink = s
	l.bindLocked()

	return l
}

// SetConfig replaces the binding strategy of l and rebinds its output
// methods. If b is nil, [style.Plain] is used.
func (l *Logger) SetConfig(b style.Binder) *Logger {
	if b == nil {
		b = style.Plain()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.binder = b
	l.bindLocked()

	return l
}

// UseSimple switches l to the [style.Simple] binding strategy.
func (l *Logger) UseSimple() *Logger {
	return l.SetConfig(style.Simple())
}

// bindLocked rebuilds the cached callables. The caller holds l.mu.
func (l *Logger) bindLocked() {
	l.funcs = [level.Silent]sink.Func{}

	for lv := range l.scheme.Outputs() {
		l.funcs[lv] = l.binder(l.sink, lv, l.name)
	}
}

// GetLogger returns the child of l called name, creating it on first
// request. The child is registered in l, parented to the root and inherits
// the store, sink, binding strategy, scheme and store key of l.
func (l *Logger) GetLogger(name string) (*Logger, error) {
	if name == "" {
		return nil, pkg.ErrInvalidArgument.Wrapf("logger name required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.children[name]; ok {
		return c, nil
	}

	c := &Logger{name: name, root: l.Root(), config: l.config}
	c.bindLocked()

	if l.children == nil {
		l.children = make(map[string]*Logger)
	}

	l.children[name] = c
	l.order = append(l.order, name)

	return c, nil
}

// GetLoggers returns a snapshot of the children created through l.
func (l *Logger) GetLoggers() map[string]*Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := make(map[string]*Logger, len(l.children))
	maps.Copy(m, l.children)

	return m
}

// Loggers returns an iterator over the children created through l, in
// creation order. It iterates a snapshot taken when called.
func (l *Logger) Loggers() iter.Seq2[string, *Logger] {
	l.mu.Lock()
	order := slices.Clone(l.order)
	children := maps.Clone(l.children)
	l.mu.Unlock()

	return func(yield func(string, *Logger) bool) {
		for _, name := range order {
			if !yield(name, children[name]) {
				return
			}
		}
	}
}
