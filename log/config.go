package log

import (
	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/sink"
	"github.com/ardnew/clog/store"
	"github.com/ardnew/clog/store/mem"
	"github.com/ardnew/clog/style"
)

// DefaultStoreKey is the key under which the root logger's level is
// persisted. A named logger uses DefaultStoreKey + ":" + name.
const DefaultStoreKey = "loglevel"

// config holds the configuration a Logger shares with the children it
// creates.
type config struct {
	store  store.Store
	sink   sink.Sink
	binder style.Binder
	scheme level.Scheme
	key    string
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	return apply(apply(config{}, WithDefaults()), opts...)
}

// storeKey returns the persistence key of the logger named name.
func (c config) storeKey(name string) string {
	if name == "" {
		return c.key
	}

	return c.key + ":" + name
}

// WithDefaults returns a functional option that sets the default
// configuration: a volatile in-memory store, the [sink.Std] console,
// the [style.Auto] binder, the [level.Six] scheme and [DefaultStoreKey].
func WithDefaults() Option {
	return func(c config) config {
		c.store = mem.New()
		c.sink = sink.Std
		c.binder = style.Auto()
		c.scheme = level.Six
		c.key = DefaultStoreKey

		return c
	}
}

// WithStore returns a functional option that sets the store persisting level
// overrides. If nil, a new in-memory store is used.
func WithStore(s store.Store) Option {
	return func(c config) config {
		if s == nil {
			s = mem.New()
		}

		c.store = s

		return c
	}
}

// WithSink returns a functional option that sets the output sink.
// If nil, [sink.Discard] is used.
func WithSink(s sink.Sink) Option {
	return func(c config) config {
		if s == nil {
			s = sink.Discard
		}

		c.sink = s

		return c
	}
}

// WithBinder returns a functional option that sets the binding strategy.
// If nil, [style.Plain] is used.
func WithBinder(b style.Binder) Option {
	return func(c config) config {
		if b == nil {
			b = style.Plain()
		}

		c.binder = b

		return c
	}
}

// WithScheme returns a functional option that sets the recognized severities
// and the root fallback level.
func WithScheme(s level.Scheme) Option {
	return func(c config) config {
		c.scheme = s

		return c
	}
}

// WithStoreKey returns a functional option that sets the base persistence
// key. An empty key selects [DefaultStoreKey].
func WithStoreKey(key string) Option {
	return func(c config) config {
		if key == "" {
			key = DefaultStoreKey
		}

		c.key = key

		return c
	}
}
