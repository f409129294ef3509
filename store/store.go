// Package store defines the persistence port used to remember per-logger
// level overrides, and combinators over it.
//
// Implementations live in subpackages: [github.com/ardnew/clog/store/mem]
// keeps values for the life of the process, while
// [github.com/ardnew/clog/store/leveldb] and
// [github.com/ardnew/clog/store/file] survive restarts.
package store

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// ErrNotFound is returned by [Store.Get] when no value is stored under a key.
var ErrNotFound = errors.New("store: not found")

// Store is a string-keyed, string-valued persistence port.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key, or [ErrNotFound].
	Get(key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Del removes key. Removing an absent key is not an error.
	Del(key string) error
}

// IterFunc is called for each entry visited by [Iterator.Iterate].
// Returning stop = true ends the iteration without error.
type IterFunc func(key, value string) (stop bool, err error)

// Iterator is implemented by stores that can enumerate their entries.
type Iterator interface {
	// Iterate calls fn for every entry whose key starts with prefix.
	Iterate(prefix string, fn IterFunc) error
}

// Multi returns a Store layered over stores.
//
// Get returns the first value found, probing stores in order; errors other
// than [ErrNotFound] are skipped so an unavailable layer does not hide the
// rest. Set and Del are applied to every layer and their failures are
// aggregated. Iterate visits each key once, preferring earlier layers.
func Multi(stores ...Store) Store {
	return multi(stores)
}

type multi []Store

var (
	_ Store    = multi(nil)
	_ Iterator = multi(nil)
)

func (m multi) Get(key string) (string, error) {
	var merr *multierror.Error

	for _, s := range m {
		v, err := s.Get(key)
		if err == nil {
			return v, nil
		}

		if !errors.Is(err, ErrNotFound) {
			merr = multierror.Append(merr, err)
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return "", multierror.Append(err, ErrNotFound)
	}

	return "", ErrNotFound
}

func (m multi) Set(key, value string) error {
	var merr *multierror.Error

	for _, s := range m {
		if err := s.Set(key, value); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}

func (m multi) Del(key string) error {
	var merr *multierror.Error

	for _, s := range m {
		if err := s.Del(key); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}

func (m multi) Iterate(prefix string, fn IterFunc) error {
	seen := make(map[string]struct{})

	for _, s := range m {
		it, ok := s.(Iterator)
		if !ok {
			continue
		}

		stopped := false

		err := it.Iterate(prefix, func(key, value string) (bool, error) {
			if _, dup := seen[key]; dup {
				return false, nil
			}

			seen[key] = struct{}{}

			stop, err := fn(key, value)
			stopped = stop

			return stop, err
		})
		if err != nil || stopped {
			return err
		}
	}

	return nil
}
