// Package mem provides a volatile in-memory [store.Store].
package mem

import (
	"strings"
	"sync"

	"github.com/ardnew/clog/store"
)

var (
	_ store.Store    = (*Store)(nil)
	_ store.Iterator = (*Store)(nil)
)

// Store keeps values in a map for the life of the process.
// The zero value is ready to use.
type Store struct {
	mtx sync.RWMutex
	m   map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{m: make(map[string]string)}
}

func (s *Store) Get(key string) (string, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return "", store.ErrNotFound
	}

	return v, nil
}

func (s *Store) Set(key, value string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.m == nil {
		s.m = make(map[string]string)
	}

	s.m[key] = value

	return nil
}

func (s *Store) Del(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.m, key)

	return nil
}

// Iterate implements [store.Iterator]. The callback runs on a snapshot, so it
// may modify s.
func (s *Store) Iterate(prefix string, fn store.IterFunc) error {
	s.mtx.RLock()

	type entry struct{ k, v string }

	entries := make([]entry, 0, len(s.m))
	for k, v := range s.m {
		if strings.HasPrefix(k, prefix) {
			entries = append(entries, entry{k, v})
		}
	}

	s.mtx.RUnlock()

	for _, e := range entries {
		stop, err := fn(e.k, e.v)
		if err != nil {
			return err
		}

		if stop {
			return nil
		}
	}

	return nil
}
