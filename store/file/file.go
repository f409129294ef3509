// Package file provides a durable [store.Store] that keeps every entry in a
// single YAML mapping on an [afero.Fs].
//
// The whole document is rewritten on each change, through a temporary file
// renamed over the original, so readers never observe a partial write.
package file

import (
	"errors"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/store"
)

var (
	_ store.Store    = (*Store)(nil)
	_ store.Iterator = (*Store)(nil)
)

const (
	dirMode  fs.FileMode = 0o700
	fileMode fs.FileMode = 0o600
)

// Store is a YAML document of string keys and values.
type Store struct {
	mtx  sync.RWMutex
	fs   afero.Fs
	path string
	m    map[string]string
}

// Open loads the document at path from fsys, creating an empty store when the
// file does not exist yet. A nil fsys selects the operating system
// filesystem.
func Open(fsys afero.Fs, path string) (*Store, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	s := &Store{
		fs:   fsys,
		path: path,
		m:    make(map[string]string),
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}

		return nil, pkg.ErrOpenStore.Wrap(err)
	}

	if err := yaml.Unmarshal(data, &s.m); err != nil {
		return nil, pkg.ErrOpenStore.Wrapf("decode %s: %w", path, err)
	}

	if s.m == nil {
		s.m = make(map[string]string)
	}

	return s, nil
}

// Path returns the location of the document.
func (s *Store) Path() string { return s.path }

func (s *Store) Get(key string) (string, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return "", store.ErrNotFound
	}

	return v, nil
}

// Set stores value under key and rewrites the document. On a write failure
// the in-memory mapping is left unchanged.
func (s *Store) Set(key, value string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if v, ok := s.m[key]; ok && v == value {
		return nil
	}

	next := maps.Clone(s.m)
	next[key] = value

	return s.commit(next)
}

// Del removes key and rewrites the document.
func (s *Store) Del(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.m[key]; !ok {
		return nil
	}

	next := maps.Clone(s.m)
	delete(next, key)

	return s.commit(next)
}

// Iterate visits entries whose key starts with prefix in key order.
func (s *Store) Iterate(prefix string, fn store.IterFunc) error {
	s.mtx.RLock()
	snapshot := maps.Clone(s.m)
	s.mtx.RUnlock()

	for _, k := range slices.Sorted(maps.Keys(snapshot)) {
		if !strings.HasPrefix(k, prefix) {
			continue
		}

		stop, err := fn(k, snapshot[k])
		if err != nil {
			return err
		}

		if stop {
			return nil
		}
	}

	return nil
}

// commit writes next to disk and installs it. The caller holds s.mtx.
func (s *Store) commit(next map[string]string) error {
	data, err := yaml.Marshal(next)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return err
	}

	tmp := s.path + ".tmp"

	if err := afero.WriteFile(s.fs, tmp, data, fileMode); err != nil {
		return err
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)

		return err
	}

	s.m = next

	return nil
}
