// Package storetest provides a conformance suite for [store.Store]
// implementations.
package storetest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/clog/store"
)

// Run exercises the behavior every [store.Store] must provide. The factory is
// called once per subtest and must return an empty store.
func Run(t *testing.T, f func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("get missing", func(t *testing.T) { testGetMissing(t, f(t)) })
	t.Run("set get", func(t *testing.T) { testSetGet(t, f(t)) })
	t.Run("overwrite", func(t *testing.T) { testOverwrite(t, f(t)) })
	t.Run("delete", func(t *testing.T) { testDelete(t, f(t)) })
	t.Run("iterate", func(t *testing.T) { testIterate(t, f(t)) })
}

// RunPersist checks that values written through one store are visible to a
// store reopened on the same location. The factory receives a directory that
// outlives both stores; RunPersist closes stores that have a Close method.
func RunPersist(t *testing.T, f func(t *testing.T, dir string) store.Store) {
	t.Helper()

	dir := t.TempDir()

	first := f(t, dir)
	mustSet(t, first, "loglevel", "warn")
	mustSet(t, first, "loglevel:api", "error")
	closeStore(t, first)

	second := f(t, dir)
	defer closeStore(t, second)

	mustGet(t, second, "loglevel", "warn")
	mustGet(t, second, "loglevel:api", "error")
}

func closeStore(t *testing.T, s store.Store) {
	t.Helper()

	if c, ok := s.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			t.Fatal(err)
		}
	}
}

func testGetMissing(t *testing.T, s store.Store) {
	if _, err := s.Get("absent"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Del("absent"); err != nil {
		t.Fatalf("deleting an absent key: %v", err)
	}
}

func testSetGet(t *testing.T, s store.Store) {
	mustSet(t, s, "loglevel", "info")
	mustSet(t, s, "loglevel:db", "debug")

	mustGet(t, s, "loglevel", "info")
	mustGet(t, s, "loglevel:db", "debug")
}

func testOverwrite(t *testing.T, s store.Store) {
	mustSet(t, s, "loglevel", "info")
	mustSet(t, s, "loglevel", "error")

	mustGet(t, s, "loglevel", "error")
}

func testDelete(t *testing.T, s store.Store) {
	mustSet(t, s, "loglevel", "info")

	if err := s.Del("loglevel"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Get("loglevel"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func testIterate(t *testing.T, s store.Store) {
	it, ok := s.(store.Iterator)
	if !ok {
		t.Skip("store does not implement store.Iterator")
	}

	mustSet(t, s, "loglevel", "info")
	mustSet(t, s, "loglevel:api", "warn")
	mustSet(t, s, "other", "x")

	got := make(map[string]string)

	err := it.Iterate("loglevel", func(k, v string) (bool, error) {
		got[k] = v

		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{"loglevel": "info", "loglevel:api": "warn"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Iterate mismatch (-want +got):\n%s", diff)
	}

	visits := 0

	err = it.Iterate("", func(string, string) (bool, error) {
		visits++

		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if visits != 1 {
		t.Errorf("expected iteration to stop after 1 visit, got %d", visits)
	}
}

func mustSet(t *testing.T, s store.Store, key, value string) {
	t.Helper()

	if err := s.Set(key, value); err != nil {
		t.Fatalf("Set(%q, %q): %v", key, value, err)
	}
}

func mustGet(t *testing.T, s store.Store, key, want string) {
	t.Helper()

	got, err := s.Get(key)
	if err != nil {
		t.Fatalf("Get(%q): %v", key, err)
	}

	if got != want {
		t.Errorf("Get(%q) = %q, want %q", key, got, want)
	}
}
