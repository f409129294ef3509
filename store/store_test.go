package store_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/clog/store"
	"github.com/ardnew/clog/store/mem"
	"github.com/ardnew/clog/store/storetest"
)

var errBroken = errors.New("broken backend")

// broken fails every operation.
type broken struct{}

func (broken) Get(string) (string, error) { return "", errBroken }
func (broken) Set(string, string) error   { return errBroken }
func (broken) Del(string) error           { return errBroken }

func TestMulti_Conformance(t *testing.T) {
	storetest.Run(t, func(*testing.T) store.Store {
		return store.Multi(mem.New(), mem.New())
	})
}

func TestMulti_GetPrefersEarlierLayer(t *testing.T) {
	front, back := mem.New(), mem.New()
	_ = back.Set("loglevel", "error")

	s := store.Multi(front, back)

	if v, err := s.Get("loglevel"); err != nil || v != "error" {
		t.Fatalf("expected fall-through to back layer, got %q, %v", v, err)
	}

	_ = front.Set("loglevel", "debug")

	if v, _ := s.Get("loglevel"); v != "debug" {
		t.Errorf("expected front layer to win, got %q", v)
	}
}

func TestMulti_SkipsBrokenLayer(t *testing.T) {
	back := mem.New()
	s := store.Multi(broken{}, back)

	if err := s.Set("loglevel", "warn"); !errors.Is(err, errBroken) {
		t.Fatalf("expected aggregated backend error, got %v", err)
	}

	if v, _ := back.Get("loglevel"); v != "warn" {
		t.Errorf("healthy layer not written, got %q", v)
	}

	if v, err := s.Get("loglevel"); err != nil || v != "warn" {
		t.Errorf("expected value from healthy layer, got %q, %v", v, err)
	}

	_, err := s.Get("missing")
	if !errors.Is(err, store.ErrNotFound) || !errors.Is(err, errBroken) {
		t.Errorf("expected ErrNotFound aggregated with backend error, got %v", err)
	}
}

func TestMulti_IterateDeduplicates(t *testing.T) {
	front, back := mem.New(), mem.New()
	_ = front.Set("loglevel", "debug")
	_ = back.Set("loglevel", "error")
	_ = back.Set("loglevel:api", "warn")

	got := make(map[string]string)

	err := store.Multi(front, broken{}, back).(store.Iterator).Iterate("",
		func(k, v string) (bool, error) {
			if _, dup := got[k]; dup {
				t.Errorf("key %q visited twice", k)
			}

			got[k] = v

			return false, nil
		})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{"loglevel": "debug", "loglevel:api": "warn"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Iterate mismatch (-want +got):\n%s", diff)
	}
}
