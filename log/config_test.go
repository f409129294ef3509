package log

import (
	"testing"

	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/sink"
	"github.com/ardnew/clog/store/mem"
)

func TestMakeConfig_Defaults(t *testing.T) {
	c := makeConfig()

	if c.key != DefaultStoreKey {
		t.Errorf("key = %q, want %q", c.key, DefaultStoreKey)
	}

	if c.sink != sink.Std {
		t.Error("sink is not the standard console")
	}

	if _, ok := c.store.(*mem.Store); !ok {
		t.Errorf("store = %T, want *mem.Store", c.store)
	}

	if c.binder == nil {
		t.Error("binder is nil")
	}

	if got := c.scheme.Names(); len(got) != 7 {
		t.Errorf("scheme names = %v, want six outputs plus silent", got)
	}
}

func TestOptions_NilValues(t *testing.T) {
	c := makeConfig(WithStore(nil), WithSink(nil), WithBinder(nil), WithStoreKey(""))

	if c.store == nil {
		t.Error("WithStore(nil) left no store")
	}

	if c.sink != sink.Discard {
		t.Error("WithSink(nil) is not Discard")
	}

	if c.binder == nil {
		t.Error("WithBinder(nil) left no binder")
	}

	if c.key != DefaultStoreKey {
		t.Errorf("WithStoreKey(\"\") key = %q", c.key)
	}
}

func TestConfig_StoreKey(t *testing.T) {
	tests := []struct {
		base, name, want string
	}{
		{"loglevel", "", "loglevel"},
		{"loglevel", "api", "loglevel:api"},
		{"app", "db", "app:db"},
	}

	for _, tt := range tests {
		c := makeConfig(WithStoreKey(tt.base))
		if got := c.storeKey(tt.name); got != tt.want {
			t.Errorf("storeKey(%q) with base %q = %q, want %q", tt.name, tt.base, got, tt.want)
		}
	}
}

func TestOptions_LastWins(t *testing.T) {
	c := makeConfig(WithScheme(level.Five), WithScheme(level.Six))

	if !c.scheme.Recognizes(level.Log) {
		t.Error("later WithScheme did not override the earlier one")
	}
}
