package mem_test

import (
	"testing"

	"github.com/ardnew/clog/store"
	"github.com/ardnew/clog/store/mem"
	"github.com/ardnew/clog/store/storetest"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(*testing.T) store.Store { return mem.New() })
}

func TestStore_ZeroValue(t *testing.T) {
	storetest.Run(t, func(*testing.T) store.Store { return new(mem.Store) })
}
