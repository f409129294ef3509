package leveldb_test

import (
	"testing"

	"github.com/ardnew/clog/store"
	"github.com/ardnew/clog/store/leveldb"
	"github.com/ardnew/clog/store/storetest"
)

func TestPersistentStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, recovered, err := leveldb.Open(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}

		if recovered {
			t.Error("fresh database reported recovery")
		}

		t.Cleanup(func() {
			if err := s.Close(); err != nil {
				t.Error(err)
			}
		})

		return s
	})

	storetest.RunPersist(t, func(t *testing.T, dir string) store.Store {
		s, _, err := leveldb.Open(dir)
		if err != nil {
			t.Fatal(err)
		}

		return s
	})
}

func TestInMemoryStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := leveldb.NewInMemory()
		if err != nil {
			t.Fatal(err)
		}

		t.Cleanup(func() { _ = s.Close() })

		return s
	})
}
