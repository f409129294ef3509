// Package leveldb provides a durable [store.Store] backed by LevelDB.
package leveldb

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	ldberr "github.com/syndtr/goleveldb/leveldb/errors"
	ldbs "github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/store"
)

var (
	_ store.Store    = (*Store)(nil)
	_ store.Iterator = (*Store)(nil)
)

// Store uses LevelDB to store values.
type Store struct {
	db *leveldb.DB
}

// NewInMemory returns a Store backed by LevelDB's in-memory storage.
func NewInMemory() (*Store, error) {
	db, err := leveldb.Open(ldbs.NewMemStorage(), nil)
	if err != nil {
		return nil, pkg.ErrOpenStore.Wrap(err)
	}

	return &Store{db: db}, nil
}

// Open opens or creates the database directory at path. A corrupted
// database is recovered in place; recovered reports whether that happened.
func Open(path string) (s *Store, recovered bool, err error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		if !ldberr.IsCorrupted(err) {
			return nil, false, pkg.ErrOpenStore.Wrap(err)
		}

		db, err = leveldb.RecoverFile(path, nil)
		if err != nil {
			return nil, false, pkg.ErrOpenStore.Wrapf("recover %s: %w", path, err)
		}

		recovered = true
	}

	return &Store{db: db}, recovered, nil
}

// Get retrieves the value of key. If no value is stored,
// [store.ErrNotFound] is returned.
func (s *Store) Get(key string) (string, error) {
	data, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return "", store.ErrNotFound
		}

		return "", err
	}

	return string(data), nil
}

func (s *Store) Set(key, value string) error {
	return s.db.Put([]byte(key), []byte(value), nil)
}

func (s *Store) Del(key string) error {
	return s.db.Delete([]byte(key), nil)
}

// Iterate visits entries whose key starts with prefix in key order.
func (s *Store) Iterate(prefix string, fn store.IterFunc) error {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(prefix)), nil)
	defer iter.Release()

	for iter.Next() {
		stop, err := fn(string(iter.Key()), string(iter.Value()))
		if err != nil {
			return err
		}

		if stop {
			break
		}
	}

	return iter.Error()
}

// Close releases the resources used by the store.
func (s *Store) Close() error {
	return s.db.Close()
}
