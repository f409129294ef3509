package cli

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/store"
	"github.com/ardnew/clog/store/file"
	"github.com/ardnew/clog/store/leveldb"
	"github.com/ardnew/clog/store/mem"
)

// Store kinds accepted by --store-kind.
const (
	storeYAML    = "yaml"
	storeLevelDB = "leveldb"
	storeBoth    = "both"
	storeMem     = "mem"
)

type storeConfig struct {
	Kind string `default:"yaml"        enum:"yaml,leveldb,both,mem" help:"Persistence backend for level overrides."`
	Path string `                                                    help:"Store location (a directory for both)." placeholder:"PATH" type:"path"`
	Key  string `default:"${storeKey}"                              help:"Base key levels are persisted under."`
}

func (*storeConfig) vars() kong.Vars {
	return kong.Vars{
		"storeKey": log.DefaultStoreKey,
	}
}

func (*storeConfig) group() kong.Group {
	var group kong.Group

	group.Key = "store"
	group.Title = "Store options"

	return group
}

// open opens the configured store. The returned function releases it.
func (f *storeConfig) open() (store.Store, func() error, error) {
	nop := func() error { return nil }

	switch f.Kind {
	case storeMem:
		return mem.New(), nop, nil

	case storeYAML:
		path := f.Path
		if path == "" {
			path = configPath(yamlStoreName)
		}

		s, err := openYAML(path)
		if err != nil {
			return nil, nil, err
		}

		return s, nop, nil

	case storeLevelDB:
		path := f.Path
		if path == "" {
			path = cachePath(leveldbStoreName)
		}

		s, err := openLevelDB(path)
		if err != nil {
			return nil, nil, err
		}

		return s, s.Close, nil

	case storeBoth:
		yamlPath, dbPath := configPath(yamlStoreName), cachePath(leveldbStoreName)
		if f.Path != "" {
			yamlPath = filepath.Join(f.Path, yamlStoreName)
			dbPath = filepath.Join(f.Path, leveldbStoreName)
		}

		y, err := openYAML(yamlPath)
		if err != nil {
			return nil, nil, err
		}

		db, err := openLevelDB(dbPath)
		if err != nil {
			return nil, nil, err
		}

		return store.Multi(y, db), db.Close, nil

	default:
		return nil, nil, pkg.ErrStoreKind.Wrapf("%q", f.Kind)
	}
}

func openYAML(path string) (*file.Store, error) {
	s, err := file.Open(nil, path)
	if err != nil {
		return nil, err
	}

	log.Debug("opened level store", "kind", storeYAML, "path", path)

	return s, nil
}

func openLevelDB(path string) (*leveldb.Store, error) {
	s, recovered, err := leveldb.Open(path)
	if err != nil {
		return nil, err
	}

	if recovered {
		log.Warn("recovered corrupted level store", "path", path)
	}

	log.Debug("opened level store", "kind", storeLevelDB, "path", path)

	return s, nil
}
