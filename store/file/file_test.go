package file_test

import (
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/store"
	"github.com/ardnew/clog/store/file"
	"github.com/ardnew/clog/store/storetest"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		s, err := file.Open(afero.NewMemMapFs(), "/clog/levels.yaml")
		if err != nil {
			t.Fatal(err)
		}

		return s
	})

	storetest.RunPersist(t, func(t *testing.T, dir string) store.Store {
		s, err := file.Open(afero.NewOsFs(), dir+"/levels.yaml")
		if err != nil {
			t.Fatal(err)
		}

		return s
	})
}

func TestStore_WritesYAMLDocument(t *testing.T) {
	fs := afero.NewMemMapFs()

	s, err := file.Open(fs, "/cfg/levels.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("loglevel:api", "warn"); err != nil {
		t.Fatal(err)
	}

	data, err := afero.ReadFile(fs, "/cfg/levels.yaml")
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("document is not a YAML mapping: %v\n%s", err, data)
	}

	if doc["loglevel:api"] != "warn" || len(doc) != 1 {
		t.Errorf("unexpected document: %v", doc)
	}

	if ok, _ := afero.Exists(fs, "/cfg/levels.yaml.tmp"); ok {
		t.Error("temporary file left behind")
	}
}

func TestOpen_RejectsMalformedDocument(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "/levels.yaml", []byte("- not\n- a\n- mapping\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := file.Open(fs, "/levels.yaml"); !errors.Is(err, pkg.ErrOpenStore) {
		t.Fatalf("expected ErrOpenStore, got %v", err)
	}
}

func TestStore_FailedWriteKeepsPreviousValue(t *testing.T) {
	base := afero.NewMemMapFs()

	s, err := file.Open(base, "/levels.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("loglevel", "info"); err != nil {
		t.Fatal(err)
	}

	ro, err := file.Open(afero.NewReadOnlyFs(base), "/levels.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if err := ro.Set("loglevel", "error"); err == nil {
		t.Fatal("expected write to read-only filesystem to fail")
	}

	if v, _ := ro.Get("loglevel"); v != "info" {
		t.Errorf("expected previous value to survive a failed write, got %q", v)
	}
}
