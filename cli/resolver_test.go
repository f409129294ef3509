package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func flag(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestResolve(t *testing.T) {
	doc := `
log_level: debug
store-kind: leveldb
retries: 3
ratio: 0.5
force: true
names: [api, db]
`

	r, err := resolve(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"store-kind", "leveldb"},
		{"retries", "3"},
		{"ratio", "0.5"},
		{"force", true},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := r.Resolve(nil, nil, flag(tt.flag))
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %#v, want %#v", tt.flag, got, tt.want)
			}
		})
	}

	names, _ := r.Resolve(nil, nil, flag("names"))
	if list, ok := names.([]any); !ok || len(list) != 2 || list[0] != "api" {
		t.Errorf("Resolve(names) = %#v", names)
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestResolve_EmptyOrMalformed(t *testing.T) {
	for _, doc := range []string{"", "::: [", "- just\n- a list\n"} {
		r, err := resolve(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("resolve(%q) error = %v", doc, err)
		}

		if got, _ := r.Resolve(nil, nil, flag("log-level")); got != nil {
			t.Errorf("resolve(%q) produced %v", doc, got)
		}
	}
}
