package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/store"
)

// List prints the persisted level overrides.
type List struct {
	Pattern string `arg:"" help:"Fuzzy filter on logger names" name:"pattern" optional:""`
	Table   bool   `help:"Render as a table"                                              short:"t"`
}

type override struct {
	name, level string
}

type overrides []override

// String implements [fuzzy.Source].
func (o overrides) String(i int) string { return displayName(o[i].name) }

// Len implements [fuzzy.Source].
func (o overrides) Len() int { return len(o) }

// Run executes the list command.
func (l *List) Run(ctx context.Context) error {
	root, out := loggerFrom(ctx), outputFrom(ctx)

	it, ok := root.Store().(store.Iterator)
	if !ok {
		return pkg.ErrNoIterator
	}

	base := root.StoreKey()

	var all overrides

	err := it.Iterate(base, func(key, value string) (bool, error) {
		switch {
		case key == base:
			all = append(all, override{level: value})

		case strings.HasPrefix(key, base+":"):
			all = append(all, override{name: key[len(base)+1:], level: value})
		}

		return false, nil
	})
	if err != nil {
		return err
	}

	slices.SortFunc(all, func(a, b override) int { return strings.Compare(a.name, b.name) })

	if l.Pattern != "" {
		var found overrides

		for _, m := range fuzzy.FindFrom(l.Pattern, all) {
			found = append(found, all[m.Index])
		}

		all = found
	}

	if l.Table {
		rows := make([]map[string]any, len(all))
		for i, o := range all {
			rows[i] = map[string]any{"logger": displayName(o.name), "level": o.level}
		}

		return root.Table(rows, "logger", "level")
	}

	for _, o := range all {
		fmt.Fprintf(out, "%s\t%s\n", displayName(o.name), o.level)
	}

	return nil
}
