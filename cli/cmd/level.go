package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/store"
)

// Levels lists the severities recognized by the active scheme.
type Levels struct{}

// Run executes the levels command.
func (*Levels) Run(ctx context.Context) error {
	root, out := loggerFrom(ctx), outputFrom(ctx)

	for _, name := range root.Scheme().Names() {
		lv, err := level.Parse(name)
		if err != nil {
			return err
		}

		suffix := ""
		if lv == root.Scheme().Fallback() {
			suffix = "\t(fallback)"
		}

		fmt.Fprintf(out, "%d\t%s%s\n", lv.Rank(), name, suffix)
	}

	return nil
}

// Get prints the effective level of the root or of named loggers.
type Get struct {
	Names []string `arg:"" help:"Logger names (default: the root)" name:"name" optional:""`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	root, out := loggerFrom(ctx), outputFrom(ctx)

	names := g.Names
	if len(names) == 0 {
		names = []string{""}
	}

	for _, name := range names {
		lg, err := target(root, name)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s\t%s\n", displayName(lg.Name()), lg.Level())
	}

	return nil
}

// Set persists a level override for the root or a named logger.
type Set struct {
	Level string `arg:"" help:"Level to persist"                  name:"level"`
	Name  string `arg:"" help:"Logger name (default: the root)"   name:"name"  optional:""`
}

// Run executes the set command.
func (s *Set) Run(ctx context.Context) error {
	root, out := loggerFrom(ctx), outputFrom(ctx)

	lv, err := parseLevel(root, s.Level)
	if err != nil {
		return err
	}

	lg, err := target(root, s.Name)
	if err != nil {
		return err
	}

	lg.SetLevel(lv)

	got, err := lg.Store().Get(lg.StoreKey())
	if err != nil || got != lv.String() {
		return persistError(lg.StoreKey(), err)
	}

	log.Debug("persisted level", "key", lg.StoreKey(), "level", lv)
	fmt.Fprintf(out, "%s\t%s\n", displayName(lg.Name()), lv)

	return nil
}

// Reset removes the persisted level override of the root or a named logger.
type Reset struct {
	Name string `arg:"" help:"Logger name (default: the root)" name:"name" optional:""`
}

// Run executes the reset command.
func (r *Reset) Run(ctx context.Context) error {
	root, out := loggerFrom(ctx), outputFrom(ctx)

	lg, err := target(root, r.Name)
	if err != nil {
		return err
	}

	lg.ResetLevel()

	_, err = lg.Store().Get(lg.StoreKey())
	if !errors.Is(err, store.ErrNotFound) {
		return persistError(lg.StoreKey(), err)
	}

	log.Debug("removed level", "key", lg.StoreKey())
	fmt.Fprintf(out, "%s\t%s\n", displayName(lg.Name()), lg.Level())

	return nil
}

// persistError reports that key did not reach the expected state, with the
// store error if there was one.
func persistError(key string, err error) error {
	e := pkg.ErrPersist.Wrapf("%s", key)
	if err != nil {
		e = e.Wrap(err)
	}

	return e
}

// parseLevel parses s with the scheme of root, suggesting the closest
// recognized name on failure.
func parseLevel(root *log.Logger, s string) (level.Level, error) {
	lv, err := root.Scheme().Parse(s)
	if err == nil {
		return lv, nil
	}

	return lv, suggest(err, s, root.Scheme().Names())
}

// suggest appends the best fuzzy match for input among names to err.
func suggest(err error, input string, names []string) error {
	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return err
	}

	return pkg.MakeError(err).Wrapf("did you mean %q?", matches[0].Str)
}
