package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	loggerKey struct{}
	outputKey struct{}
)

// WithLogger returns a new context.Context containing the root of the logger
// hierarchy the commands operate on.
func WithLogger(ctx context.Context, root *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, root)
}

// loggerFrom retrieves the logger stored in ctx by WithLogger.
// Returns [log.Default] if no logger was stored.
func loggerFrom(ctx context.Context) *log.Logger {
	root, ok := ctx.Value(loggerKey{}).(*log.Logger)
	if !ok || root == nil {
		return log.Default()
	}

	return root
}

// WithOutput returns a new context.Context containing the writer commands
// print their results to.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// outputFrom retrieves the writer stored in ctx by WithOutput.
// Returns [os.Stdout] if no writer was stored.
func outputFrom(ctx context.Context) io.Writer {
	w, ok := ctx.Value(outputKey{}).(io.Writer)
	if !ok || w == nil {
		return os.Stdout
	}

	return w
}

// rootName is how the unnamed root logger is displayed.
const rootName = "(root)"

func displayName(name string) string {
	if name == "" {
		return rootName
	}

	return name
}

// target returns root itself for an empty name, else its named child.
func target(root *log.Logger, name string) (*log.Logger, error) {
	if name == "" || name == rootName {
		return root, nil
	}

	return root.GetLogger(name)
}
