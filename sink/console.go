package sink

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
)

const (
	clearScreen = "\033[H\033[2J"
	groupIndent = "  "
	indexHeader = "(index)"
	valueHeader = "Values"
	countLabel  = "default"
)

// Std is the process-wide console writing to [os.Stdout] and [os.Stderr].
//
//nolint:gochecknoglobals
var Std = NewConsole(os.Stdout, os.Stderr)

// Console is a Sink modeled on a browser or Node.js console.
//
// trace, warn and error write to the error stream; debug, log and info
// write to the output stream. Console also provides assert, clear, table,
// group, groupEnd, count and countReset. It is safe for concurrent use.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	err    io.Writer
	tty    bool
	indent int
	counts map[string]int
	funcs  Funcs
}

var _ Sink = (*Console)(nil)

// NewConsole returns a Console writing to out and err.
// A nil writer is replaced with [io.Discard].
func NewConsole(out, err io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}

	if err == nil {
		err = io.Discard
	}

	c := &Console{
		out:    out,
		err:    err,
		tty:    isTerminal(out),
		counts: make(map[string]int),
	}

	c.funcs = Funcs{
		"trace":      c.printer(c.err),
		"debug":      c.printer(c.out),
		"log":        c.printer(c.out),
		"info":       c.printer(c.out),
		"warn":       c.printer(c.err),
		"error":      c.printer(c.err),
		"assert":     c.assert,
		"clear":      c.clear,
		"table":      c.table,
		"group":      c.group,
		"groupEnd":   c.groupEnd,
		"count":      c.count,
		"countReset": c.countReset,
	}

	return c
}

// Method implements [Sink].
func (c *Console) Method(name string) (Func, bool) {
	return c.funcs.Method(name)
}

// Methods returns the sorted names of every capability c provides.
func (c *Console) Methods() []string {
	return slices.Sorted(maps.Keys(c.funcs))
}

func (c *Console) printer(w io.Writer) Func {
	return func(args ...any) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.writeLine(w, Sprint(args...))
	}
}

// writeLine writes s, indented by the current group depth. Each line of a
// multi-line message is indented. The caller holds c.mu.
func (c *Console) writeLine(w io.Writer, s string) {
	pad := strings.Repeat(groupIndent, c.indent)

	for line := range strings.SplitSeq(s, "\n") {
		_, _ = io.WriteString(w, pad+line+"\n")
	}
}

// assert writes its remaining arguments to the error stream when the first
// argument is false or nil.
func (c *Console) assert(args ...any) {
	if len(args) > 0 && truthy(args[0]) {
		return
	}

	msg := "Assertion failed"
	if len(args) > 1 {
		msg += ": " + Sprint(args[1:]...)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.writeLine(c.err, msg)
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		return true
	}
}

// clear clears the screen when the output stream is a terminal, and resets
// group indentation.
func (c *Console) clear(...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.indent = 0

	if c.tty {
		_, _ = io.WriteString(c.out, clearScreen)
	}
}

func (c *Console) group(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(args) > 0 {
		c.writeLine(c.out, Sprint(args...))
	}

	c.indent++
}

func (c *Console) groupEnd(...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indent > 0 {
		c.indent--
	}
}

func (c *Console) count(args ...any) {
	label := labelOf(args)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts[label]++
	c.writeLine(c.out, label+": "+strconv.Itoa(c.counts[label]))
}

func (c *Console) countReset(args ...any) {
	label := labelOf(args)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.counts[label]; !ok {
		c.writeLine(c.err, fmt.Sprintf("Count for '%s' does not exist", label))

		return
	}

	c.counts[label] = 0
}

func labelOf(args []any) string {
	if len(args) == 0 {
		return countLabel
	}

	return fmt.Sprint(args[0])
}

// table renders tabular data. The first argument is the data; an optional
// []string second argument restricts the columns shown. Data that is not
// tabular is logged as is.
func (c *Console) table(args ...any) {
	if len(args) == 0 {
		return
	}

	var columns []string
	if len(args) > 1 {
		columns, _ = args[1].([]string)
	}

	headers, rows, ok := tabulate(args[0], columns)
	if !ok {
		c.funcs["log"](args[0])

		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.writeLine(c.out, t.String())
}

// tabulate converts data into table headers and rows.
func tabulate(data any, columns []string) (headers []string, rows [][]string, ok bool) {
	switch v := data.(type) {
	case []map[string]any:
		if columns == nil {
			set := make(map[string]struct{})
			for _, row := range v {
				for k := range row {
					set[k] = struct{}{}
				}
			}

			columns = slices.Sorted(maps.Keys(set))
		}

		for i, row := range v {
			r := []string{strconv.Itoa(i)}
			for _, col := range columns {
				r = append(r, cell(row, col))
			}

			rows = append(rows, r)
		}

		return append([]string{indexHeader}, columns...), rows, true

	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(v)) {
			rows = append(rows, []string{k, fmt.Sprint(v[k])})
		}

		return []string{indexHeader, valueHeader}, rows, true

	case [][]string:
		width := 0
		for i, row := range v {
			width = max(width, len(row))
			rows = append(rows, append([]string{strconv.Itoa(i)}, row...))
		}

		headers = []string{indexHeader}
		for i := range width {
			headers = append(headers, strconv.Itoa(i))
		}

		return headers, rows, true

	case []string:
		for i, s := range v {
			rows = append(rows, []string{strconv.Itoa(i), s})
		}

		return []string{indexHeader, valueHeader}, rows, true

	case []any:
		for i, s := range v {
			rows = append(rows, []string{strconv.Itoa(i), fmt.Sprint(s)})
		}

		return []string{indexHeader, valueHeader}, rows, true
	}

	return nil, nil, false
}

func cell(row map[string]any, col string) string {
	v, ok := row[col]
	if !ok {
		return ""
	}

	return fmt.Sprint(v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
