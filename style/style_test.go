package style

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/sink/sinktest"
)

func emit(b Binder, l level.Level, name string, args ...any) []any {
	rec := sinktest.NewRecorder()
	b(rec, l, name)(args...)

	calls := rec.Calls()
	if len(calls) != 1 {
		return nil
	}

	return calls[0].Args
}

func TestEnv(t *testing.T) {
	tests := []struct {
		name  string
		level level.Level
		pal   Palette
		want  []any
	}{
		{"api", level.Warn, ANSI, []any{"\x1b[33m▲ api:\x1b[0m", "hello", 1}},
		{"", level.Warn, ANSI, []any{"\x1b[33m▲\x1b[0m", "hello", 1}},
		{"db", level.Error, Palette{}, []any{"✖ db:", "hello", 1}},
	}

	for _, tt := range tests {
		t.Run(tt.level.String()+"/"+tt.name, func(t *testing.T) {
			got := emit(Env(Unicode, tt.pal), tt.level, tt.name, "hello", 1)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Env() args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnv_BindsSeverityMethod(t *testing.T) {
	rec := sinktest.NewRecorder()
	Env(Fallback, Palette{})(rec, level.Debug, "x")("m")

	if calls := rec.Calls("debug"); len(calls) != 1 {
		t.Errorf("debug calls = %v, want 1", calls)
	}
}

func TestEnv_FallsBackToLog(t *testing.T) {
	rec := sinktest.NewRecorder("log")
	Env(Fallback, Palette{})(rec, level.Trace, "x")("m")

	if got, want := rec.Lines("log"), []string{"» x: m"}; !cmp.Equal(got, want) {
		t.Errorf("log lines = %q, want %q", got, want)
	}
}

func TestSimple(t *testing.T) {
	got := emit(Simple(), level.Info, "api", "ready")
	if diff := cmp.Diff([]any{"i api:", "ready"}, got); diff != "" {
		t.Errorf("Simple() args mismatch (-want +got):\n%s", diff)
	}
}

func TestPlain(t *testing.T) {
	got := emit(Plain(), level.Info, "api", "ready", 2)
	if diff := cmp.Diff([]any{"ready", 2}, got); diff != "" {
		t.Errorf("Plain() args mismatch (-want +got):\n%s", diff)
	}
}

func TestCSS(t *testing.T) {
	got := emit(CSS(Unicode, Browser), level.Error, "api", "boom")
	want := []any{"%c✖ api:", "color: #bf6c69", "boom"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CSS() args mismatch (-want +got):\n%s", diff)
	}

	got = emit(CSS(Unicode, Colors{}), level.Error, "api", "boom")
	if diff := cmp.Diff([]any{"✖ api:", "boom"}, got); diff != "" {
		t.Errorf("CSS() without colors mismatch (-want +got):\n%s", diff)
	}
}

func TestLipgloss(t *testing.T) {
	got := emit(Lipgloss(Fallback, Styles{}), level.Warn, "api", "slow")
	if diff := cmp.Diff([]any{"‼ api:", "slow"}, got); diff != "" {
		t.Errorf("Lipgloss() args mismatch (-want +got):\n%s", diff)
	}

	got = emit(Lipgloss(Fallback, DefaultStyles()), level.Warn, "api", "slow")
	if len(got) != 2 || !strings.Contains(got[0].(string), "‼ api:") {
		t.Errorf("Lipgloss(DefaultStyles) args = %q", got)
	}
}

func TestColors_Truecolor(t *testing.T) {
	p := Browser.Truecolor()

	tests := []struct {
		level level.Level
		want  string
	}{
		{level.Trace, "\x1b[38;2;149;189;183m"},
		{level.Debug, "\x1b[38;2;173;149;184m"},
		{level.Log, "\x1b[38;2;128;128;128m"},
		{level.Info, "\x1b[38;2;182;189;115m"},
		{level.Warn, "\x1b[38;2;136;161;187m"},
		{level.Error, "\x1b[38;2;191;108;105m"},
		{level.Silent, ""},
	}

	for _, tt := range tests {
		if got := p.For(tt.level); got != tt.want {
			t.Errorf("Truecolor %v = %q, want %q", tt.level, got, tt.want)
		}
	}

	bad := Colors{level.Info: "blue", level.Warn: "#12345"}.Truecolor()
	if bad.For(level.Info) != "" || bad.For(level.Warn) != "" {
		t.Errorf("malformed colors produced %q", bad)
	}
}

func TestUnicodeSupported(t *testing.T) {
	tests := []struct {
		goos string
		env  map[string]string
		want bool
	}{
		{"linux", map[string]string{"TERM": "xterm-256color"}, true},
		{"linux", map[string]string{"TERM": "linux"}, false},
		{"darwin", nil, true},
		{"windows", nil, false},
		{"windows", map[string]string{"WT_SESSION": "1"}, true},
		{"windows", map[string]string{"TERM_PROGRAM": "vscode"}, true},
		{"windows", map[string]string{"ConEmuTask": "{cmd::Cmder}"}, true},
		{"windows", map[string]string{"TERM": "alacritty"}, true},
		{"windows", map[string]string{"TERM": "cygwin"}, false},
	}

	for _, tt := range tests {
		getenv := func(k string) string { return tt.env[k] }
		if got := unicodeSupported(tt.goos, getenv); got != tt.want {
			t.Errorf("unicodeSupported(%s, %v) = %v, want %v", tt.goos, tt.env, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		b, err := Lookup(name)
		if err != nil || b == nil {
			t.Errorf("Lookup(%q) = %v, %v", name, b, err)
		}
	}

	if _, err := Lookup("neon"); !errors.Is(err, pkg.ErrInvalidArgument) {
		t.Errorf("Lookup(neon) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSymbols_For(t *testing.T) {
	if got := Unicode.For(level.Silent); got != "" {
		t.Errorf("Unicode.For(silent) = %q", got)
	}

	if got := Fallback.For(level.Debug); got != "*" {
		t.Errorf("Fallback.For(debug) = %q", got)
	}
}
