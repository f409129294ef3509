package style

import (
	"os"
	"runtime"

	"github.com/muesli/termenv"
)

// UnicodeSupported reports whether the terminal is likely to render Unicode
// symbols. Outside Windows only the Linux console is assumed not to.
func UnicodeSupported() bool {
	return unicodeSupported(runtime.GOOS, os.Getenv)
}

func unicodeSupported(goos string, getenv func(string) string) bool {
	term, program := getenv("TERM"), getenv("TERM_PROGRAM")

	if goos != "windows" {
		return term != "linux"
	}

	switch {
	case getenv("WT_SESSION") != "",
		getenv("TERMINUS_SUBLIME") != "",
		getenv("ConEmuTask") == "{cmd::Cmder}",
		getenv("TERMINAL_EMULATOR") == "JetBrains-JediTerm":
		return true
	}

	switch program {
	case "Terminus-Sublime", "vscode":
		return true
	}

	switch term {
	case "xterm-256color", "alacritty", "rxvt-unicode", "rxvt-unicode-256color":
		return true
	}

	return false
}

// ColorSupported reports whether standard output supports color, honoring
// NO_COLOR and CLICOLOR_FORCE.
func ColorSupported() bool {
	return termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
}
