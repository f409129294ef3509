package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/style"
)

// logLevel is a custom type that configures the diagnostic logger level as a
// side effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)

	lv, err := level.Parse(string(*l))
	if err != nil {
		return err
	}

	log.SetLevel(lv)

	return nil
}

// logStyle is a custom type that configures the diagnostic logger binding
// strategy as a side effect of parsing via encoding.TextUnmarshaler.
type logStyle string

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *logStyle) UnmarshalText(text []byte) error {
	*s = logStyle(text)

	b, err := style.Lookup(string(*s))
	if err != nil {
		return err
	}

	log.SetConfig(b)

	return nil
}

type logConfig struct {
	Level logLevel `default:"info" enum:"${logLevelEnum}" help:"Set diagnostic log level."`
	Style logStyle `default:"auto" enum:"${logStyleEnum}" help:"Set diagnostic log style."`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum": strings.Join(level.Six.Names(), ","),
		"logStyleEnum": strings.Join(style.Names(), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// start applies the parsed values to the diagnostic logger, including any
// read from the configuration file.
func (f *logConfig) start(context.Context) {
	_ = f.Level.UnmarshalText([]byte(f.Level))
	_ = f.Style.UnmarshalText([]byte(f.Style))

	log.Debug("logger initialized", "level", string(f.Level), "style", string(f.Style))
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the command
// line.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		var unmarshal func([]byte) error

		switch name {
		case "--log-level":
			unmarshal = f.Level.UnmarshalText

		case "--log-style":
			unmarshal = f.Style.UnmarshalText

		default:
			continue
		}

		// Non-boolean flag: consume next arg as value if not assigned
		if !assigned && i+1 < len(args) && len(args[i+1]) > 0 &&
			args[i+1][0] != '-' {
			value = args[i+1]
			i++
		}

		_ = unmarshal([]byte(value))
	}
}
