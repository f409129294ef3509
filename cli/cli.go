package cli

import (
	"context"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/cli/cmd"
	"github.com/ardnew/clog/level"
	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/pkg"
	"github.com/ardnew/clog/sink"
	"github.com/ardnew/clog/style"
)

// CLI is the top-level command-line interface for clog.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Store storeConfig `embed:"" group:"store" prefix:"store-"`

	Scheme string `default:"six" enum:"six,five" help:"Recognized severities (five omits log)."`

	Init   cmd.Init   `cmd:"" help:"Initialize configuration file"`
	Levels cmd.Levels `cmd:"" help:"List recognized levels"`
	Set    cmd.Set    `cmd:"" help:"Persist a level override"`
	Reset  cmd.Reset  `cmd:"" help:"Remove a persisted level override"`
	List   cmd.List   `cmd:"" help:"List persisted level overrides"`
	Emit   cmd.Emit   `cmd:"" help:"Emit a message through a logger"`

	Get cmd.Get `cmd:"" default:"withargs" help:"Show effective levels"`
}

// scheme returns the level scheme selected by --scheme.
func (c *CLI) scheme() level.Scheme {
	if c.Scheme == "five" {
		return level.Five
	}

	return level.Six
}

// Run executes the clog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig + ".yaml")

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Store.vars()).
		CloneWith(cmd.Vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Store.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values, including those
	// read from the configuration file.
	cli.Log.start(ctx)

	st, closeStore, err := cli.Store.open()
	if err != nil {
		return err
	}

	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("close level store:", err)
		}
	}()

	root := log.New(
		log.WithStore(st),
		log.WithStoreKey(cli.Store.Key),
		log.WithScheme(cli.scheme()),
		log.WithSink(sink.NewConsole(os.Stdout, os.Stderr)),
		log.WithBinder(style.Auto()),
	)

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithLogger(ctx, root)
	ctx = cmd.WithOutput(ctx, os.Stdout)

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
