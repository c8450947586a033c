package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	"slices"

	"github.com/dmitrijs2005/gophledger/internal/client/cli"
	"github.com/dmitrijs2005/gophledger/internal/client/config"
	"github.com/dmitrijs2005/gophledger/internal/flagx"
	"github.com/dmitrijs2005/gophledger/internal/logging"
	"github.com/google/subcommands"
)

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	name := path.Base(argv[0])
	args := argv[1:]

	cfg := config.LoadConfig(args)
	logger := logging.New(os.Stderr, cfg.LogLevel)

	// global flags were consumed by config; the rest belongs to subcommands
	rest := flagx.RemoveArgs(args, slices.Concat(flagx.ConfigFileFlags, config.GlobalFlags))
	if len(rest) == 0 {
		rest = []string{"shell"}
	}

	fs := flag.NewFlagSet(name, flag.ExitOnError)
	commander := subcommands.NewCommander(fs, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cli.Commands {
		commander.Register(c, "ledger")
	}
	_ = fs.Parse(rest)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var open cli.Opener = func(ctx context.Context) (*cli.App, error) {
		return cli.NewApp(ctx, cfg, logger)
	}

	return int(commander.Execute(ctx, open))
}
