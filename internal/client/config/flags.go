package config

import (
	"flag"

	"github.com/dmitrijs2005/gophledger/internal/flagx"
)

// GlobalFlags lists the flags parseFlags consumes. Callers strip them (plus
// flagx.ConfigFileFlags) before dispatching subcommands.
var GlobalFlags = []string{"-d", "-p", "-l"}

// parseFlags populates Config fields from command-line flags found in args.
// Only the flags in GlobalFlags are looked at, so subcommand flags and
// positional arguments do not interfere.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, GlobalFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageDriver, "d", cfg.StorageDriver, "storage driver (sqlite, file, memory)")
	fs.StringVar(&cfg.StoragePath, "p", cfg.StoragePath, "storage path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
