package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/plantparent/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only the flags listed here are taken from os.Args (see flagx.FilterArgs),
// so -c/-config handled by parseJson does not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-locale", "-s"}, "-mem")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataPath, "d", cfg.DataPath, "path of the SQLite data file")
	fs.BoolVar(&cfg.InMemory, "mem", cfg.InMemory, "keep data in memory only")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "preferred display language")
	fs.StringVar(&cfg.SentryDSN, "s", cfg.SentryDSN, "Sentry DSN for crash reports")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
