package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   base URL of the record store
//	-d string   path to the local snapshot database
//	-t int      request timeout in seconds
//
// The arguments are filtered through flagx.FilterArgs so flags owned by
// other packages (like the -c config-file flag) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "base URL of the record store")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local snapshot database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
