package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/taskease/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only -a, -b, -s, -t and -l are looked at (see flagx.FilterArgs), so the
// -c/-config flag handled by parseJson does not interfere. It panics on
// malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the TaskEase API")
	fs.StringVar(&cfg.CredentialBackend, "b", cfg.CredentialBackend, "credential backend (sqlite, redis, memory)")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the SQLite credential store")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
