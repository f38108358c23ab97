package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/signon/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   database path
//	-s int      splash duration in seconds
//	-l string   log level
//
// os.Args is filtered through flagx.FilterArgs first so flags owned by other
// loaders (-c, -e) do not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	splash := fs.Int("s", int(cfg.SplashDuration.Seconds()), "splash duration (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -s overrides; otherwise sub-second values survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "s" {
			cfg.SplashDuration = time.Duration(*splash) * time.Second
		}
	})
}
