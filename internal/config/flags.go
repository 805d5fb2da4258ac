package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// DefaultDays is the number of days pulled when --days is not given.
const DefaultDays = 7

// CommandName is the name the flag set reports in usage output.
const CommandName = "pull-remote-news"

// NewFlagSet declares every flag of the command, binding them to opts.
//
// Flags:
//
//	-d/--days        pull the most recent N days (default 7)
//	--start          range start date (YYYY-MM-DD)
//	--end            range end date (YYYY-MM-DD)
//	-f/--force       overwrite data already present locally
//	-s/--status      show storage status
//	-l/--list-dates  list available dates
//	--root           project root directory
//	--log-level      diagnostic log level
//	--sync-url       sync tool base URL
//	--timeout        sync tool request timeout (e.g. "90s")
//	-h/--help        show usage
func NewFlagSet(opts *Options, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(CommandName, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false

	fs.IntVarP(&opts.Days, "days", "d", DefaultDays, "pull the most recent N days")
	fs.StringVar(&opts.Start, "start", "", "range start date (YYYY-MM-DD)")
	fs.StringVar(&opts.End, "end", "", "range end date (YYYY-MM-DD)")
	fs.BoolVarP(&opts.Force, "force", "f", false, "overwrite data already present locally")
	fs.BoolVarP(&opts.Status, "status", "s", false, "show storage status")
	fs.BoolVarP(&opts.ListDates, "list-dates", "l", false, "list available dates")
	fs.StringVar(&opts.Root, "root", "", "project root directory (default \".\")")
	fs.StringVar(&opts.LogLevel, "log-level", "", "diagnostic log level (default \"info\")")
	fs.StringVar(&opts.SyncURL, "sync-url", "", "sync tool base URL (overrides sync.endpoint)")
	fs.DurationVar(&opts.Timeout, "timeout", 0, "sync tool request timeout (overrides sync.timeout)")
	fs.BoolVarP(&opts.Help, "help", "h", false, "show usage")

	return fs
}

// ParseFlags parses args (without the program name) into a fresh *Options.
// A help request is not an error: it is reported through Options.Help.
func ParseFlags(args []string, output io.Writer) (*Options, error) {
	opts := &Options{}
	fs := NewFlagSet(opts, output)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.Help = true
			return opts, nil
		}
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected arguments %v", fs.Args())
	}

	// zero values are dropped when options are merged, so reject them here
	if fs.Changed("days") && opts.Days < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDays, opts.Days)
	}

	return opts, nil
}
