// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"io"
	"time"
)

// DateLayout is the layout of --start / --end values.
const DateLayout = "2006-01-02"

// Options holds the runtime options of the pull-remote-news command. They
// are populated by merging environment variables and command-line flags;
// flags win.
//
// Struct tags:
//   - env is the environment variable name for fields that may come from the
//     environment (caarlos0/env).
type Options struct {
	// Root is the project root containing config/config.yaml.
	// Env: NEWS_RADAR_ROOT, flag: --root
	Root string `env:"NEWS_RADAR_ROOT"`

	// LogLevel is the minimum level written to the diagnostic log.
	// Env: NEWS_RADAR_LOG_LEVEL, flag: --log-level
	LogLevel string `env:"NEWS_RADAR_LOG_LEVEL"`

	// SyncURL overrides sync.endpoint from the configuration tree.
	// Env: SYNC_TOOL_URL, flag: --sync-url
	SyncURL string `env:"SYNC_TOOL_URL"`

	// Timeout overrides sync.timeout from the configuration tree.
	// Env: SYNC_TOOL_TIMEOUT, flag: --timeout
	Timeout time.Duration `env:"SYNC_TOOL_TIMEOUT"`

	// Days is the number of most recent days to pull. Flag: --days / -d
	Days int

	// Start and End bound an explicit date range (YYYY-MM-DD, inclusive).
	// Flags: --start, --end
	Start string
	End   string

	// Force asks to overwrite data already present locally. Flag: --force / -f
	Force bool

	// Status shows the storage status instead of pulling. Flag: --status / -s
	Status bool

	// ListDates lists available dates instead of pulling.
	// Flag: --list-dates / -l
	ListDates bool

	// Help is set when -h / --help was given.
	Help bool
}

// Mode is the operation selected by the flags.
type Mode uint8

const (
	ModePull Mode = iota
	ModeStatus
	ModeListDates
)

func (m Mode) String() string {
	switch m {
	case ModeStatus:
		return "status"
	case ModeListDates:
		return "list-dates"
	default:
		return "pull"
	}
}

// Mode resolves the operation: --status wins over --list-dates, which wins
// over the default pull.
func (o *Options) Mode() Mode {
	switch {
	case o.Status:
		return ModeStatus
	case o.ListDates:
		return ModeListDates
	default:
		return ModePull
	}
}

var defaultOptions = Options{
	Root:     ".",
	LogLevel: "info",
	Days:     DefaultDays,
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days covered, both ends included.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// DateRange parses Start/End. It returns nil when neither is set.
func (o *Options) DateRange() (*DateRange, error) {
	if o.Start == "" && o.End == "" {
		return nil, nil
	}
	if o.Start == "" || o.End == "" {
		return nil, ErrIncompleteDateRange
	}

	start, err := time.Parse(DateLayout, o.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start %q: %w", ErrInvalidDateRange, o.Start, err)
	}
	end, err := time.Parse(DateLayout, o.End)
	if err != nil {
		return nil, fmt.Errorf("%w: end %q: %w", ErrInvalidDateRange, o.End, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidDateRange, o.End, o.Start)
	}

	return &DateRange{Start: start, End: end}, nil
}

// GetOptions loads, merges, and validates the runtime options from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//
// Flag parse errors and usage are written to output. Environment variables
// are read from environ, or from the process environment when it is nil.
//
// Returns a fully populated *Options or an error if any source fails to
// load or the final options fail validation.
func GetOptions(args []string, output io.Writer, environ map[string]string) (*Options, error) {
	b := newOptionsBuilder()
	if output != nil {
		b.output = output
	}
	b.environ = environ

	return b.
		withEnv().
		withFlags(args).
		build()
}
