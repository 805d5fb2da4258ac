package config

import "errors"

var (
	// ErrMalformedConfig indicates that a configuration file exists but could
	// not be decoded into a mapping. It is fatal for the caller.
	ErrMalformedConfig = errors.New("malformed configuration file")
	// ErrIncompleteDateRange indicates that only one of --start / --end was
	// given.
	ErrIncompleteDateRange = errors.New("--start and --end must be used together")
	// ErrInvalidDateRange indicates an unparsable date or an end date that
	// precedes the start date.
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrInvalidDays indicates a non-positive --days value.
	ErrInvalidDays = errors.New("days must be a positive integer")
	// ErrInvalidTimeout indicates a negative sync tool timeout.
	ErrInvalidTimeout = errors.New("timeout must not be negative")
)
