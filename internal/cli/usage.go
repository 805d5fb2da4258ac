package cli

import (
	"fmt"
	"io"

	"github.com/MKhiriev/news-radar/internal/config"
)

const examples = `
Examples:
  %[1]s --days 7                                # pull the last 7 days
  %[1]s --start 2025-12-10 --end 2025-12-17     # pull a date range
  %[1]s --status                                # show storage status
  %[1]s --list-dates                            # list available dates
  %[1]s --days 7 --force                        # pull again, overwriting local data
`

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Usage: %s [flags]\n\nPull archived news data from remote storage.\n\nFlags:\n", config.CommandName)
	config.NewFlagSet(&config.Options{}, w).PrintDefaults()
	_, _ = fmt.Fprintf(w, examples, config.CommandName)
}
