// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [Options] are usable before anything is
// loaded from disk. A help request skips validation, and the date range is
// only checked for a pull since --status and --list-dates take precedence.
//
// Returns nil if the options are valid, or a descriptive error otherwise.
func (o *Options) validate() error {
	if o.Help {
		return nil
	}

	if o.Mode() == ModePull {
		if _, err := o.DateRange(); err != nil {
			return err
		}
	}

	if o.Days < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDays, o.Days)
	}

	if o.Timeout < 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeout, o.Timeout)
	}

	return nil
}
