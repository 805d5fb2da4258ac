// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks configuration values before they are handed to
// the sync tool.
//
// Validators report every failing field at once rather than stopping at the
// first one, so the CLI can print the full list of what is missing. Passing
// field names to Validate restricts the check to that subset.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
