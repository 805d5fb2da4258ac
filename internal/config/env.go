// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/caarlos0/env/v11"
)

// Coercion selects how the raw text of an environment variable is stored in
// the configuration tree.
type Coercion uint8

const (
	// AsString stores the value verbatim.
	AsString Coercion = iota
	// AsInt stores the value as an int, falling back to the raw text (with a
	// warning) when it is not a valid integer.
	AsInt
)

// EnvBinding maps one environment variable onto a configuration path.
type EnvBinding struct {
	Name   string
	Path   string
	Coerce Coercion
}

// EnvBindings is the complete allow-list of environment variables consulted
// by the tiered loader. Any other variable is ignored.
var EnvBindings = []EnvBinding{
	{Name: "S3_ENDPOINT_URL", Path: "storage.remote.endpoint_url", Coerce: AsString},
	{Name: "S3_BUCKET_NAME", Path: "storage.remote.bucket_name", Coerce: AsString},
	{Name: "S3_ACCESS_KEY_ID", Path: "storage.remote.access_key_id", Coerce: AsString},
	{Name: "S3_SECRET_ACCESS_KEY", Path: "storage.remote.secret_access_key", Coerce: AsString},
	{Name: "S3_REGION", Path: "storage.remote.region", Coerce: AsString},
	{Name: "STORAGE_RETENTION_DAYS", Path: "storage.local.retention_days", Coerce: AsInt},
	{Name: "REMOTE_RETENTION_DAYS", Path: "storage.remote.retention_days", Coerce: AsInt},
	{Name: "TIMEZONE", Path: "app.timezone", Coerce: AsString},
}

// processEnviron snapshots the process environment as a name → value map.
func processEnviron() map[string]string {
	return env.ToMap(os.Environ())
}

// envTree builds the environment tier from environ. Only variables listed in
// EnvBindings and present in environ contribute; an empty value still counts
// as present.
func envTree(environ map[string]string, log *logger.Logger) Tree {
	tree := Tree{}

	for _, b := range EnvBindings {
		raw, ok := environ[b.Name]
		if !ok {
			continue
		}

		var v any = raw
		if b.Coerce == AsInt {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				log.Warn().
					Str("env", b.Name).
					Str("value", raw).
					Msg("environment variable is not a valid integer, keeping raw value")
			} else {
				v = n
			}
		}

		tree.setPath(splitPath(b.Path), Scalar(v))
	}

	return tree
}

// parseEnv populates cfg from environ using the caarlos0/env library. Struct
// fields are mapped via their `env` tags defined on [Options]. A nil environ
// reads the process environment.
//
// Returns a wrapped error if parsing fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any, environ map[string]string) error {
	if environ == nil {
		environ = processEnviron()
	}

	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
