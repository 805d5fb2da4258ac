// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
)

// Settings is the typed view of a resolved configuration tree holding the
// values the pull tooling acts on.
type Settings struct {
	// App holds application-wide settings.
	App AppSettings

	// Storage holds the local archive, remote store and pull settings.
	Storage StorageSettings

	// Sync locates the external sync tool service.
	Sync SyncSettings
}

// AppSettings holds application-wide settings.
type AppSettings struct {
	// Timezone is the IANA zone the news archive is organised in.
	// Path: app.timezone
	Timezone string
}

// StorageSettings groups all storage related settings.
type StorageSettings struct {
	// Backend names the storage backend ("auto", "local", "remote").
	// Path: storage.backend
	Backend string

	// Local describes the local archive cache.
	Local LocalStorage

	// Remote addresses the remote object store.
	Remote RemoteStorage

	// RemoteRetentionDays is how long archives are kept remotely.
	// Path: storage.remote.retention_days
	RemoteRetentionDays int

	// Pull controls automatic pulling on startup of the aggregator.
	Pull PullSettings
}

// LocalStorage describes the local archive cache.
type LocalStorage struct {
	// DataDir is the directory holding one sub-directory per archived date.
	// Path: storage.local.data_dir
	DataDir string

	// RetentionDays is how long archives are kept locally.
	// Path: storage.local.retention_days
	RetentionDays int
}

// PullSettings controls automatic pulling.
type PullSettings struct {
	// Path: storage.pull.enabled
	Enabled bool
	// Path: storage.pull.days
	Days int
}

// SyncSettings locates the external sync tool service.
type SyncSettings struct {
	// Endpoint is the base URL of the sync tool service.
	// Path: sync.endpoint
	Endpoint string

	// Timeout bounds every call to the sync tool. Accepts a Go duration
	// string ("90s") or a number of seconds.
	// Path: sync.timeout
	Timeout time.Duration
}

var defaultSettings = Settings{
	App: AppSettings{
		Timezone: "Asia/Shanghai",
	},
	Storage: StorageSettings{
		Backend: "auto",
		Local:   LocalStorage{DataDir: "output"},
		Pull:    PullSettings{Days: 7},
	},
	Sync: SyncSettings{
		Endpoint: "http://127.0.0.1:8765",
		Timeout:  60 * time.Second,
	},
}

// DefaultSettings returns a copy of the built-in defaults.
func DefaultSettings() Settings {
	return defaultSettings
}

// SettingsFromTree maps tree onto [Settings] and fills unset fields with
// the built-in defaults.
func SettingsFromTree(tree Tree) (*Settings, error) {
	timeout, err := durationAt(tree, "sync.timeout")
	if err != nil {
		return nil, err
	}

	s := &Settings{
		App: AppSettings{
			Timezone: tree.String("app.timezone", ""),
		},
		Storage: StorageSettings{
			Backend: tree.String("storage.backend", ""),
			Local: LocalStorage{
				DataDir:       tree.String("storage.local.data_dir", ""),
				RetentionDays: tree.Int("storage.local.retention_days", 0),
			},
			Remote:              RemoteStorageFromTree(tree),
			RemoteRetentionDays: tree.Int("storage.remote.retention_days", 0),
			Pull: PullSettings{
				Enabled: tree.Bool("storage.pull.enabled", false),
				Days:    tree.Int("storage.pull.days", 0),
			},
		},
		Sync: SyncSettings{
			Endpoint: tree.String("sync.endpoint", ""),
			Timeout:  timeout,
		},
	}

	if err = mergo.Merge(s, defaultSettings); err != nil {
		return nil, fmt.Errorf("error applying default settings: %w", err)
	}

	return s, nil
}

func durationAt(tree Tree, path string) (time.Duration, error) {
	v, ok := tree.Lookup(path)
	if !ok || v.IsMapping() || v.Scalar() == nil {
		return 0, nil
	}

	switch raw := v.Scalar().(type) {
	case int:
		return time.Duration(raw) * time.Second, nil
	case float64:
		return time.Duration(raw * float64(time.Second)), nil
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrMalformedConfig, path, err)
		}
		return d, nil
	default:
		return 0, fmt.Errorf("%w: %s: unsupported value %v", ErrMalformedConfig, path, raw)
	}
}
