// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/rs/zerolog"
)

const (
	// ConfigDir is the directory, relative to the project root, holding the
	// configuration files.
	ConfigDir = "config"
	// MainConfigFile is the primary configuration file name.
	MainConfigFile = "config.yaml"
	// HiddenConfigFile holds secrets kept out of the primary file.
	HiddenConfigFile = "hide_config.yaml"
)

// Loader produces one resolved configuration tree.
type Loader interface {
	Load() (Tree, error)
}

// TieredLoader resolves configuration from three ranked sources, lowest
// priority first:
//  1. <root>/config/config.yaml
//  2. <root>/config/hide_config.yaml
//  3. environment variables listed in [EnvBindings]
//
// Missing files are logged and treated as empty. Malformed files abort the
// load with an error wrapping [ErrMalformedConfig].
type TieredLoader struct {
	root    string
	environ func() map[string]string
	logger  *logger.Logger
}

// LoaderOption customises a [TieredLoader].
type LoaderOption func(*TieredLoader)

// WithEnviron replaces the process environment with a fixed snapshot.
func WithEnviron(environ map[string]string) LoaderOption {
	return func(l *TieredLoader) {
		l.environ = func() map[string]string { return environ }
	}
}

// NewTieredLoader returns a loader rooted at the project directory root.
func NewTieredLoader(root string, log *logger.Logger, opts ...LoaderOption) *TieredLoader {
	if log == nil {
		log = logger.Nop()
	}

	l := &TieredLoader{
		root:    root,
		environ: processEnviron,
		logger:  log,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// MainConfigPath returns the location of the primary configuration file.
func (l *TieredLoader) MainConfigPath() string {
	return filepath.Join(l.root, ConfigDir, MainConfigFile)
}

// HiddenConfigPath returns the location of the secondary configuration file.
func (l *TieredLoader) HiddenConfigPath() string {
	return filepath.Join(l.root, ConfigDir, HiddenConfigFile)
}

// Load implements [Loader]. Every call reads all sources afresh.
func (l *TieredLoader) Load() (Tree, error) {
	return newTreeBuilder(l.logger).
		withFile(l.MainConfigPath(), zerolog.WarnLevel).
		withFile(l.HiddenConfigPath(), zerolog.InfoLevel).
		withEnv(l.environ()).
		build()
}

type treeBuilder struct {
	tiers  []Tree
	err    error
	logger *logger.Logger
}

func newTreeBuilder(log *logger.Logger) *treeBuilder {
	return &treeBuilder{
		tiers:  make([]Tree, 0, 3),
		logger: log,
	}
}

func (b *treeBuilder) build() (Tree, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during loading config: %w", b.err)
	}

	tree := Tree{}
	for _, tier := range b.tiers {
		tree = Merge(tree, tier)
	}

	return tree, nil
}

// withFile appends the tree read from path. A missing file is reported at
// missingLevel and contributes nothing.
func (b *treeBuilder) withFile(path string, missingLevel zerolog.Level) *treeBuilder {
	tree, err := readYAMLTree(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		b.logger.WithLevel(missingLevel).Str("path", path).Msg("config file not found, skipping")
		return b
	case err != nil:
		b.err = errors.Join(b.err, err)
		return b
	}

	b.logger.Debug().Str("path", path).Int("keys", len(tree)).Msg("config file loaded")
	b.tiers = append(b.tiers, tree)
	return b
}

func (b *treeBuilder) withEnv(environ map[string]string) *treeBuilder {
	b.tiers = append(b.tiers, envTree(environ, b.logger))
	return b
}
