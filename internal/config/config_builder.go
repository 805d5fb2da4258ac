package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	configs []*Options
	output  io.Writer
	environ map[string]string
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		configs: make([]*Options, 0, 2),
		output:  os.Stderr,
	}
}

func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building options: %w", b.err)
	}

	opts := new(Options)
	for _, cfg := range b.configs {
		if err := mergo.Merge(opts, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	if err := mergo.Merge(opts, defaultOptions); err != nil {
		return nil, fmt.Errorf("error applying default options: %w", err)
	}

	return opts, opts.validate()
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envCfg := &Options{}
	if err := parseEnv(envCfg, b.environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *optionsBuilder) withFlags(args []string) *optionsBuilder {
	flags, err := ParseFlags(args, b.output)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}
