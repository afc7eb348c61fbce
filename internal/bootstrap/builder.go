// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"errors"
	"fmt"
	"io"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	layers []*Options
	err    error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		layers: make([]*Options, 0, 2),
	}
}

// build merges the collected layers in order; a later layer overrides every
// non-zero field of the earlier ones.
func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building options: %w", b.err)
	}

	opts := new(Options)
	for _, layer := range b.layers {
		if err := mergo.Merge(opts, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	return opts, nil
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envOpts)
	return b
}

func (b *optionsBuilder) withFlags(args []string, output io.Writer) *optionsBuilder {
	flagOpts, err := ParseFlags(args, output)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, flagOpts)
	return b
}

// GetOptions collects the explicitly given options, in the following
// priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//
// Defaults are not applied here; see [LoadConfig].
func GetOptions(args []string, output io.Writer) (*Options, error) {
	return newOptionsBuilder().
		withEnv().
		withFlags(args, output).
		build()
}
