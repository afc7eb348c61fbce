// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// KV is a single explicit override passed to [Store.FromMapping].
type KV struct {
	Key   string
	Value any
}

// Pair builds a [KV].
func Pair(key string, value any) KV {
	return KV{Key: key, Value: value}
}

// FromMapping merges at most one bulk mapping and then the explicit
// overrides, so overrides always win over the mapping. Passing more than
// one mapping fails with [ErrTooManyArguments] and leaves the store intact.
func (s *Store) FromMapping(mappings []map[string]any, overrides ...KV) (bool, error) {
	if len(mappings) > 1 {
		return false, fmt.Errorf("%w: expected at most 1, got %d", ErrTooManyArguments, len(mappings))
	}

	if len(mappings) == 1 {
		s.Update(mappings[0])
	}
	for _, kv := range overrides {
		s.Set(kv.Key, kv.Value)
	}

	return true, nil
}

// FromEnv reads the environment variable named variable and loads the file it
// points to with [Store.FromSourceFile]. An unset or empty variable fails
// with [ErrMissingEnvVar], or returns false without touching the store when
// silent is set.
func (s *Store) FromEnv(variable string, silent bool, opts ...LoadOption) (bool, error) {
	path := os.Getenv(variable)
	if path == "" {
		if silent {
			return false, nil
		}
		return false, fmt.Errorf("%w: %q must point to a configuration file", ErrMissingEnvVar, variable)
	}

	return s.FromSourceFile(path, silent, opts...)
}

// FromEnvPrefix copies every environment variable whose name starts with
// prefix into the store, with the prefix trimmed. Values stay strings.
// It returns the number of keys written.
func (s *Store) FromEnvPrefix(prefix string) int {
	environ := env.ToMap(os.Environ())

	n := 0
	for _, name := range slices.Sorted(maps.Keys(environ)) {
		key, ok := strings.CutPrefix(name, prefix)
		if !ok || key == "" {
			continue
		}
		s.Set(key, environ[name])
		n++
	}
	return n
}
