// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"
	"slices"

	"dario.cat/mergo"
)

// Store is an insertion-ordered mapping from case-sensitive keys to
// arbitrary values. Loaders mutate it in place and a failed load is never
// rolled back.
//
// Store has no internal locking. Concurrent mutation must be guarded by the
// caller.
type Store struct {
	values map[string]any
	order  []string
}

// New returns a Store pre-populated with a copy of defaults.
// Defaults are inserted in sorted key order.
func New(defaults map[string]any) *Store {
	s := &Store{values: make(map[string]any, len(defaults))}
	for _, key := range slices.Sorted(maps.Keys(defaults)) {
		s.Set(key, defaults[key])
	}
	return s
}

// Get returns the value stored under key or an error wrapping [ErrMissingKey].
func (s *Store) Get(key string) (any, error) {
	v, ok := s.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	return v, nil
}

// Lookup returns the value stored under key and whether it was present.
func (s *Store) Lookup(key string) (any, bool) {
	if s.values == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// GetString returns the string stored under key.
func (s *Store) GetString(key string) (string, error) {
	return getAs[string](s, key)
}

// GetBool returns the bool stored under key.
func (s *Store) GetBool(key string) (bool, error) {
	return getAs[bool](s, key)
}

// GetInt returns the integer stored under key. Whole float64 values, as
// decoded from JSON, are accepted.
func (s *Store) GetInt(key string) (int, error) {
	v, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	return ToInt(v)
}

func getAs[T any](s *Store, key string) (T, error) {
	var zero T
	v, err := s.Get(key)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %T", ErrTypeMismatch, key, v, zero)
	}
	return typed, nil
}

// Set stores value under key, overwriting any previous value. An existing
// key keeps its position in iteration order.
func (s *Store) Set(key string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	if _, ok := s.values[key]; !ok {
		s.order = append(s.order, key)
	}
	s.values[key] = value
}

// Update merges mapping into the store entry by entry. Colliding keys take
// the incoming value. New keys are appended in sorted order.
func (s *Store) Update(mapping map[string]any) bool {
	for _, key := range slices.Sorted(maps.Keys(mapping)) {
		s.Set(key, mapping[key])
	}
	return true
}

// MergeDeep merges mapping into the store, descending into nested
// map[string]any values instead of replacing them wholesale.
func (s *Store) MergeDeep(mapping map[string]any) error {
	merged := s.All()
	if err := mergo.Merge(&merged, mapping, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging mapping into store: %w", err)
	}

	for _, key := range s.order {
		s.values[key] = merged[key]
	}
	for _, key := range slices.Sorted(maps.Keys(merged)) {
		if _, ok := s.values[key]; !ok {
			s.Set(key, merged[key])
		}
	}
	return nil
}

// Keys returns the keys in insertion order.
func (s *Store) Keys() []string {
	return slices.Clone(s.order)
}

// Len returns the number of keys.
func (s *Store) Len() int {
	return len(s.order)
}

// All returns a shallow copy of the store contents.
func (s *Store) All() map[string]any {
	out := make(map[string]any, len(s.values))
	maps.Copy(out, s.values)
	return out
}
