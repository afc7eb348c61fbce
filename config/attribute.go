// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Holder is implemented by types that own a [Store].
type Holder interface {
	Config() *Store
}

// Attribute forwards reads and writes of a named field to one key of the
// holder's store. It holds no value of its own, so it is usually declared
// once as a package-level variable and shared by every holder:
//
//	var debug = config.NewAttribute("DEBUG", config.ToBool)
//
//	func (a *App) Debug() (bool, error) { return debug.Get(a) }
type Attribute[T any] struct {
	key     string
	convert func(any) (T, error)
}

// NewAttribute binds key with an optional converter applied on reads.
func NewAttribute[T any](key string, convert func(any) (T, error)) Attribute[T] {
	return Attribute[T]{key: key, convert: convert}
}

// Attr binds key without conversion.
func Attr(key string) Attribute[any] {
	return Attribute[any]{key: key}
}

// Key returns the bound store key.
func (a Attribute[T]) Key() string {
	return a.key
}

// Get reads the bound key from the holder's store and converts it.
func (a Attribute[T]) Get(h Holder) (T, error) {
	var zero T
	v, err := h.Config().Get(a.key)
	if err != nil {
		return zero, err
	}

	if a.convert != nil {
		out, err := a.convert(v)
		if err != nil {
			return zero, fmt.Errorf("error converting %q: %w", a.key, err)
		}
		return out, nil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %T", ErrTypeMismatch, a.key, v, zero)
	}
	return typed, nil
}

// Set writes value to the bound key unconverted.
func (a Attribute[T]) Set(h Holder, value T) {
	h.Config().Set(a.key, value)
}

// ToBool accepts bools and strconv.ParseBool strings.
func ToBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return parsed, nil
	}
	return false, fmt.Errorf("%w: %T is not a bool", ErrTypeMismatch, v)
}

// ToInt accepts Go integers, whole floats and decimal strings.
func ToInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			break
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt || n >= math.MaxInt {
			break
		}
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("%w: %v (%T) is not an integer", ErrTypeMismatch, v, v)
}

// ToString accepts strings and formats everything else with %v.
func ToString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

// ToDuration accepts time.Duration values and time.ParseDuration strings.
func ToDuration(v any) (time.Duration, error) {
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case string:
		parsed, err := time.ParseDuration(d)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("%w: %T is not a duration", ErrTypeMismatch, v)
}
