// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// Errors returned by [Store] and its loaders. Callers should match them with
// errors.Is; most are wrapped with the offending key, variable or path.
var (
	// ErrMissingKey indicates a lookup of a key that is not in the store,
	// either directly or through an [Attribute].
	ErrMissingKey = errors.New("missing configuration key")
	// ErrMissingEnvVar indicates that the environment variable used for
	// indirection is unset or empty.
	ErrMissingEnvVar = errors.New("environment variable is not set")
	// ErrFileNotFound indicates that the configuration file path does not exist.
	ErrFileNotFound = errors.New("configuration file does not exist")
	// ErrFileRead indicates an I/O failure other than not-found while reading
	// a configuration file (permission denied, is a directory, ...).
	ErrFileRead = errors.New("unable to load configuration file")
	// ErrTooManyArguments indicates that [Store.FromMapping] received more
	// than one positional mapping.
	ErrTooManyArguments = errors.New("too many positional mappings")
	// ErrInvalidFormat indicates a configuration file that could not be parsed.
	ErrInvalidFormat = errors.New("invalid configuration format")
	// ErrUntrustedScript indicates an attempt to evaluate a script file
	// without the [Trusted] option.
	ErrUntrustedScript = errors.New("script configuration requires trusted mode")
	// ErrUnsupportedSource indicates a value [Store.FromObject] cannot enumerate.
	ErrUnsupportedSource = errors.New("unsupported configuration source")
	// ErrTypeMismatch indicates a stored value of an unexpected type.
	ErrTypeMismatch = errors.New("configuration value has unexpected type")
)

// FileReadError describes a failed read of a configuration file. It matches
// both [ErrFileRead] and the underlying cause with errors.Is.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("%s %q (%v)", ErrFileRead.Error(), e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the original I/O error.
func (e *FileReadError) Unwrap() []error {
	return []error{ErrFileRead, e.Err}
}
