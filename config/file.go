// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"
)

// LoadOption tunes file loaders.
type LoadOption func(*loadOptions)

type loadOptions struct {
	trusted bool
}

// Trusted allows [Store.FromSourceFile] to execute script files. A script
// runs with the full power of the embedded interpreter, so only pass this
// for files you would run yourself.
func Trusted() LoadOption {
	return func(o *loadOptions) {
		o.trusted = true
	}
}

func applyLoadOptions(opts []LoadOption) loadOptions {
	var o loadOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// readConfigFile returns the file contents. A missing path is always an
// error. When silent is set, a not-found or is-a-directory read failure
// yields ok == false and a nil error.
func readConfigFile(path string, silent bool) (data []byte, ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return nil, false, &FileReadError{Path: path, Err: err}
	}

	data, err = readAll(path)
	if err != nil {
		if silent && (errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.EISDIR)) {
			return nil, false, nil
		}
		return nil, false, &FileReadError{Path: path, Err: err}
	}

	return data, true, nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// FromStructuredFile loads a JSON document, or a YAML one when the path ends
// in .yaml or .yml. The top level must be an object; its keys become store
// keys and nested values are kept as decoded.
func (s *Store) FromStructuredFile(path string, silent bool) (bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return s.FromYAML(path, silent)
	default:
		return s.FromJSON(path, silent)
	}
}

// FromJSON loads a JSON object file through [Store.FromMapping].
func (s *Store) FromJSON(path string, silent bool) (bool, error) {
	data, ok, err := readConfigFile(path, silent)
	if !ok {
		return false, err
	}

	var mapping map[string]any
	if err := json.Unmarshal(data, &mapping); err != nil {
		return false, fmt.Errorf("%w: error decoding json config %q: %v", ErrInvalidFormat, path, err)
	}
	if mapping == nil {
		return false, fmt.Errorf("%w: json config %q is not an object", ErrInvalidFormat, path)
	}

	return s.FromMapping([]map[string]any{mapping})
}

// FromYAML loads a YAML mapping file through [Store.FromMapping].
func (s *Store) FromYAML(path string, silent bool) (bool, error) {
	data, ok, err := readConfigFile(path, silent)
	if !ok {
		return false, err
	}

	var mapping map[string]any
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return false, fmt.Errorf("%w: error decoding yaml config %q: %v", ErrInvalidFormat, path, err)
	}
	if mapping == nil {
		return false, fmt.Errorf("%w: yaml config %q is not a mapping", ErrInvalidFormat, path)
	}

	return s.FromMapping([]map[string]any{mapping})
}

// FromSourceFile evaluates a configuration source file in an isolated
// namespace and copies its top-level names into the store with
// [Store.FromObject].
//
// Files ending in .js are JavaScript programs and require [Trusted]. Any
// other file is an expression config (see the package documentation).
func (s *Store) FromSourceFile(path string, silent bool, opts ...LoadOption) (bool, error) {
	o := applyLoadOptions(opts)
	isScript := strings.EqualFold(filepath.Ext(path), ".js")
	if isScript && !o.trusted {
		return false, fmt.Errorf("%w: %q", ErrUntrustedScript, path)
	}

	data, ok, err := readConfigFile(path, silent)
	if !ok {
		return false, err
	}

	var namespace map[string]any
	if isScript {
		namespace, err = evalScript(path, string(data))
	} else {
		namespace, err = evalExprConfig(path, string(data), s.All())
	}
	if err != nil {
		return false, err
	}

	if err := s.FromObject(namespace); err != nil {
		return false, err
	}
	return true, nil
}
