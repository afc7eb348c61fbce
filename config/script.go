// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/dop251/goja"
)

// evalScript runs a JavaScript program in a fresh runtime and returns the
// global bindings it created. Functions are skipped. Top-level let and const
// declarations are not global object properties and are therefore not
// exported; use var.
func evalScript(path, src string) (map[string]any, error) {
	vm := goja.New()
	if _, err := vm.RunScript(path, src); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}

	global := vm.GlobalObject()
	bound := make(map[string]any)
	for _, name := range global.Keys() {
		value := global.Get(name)
		if _, isFunc := goja.AssertFunction(value); isFunc {
			continue
		}
		bound[name] = value.Export()
	}

	return bound, nil
}
