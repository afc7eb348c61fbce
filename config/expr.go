// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bufio"
	"fmt"
	"maps"
	"strings"
	"unicode"

	exprlang "github.com/expr-lang/expr"
)

// evalExprConfig evaluates an expression config document and returns the
// names it binds. Every assignment sees the base values and the names bound
// by earlier lines; base itself is never modified.
func evalExprConfig(path, src string, base map[string]any) (map[string]any, error) {
	env := make(map[string]any, len(base))
	maps.Copy(env, base)
	bound := make(map[string]any)

	scanner := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, expression, ok := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		expression = strings.TrimSpace(expression)
		if !ok || !isIdentifier(name) || expression == "" {
			return nil, fmt.Errorf("%w: %s:%d: expected NAME = expression", ErrInvalidFormat, path, lineNo)
		}

		value, err := exprlang.Eval(expression, env)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrInvalidFormat, path, lineNo, err)
		}
		env[name] = value
		bound[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}

	return bound, nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
