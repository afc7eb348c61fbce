// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// NamespaceOption changes how [Store.Namespace] shapes result keys.
type NamespaceOption func(*namespaceOptions)

type namespaceOptions struct {
	lowercase  bool
	trimPrefix bool
}

// KeepCase leaves result keys in their original case.
func KeepCase() NamespaceOption {
	return func(o *namespaceOptions) { o.lowercase = false }
}

// KeepPrefix leaves the prefix on result keys.
func KeepPrefix() NamespaceOption {
	return func(o *namespaceOptions) { o.trimPrefix = false }
}

// Namespace returns a new map with every key that starts with prefix
// (case-sensitive). By default the prefix is trimmed and the remainder
// lowercased:
//
//	IMAGE_STORE_TYPE=fs, IMAGE_STORE_PATH=/var/app/images
//	Namespace("IMAGE_STORE_") -> {type: fs, path: /var/app/images}
//
// Keys that collapse onto the same result key resolve to the one inserted
// last. The result shares no state with the store.
func (s *Store) Namespace(prefix string, opts ...NamespaceOption) map[string]any {
	o := namespaceOptions{lowercase: true, trimPrefix: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	out := make(map[string]any)
	for _, key := range s.order {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := key
		if o.trimPrefix {
			name = key[len(prefix):]
		}
		if o.lowercase {
			name = strings.ToLower(name)
		}
		out[name] = s.values[key]
	}
	return out
}
