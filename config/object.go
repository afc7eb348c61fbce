// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Mapper is implemented by values that list their own configuration fields.
// [Store.FromObject] prefers it over reflection.
type Mapper interface {
	ConfigMap() map[string]any
}

// FromObject copies the public fields of source into the store:
//   - a [Mapper] contributes the map it returns;
//   - a map with string keys, or pointer to one, contributes every key not
//     starting with "_";
//   - a struct, or pointer to one, contributes its exported fields under
//     their Go name, or under the name given by a `config:"name"` tag.
//     Fields tagged `config:"-"` are skipped.
//
// Any other value fails with [ErrUnsupportedSource].
func (s *Store) FromObject(source any) error {
	switch src := source.(type) {
	case Mapper:
		s.Update(src.ConfigMap())
		return nil
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(src)) {
			if strings.HasPrefix(key, "_") {
				continue
			}
			s.Set(key, src[key])
		}
		return nil
	}

	v := reflect.ValueOf(source)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return fmt.Errorf("%w: nil %s", ErrUnsupportedSource, v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String {
		namespace := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			namespace[iter.Key().String()] = iter.Value().Interface()
		}
		return s.FromObject(namespace)
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedSource, source)
	}

	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		key := field.Name
		if tag, ok := field.Tag.Lookup("config"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				key = tag
			}
		}
		s.Set(key, v.Field(i).Interface())
	}
	return nil
}
