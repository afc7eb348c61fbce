// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespace(t *testing.T) {
	s := New(nil)
	s.Set("IMAGE_STORE_TYPE", "fs")
	s.Set("IMAGE_STORE_PATH", "/var/app/images")
	s.Set("IMAGE_STORE_BASE_URL", "http://img.example.com")
	s.Set("OTHER_KEY", "x")

	tests := []struct {
		name   string
		prefix string
		opts   []NamespaceOption
		want   map[string]any
	}{
		{
			name:   "defaults trim and lowercase",
			prefix: "IMAGE_STORE_",
			want: map[string]any{
				"type":     "fs",
				"path":     "/var/app/images",
				"base_url": "http://img.example.com",
			},
		},
		{
			name:   "keep case",
			prefix: "IMAGE_STORE_",
			opts:   []NamespaceOption{KeepCase()},
			want: map[string]any{
				"TYPE":     "fs",
				"PATH":     "/var/app/images",
				"BASE_URL": "http://img.example.com",
			},
		},
		{
			name:   "keep prefix",
			prefix: "IMAGE_STORE_",
			opts:   []NamespaceOption{KeepPrefix()},
			want: map[string]any{
				"image_store_type":     "fs",
				"image_store_path":     "/var/app/images",
				"image_store_base_url": "http://img.example.com",
			},
		},
		{
			name:   "prefix match is case sensitive",
			prefix: "image_store_",
			want:   map[string]any{},
		},
		{
			name:   "empty prefix keeps everything",
			prefix: "",
			opts:   []NamespaceOption{KeepCase(), KeepPrefix()},
			want: map[string]any{
				"IMAGE_STORE_TYPE":     "fs",
				"IMAGE_STORE_PATH":     "/var/app/images",
				"IMAGE_STORE_BASE_URL": "http://img.example.com",
				"OTHER_KEY":            "x",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Namespace(tt.prefix, tt.opts...))
		})
	}
}

func TestNamespace_ExactExample(t *testing.T) {
	s := New(nil)
	s.Set("IMAGE_STORE_TYPE", "fs")
	s.Set("IMAGE_STORE_PATH", "/var/app/images")
	s.Set("OTHER_KEY", "x")

	got := s.Namespace("IMAGE_STORE_")

	assert.Equal(t, map[string]any{"type": "fs", "path": "/var/app/images"}, got)
}

// TestNamespace_CollisionLastInsertedWins verifies that keys collapsing onto
// the same lowercased name resolve to the one inserted last.
func TestNamespace_CollisionLastInsertedWins(t *testing.T) {
	s := New(nil)
	s.Set("APP_Name", "first")
	s.Set("APP_NAME", "second")

	assert.Equal(t, map[string]any{"name": "second"}, s.Namespace("APP_"))
}

func TestNamespace_ResultIsIndependent(t *testing.T) {
	s := New(map[string]any{"APP_A": 1})

	got := s.Namespace("APP_")
	got["a"] = 2
	s.Set("APP_B", 3)

	assert.Equal(t, map[string]any{"a": 2}, got)
	assert.Equal(t, 1, s.All()["APP_A"])
}

func TestNamespace_NilOptionIgnored(t *testing.T) {
	s := New(map[string]any{"APP_NAME": "svc"})

	got := s.Namespace("APP_", nil, KeepCase())

	assert.Equal(t, map[string]any{"NAME": "svc"}, got)
}
