// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-layered-config/config"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var optionEnvVars = []string{"LOG_FILE", "LOG_LEVEL", "CONFIG_FILE", "CONFIG_TRUSTED", SettingsEnvVar}

// clearEnvVars unsets every variable the options read and restores them when
// the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range optionEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── ParseFlags ────────────────────────────────────────────────────────────────

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "short flags",
			args: []string{"-f", "app.log", "-l", "debug", "-c", "settings.yaml"},
			want: Options{LogFile: "app.log", LogLevel: "debug", ConfigFile: "settings.yaml"},
		},
		{
			name: "long flags with double dash",
			args: []string{"--log_file", "app.log", "--log_level=error", "--config_file", "s.conf", "--trusted"},
			want: Options{LogFile: "app.log", LogLevel: "error", ConfigFile: "s.conf", Trusted: true},
		},
		{
			name: "no flags leaves everything empty",
			args: []string{},
			want: Options{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseFlags(tt.args, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *opts)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown flag":   {"-x"},
		"missing value":  {"-l"},
		"positional arg": {"-l", "debug", "extra"},
	} {
		t.Run(name, func(t *testing.T) {
			opts, err := ParseFlags(args, io.Discard)
			assert.Nil(t, opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}

// ── GetOptions ────────────────────────────────────────────────────────────────

func TestGetOptions_FlagsOverrideEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("LOG_LEVEL", "warning")
	t.Setenv("LOG_FILE", "env.log")
	t.Setenv("CONFIG_TRUSTED", "true")

	opts, err := GetOptions([]string{"-l", "debug"}, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, "env.log", opts.LogFile)
	assert.Empty(t, opts.ConfigFile)
	assert.True(t, opts.Trusted)
}

func TestGetOptions_JoinsErrors(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("CONFIG_TRUSTED", "not-a-bool")

	opts, err := GetOptions([]string{"-unknown"}, io.Discard)

	assert.Nil(t, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env options")
	assert.Contains(t, err.Error(), "error parsing flags")
}

// ── LoadConfig ────────────────────────────────────────────────────────────────

func TestLoadConfig_JSONThenOptions(t *testing.T) {
	clearEnvVars(t)
	p := writeConfig(t, "config.json", `{"log_level": "warning", "log_file": "file.log", "IMAGE_STORE_TYPE": "fs"}`)

	cfg, err := LoadConfig(&Options{ConfigFile: p, LogFile: "flag.log"})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"log_level":        "warning",
		"log_file":         "flag.log",
		"config_file":      p,
		"IMAGE_STORE_TYPE": "fs",
	}, cfg.All())
	assert.Equal(t, map[string]any{"type": "fs"}, cfg.Namespace("IMAGE_STORE_"))
}

func TestLoadConfig_FormatsByExtension(t *testing.T) {
	clearEnvVars(t)

	tests := []struct {
		name string
		file string
		body string
		opts Options
	}{
		{name: "yaml", file: "c.yaml", body: "log_level: debug\n"},
		{name: "yml", file: "c.yml", body: "log_level: debug\n"},
		{name: "expr", file: "c.conf", body: "log_level = \"de\" + \"bug\"\n"},
		{name: "trusted js", file: "c.js", body: "var log_level = 'debug';", opts: Options{Trusted: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.ConfigFile = writeConfig(t, tt.file, tt.body)

			cfg, err := LoadConfig(&opts)

			require.NoError(t, err)
			level, err := cfg.GetString("log_level")
			require.NoError(t, err)
			assert.Equal(t, "debug", level)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	clearEnvVars(t)

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadConfig(&Options{ConfigFile: writeConfig(t, "c.ini", "a=1")})
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("untrusted js", func(t *testing.T) {
		_, err := LoadConfig(&Options{ConfigFile: writeConfig(t, "c.js", "var a = 1;")})
		assert.ErrorIs(t, err, config.ErrUntrustedScript)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(&Options{ConfigFile: filepath.Join(t.TempDir(), "absent.json")})
		assert.ErrorIs(t, err, config.ErrFileNotFound)
	})
}

func TestLoadConfig_SettingsEnvVarOverridesFile(t *testing.T) {
	clearEnvVars(t)
	p := writeConfig(t, "config.json", `{"log_level": "warning", "PORT": 80}`)
	t.Setenv(SettingsEnvVar, writeConfig(t, "local.conf", "PORT = 8080\n"))

	cfg, err := LoadConfig(&Options{ConfigFile: p})

	require.NoError(t, err)
	port, err := cfg.GetInt("PORT")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
	assert.Equal(t, "warning", cfg.All()["log_level"])
}

func TestLoggerOptions(t *testing.T) {
	cfg := config.New(map[string]any{"log_level": "debug", "log_file": "app.log"})

	opts := LoggerOptions(cfg)

	assert.Equal(t, "debug", opts.Level)
	assert.Equal(t, "app.log", opts.File)
	assert.Empty(t, LoggerOptions(config.New(map[string]any{"log_level": 3})).Level)
}
