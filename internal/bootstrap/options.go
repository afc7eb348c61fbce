// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

// Options are the command-line level settings that decide which
// configuration file is loaded and how logging is set up. After the file is
// loaded, explicitly given options are written over it under the keys named
// by their json tags.
//
// Struct tags:
//   - env  — environment variable name (caarlos0/env).
//   - json — configuration key the option is stored under.
type Options struct {
	// LogFile is the path log output is appended to; empty means stdout.
	// Env: LOG_FILE
	LogFile string `env:"LOG_FILE" json:"log_file"`

	// LogLevel is one of debug, info, warning, error or critical.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// ConfigFile is the configuration file to load. Its extension selects
	// the loader.
	// Env: CONFIG_FILE
	ConfigFile string `env:"CONFIG_FILE" json:"config_file"`

	// Trusted allows .js configuration files to be executed.
	// Env: CONFIG_TRUSTED
	Trusted bool `env:"CONFIG_TRUSTED" json:"-"`
}

// Defaults returned when neither the environment nor the flags say otherwise.
const (
	DefaultLogLevel   = "info"
	DefaultConfigFile = "config.json"
)

// SettingsEnvVar optionally names a second configuration file loaded on top
// of ConfigFile.
const SettingsEnvVar = "APP_SETTINGS"

func defaultOptions() *Options {
	return &Options{
		LogLevel:   DefaultLogLevel,
		ConfigFile: DefaultConfigFile,
	}
}

// overrides returns the options that were set explicitly, keyed by their
// configuration key.
func (o *Options) overrides() map[string]any {
	out := make(map[string]any, 3)
	if o.LogFile != "" {
		out["log_file"] = o.LogFile
	}
	if o.LogLevel != "" {
		out["log_level"] = o.LogLevel
	}
	if o.ConfigFile != "" {
		out["config_file"] = o.ConfigFile
	}
	return out
}
