// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-layered-config/config"
	"github.com/MKhiriev/go-layered-config/internal/logger"
)

// LoadConfig builds the application store from explicit options. Sources are
// applied in this order, later ones winning:
//  1. built-in defaults for log_level, log_file and config_file;
//  2. the configuration file, loader chosen by extension;
//  3. the file named by $APP_SETTINGS, when set;
//  4. the explicit options.
func LoadConfig(explicit *Options) (*config.Store, error) {
	if explicit == nil {
		explicit = &Options{}
	}
	effective := defaultOptions()
	if err := mergo.Merge(effective, explicit, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging options: %w", err)
	}

	cfg := config.New(map[string]any{
		"log_level":   DefaultLogLevel,
		"log_file":    "",
		"config_file": effective.ConfigFile,
	})

	var loadOpts []config.LoadOption
	if effective.Trusted {
		loadOpts = append(loadOpts, config.Trusted())
	}

	if err := loadFile(cfg, effective.ConfigFile, loadOpts); err != nil {
		return nil, err
	}
	if _, err := cfg.FromEnv(SettingsEnvVar, true, loadOpts...); err != nil {
		return nil, fmt.Errorf("error loading $%s: %w", SettingsEnvVar, err)
	}

	overrides := explicit.overrides()
	if _, err := cfg.FromMapping([]map[string]any{overrides}); err != nil {
		return nil, fmt.Errorf("error applying options: %w", err)
	}

	return cfg, nil
}

func loadFile(cfg *config.Store, path string, opts []config.LoadOption) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		_, err = cfg.FromStructuredFile(path, false)
	case ".conf", ".cfg", ".expr", ".js":
		_, err = cfg.FromSourceFile(path, false, opts...)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("error loading config file: %w", err)
	}
	return nil
}

// LoggerOptions reads the logging keys from a loaded store. Keys holding
// something other than a string are ignored.
func LoggerOptions(cfg *config.Store) logger.Options {
	level, _ := cfg.GetString("log_level")
	file, _ := cfg.GetString("log_file")
	return logger.Options{Level: level, File: file}
}
