// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses args (without the program name).
//
// Flags (each also accepted with a leading double dash):
//
//	-f / -log_file     log file
//	-l / -log_level    log level
//	-c / -config_file  configuration file
//	-trusted           allow .js configuration files
//
// Unset flags are left empty so they do not override lower layers.
func ParseFlags(args []string, output io.Writer) (*Options, error) {
	opts := &Options{}

	fs := flag.NewFlagSet("layered-config", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&opts.LogFile, "f", "", "log file")
	fs.StringVar(&opts.LogFile, "log_file", "", "log file (alias)")
	fs.StringVar(&opts.LogLevel, "l", "", "log level (default \""+DefaultLogLevel+"\")")
	fs.StringVar(&opts.LogLevel, "log_level", "", "log level (alias)")
	fs.StringVar(&opts.ConfigFile, "c", "", "config file (default \""+DefaultConfigFile+"\")")
	fs.StringVar(&opts.ConfigFile, "config_file", "", "config file (alias)")
	fs.BoolVar(&opts.Trusted, "trusted", false, "allow executing .js config files")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected arguments %v", fs.Args())
	}

	return opts, nil
}
