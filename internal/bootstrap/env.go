// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates opts from environment variables using the caarlos0/env
// library. Fields are mapped via their `env` tags.
//
// Returns a wrapped error if env.Parse fails (e.g. CONFIG_TRUSTED is not a
// valid bool).
func parseEnv(opts *Options) error {
	err := env.Parse(opts)
	if err != nil {
		return fmt.Errorf("error getting env options: %w", err)
	}

	return nil
}
