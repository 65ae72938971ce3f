// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates settings from environment variables using the
// caarlos0/env library, mapped via the `env` tags on [Settings].
func parseEnv(settings any) error {
	err := env.Parse(settings)
	if err != nil {
		return fmt.Errorf("error getting env settings: %w", err)
	}

	return nil
}
