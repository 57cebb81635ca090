// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

package config

import (
	"github.com/rs/zerolog"
)

// validate checks that the final [ClientConfig] satisfies all runtime
// invariants after defaults have been applied.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.DryRun.FixturesDir == "" {
		return ErrInvalidDryRunConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
