// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

package config

import (
	"time"
)

// DefaultBaseURL is the fixed versioned base path of the fraenk REST API.
// Overridable via flag or environment for tests.
const DefaultBaseURL = "https://app.fraenk.de/fraenk-rest-service/app/v13"

// defaultRequestTimeout bounds each of the four network calls; the carrier
// has no documented SLA, so this is a safety net over the transport default.
const defaultRequestTimeout = 15 * time.Second

// defaultFixturesDir is where dry-run mode looks for the two fixture files.
const defaultFixturesDir = "fixtures"

// StructuredConfig is the top-level configuration container for fraenkctl.
// It is populated by merging values from environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the carrier endpoint settings.
	API API `envPrefix:"FRAENK_"`

	// Output controls how the consumption report is rendered.
	Output Output `envPrefix:"FRAENK_"`

	// DryRun controls the fixture-backed offline mode.
	DryRun DryRun `envPrefix:"FRAENK_"`

	// LogLevel is the zerolog level name for the diagnostic log file
	// (e.g. "debug", "info", "warn").
	// Env: FRAENK_LOG_LEVEL
	LogLevel string `env:"FRAENK_LOG_LEVEL"`
}

// API holds the carrier endpoint settings.
type API struct {
	// BaseURL is the versioned base path all four operations are issued
	// against.
	// Env: FRAENK_API_URL
	BaseURL string `env:"API_URL"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: FRAENK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Output controls rendering of the consumption report.
type Output struct {
	// JSON switches stdout to the raw, indented server payload (pipeable).
	// Env: FRAENK_JSON
	JSON bool `env:"JSON"`

	// Quiet suppresses progress messages in pretty mode.
	// Env: FRAENK_QUIET
	Quiet bool `env:"QUIET"`
}

// DryRun controls the fixture-backed offline mode, which substitutes two
// static files for the contract and consumption reads and skips
// authentication entirely.
type DryRun struct {
	// Enabled turns dry-run mode on.
	// Env: FRAENK_DRY_RUN
	Enabled bool `env:"DRY_RUN"`

	// FixturesDir is the directory holding contracts.json and
	// data_consumption.json.
	// Env: FRAENK_FIXTURES_DIR
	FixturesDir string `env:"FIXTURES_DIR"`
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (first source wins per
// field):
//  1. Environment variables
//  2. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		build()
}
