// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The fraenkctl Authors

// Package config loads the fraenkctl runtime configuration and resolves the
// carrier credentials.
//
// Runtime settings (endpoint, output mode, dry-run, log level) are merged
// from environment variables and command-line flags; environment wins per
// field. Credentials are resolved separately via [ResolveCredentials] from
// the environment, the user-level credentials file, or a project-local .env
// file, first complete match wins. Credential files are read-only; this
// program never writes them.
package config
