package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid carrier endpoint settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidDryRunConfigs indicates invalid fixture-mode settings
	// (for example, an empty fixtures directory).
	ErrInvalidDryRunConfigs = errors.New("invalid dry-run configuration")
	// ErrInvalidLogConfigs indicates an unknown log level name.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")

	// ErrCredentialsNotFound indicates that no credential source yielded
	// both a username and a password.
	ErrCredentialsNotFound = errors.New("credentials not found")
)
