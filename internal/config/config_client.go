package config

import (
	"fmt"
	"time"
)

// ClientAPI holds the carrier endpoint settings used by the transport layer.
type ClientAPI struct {
	// BaseURL is the carrier API base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientOutput holds the rendering switches.
type ClientOutput struct {
	// JSON selects raw, indented payload output.
	JSON bool
	// Quiet suppresses progress messages in pretty mode.
	Quiet bool
}

// ClientDryRun holds the fixture-mode settings.
type ClientDryRun struct {
	// Enabled turns fixture mode on.
	Enabled bool
	// FixturesDir is the directory holding the two fixture files.
	FixturesDir string
}

// ClientConfig is the top-level runtime configuration assembled from
// [StructuredConfig], with defaults applied.
type ClientConfig struct {
	// API contains carrier endpoint settings.
	API ClientAPI
	// Output contains rendering switches.
	Output ClientOutput
	// DryRun contains fixture-mode settings.
	DryRun ClientDryRun
	// LogLevel is the zerolog level name for the diagnostic log file.
	LogLevel string
}

// GetClientConfig builds and validates the runtime config from the merged
// structured configuration, filling unset fields with defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Output: ClientOutput{
			JSON:  cfg.Output.JSON,
			Quiet: cfg.Output.Quiet,
		},
		DryRun: ClientDryRun{
			Enabled:     cfg.DryRun.Enabled,
			FixturesDir: cfg.DryRun.FixturesDir,
		},
		LogLevel: cfg.LogLevel,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.RequestTimeout <= 0 {
		cfg.API.RequestTimeout = defaultRequestTimeout
	}
	if cfg.DryRun.FixturesDir == "" {
		cfg.DryRun.FixturesDir = defaultFixturesDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
