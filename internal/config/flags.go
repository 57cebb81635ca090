package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-j/-json raw JSON output to stdout (pipeable)
//	-q/-quiet suppress progress messages (pretty output only)
//	-d/-dry-run use fixture files instead of API calls (no SMS required)
//	-a carrier API base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-fixtures fixtures directory for dry-run mode
//	-log-level diagnostic log level (e.g., "debug", "info")
func ParseFlags() *StructuredConfig {
	var jsonOutput bool
	var quiet bool
	var dryRun bool
	var baseURL string
	var requestTimeout time.Duration
	var fixturesDir string
	var logLevel string

	flag.BoolVar(&jsonOutput, "j", false, "Output raw JSON to stdout (pipeable)")
	flag.BoolVar(&jsonOutput, "json", false, "Output raw JSON to stdout (alias)")
	flag.BoolVar(&quiet, "q", false, "Suppress progress messages (only applies to pretty output)")
	flag.BoolVar(&quiet, "quiet", false, "Suppress progress messages (alias)")
	flag.BoolVar(&dryRun, "d", false, "Use mock data from fixtures (no API calls, no SMS required)")
	flag.BoolVar(&dryRun, "dry-run", false, "Use mock data from fixtures (alias)")
	flag.StringVar(&baseURL, "a", "", "Carrier API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&fixturesDir, "fixtures", "", "Fixtures directory for dry-run mode")
	flag.StringVar(&logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Output: Output{
			JSON:  jsonOutput,
			Quiet: quiet,
		},
		DryRun: DryRun{
			Enabled:     dryRun,
			FixturesDir: fixturesDir,
		},
		LogLevel: logLevel,
	}
}
