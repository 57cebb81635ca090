package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fraenktools/fraenkctl/internal/adapter"
	"github.com/fraenktools/fraenkctl/internal/client"
	"github.com/fraenktools/fraenkctl/internal/config"
	"github.com/fraenktools/fraenkctl/internal/logger"
	"github.com/fraenktools/fraenkctl/internal/service"
	"github.com/fraenktools/fraenkctl/internal/tui"
	"github.com/fraenktools/fraenkctl/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("fraenkctl", cfg.LogLevel)
	logBuildInfo(log)

	svc, creds, err := buildService(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := client.NewApp(svc, creds, cfg, os.Stdout, log)
	if err := app.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("run failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildService assembles either the fixture-backed service (dry-run) or the
// live carrier service. Credentials are only resolved on the live path, so a
// dry run needs no configuration at all.
func buildService(cfg *config.ClientConfig, log *logger.Logger) (service.UsageService, models.Credentials, error) {
	if cfg.DryRun.Enabled {
		return service.NewFixtureService(cfg.DryRun.FixturesDir, log), models.Credentials{}, nil
	}

	creds, err := config.ResolveCredentials()
	if err != nil {
		return nil, models.Credentials{}, err
	}

	carrier, err := adapter.NewCarrierAdapter(cfg.API, log)
	if err != nil {
		return nil, models.Credentials{}, err
	}

	var prompter service.CodePrompter = tui.SMSPrompter{}
	if cfg.Output.JSON {
		// Keep stdout pipeable: read the code silently from stdin.
		prompter = tui.StdinPrompter{Reader: os.Stdin}
	}

	progress := client.NewProgressFunc(cfg, os.Stdout)
	return service.NewUsageService(carrier, prompter, progress, log), creds, nil
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Info().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("build info")
}
