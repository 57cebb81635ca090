package client

import (
	"context"
	"fmt"
	"io"

	"github.com/fraenktools/fraenkctl/internal/config"
	"github.com/fraenktools/fraenkctl/internal/logger"
	"github.com/fraenktools/fraenkctl/internal/render"
	"github.com/fraenktools/fraenkctl/internal/service"
	"github.com/fraenktools/fraenkctl/models"
)

// App runs the fraenkctl pipeline and renders its result.
type App struct {
	service service.UsageService
	creds   models.Credentials
	cfg     *config.ClientConfig
	out     io.Writer
	logger  *logger.Logger
}

// NewApp wires the usage service and output settings into a runnable App.
// out receives both progress messages and the rendered report; in JSON mode
// only the report is written so the output stays pipeable.
func NewApp(svc service.UsageService, creds models.Credentials, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) *App {
	return &App{service: svc, creds: creds, cfg: cfg, out: out, logger: log}
}

// Run executes the pipeline: authenticate (skipped in dry-run), list
// contracts, fetch consumption, render. The first failing step aborts the
// run with a contextual error; nothing is retried.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.DryRun.Enabled {
		a.info("Running in DRY-RUN mode (using fixtures)")
	} else {
		if err := a.service.Login(ctx, a.creds); err != nil {
			return err
		}
	}

	if a.cfg.DryRun.Enabled {
		a.info("Loading mock contracts...")
	} else {
		a.info("\nFetching contracts...")
	}
	contracts, err := a.service.FetchContracts(ctx)
	if err != nil {
		return err
	}
	a.info(fmt.Sprintf("Found %d contract(s)", len(contracts)))

	if a.cfg.DryRun.Enabled {
		a.info("Loading mock data consumption...")
	} else {
		a.info("Fetching data consumption...")
	}
	report, err := a.service.FetchConsumption(ctx)
	if err != nil {
		return err
	}

	if a.cfg.Output.JSON {
		return render.JSON(a.out, report)
	}
	return render.Report(a.out, report)
}

// NewProgressFunc returns a [service.ProgressFunc] that prints login
// progress messages to out unless JSON output or quiet mode is selected.
func NewProgressFunc(cfg *config.ClientConfig, out io.Writer) service.ProgressFunc {
	return func(msg string) {
		if cfg.Output.JSON || cfg.Output.Quiet {
			return
		}
		fmt.Fprintln(out, msg)
	}
}

// info prints an informational message unless JSON output or quiet mode is
// selected.
func (a *App) info(msg string) {
	if a.cfg.Output.JSON || a.cfg.Output.Quiet {
		return
	}
	fmt.Fprintln(a.out, msg)
}
