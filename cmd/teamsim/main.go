package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/teamsim/internal/cli"
	"github.com/alexanderramin/teamsim/internal/config"
	"github.com/alexanderramin/teamsim/internal/logging"
	"github.com/alexanderramin/teamsim/internal/projection"
	"github.com/alexanderramin/teamsim/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	observer := service.NewLogUseCaseObserver(logger)
	params := projection.DefaultParams()

	app := &cli.App{
		Simulation: service.NewSimulationService(params, observer),
		Projection: service.NewProjectionService(params, observer),
		Config:     cfg,
	}

	// Animate progress only when stderr is a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
