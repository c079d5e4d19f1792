package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/handeval/internal/config"
	"github.com/lox/handeval/internal/report"
)

// Globals are flags shared by every command. Set flags override the
// config file.
type Globals struct {
	Config  string `help:"Path to HCL config file" default:"handeval.hcl" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	JSON    bool   `help:"Write JSON instead of a table"`
	NoColor bool   `name:"no-color" help:"Disable styled output"`
}

// environment is what a command needs to run
type environment struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *report.Printer
}

func (g *Globals) setup(stdout, stderr io.Writer) (*environment, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	if g.Debug {
		cfg.Logging.Level = "debug"
	}
	if g.JSON {
		cfg.Output.Format = config.FormatJSON
	}
	if g.NoColor {
		color := false
		cfg.Output.Color = &color
	}

	logger, err := newLogger(stderr, cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded configuration", "file", g.Config, "format", cfg.Output.Format, "workers", cfg.Batch.Workers)

	return &environment{
		cfg:     cfg,
		logger:  logger,
		printer: report.NewPrinter(stdout, cfg.Output.Format, cfg.ColorEnabled()),
	}, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "handeval",
		ReportTimestamp: lvl == log.DebugLevel,
	}), nil
}

// signalContext returns a context cancelled on interrupt signals
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Warn("Received signal, stopping", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
