package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/coder/quartz"

	"github.com/lox/handeval/internal/batch"
)

// BatchCmd evaluates every hand in a file
type BatchCmd struct {
	File    string `arg:"" optional:"" default:"-" help:"File with one hand per line ('-' for stdin)"`
	Workers int    `short:"w" help:"Concurrent workers (overrides config)"`
}

func (c *BatchCmd) Run(globals *Globals) error {
	env, err := globals.setup(os.Stdout, os.Stderr)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(env.logger)
	defer cancel()

	in := io.Reader(os.Stdin)
	if c.File != "-" {
		f, err := os.Open(filepath.Clean(c.File))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return c.run(ctx, env, in)
}

func (c *BatchCmd) run(ctx context.Context, env *environment, in io.Reader) error {
	hands, err := batch.ReadHands(in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}

	workers := env.cfg.Batch.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	env.logger.Debug("Starting batch", "hands", len(hands), "workers", workers)

	runner := batch.NewRunner(env.logger, quartz.NewReal(), workers)
	rep, err := runner.Run(ctx, hands)
	if err != nil {
		return err
	}

	return env.printer.Batch(rep)
}
