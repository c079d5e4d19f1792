// Package batch evaluates many hands concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handeval/internal/deck"
	"github.com/lox/handeval/internal/evaluator"
)

// ReadHands reads one hand per line. Blank lines and lines starting with
// '#' are skipped. Hand size is not checked here; Run reports it per hand.
func ReadHands(r io.Reader) ([][]deck.Card, error) {
	var hands [][]deck.Card

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		hand, err := deck.ParseCards(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		hands = append(hands, hand)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hands: %w", err)
	}

	return hands, nil
}

// Result is the outcome for one input hand
type Result struct {
	Index      int
	Cards      []deck.Card
	Evaluation evaluator.Evaluation
	Err        error // set when the hand failed validation
}

// Report summarises a batch run
type Report struct {
	Results []Result // in input order
	Counts  map[evaluator.Category]int
	Invalid int
	Elapsed time.Duration
}

// Valid returns the number of hands that were classified
func (r *Report) Valid() int {
	return len(r.Results) - r.Invalid
}

// Runner evaluates hands on a bounded pool of workers
type Runner struct {
	logger  *log.Logger
	clock   quartz.Clock
	workers int
}

// NewRunner creates a runner. workers below one means a single worker.
func NewRunner(logger *log.Logger, clock quartz.Clock, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		logger:  logger,
		clock:   clock,
		workers: workers,
	}
}

// Run evaluates every hand. Invalid hands are recorded in their Result
// and do not stop the run; cancelling ctx does, returning ctx.Err().
func (r *Runner) Run(ctx context.Context, hands [][]deck.Card) (*Report, error) {
	start := r.clock.Now()
	results := make([]Result, len(hands))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, hand := range hands {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			eval, err := evaluator.Evaluate(hand)
			if err != nil {
				r.logger.Debug("Skipping invalid hand", "index", i, "cards", deck.FormatCards(hand), "err", err)
			}
			results[i] = Result{Index: i, Cards: hand, Evaluation: eval, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		Results: results,
		Counts:  make(map[evaluator.Category]int),
	}
	for _, res := range results {
		if res.Err != nil {
			report.Invalid++
			continue
		}
		report.Counts[res.Evaluation.Category]++
	}
	report.Elapsed = r.clock.Now().Sub(start)

	r.logger.Info("Batch complete",
		"hands", len(hands),
		"invalid", report.Invalid,
		"workers", r.workers,
		"elapsed", report.Elapsed)

	return report, nil
}
