package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/handeval/internal/deck"
	"github.com/lox/handeval/internal/evaluator"
)

// ClassifyCmd evaluates hands passed as arguments
type ClassifyCmd struct {
	Hands []string `arg:"" help:"Hands in card notation, e.g. 'AsKsQsJsTs' or 'As Ks Qs Js Ts'"`
}

func (c *ClassifyCmd) Run(globals *Globals) error {
	return c.run(globals, os.Stdout, os.Stderr)
}

func (c *ClassifyCmd) run(globals *Globals, stdout, stderr io.Writer) error {
	env, err := globals.setup(stdout, stderr)
	if err != nil {
		return err
	}

	evals := make([]evaluator.Evaluation, 0, len(c.Hands))
	for i, text := range c.Hands {
		hand, err := deck.ParseCards(text)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		eval, err := evaluator.Evaluate(hand)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		env.logger.Debug("Classified hand", "cards", deck.FormatCards(hand), "category", eval.Category)
		evals = append(evals, eval)
	}

	return env.printer.Evaluations(evals)
}
