// Package report renders evaluations as styled text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/handeval/internal/batch"
	"github.com/lox/handeval/internal/config"
	"github.com/lox/handeval/internal/deck"
	"github.com/lox/handeval/internal/evaluator"
)

type styles struct {
	header   lipgloss.Style
	hand     lipgloss.Style
	category lipgloss.Style
	value    lipgloss.Style
	errorMsg lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		value:    r.NewStyle().Foreground(lipgloss.Color("10")),
		errorMsg: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Printer writes evaluations in the configured format
type Printer struct {
	w      io.Writer
	format string
	styles styles
}

// NewPrinter creates a printer for format (config.FormatText or
// config.FormatJSON). With color off all styling is dropped.
func NewPrinter(w io.Writer, format string, color bool) *Printer {
	renderer := lipgloss.NewRenderer(w)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:      w,
		format: format,
		styles: newStyles(renderer),
	}
}

// Evaluations prints one line per evaluated hand
func (p *Printer) Evaluations(evals []evaluator.Evaluation) error {
	if p.format == config.FormatJSON {
		out := make([]evaluationJSON, len(evals))
		for i, eval := range evals {
			out[i] = toEvaluationJSON(eval)
		}
		return p.writeJSON(out)
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		p.styles.header.Render("hand"),
		p.styles.header.Render("category"),
		p.styles.header.Render("values"),
		p.styles.header.Render("high"))

	for _, eval := range evals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.styles.hand.Render(deck.FormatCards(eval.Cards)),
			p.styles.category.Render(eval.Category.String()),
			p.styles.value.Render(formatValues(eval.Values)),
			eval.HighCard.Code())
	}
	return w.Flush()
}

// Batch prints the category distribution of a batch run
func (p *Printer) Batch(report *batch.Report) error {
	if p.format == config.FormatJSON {
		return p.writeJSON(toBatchJSON(report))
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		p.styles.header.Render("category"),
		p.styles.header.Render("count"),
		p.styles.header.Render("share"))

	valid := report.Valid()
	for i := len(evaluator.Categories) - 1; i >= 0; i-- {
		category := evaluator.Categories[i]
		count := report.Counts[category]
		if count == 0 {
			continue
		}
		share := float64(count) / float64(valid) * 100
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			p.styles.category.Render(category.String()),
			count,
			p.styles.value.Render(fmt.Sprintf("%.1f%%", share)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, res := range report.Results {
		if res.Err == nil {
			continue
		}
		fmt.Fprintf(p.w, "%s\n", p.styles.errorMsg.Render(
			fmt.Sprintf("hand %d [%s]: %v", res.Index+1, deck.FormatCards(res.Cards), res.Err)))
	}

	fmt.Fprintf(p.w, "\n%d hands (%d invalid) in %v\n",
		len(report.Results), report.Invalid, report.Elapsed.Truncate(time.Millisecond))
	return nil
}

func (p *Printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type evaluationJSON struct {
	Cards    []string           `json:"cards"`
	Category evaluator.Category `json:"category"`
	Values   []int              `json:"values"`
	HighCard string             `json:"high_card"`
}

type resultJSON struct {
	Index    int                 `json:"index"`
	Cards    []string            `json:"cards"`
	Category *evaluator.Category `json:"category,omitempty"`
	Values   []int               `json:"values,omitempty"`
	HighCard string              `json:"high_card,omitempty"`
	Error    string              `json:"error,omitempty"`
}

type batchJSON struct {
	Hands     int            `json:"hands"`
	Invalid   int            `json:"invalid"`
	ElapsedMS int64          `json:"elapsed_ms"`
	Counts    map[string]int `json:"counts"`
	Results   []resultJSON   `json:"results"`
}

func toEvaluationJSON(eval evaluator.Evaluation) evaluationJSON {
	return evaluationJSON{
		Cards:    cardCodes(eval.Cards),
		Category: eval.Category,
		Values:   eval.Values,
		HighCard: eval.HighCard.Code(),
	}
}

func toBatchJSON(report *batch.Report) batchJSON {
	out := batchJSON{
		Hands:     len(report.Results),
		Invalid:   report.Invalid,
		ElapsedMS: report.Elapsed.Milliseconds(),
		Counts:    make(map[string]int, len(report.Counts)),
		Results:   make([]resultJSON, len(report.Results)),
	}
	for category, count := range report.Counts {
		out.Counts[category.String()] = count
	}
	for i, res := range report.Results {
		out.Results[i] = resultJSON{Index: res.Index, Cards: cardCodes(res.Cards)}
		if res.Err != nil {
			out.Results[i].Error = res.Err.Error()
			continue
		}
		category := res.Evaluation.Category
		out.Results[i].Category = &category
		out.Results[i].Values = res.Evaluation.Values
		out.Results[i].HighCard = res.Evaluation.HighCard.Code()
	}
	return out
}

func cardCodes(cards []deck.Card) []string {
	codes := make([]string, len(cards))
	for i, card := range cards {
		codes[i] = card.Code()
	}
	return codes
}

func formatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
