// Package output renders a pricing board for non-interactive use.
package output

import (
	"fmt"
	"time"

	"github.com/julianshen/pricemap/internal/board"
	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/diagram"
)

// Report is the serializable view of one board.
type Report struct {
	Provider     string         `json:"provider"`
	Class        string         `json:"class"`
	InputTokens  int            `json:"input_tokens"`
	OutputTokens int            `json:"output_tokens"`
	LastUpdated  time.Time      `json:"last_updated"`
	Models       []ModelLine    `json:"models"`
	Cheapest     string         `json:"cheapest,omitempty"`
	Links        []diagram.Link `json:"links,omitempty"`
}

// ModelLine is one row of the report.
type ModelLine struct {
	Name          string  `json:"name"`
	Provider      string  `json:"provider"`
	ProviderGroup string  `json:"provider_group"`
	Class         string  `json:"class"`
	ContextLength string  `json:"context_length"`
	InputPrice    float64 `json:"input_price"`
	OutputPrice   float64 `json:"output_price"`
	Currency      string  `json:"currency"`
	PricingUnit   string  `json:"pricing_unit"`
	Cost          float64 `json:"estimated_cost"`
	LowestInput   bool    `json:"lowest_input,omitempty"`
	HighestInput  bool    `json:"highest_input,omitempty"`
	LowestOutput  bool    `json:"lowest_output,omitempty"`
	HighestOutput bool    `json:"highest_output,omitempty"`
	Documentation string  `json:"documentation_url,omitempty"`
}

// NewReport flattens b into a Report stamped with lastUpdated.
func NewReport(b board.Board, lastUpdated time.Time) *Report {
	r := &Report{
		Provider:     string(b.Selection.Provider),
		Class:        string(b.Selection.Class),
		InputTokens:  b.Tokens.Input,
		OutputTokens: b.Tokens.Output,
		LastUpdated:  lastUpdated,
		Models:       make([]ModelLine, 0, len(b.Rows)),
	}
	if r.Provider == "" {
		r.Provider = string(catalog.GroupAll)
	}
	if r.Class == "" {
		r.Class = string(catalog.ClassAll)
	}
	for _, row := range b.Rows {
		rec := row.Record
		r.Models = append(r.Models, ModelLine{
			Name:          rec.DisplayName(),
			Provider:      rec.DisplayProvider(),
			ProviderGroup: string(rec.ProviderGroup),
			Class:         string(row.Class),
			ContextLength: rec.DisplayContext(),
			InputPrice:    rec.InputPrice,
			OutputPrice:   rec.OutputPrice,
			Currency:      rec.DisplayCurrency(),
			PricingUnit:   rec.DisplayUnit(),
			Cost:          row.Cost,
			LowestInput:   row.InputHighlight.Lowest(),
			HighestInput:  row.InputHighlight.Highest(),
			LowestOutput:  row.OutputHighlight.Lowest(),
			HighestOutput: row.OutputHighlight.Highest(),
			Documentation: rec.DocumentationURL,
		})
	}
	if best, ok := b.Cheapest(); ok {
		r.Cheapest = best.Record.DisplayName()
	}
	return r
}

// Formatter formats a Report into output bytes.
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "json":
		return NewJSONFormatter(), nil
	case "markdown", "md", "":
		return NewMarkdownFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
}
