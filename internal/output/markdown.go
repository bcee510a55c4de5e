package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/pricing"
)

// MarkdownFormatter outputs a Report as a Markdown table.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the Report as Markdown. Lowest prices are bold, highest
// prices italic.
func (f *MarkdownFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("## AI Model Pricing\n\n")
	b.WriteString(fmt.Sprintf("Provider: **%s** · Class: **%s** · Tokens: %d in / %d out\n\n",
		report.Provider, report.Class, report.InputTokens, report.OutputTokens))

	if len(report.Models) == 0 {
		b.WriteString("_No models match the current filters._\n")
	} else {
		b.WriteString("| Model | Provider | Context | Input | Output | Estimated cost |\n")
		b.WriteString("|---|---|---|---|---|---|\n")
		for _, m := range report.Models {
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
				escapeCell(m.Name),
				escapeCell(m.Provider),
				escapeCell(m.ContextLength),
				priceCell(m.InputPrice, m.PricingUnit, m.LowestInput, m.HighestInput),
				priceCell(m.OutputPrice, m.PricingUnit, m.LowestOutput, m.HighestOutput),
				pricing.FormatCost(m.Cost)))
		}
	}

	if report.Cheapest != "" {
		b.WriteString(fmt.Sprintf("\nCheapest for this input: **%s**\n", report.Cheapest))
	}

	if len(report.Links) > 0 {
		b.WriteString("\n### Official sources\n\n")
		for _, l := range report.Links {
			b.WriteString(fmt.Sprintf("- [%s](%s)\n", l.Name, l.URL))
		}
	}

	b.WriteString(fmt.Sprintf("\n---\n*Last updated %s*\n", report.LastUpdated.Format(time.DateTime)))

	return []byte(b.String()), nil
}

func priceCell(price float64, unit string, lowest, highest bool) string {
	s := "$" + catalog.FormatPrice(price) + "/" + escapeCell(unit)
	switch {
	case lowest && highest:
		return "***" + s + "***"
	case lowest:
		return "**" + s + "**"
	case highest:
		return "_" + s + "_"
	}
	return s
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
