package pricing

import (
	"fmt"
	"unicode/utf8"

	"github.com/julianshen/pricemap/internal/catalog"
)

// charsPerToken is the crude length-to-token ratio. It is a stand-in for a
// tokenizer, not an approximation of any specific one.
const charsPerToken = 4

// CostDecimals is the number of fraction digits shown for an estimated cost.
const CostDecimals = 6

// TokenEstimate is the pair of approximate token counts for the two text
// fields.
type TokenEstimate struct {
	Input  int `json:"input_tokens"`
	Output int `json:"output_tokens"`
}

// EstimateTokens approximates the token count of text as
// ceil(characters/4), counting Unicode code points.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	return (n + charsPerToken - 1) / charsPerToken
}

// EstimateTexts estimates both fields from scratch.
func EstimateTexts(input, output string) TokenEstimate {
	return TokenEstimate{Input: EstimateTokens(input), Output: EstimateTokens(output)}
}

// EstimateCost prices inputTokens and outputTokens against r's per-1K
// prices. No rounding is applied.
func EstimateCost(r catalog.ModelRecord, inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1000*r.InputPrice + float64(outputTokens)/1000*r.OutputPrice
}

// FormatCost renders a cost as "$0.000000".
func FormatCost(cost float64) string {
	return fmt.Sprintf("$%.*f", CostDecimals, cost)
}
