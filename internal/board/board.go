// Package board holds the user-driven view state (active filters and token
// estimates) and turns it, together with a catalog, into the rows a
// presentation layer draws.
package board

import (
	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/pricing"
)

// State is the mutable view state. It is owned by a single event loop and
// passed explicitly to Build.
type State struct {
	Selection pricing.Selection
	Tokens    pricing.TokenEstimate
}

// NewState returns a state selecting everything with zero tokens.
func NewState() State {
	return State{Selection: pricing.DefaultSelection()}
}

// SetProvider changes the provider tab.
func (s *State) SetProvider(g catalog.ProviderGroup) { s.Selection.Provider = g }

// SetClass changes the model-class tab.
func (s *State) SetClass(c catalog.ModelClass) { s.Selection.Class = c }

// SetTexts recomputes both token counts from the current field contents.
func (s *State) SetTexts(input, output string) {
	s.Tokens = pricing.EstimateTexts(input, output)
}

// Highlight flags a price cell.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightLowest
	HighlightHighest
	// HighlightBoth marks a price that is simultaneously the lowest and the
	// highest, which happens when every positive price on the axis is equal.
	HighlightBoth
)

func highlightFor(a pricing.Axis, price float64) Highlight {
	low, high := a.IsLowest(price), a.IsHighest(price)
	switch {
	case low && high:
		return HighlightBoth
	case low:
		return HighlightLowest
	case high:
		return HighlightHighest
	}
	return HighlightNone
}

// Lowest reports whether h includes the lowest flag.
func (h Highlight) Lowest() bool { return h == HighlightLowest || h == HighlightBoth }

// Highest reports whether h includes the highest flag.
func (h Highlight) Highest() bool { return h == HighlightHighest || h == HighlightBoth }

// Row is one rendered catalog entry.
type Row struct {
	Record          catalog.ModelRecord
	Class           catalog.ModelClass
	Cost            float64
	InputHighlight  Highlight
	OutputHighlight Highlight
}

// InputLabel renders "Input: $0.01/1K tokens".
func (r Row) InputLabel() string {
	return "Input: $" + catalog.FormatPrice(r.Record.InputPrice) + "/" + r.Record.DisplayUnit()
}

// OutputLabel renders "Output: $0.03/1K tokens".
func (r Row) OutputLabel() string {
	return "Output: $" + catalog.FormatPrice(r.Record.OutputPrice) + "/" + r.Record.DisplayUnit()
}

// CostLabel renders the estimated cost with fixed precision.
func (r Row) CostLabel() string {
	return pricing.FormatCost(r.Cost)
}

// Board is the full render input for one state.
type Board struct {
	Selection pricing.Selection
	Tokens    pricing.TokenEstimate
	Extremes  pricing.Extremes
	Rows      []Row
}

// Build filters records with the state's selection, computes extremes over
// the filtered set, and prices every row with the state's token counts.
func Build(records []catalog.ModelRecord, s State) Board {
	filtered := s.Selection.Apply(records)
	ext := pricing.HighlightExtremes(filtered)
	rows := make([]Row, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, Row{
			Record:          r,
			Class:           catalog.Classify(r),
			Cost:            pricing.EstimateCost(r, s.Tokens.Input, s.Tokens.Output),
			InputHighlight:  highlightFor(ext.Input, r.InputPrice),
			OutputHighlight: highlightFor(ext.Output, r.OutputPrice),
		})
	}
	return Board{
		Selection: s.Selection,
		Tokens:    s.Tokens,
		Extremes:  ext,
		Rows:      rows,
	}
}

// Cheapest returns the row with the lowest positive estimated cost. It
// returns false when no row has a positive cost, e.g. when both text fields
// are empty.
func (b Board) Cheapest() (Row, bool) {
	var best Row
	found := false
	for _, r := range b.Rows {
		if r.Cost <= 0 {
			continue
		}
		if !found || r.Cost < best.Cost {
			best, found = r, true
		}
	}
	return best, found
}
