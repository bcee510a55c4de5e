package pricing

import "github.com/julianshen/pricemap/internal/catalog"

// Axis holds the extremes for one price direction.
type Axis struct {
	Min    float64 `json:"min"`
	HasMin bool    `json:"has_min"`
	Max    float64 `json:"max"`
	HasMax bool    `json:"has_max"`
}

// IsLowest reports whether price earns the "lowest" highlight. Zero prices
// never do.
func (a Axis) IsLowest(price float64) bool {
	return a.HasMin && price > 0 && price == a.Min
}

// IsHighest reports whether price earns the "highest" highlight. An axis
// whose maximum is 0 has no meaningful extreme and highlights nothing.
func (a Axis) IsHighest(price float64) bool {
	return a.HasMax && a.Max > 0 && price == a.Max
}

// Extremes are the min/max prices across a filtered set.
type Extremes struct {
	Input  Axis `json:"input"`
	Output Axis `json:"output"`
}

// HighlightExtremes computes per-axis extremes. Minimums consider strictly
// positive prices only; maximums consider every record.
func HighlightExtremes(records []catalog.ModelRecord) Extremes {
	var e Extremes
	for _, r := range records {
		e.Input.observe(r.InputPrice)
		e.Output.observe(r.OutputPrice)
	}
	return e
}

func (a *Axis) observe(price float64) {
	if !a.HasMax || price > a.Max {
		a.Max = price
		a.HasMax = true
	}
	if price > 0 && (!a.HasMin || price < a.Min) {
		a.Min = price
		a.HasMin = true
	}
}
