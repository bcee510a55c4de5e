package diagram

import "unicode/utf8"

// LabelMetrics sizes leaf label boxes from their text length.
type LabelMetrics struct {
	CharWidth    float64
	Padding      float64
	Height       float64
	CornerRadius float64
}

// DefaultLabelMetrics returns 9 units per character, 15 units of padding on
// each side, and a 36-unit pill.
func DefaultLabelMetrics() LabelMetrics {
	return LabelMetrics{CharWidth: 9, Padding: 15, Height: 36, CornerRadius: 18}
}

// Rect is a rounded rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	RX     float64 `json:"rx"`
}

// Width returns the box width for text.
func (m LabelMetrics) Width(text string) float64 {
	return float64(utf8.RuneCountInString(text))*m.CharWidth + 2*m.Padding
}

// Box returns the label box for text centred on c.
func (m LabelMetrics) Box(text string, c Point) Rect {
	w := m.Width(text)
	return Rect{
		X:      c.X - w/2,
		Y:      c.Y - m.Height/2,
		Width:  w,
		Height: m.Height,
		RX:     m.CornerRadius,
	}
}
