package layout

import "github.com/muesli/reflow/ansi"

// Measurer reports the advance width of text drawn with a given face and
// size. The pdf renderer supplies real font metrics; FixedMeasurer serves
// tests and plain-text previews.
type Measurer interface {
	TextWidth(text string, face Face, size float64) float64
}

// FixedMeasurer approximates advance widths from printable cell counts, as
// if every cell were EmRatio of the font size wide. Good enough for layout
// tests that only care about relative geometry.
type FixedMeasurer struct {
	EmRatio float64
}

// TextWidth implements Measurer.
func (m FixedMeasurer) TextWidth(text string, _ Face, size float64) float64 {
	ratio := m.EmRatio
	if ratio <= 0 {
		ratio = 0.5
	}
	return float64(ansi.PrintableRuneWidth(text)) * size * ratio
}
