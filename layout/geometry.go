package layout

// Geometry configures page dimensions, type sizes and spacing for one
// layout run. All lengths are in points. A Geometry is supplied once per
// document generation and never mutated during a run.
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// HeadingSizes indexes font size by heading level 1..3.
	HeadingSizes [3]float64
	BodySize     float64
	// BodyLeading is the baseline-to-baseline distance for body lines.
	BodyLeading float64
	// HeadingLeading multiplies the heading size to get its line height.
	HeadingLeading float64

	CellSize    float64
	CellLeading float64
	CellPadding float64

	DisclaimerSize    float64
	DisclaimerLeading float64
	DisclaimerPadding float64

	// ListIndent offsets item content from the left margin; BulletIndent
	// offsets the marker glyph.
	ListIndent   float64
	BulletIndent float64

	// TwoColumnSplit divides the content width for two-column tables.
	// Tables with any other column count use equal division.
	TwoColumnSplit [2]float64

	SpaceAfterHeading   [3]float64
	SpaceAfterParagraph float64
	SpaceAfterListItem  float64
	SpaceAfterTable     float64
	SpaceAroundRule     float64

	Palette Palette
}

// Palette holds the colors the renderer paints with, as 0-255 RGB.
type Palette struct {
	Heading         [3][3]int
	Body            [3]int
	HeadingRule     [3]int
	TableHeaderText [3]int
	TableHeaderFill [3]int
	TableAltFill    [3]int
	TableGrid       [3]int
	Disclaimer      [3]int
	DisclaimerFrame [3]int
	RuleLine        [3]int
}

const inch = 72.0

// DefaultGeometry returns the report house style: A4, half-inch side
// margins, three-quarter-inch top and bottom.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:  595.28,
		PageHeight: 841.89,

		MarginLeft:   0.5 * inch,
		MarginRight:  0.5 * inch,
		MarginTop:    0.75 * inch,
		MarginBottom: 0.75 * inch,

		HeadingSizes:   [3]float64{18, 14, 12},
		BodySize:       10,
		BodyLeading:    14,
		HeadingLeading: 1.2,

		CellSize:    9,
		CellLeading: 11,
		CellPadding: 6,

		DisclaimerSize:    9,
		DisclaimerLeading: 12,
		DisclaimerPadding: 10,

		ListIndent:   20,
		BulletIndent: 10,

		TwoColumnSplit: [2]float64{0.35, 0.65},

		SpaceAfterHeading:   [3]float64{12, 10, 8},
		SpaceAfterParagraph: 6,
		SpaceAfterListItem:  4,
		SpaceAfterTable:     0.1 * inch,
		SpaceAroundRule:     8,

		Palette: Palette{
			Heading: [3][3]int{
				{44, 62, 80},   // #2C3E50
				{22, 160, 133}, // #16a085
				{52, 73, 94},   // #34495e
			},
			Body:            [3]int{0, 0, 0},
			HeadingRule:     [3]int{189, 195, 199},
			TableHeaderText: [3]int{44, 62, 80},
			TableHeaderFill: [3]int{236, 240, 241}, // #ecf0f1
			TableAltFill:    [3]int{247, 249, 249},
			TableGrid:       [3]int{189, 195, 199}, // #bdc3c7
			Disclaimer:      [3]int{128, 128, 128},
			DisclaimerFrame: [3]int{211, 211, 211},
			RuleLine:        [3]int{189, 195, 199},
		},
	}
}

// ContentWidth is the horizontal space available to the flow.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// contentBottom is the lowest y a line may occupy.
func (g Geometry) contentBottom() float64 {
	return g.PageHeight - g.MarginBottom
}

// Normalized fills zero page and type sizes from DefaultGeometry so a
// partially populated Geometry still lays out instead of failing. Margins
// and the SpaceAfter fields are left untouched: zero is a legitimate value
// for both (full-bleed pages, no inter-block spacing).
func (g Geometry) Normalized() Geometry {
	def := DefaultGeometry()
	if g.PageWidth <= 0 {
		g.PageWidth = def.PageWidth
	}
	if g.PageHeight <= 0 {
		g.PageHeight = def.PageHeight
	}
	if g.BodySize <= 0 {
		g.BodySize = def.BodySize
	}
	if g.BodyLeading <= 0 {
		g.BodyLeading = def.BodyLeading
	}
	if g.HeadingLeading <= 0 {
		g.HeadingLeading = def.HeadingLeading
	}
	for i := range g.HeadingSizes {
		if g.HeadingSizes[i] <= 0 {
			g.HeadingSizes[i] = def.HeadingSizes[i]
		}
	}
	if g.CellSize <= 0 {
		g.CellSize = def.CellSize
	}
	if g.CellLeading <= 0 {
		g.CellLeading = def.CellLeading
	}
	if g.CellPadding <= 0 {
		g.CellPadding = def.CellPadding
	}
	if g.DisclaimerSize <= 0 {
		g.DisclaimerSize = def.DisclaimerSize
	}
	if g.DisclaimerLeading <= 0 {
		g.DisclaimerLeading = def.DisclaimerLeading
	}
	if g.DisclaimerPadding <= 0 {
		g.DisclaimerPadding = def.DisclaimerPadding
	}
	if g.ListIndent <= 0 {
		g.ListIndent = def.ListIndent
	}
	if g.BulletIndent <= 0 {
		g.BulletIndent = def.BulletIndent
	}
	if g.TwoColumnSplit[0] <= 0 || g.TwoColumnSplit[1] <= 0 {
		g.TwoColumnSplit = def.TwoColumnSplit
	}
	if g.SpaceAroundRule <= 0 {
		g.SpaceAroundRule = def.SpaceAroundRule
	}
	var zero Palette
	if g.Palette == zero {
		g.Palette = def.Palette
	}
	return g
}
