package layout

import "pkt.systems/bhumi"

// Face names one of the four embedded font resources.
type Face uint8

const (
	FaceLatin Face = iota
	FaceLatinBold
	FaceDevanagari
	FaceDevanagariBold
)

// FaceFor resolves a script and style pair to a font resource. Bold (alone
// or combined with italic) selects the bold cut; italic alone falls back to
// the regular cut because the shipped families carry no italic.
func FaceFor(script bhumi.Script, style bhumi.StyleFlags) Face {
	bold := style.Bold()
	if script == bhumi.Devanagari {
		if bold {
			return FaceDevanagariBold
		}
		return FaceDevanagari
	}
	if bold {
		return FaceLatinBold
	}
	return FaceLatin
}

// BoxKind discriminates what a Box paints.
type BoxKind uint8

const (
	// BoxText paints Text at baseline (X, Y) with Face, Size and Color.
	BoxText BoxKind = iota
	// BoxRule paints a horizontal line from (X, Y) of length W and
	// thickness Line.
	BoxRule
	// BoxFill paints a filled rectangle with top-left (X, Y).
	BoxFill
	// BoxFrame paints a rectangle outline with top-left (X, Y).
	BoxFrame
)

// Box is one positioned draw instruction, owned by the page it belongs to
// and immutable once created.
type Box struct {
	Page int
	Kind BoxKind

	X, Y float64
	W, H float64

	Text  string
	Face  Face
	Size  float64
	Color [3]int

	// Line is the stroke thickness for BoxRule and BoxFrame.
	Line float64
}

// PageBoxes groups the draw instructions of one page, in paint order.
// Within a block, fills are emitted before the text they sit under.
type PageBoxes struct {
	Index int
	Boxes []Box
}
