package pdf

import (
	"github.com/go-pdf/fpdf"
	"pkt.systems/bhumi/layout"
)

// paint draws laid-out pages. Boxes arrive in paint order, so the walk is
// a straight replay.
func paint(pw *fpdf.Fpdf, fonts *FontSet, pages []layout.PageBoxes) {
	for _, page := range pages {
		pw.AddPage()
		for _, box := range page.Boxes {
			switch box.Kind {
			case layout.BoxText:
				family, style := fonts.font(box.Face)
				pw.SetFont(family, style, box.Size)
				pw.SetTextColor(box.Color[0], box.Color[1], box.Color[2])
				pw.Text(box.X, box.Y, box.Text)
			case layout.BoxRule:
				pw.SetDrawColor(box.Color[0], box.Color[1], box.Color[2])
				pw.SetLineWidth(lineWidth(box))
				pw.Line(box.X, box.Y, box.X+box.W, box.Y)
			case layout.BoxFill:
				pw.SetFillColor(box.Color[0], box.Color[1], box.Color[2])
				pw.Rect(box.X, box.Y, box.W, box.H, "F")
			case layout.BoxFrame:
				pw.SetDrawColor(box.Color[0], box.Color[1], box.Color[2])
				pw.SetLineWidth(lineWidth(box))
				pw.Rect(box.X, box.Y, box.W, box.H, "D")
			}
		}
	}
}

func lineWidth(box layout.Box) float64 {
	if box.Line > 0 {
		return box.Line
	}
	return 0.5
}
