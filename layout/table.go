package layout

import "pkt.systems/bhumi"

// measuredRow is a table row wrapped to its column widths, ready to emit.
type measuredRow struct {
	cells  [][]line
	height float64
}

func (e *engine) layoutTable(t *bhumi.Table) {
	ncols := len(t.Header)
	if ncols == 0 {
		return
	}
	widths := e.columnWidths(ncols)
	header := e.measureRow(boldRow(t.Header), widths)

	rows := make([]measuredRow, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = e.measureRow(row, widths)
	}

	// Keep the header attached to at least one body row.
	need := header.height
	if len(rows) > 0 {
		need += rows[0].height
	}
	e.fit(need)
	e.emitRow(header, widths, &e.geom.Palette.TableHeaderFill, e.geom.Palette.TableHeaderText)

	for i, row := range rows {
		if e.y+row.height > e.geom.contentBottom() && e.y > e.geom.MarginTop {
			// Split table: repeat the header at the top of the new page so
			// the continuation remains readable.
			e.newPage()
			e.emitRow(header, widths, &e.geom.Palette.TableHeaderFill, e.geom.Palette.TableHeaderText)
		}
		var fill *[3]int
		if i%2 == 1 {
			fill = &e.geom.Palette.TableAltFill
		}
		e.emitRow(row, widths, fill, e.geom.Palette.Body)
	}
	e.y += e.geom.SpaceAfterTable
}

// columnWidths divides the content width equally, except for the original
// report style's 35/65 split on two-column tables.
func (e *engine) columnWidths(ncols int) []float64 {
	total := e.geom.ContentWidth()
	widths := make([]float64, ncols)
	if ncols == 2 {
		widths[0] = total * e.geom.TwoColumnSplit[0]
		widths[1] = total * e.geom.TwoColumnSplit[1]
		return widths
	}
	for i := range widths {
		widths[i] = total / float64(ncols)
	}
	return widths
}

func (e *engine) measureRow(cells [][]bhumi.InlineRun, widths []float64) measuredRow {
	row := measuredRow{cells: make([][]line, len(widths))}
	maxLines := 1
	for i := range widths {
		if i >= len(cells) || len(cells[i]) == 0 {
			continue
		}
		avail := widths[i] - 2*e.geom.CellPadding
		row.cells[i] = e.wrap(bhumi.SegmentAll(cells[i]), e.geom.CellSize, avail, "table cell")
		if n := len(row.cells[i]); n > maxLines {
			maxLines = n
		}
	}
	row.height = float64(maxLines)*e.geom.CellLeading + 2*e.geom.CellPadding
	return row
}

// emitRow paints one row at the cursor: optional fill, then the cell grid,
// then cell text. The cursor advances by the row height.
func (e *engine) emitRow(row measuredRow, widths []float64, fill *[3]int, textColor [3]int) {
	e.fit(row.height)
	x := e.geom.MarginLeft
	top := e.y
	if fill != nil {
		total := 0.0
		for _, w := range widths {
			total += w
		}
		e.box(Box{Kind: BoxFill, X: x, Y: top, W: total, H: row.height, Color: *fill})
	}
	for i, w := range widths {
		e.box(Box{
			Kind:  BoxFrame,
			X:     x,
			Y:     top,
			W:     w,
			H:     row.height,
			Line:  1,
			Color: e.geom.Palette.TableGrid,
		})
		baseline := top + e.geom.CellPadding + e.geom.CellSize
		for _, ln := range row.cells[i] {
			cx := x + e.geom.CellPadding
			for _, seg := range ln.segs {
				e.box(Box{
					Kind:  BoxText,
					X:     cx,
					Y:     baseline,
					W:     seg.width,
					H:     e.geom.CellSize,
					Text:  seg.text,
					Face:  seg.face,
					Size:  e.geom.CellSize,
					Color: textColor,
				})
				cx += seg.width
			}
			baseline += e.geom.CellLeading
		}
		x += w
	}
	e.y = top + row.height
}

// boldRow forces bold on every header cell run, matching the original
// report style where headers rendered bold regardless of source markup.
func boldRow(cells [][]bhumi.InlineRun) [][]bhumi.InlineRun {
	out := make([][]bhumi.InlineRun, len(cells))
	for i, runs := range cells {
		out[i] = make([]bhumi.InlineRun, len(runs))
		for j, run := range runs {
			run.Style |= bhumi.StyleBold
			out[i][j] = run
		}
	}
	return out
}
