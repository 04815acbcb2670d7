package layout

import (
	"fmt"
	"strconv"

	"github.com/clipperhouse/uax29/v2/words"
	"pkt.systems/bhumi"
)

// Result is the outcome of one layout run. Warnings record visible
// degradations (content wider than its column, drawn unwrapped); they never
// prevent a document from being produced.
type Result struct {
	Pages    []PageBoxes
	Warnings []string
}

// Layout flows a document onto pages. It never fails: any document, empty
// included, yields at least one page.
func Layout(doc bhumi.Document, geom Geometry, m Measurer) Result {
	e := &engine{geom: geom.Normalized(), m: m}
	e.newPage()
	for _, n := range doc {
		switch node := n.(type) {
		case *bhumi.Heading:
			e.layoutHeading(node)
		case *bhumi.Paragraph:
			e.layoutParagraph(node)
		case *bhumi.ListBlock:
			e.layoutList(node)
		case *bhumi.Table:
			e.layoutTable(node)
		case *bhumi.Rule:
			e.layoutRule()
		}
	}
	return Result{Pages: e.pages, Warnings: e.warnings}
}

type engine struct {
	geom     Geometry
	m        Measurer
	pages    []PageBoxes
	y        float64
	warnings []string
}

func (e *engine) pageIndex() int { return len(e.pages) - 1 }

func (e *engine) newPage() {
	e.pages = append(e.pages, PageBoxes{Index: len(e.pages)})
	e.y = e.geom.MarginTop
}

// fit starts a new page when h points no longer fit above the bottom
// margin. Content taller than a whole page stays put and overflows, so
// layout always terminates.
func (e *engine) fit(h float64) {
	if e.y+h > e.geom.contentBottom() && e.y > e.geom.MarginTop {
		e.newPage()
	}
}

func (e *engine) box(b Box) {
	b.Page = e.pageIndex()
	e.pages[len(e.pages)-1].Boxes = append(e.pages[len(e.pages)-1].Boxes, b)
}

func (e *engine) boxOn(page int, b Box) {
	b.Page = page
	e.pages[page].Boxes = append(e.pages[page].Boxes, b)
}

func (e *engine) warnf(format string, args ...any) {
	e.warnings = append(e.warnings, fmt.Sprintf(format, args...))
}

type lineSeg struct {
	text  string
	face  Face
	width float64
}

type line struct {
	segs  []lineSeg
	width float64
}

func (l *line) add(text string, face Face, width float64) {
	if n := len(l.segs); n > 0 && l.segs[n-1].face == face {
		l.segs[n-1].text += text
		l.segs[n-1].width += width
	} else {
		l.segs = append(l.segs, lineSeg{text: text, face: face, width: width})
	}
	l.width += width
}

func (l *line) append(other line) {
	for _, seg := range other.segs {
		l.add(seg.text, seg.face, seg.width)
	}
}

// wrap performs greedy line breaking over segmented runs. Break
// opportunities are the word boundaries between whitespace tokens; a single
// unbreakable cluster wider than the line is kept whole and reported, never
// dropped.
func (e *engine) wrap(runs []bhumi.ScriptRun, size, width float64, context string) []line {
	var lines []line
	var cur, cluster, space line

	flushCluster := func() {
		if len(cluster.segs) == 0 {
			return
		}
		if cur.width > 0 && cur.width+space.width+cluster.width > width {
			lines = append(lines, cur)
			cur = line{}
			space = line{}
		}
		if cur.width == 0 && cluster.width > width {
			e.warnf("%s: %q wider than available width, drawn unwrapped", context, clusterText(cluster))
		}
		cur.append(space)
		cur.append(cluster)
		space = line{}
		cluster = line{}
	}

	for _, run := range runs {
		face := FaceFor(run.Script, run.Style)
		toks := words.FromString(run.Text)
		for toks.Next() {
			tok := toks.Value()
			if isSpaces(tok) {
				flushCluster()
				if cur.width > 0 {
					space.add(tok, face, e.m.TextWidth(tok, face, size))
				}
				continue
			}
			cluster.add(tok, face, e.m.TextWidth(tok, face, size))
		}
	}
	flushCluster()
	if len(cur.segs) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func clusterText(l line) string {
	var s string
	for _, seg := range l.segs {
		s += seg.text
	}
	return s
}

func isSpaces(tok string) bool {
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return len(tok) > 0
}

// emitLines places wrapped lines starting at x, breaking pages between
// lines as needed, and advances the cursor by leading per line.
func (e *engine) emitLines(lines []line, x, size, leading float64, color [3]int) {
	for _, ln := range lines {
		e.fit(leading)
		baseline := e.y + size
		cx := x
		for _, seg := range ln.segs {
			e.box(Box{
				Kind:  BoxText,
				X:     cx,
				Y:     baseline,
				W:     seg.width,
				H:     size,
				Text:  seg.text,
				Face:  seg.face,
				Size:  size,
				Color: color,
			})
			cx += seg.width
		}
		e.y += leading
	}
}

func (e *engine) layoutHeading(h *bhumi.Heading) {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	size := e.geom.HeadingSizes[level-1]
	leading := size * e.geom.HeadingLeading
	lines := e.wrap(bhumi.SegmentAll(h.Runs), size, e.geom.ContentWidth(), "heading")
	if len(lines) == 0 {
		return
	}
	// Orphan avoidance: a heading must leave room for at least one body
	// line below it, otherwise it starts the next page.
	need := float64(len(lines))*leading + e.geom.BodyLeading
	e.fit(need)
	e.emitLines(lines, e.geom.MarginLeft, size, leading, e.geom.Palette.Heading[level-1])
	ruleY := e.y - leading + size + 3
	e.box(Box{
		Kind:  BoxRule,
		X:     e.geom.MarginLeft,
		Y:     ruleY,
		W:     e.geom.ContentWidth(),
		Line:  0.75,
		Color: e.geom.Palette.HeadingRule,
	})
	e.y += e.geom.SpaceAfterHeading[level-1]
}

func (e *engine) layoutParagraph(p *bhumi.Paragraph) {
	if p.Disclaimer {
		e.layoutDisclaimer(p)
		return
	}
	lines := e.wrap(bhumi.SegmentAll(p.Runs), e.geom.BodySize, e.geom.ContentWidth(), "paragraph")
	if len(lines) == 0 {
		return
	}
	e.emitLines(lines, e.geom.MarginLeft, e.geom.BodySize, e.geom.BodyLeading, e.geom.Palette.Body)
	e.y += e.geom.SpaceAfterParagraph
}

// layoutDisclaimer renders the boxed small-print style: padded text inside
// a light frame, split cleanly when it crosses a page boundary.
func (e *engine) layoutDisclaimer(p *bhumi.Paragraph) {
	pad := e.geom.DisclaimerPadding
	width := e.geom.ContentWidth() - 2*pad
	lines := e.wrap(bhumi.SegmentAll(p.Runs), e.geom.DisclaimerSize, width, "disclaimer")
	if len(lines) == 0 {
		return
	}
	e.fit(pad + e.geom.DisclaimerLeading)
	startPage := e.pageIndex()
	startY := e.y
	e.y += pad
	e.emitLines(lines, e.geom.MarginLeft+pad, e.geom.DisclaimerSize, e.geom.DisclaimerLeading, e.geom.Palette.Disclaimer)
	e.y += pad
	for page := startPage; page <= e.pageIndex(); page++ {
		top := e.geom.MarginTop
		if page == startPage {
			top = startY
		}
		bottom := e.geom.contentBottom()
		if page == e.pageIndex() {
			bottom = e.y
		}
		e.boxOn(page, Box{
			Kind:  BoxFrame,
			X:     e.geom.MarginLeft,
			Y:     top,
			W:     e.geom.ContentWidth(),
			H:     bottom - top,
			Line:  1,
			Color: e.geom.Palette.DisclaimerFrame,
		})
	}
	e.y += e.geom.SpaceAfterParagraph
}

func (e *engine) layoutList(lb *bhumi.ListBlock) {
	for i, item := range lb.Items {
		marker := "•"
		if lb.Ordered {
			marker = strconv.Itoa(i+1) + "."
		}
		contentX := e.geom.MarginLeft + e.geom.ListIndent
		width := e.geom.ContentWidth() - e.geom.ListIndent
		lines := e.wrap(bhumi.SegmentAll(item), e.geom.BodySize, width, "list item")
		e.fit(e.geom.BodyLeading)
		// Marker and content are separate boxes so the renderer can align
		// them independently.
		e.box(Box{
			Kind:  BoxText,
			X:     e.geom.MarginLeft + e.geom.BulletIndent,
			Y:     e.y + e.geom.BodySize,
			W:     e.m.TextWidth(marker, FaceLatin, e.geom.BodySize),
			H:     e.geom.BodySize,
			Text:  marker,
			Face:  FaceLatin,
			Size:  e.geom.BodySize,
			Color: e.geom.Palette.Body,
		})
		e.emitLines(lines, contentX, e.geom.BodySize, e.geom.BodyLeading, e.geom.Palette.Body)
		if len(lines) == 0 {
			e.y += e.geom.BodyLeading
		}
		e.y += e.geom.SpaceAfterListItem
	}
}

func (e *engine) layoutRule() {
	e.y += e.geom.SpaceAroundRule
	e.fit(2)
	e.box(Box{
		Kind:  BoxRule,
		X:     e.geom.MarginLeft,
		Y:     e.y,
		W:     e.geom.ContentWidth(),
		Line:  1,
		Color: e.geom.Palette.RuleLine,
	})
	e.y += e.geom.SpaceAroundRule
}
