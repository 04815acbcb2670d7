package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"pkt.systems/bhumi"
	"pkt.systems/bhumi/layout"
)

// RenderRequest describes one markdown-to-PDF conversion.
type RenderRequest struct {
	Markdown string
	Writer   io.Writer

	// Config overrides DefaultConfig field by field.
	Config Config

	// Fonts, when non-nil, is used instead of loading fonts from Config.
	// Load once at startup and reuse across requests.
	Fonts *FontSet

	// FooterLabel precedes the page number in the centered page footer.
	// Empty suppresses the footer.
	FooterLabel string

	// Warn receives layout degradation notices, one call per notice. Nil
	// discards them.
	Warn func(string)
}

// Render converts markdown to a paginated PDF. The markdown side never
// fails; the returned error covers font loading and output writing only.
func Render(req RenderRequest) error {
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	fonts := req.Fonts
	if fonts == nil {
		var err error
		fonts, err = LoadFonts(cfg)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	doc := bhumi.Parse(req.Markdown)
	return renderDocument(doc, cfg, fonts, req.FooterLabel, req.Warn, req.Writer)
}

// renderDocument lays out an already parsed document and writes the pages.
func renderDocument(doc bhumi.Document, cfg Config, fonts *FontSet, footer string, warn func(string), w io.Writer) error {
	geom := cfg.Geometry.Normalized()
	pw := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: geom.PageWidth, Ht: geom.PageHeight},
	})
	pw.SetAutoPageBreak(false, 0)
	pw.SetMargins(0, 0, 0)
	pw.SetCellMargin(0)
	fonts.register(pw)
	if footer != "" {
		setFooter(pw, fonts, geom, footer)
		pw.AliasNbPages("")
	}

	res := layout.Layout(doc, geom, &fontMeasurer{doc: pw, fonts: fonts})
	if warn != nil {
		for _, msg := range res.Warnings {
			warn(msg)
		}
	}
	paint(pw, fonts, res.Pages)

	if err := pw.Output(w); err != nil {
		return fmt.Errorf("render: write pdf: %w", err)
	}
	return nil
}

// setFooter installs a centered "label N / total" footer on every page. The
// label face follows its script so Hindi footers use the Devanagari cut.
func setFooter(pw *fpdf.Fpdf, fonts *FontSet, geom layout.Geometry, label string) {
	face := layout.FaceLatin
	for _, run := range bhumi.SegmentAll([]bhumi.InlineRun{{Text: label}}) {
		if run.Script == bhumi.Devanagari {
			face = layout.FaceDevanagari
			break
		}
	}
	family, style := fonts.font(face)
	pw.SetFooterFunc(func() {
		pw.SetFont(family, style, 8)
		pw.SetTextColor(120, 120, 120)
		text := fmt.Sprintf("%s %d / {nb}", label, pw.PageNo())
		width := pw.GetStringWidth(text)
		pw.Text((geom.PageWidth-width)/2, geom.PageHeight-geom.MarginBottom/2, text)
	})
}

// fontMeasurer reports advance widths from the document's own embedded
// font metrics, so layout and paint agree to the glyph.
type fontMeasurer struct {
	doc   *fpdf.Fpdf
	fonts *FontSet
}

func (m *fontMeasurer) TextWidth(text string, face layout.Face, size float64) float64 {
	family, style := m.fonts.font(face)
	m.doc.SetFont(family, style, size)
	return m.doc.GetStringWidth(text)
}
