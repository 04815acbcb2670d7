// Package bhumi turns AI-generated Markdown reports into paginated PDF
// documents with embedded Latin and Devanagari fonts.
//
// The root package holds the document model: a lenient parser for the
// constrained Markdown subset the reports use (headings, paragraphs, lists,
// pipe tables, bold/italic emphasis, thematic breaks) and a script
// segmenter that splits inline runs into Latin and Devanagari spans so each
// span can be measured and painted with the right font.
//
// The pipeline is pure and per call: Parse builds a Document, Segment
// refines its runs, layout.Layout paginates and the pdf package paints the
// pages. Nothing is shared between calls
// except the read-only font data loaded at startup, so concurrent report
// generations are fully independent.
//
// Example:
//
//	doc := bhumi.Parse("# भूमि रिपोर्ट\n\nYour plot is **excellent**.\n")
//	for _, run := range doc[0].(*bhumi.Heading).Runs {
//		for _, seg := range bhumi.Segment(run) {
//			fmt.Println(seg.Script, seg.Text)
//		}
//	}
//
// See pkt.systems/bhumi/layout for pagination and pkt.systems/bhumi/pdf
// for the page writer and the report entry point.
package bhumi
