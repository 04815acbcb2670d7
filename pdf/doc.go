// Package pdf renders parsed report markdown to paginated PDF documents.
//
// The package embeds four font cuts (Latin and Devanagari, regular and
// bold) so output is self-contained. Fonts are verified once with
// LoadFonts; after that, rendering never fails on document content. Bad
// markdown degrades to plain paragraphs and over-wide content is reported
// through the warning callback instead of an error.
//
// Render covers plain markdown-to-PDF conversion. GenerateReport adds the
// report envelope: a localized title block in front and a closing
// disclaimer when the body has none.
package pdf
