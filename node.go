package bhumi

// StyleFlags is a bitset of inline emphasis styles.
type StyleFlags uint8

const (
	// StyleBold marks strong emphasis (**text**).
	StyleBold StyleFlags = 1 << iota
	// StyleItalic marks emphasis (*text* or _text_).
	StyleItalic
)

// Bold reports whether the bold flag is set.
func (f StyleFlags) Bold() bool { return f&StyleBold != 0 }

// Italic reports whether the italic flag is set.
func (f StyleFlags) Italic() bool { return f&StyleItalic != 0 }

// InlineRun is a span of text with one style applied. A block's runs are
// rendered in order with no inserted separator.
type InlineRun struct {
	Text  string
	Style StyleFlags
}

// Node is a block-level element of a parsed document. The set of
// implementations is closed so renderers can switch exhaustively.
type Node interface {
	node()
}

// Document is an ordered sequence of block nodes, in source order.
type Document []Node

// Heading is an ATX heading of level 1 to 3.
type Heading struct {
	Level int
	Runs  []InlineRun
}

// Paragraph is a run of body text. Disclaimer marks paragraphs that begin
// with a disclaimer label and render in the smaller boxed style.
type Paragraph struct {
	Runs       []InlineRun
	Disclaimer bool
}

// ListBlock is a bulleted or numbered list. Items hold inline runs only;
// nested lists are out of scope.
type ListBlock struct {
	Ordered bool
	Items   [][]InlineRun
}

// Table is a pipe table with one header row. Every row has exactly
// len(Header) cells; the parser pads or truncates as needed.
type Table struct {
	Header [][]InlineRun
	Rows   [][][]InlineRun
}

// Rule is a thematic break.
type Rule struct{}

func (*Heading) node()   {}
func (*Paragraph) node() {}
func (*ListBlock) node() {}
func (*Table) node()     {}
func (*Rule) node()      {}

// PlainText returns the concatenated text of a run sequence.
func PlainText(runs []InlineRun) string {
	if len(runs) == 1 {
		return runs[0].Text
	}
	var n int
	for _, r := range runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}
