package bhumi

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Parse converts Markdown text into a Document. It never fails: input that
// matches no recognized construct degrades to plain paragraph text, since
// upstream text is machine generated and must never block report delivery.
func Parse(text string) Document {
	text = norm.NFC.String(text)
	lines := strings.Split(text, "\n")

	var doc Document
	var para []string
	var openList *ListBlock

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		joined := strings.Join(para, " ")
		para = para[:0]
		doc = append(doc, &Paragraph{
			Runs:       parseInline(joined),
			Disclaimer: isDisclaimerLine(joined),
		})
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(strings.TrimSuffix(lines[i], "\r"))

		if line == "" {
			// Blank lines terminate the current block, lists included.
			flushPara()
			openList = nil
			continue
		}

		if level, rest, ok := headingLine(line); ok {
			flushPara()
			openList = nil
			doc = append(doc, &Heading{Level: level, Runs: parseInline(rest)})
			continue
		}

		if thematicBreak(line) {
			flushPara()
			openList = nil
			doc = append(doc, &Rule{})
			continue
		}

		if strings.ContainsRune(line, '|') && i+1 < len(lines) &&
			tableSeparator(strings.TrimSpace(strings.TrimSuffix(lines[i+1], "\r"))) {
			flushPara()
			openList = nil
			table, consumed := parseTable(lines[i:])
			doc = append(doc, table)
			i += consumed - 1
			continue
		}

		if ordered, rest, ok := listItemLine(line); ok {
			flushPara()
			if openList != nil && openList.Ordered == ordered {
				openList.Items = append(openList.Items, parseInline(rest))
			} else {
				openList = &ListBlock{Ordered: ordered, Items: [][]InlineRun{parseInline(rest)}}
				doc = append(doc, openList)
			}
			continue
		}

		openList = nil
		para = append(para, line)
	}
	flushPara()
	return doc
}

// headingLine matches 1..3 leading '#' followed by whitespace. Deeper
// nesting is clamped to level 3.
func headingLine(line string) (level int, rest string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) {
		return 0, "", false
	}
	if line[n] != ' ' && line[n] != '\t' {
		return 0, "", false
	}
	level = n
	if level > 3 {
		level = 3
	}
	return level, strings.TrimSpace(line[n:]), true
}

func thematicBreak(line string) bool {
	if len(line) < 3 {
		return false
	}
	marker := line[0]
	if marker != '-' && marker != '*' {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != marker {
			return false
		}
	}
	return true
}

// listItemLine matches "- ", "* " and "N. " markers.
func listItemLine(line string) (ordered bool, rest string, ok bool) {
	if len(line) >= 2 && (line[0] == '-' || line[0] == '*') && (line[1] == ' ' || line[1] == '\t') {
		return false, strings.TrimSpace(line[2:]), true
	}
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(line) && line[i] == '.' && (line[i+1] == ' ' || line[i+1] == '\t') {
		return true, strings.TrimSpace(line[i+1:]), true
	}
	return false, "", false
}

// tableSeparator matches the header/body divider row: only '-', '|', ':'
// and spaces, with at least one dash.
func tableSeparator(line string) bool {
	if !strings.ContainsRune(line, '-') {
		return false
	}
	for _, r := range line {
		switch r {
		case '-', '|', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// parseTable consumes the header line, the separator, and body rows until a
// blank or non-table line. Body rows are normalized to the header's column
// count: missing trailing cells become empty, extras are dropped.
func parseTable(lines []string) (*Table, int) {
	header := splitCells(strings.TrimSpace(strings.TrimSuffix(lines[0], "\r")))
	t := &Table{Header: make([][]InlineRun, len(header))}
	for i, cell := range header {
		t.Header[i] = parseInline(cell)
	}
	consumed := 2 // header + separator
	for consumed < len(lines) {
		line := strings.TrimSpace(strings.TrimSuffix(lines[consumed], "\r"))
		if line == "" || !strings.ContainsRune(line, '|') {
			break
		}
		cells := splitCells(line)
		row := make([][]InlineRun, len(header))
		for i := range row {
			if i < len(cells) {
				row[i] = parseInline(cells[i])
			}
		}
		t.Rows = append(t.Rows, row)
		consumed++
	}
	return t, consumed
}

func splitCells(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func isDisclaimerLine(line string) bool {
	return strings.HasPrefix(line, "Disclaimer:") || strings.HasPrefix(line, "अस्वीकरण:")
}
