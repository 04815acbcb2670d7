package bhumi

import (
	"strings"
	"testing"
)

func TestParseHeadingLevels(t *testing.T) {
	doc := Parse("# One\n\n## Two\n\n### Three\n\n#### Four")
	if len(doc) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(doc))
	}
	want := []int{1, 2, 3, 3}
	for i, level := range want {
		h, ok := doc[i].(*Heading)
		if !ok {
			t.Fatalf("node %d: expected *Heading, got %T", i, doc[i])
		}
		if h.Level != level {
			t.Fatalf("node %d: expected level %d, got %d", i, level, h.Level)
		}
	}
	if got := PlainText(doc[3].(*Heading).Runs); got != "Four" {
		t.Fatalf("expected heading text %q, got %q", "Four", got)
	}
}

func TestParseHashesWithoutSpaceAreText(t *testing.T) {
	doc := Parse("#nospace")
	if len(doc) != 1 {
		t.Fatalf("expected 1 node, got %d", len(doc))
	}
	p, ok := doc[0].(*Paragraph)
	if !ok {
		t.Fatalf("expected *Paragraph, got %T", doc[0])
	}
	if got := PlainText(p.Runs); got != "#nospace" {
		t.Fatalf("expected %q, got %q", "#nospace", got)
	}
}

func TestParseJoinsParagraphLines(t *testing.T) {
	doc := Parse("first line\nsecond line\n\nnext para")
	if len(doc) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(doc))
	}
	p := doc[0].(*Paragraph)
	if got := PlainText(p.Runs); got != "first line second line" {
		t.Fatalf("expected joined paragraph, got %q", got)
	}
}

func TestParseListMergesSameKind(t *testing.T) {
	doc := Parse("- one\n- two\n* three\n1. first\n2. second")
	if len(doc) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(doc))
	}
	ul, ok := doc[0].(*ListBlock)
	if !ok || ul.Ordered {
		t.Fatalf("expected unordered list, got %T", doc[0])
	}
	if len(ul.Items) != 3 {
		t.Fatalf("expected 3 bullet items, got %d", len(ul.Items))
	}
	ol, ok := doc[1].(*ListBlock)
	if !ok || !ol.Ordered {
		t.Fatalf("expected ordered list, got %T", doc[1])
	}
	if len(ol.Items) != 2 {
		t.Fatalf("expected 2 numbered items, got %d", len(ol.Items))
	}
}

func TestParseBlankLineSplitsLists(t *testing.T) {
	doc := Parse("- one\n\n- two")
	if len(doc) != 2 {
		t.Fatalf("expected 2 separate lists, got %d nodes", len(doc))
	}
	for i, n := range doc {
		if _, ok := n.(*ListBlock); !ok {
			t.Fatalf("node %d: expected *ListBlock, got %T", i, n)
		}
	}
}

func TestParseInterveningBlockSplitsLists(t *testing.T) {
	doc := Parse("- one\n\ntext between\n\n- two")
	if len(doc) != 3 {
		t.Fatalf("expected list, paragraph, list, got %d nodes", len(doc))
	}
	first, ok := doc[0].(*ListBlock)
	if !ok || len(first.Items) != 1 {
		t.Fatalf("expected 1-item list, got %#v", doc[0])
	}
	if _, ok := doc[1].(*Paragraph); !ok {
		t.Fatalf("expected *Paragraph, got %T", doc[1])
	}
	second, ok := doc[2].(*ListBlock)
	if !ok || len(second.Items) != 1 {
		t.Fatalf("expected 1-item list, got %#v", doc[2])
	}
}

func TestParseThematicBreak(t *testing.T) {
	doc := Parse("above\n\n---\n\n***\n\nbelow")
	if len(doc) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(doc))
	}
	if _, ok := doc[1].(*Rule); !ok {
		t.Fatalf("expected *Rule, got %T", doc[1])
	}
	if _, ok := doc[2].(*Rule); !ok {
		t.Fatalf("expected *Rule, got %T", doc[2])
	}
}

func TestParseTwoDashesAreText(t *testing.T) {
	doc := Parse("--")
	p, ok := doc[0].(*Paragraph)
	if !ok {
		t.Fatalf("expected *Paragraph, got %T", doc[0])
	}
	if got := PlainText(p.Runs); got != "--" {
		t.Fatalf("expected %q, got %q", "--", got)
	}
}

func TestParseTable(t *testing.T) {
	src := strings.Join([]string{
		"| Name | Value |",
		"| --- | --- |",
		"| a | 1 |",
		"| b | 2 |",
		"",
		"after",
	}, "\n")
	doc := Parse(src)
	if len(doc) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(doc))
	}
	table, ok := doc[0].(*Table)
	if !ok {
		t.Fatalf("expected *Table, got %T", doc[0])
	}
	if len(table.Header) != 2 {
		t.Fatalf("expected 2 header cells, got %d", len(table.Header))
	}
	if got := PlainText(table.Header[0]); got != "Name" {
		t.Fatalf("expected header %q, got %q", "Name", got)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 body rows, got %d", len(table.Rows))
	}
	if got := PlainText(table.Rows[1][1]); got != "2" {
		t.Fatalf("expected cell %q, got %q", "2", got)
	}
}

func TestParseTableNormalizesRowWidth(t *testing.T) {
	src := strings.Join([]string{
		"| A | B | C |",
		"|---|---|---|",
		"| 1 |",
		"| 1 | 2 | 3 | 4 |",
	}, "\n")
	doc := Parse(src)
	table := doc[0].(*Table)
	for i, row := range table.Rows {
		if len(row) != 3 {
			t.Fatalf("row %d: expected 3 cells, got %d", i, len(row))
		}
	}
	if got := PlainText(table.Rows[0][2]); got != "" {
		t.Fatalf("expected padded empty cell, got %q", got)
	}
	if got := PlainText(table.Rows[1][2]); got != "3" {
		t.Fatalf("expected truncated row to keep cell 3, got %q", got)
	}
}

func TestParsePipeLineWithoutSeparatorIsParagraph(t *testing.T) {
	doc := Parse("a | b | c")
	if _, ok := doc[0].(*Paragraph); !ok {
		t.Fatalf("expected *Paragraph, got %T", doc[0])
	}
}

func TestParseDisclaimerParagraph(t *testing.T) {
	doc := Parse("Disclaimer: for information only.\n\nअस्वीकरण: केवल सूचना के लिए।\n\nplain")
	if len(doc) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(doc))
	}
	if !doc[0].(*Paragraph).Disclaimer {
		t.Fatalf("expected English disclaimer flag")
	}
	if !doc[1].(*Paragraph).Disclaimer {
		t.Fatalf("expected Hindi disclaimer flag")
	}
	if doc[2].(*Paragraph).Disclaimer {
		t.Fatalf("plain paragraph must not carry disclaimer flag")
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, src := range []string{"", "\n\n\n", "   \n\t\n"} {
		if doc := Parse(src); len(doc) != 0 {
			t.Fatalf("input %q: expected empty document, got %d nodes", src, len(doc))
		}
	}
}

func TestParseNormalizesToNFC(t *testing.T) {
	// e + combining acute normalizes to the precomposed form.
	doc := Parse("café")
	p := doc[0].(*Paragraph)
	if got := PlainText(p.Runs); got != "café" {
		t.Fatalf("expected NFC text %q, got %q", "café", got)
	}
}

func TestParseCRLFInput(t *testing.T) {
	doc := Parse("# Title\r\n\r\nbody\r\n")
	if len(doc) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(doc))
	}
	if got := PlainText(doc[0].(*Heading).Runs); got != "Title" {
		t.Fatalf("expected %q, got %q", "Title", got)
	}
}
