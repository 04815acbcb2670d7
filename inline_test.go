package bhumi

import "testing"

func runsEqual(a, b []InlineRun) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseInline(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []InlineRun
	}{
		{"plain", "hello world", []InlineRun{{Text: "hello world"}}},
		{"bold", "a **b** c", []InlineRun{
			{Text: "a "}, {Text: "b", Style: StyleBold}, {Text: " c"},
		}},
		{"italic star", "a *b* c", []InlineRun{
			{Text: "a "}, {Text: "b", Style: StyleItalic}, {Text: " c"},
		}},
		{"italic underscore", "a _b_ c", []InlineRun{
			{Text: "a "}, {Text: "b", Style: StyleItalic}, {Text: " c"},
		}},
		{"italic inside bold", "**a *b* c**", []InlineRun{
			{Text: "a ", Style: StyleBold},
			{Text: "b", Style: StyleBold | StyleItalic},
			{Text: " c", Style: StyleBold},
		}},
		{"unterminated bold literal", "a **b", []InlineRun{{Text: "a **b"}}},
		{"unterminated italic literal", "a _b", []InlineRun{{Text: "a _b"}}},
		{"mismatched delimiters literal", "a _b* c", []InlineRun{{Text: "a _b* c"}}},
		{"empty", "", nil},
		{"devanagari bold", "**भूमि** रिपोर्ट", []InlineRun{
			{Text: "भूमि", Style: StyleBold}, {Text: " रिपोर्ट"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseInline(tc.in)
			if !runsEqual(got, tc.want) {
				t.Fatalf("input %q\nwant: %#v\n got: %#v", tc.in, tc.want, got)
			}
		})
	}
}

func TestParseInlineNearestCloserWins(t *testing.T) {
	got := parseInline("*a* and *b*")
	want := []InlineRun{
		{Text: "a", Style: StyleItalic},
		{Text: " and "},
		{Text: "b", Style: StyleItalic},
	}
	if !runsEqual(got, want) {
		t.Fatalf("want: %#v\n got: %#v", want, got)
	}
}

func TestParseInlineLosslessText(t *testing.T) {
	inputs := []string{
		"plain",
		"**bold** and *italic*",
		"broken ** marker _ here",
		"**a _b_ c** tail",
	}
	for _, in := range inputs {
		var got string
		for _, run := range parseInline(in) {
			got += run.Text
		}
		// Styled text loses only the delimiters themselves.
		if len(got) > len(in) {
			t.Fatalf("input %q: reconstructed %q longer than source", in, got)
		}
	}
}
