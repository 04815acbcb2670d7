package bhumi

import "testing"

func TestSegmentMixedScripts(t *testing.T) {
	got := Segment(InlineRun{Text: "Land use भूमि उपयोग report"})
	want := []ScriptRun{
		{Text: "Land use ", Script: Latin},
		{Text: "भूमि उपयोग ", Script: Devanagari},
		{Text: "report", Script: Latin},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %d: %#v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segment %d\nwant: %#v\n got: %#v", i, want[i], got[i])
		}
	}
}

func TestSegmentNeutralsInheritPrecedingScript(t *testing.T) {
	got := Segment(InlineRun{Text: "भूमि 123, उपयोग"})
	if len(got) != 1 {
		t.Fatalf("expected a single Devanagari segment, got %#v", got)
	}
	if got[0].Script != Devanagari {
		t.Fatalf("expected Devanagari, got %v", got[0].Script)
	}
}

func TestSegmentLeadingNeutralsStayLatin(t *testing.T) {
	got := Segment(InlineRun{Text: "(भूमि)"})
	want := []ScriptRun{
		{Text: "(", Script: Latin},
		{Text: "भूमि)", Script: Devanagari},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %#v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segment %d\nwant: %#v\n got: %#v", i, want[i], got[i])
		}
	}
}

func TestSegmentLossless(t *testing.T) {
	inputs := []string{
		"",
		"plain latin",
		"भूमि",
		"mixed भूमि and latin, 42 digits १२३",
		"!!! ??? ...",
	}
	for _, in := range inputs {
		var rebuilt string
		for _, seg := range Segment(InlineRun{Text: in}) {
			rebuilt += seg.Text
		}
		if rebuilt != in {
			t.Fatalf("input %q: segments rebuild to %q", in, rebuilt)
		}
	}
}

func TestSegmentPreservesStyle(t *testing.T) {
	got := Segment(InlineRun{Text: "bold भूमि", Style: StyleBold})
	for i, seg := range got {
		if seg.Style != StyleBold {
			t.Fatalf("segment %d lost style: %#v", i, seg)
		}
	}
}

func TestSegmentAllKeepsRunOrder(t *testing.T) {
	got := SegmentAll([]InlineRun{
		{Text: "a "},
		{Text: "भूमि", Style: StyleBold},
		{Text: " z"},
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 segments, got %#v", got)
	}
	if got[1].Script != Devanagari || !got[1].Style.Bold() {
		t.Fatalf("middle segment wrong: %#v", got[1])
	}
}

func TestStrongScriptRanges(t *testing.T) {
	cases := []struct {
		r      rune
		script Script
		strong bool
	}{
		{'a', Latin, true},
		{'क', Devanagari, true},
		{0x097F, Devanagari, true},
		{0x1CD0, Devanagari, true},
		{0xA8E0, Devanagari, true},
		{'5', Latin, false},
		{'१', Devanagari, true}, // Devanagari digit sits inside the block range
		{' ', Latin, false},
		{'.', Latin, false},
	}
	for _, tc := range cases {
		s, strong := strongScript(tc.r)
		if s != tc.script || strong != tc.strong {
			t.Fatalf("rune %U: expected (%v, %v), got (%v, %v)", tc.r, tc.script, tc.strong, s, strong)
		}
	}
}
