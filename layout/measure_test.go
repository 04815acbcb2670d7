package layout

import "testing"

func TestFixedMeasurerWidth(t *testing.T) {
	m := FixedMeasurer{}
	if got := m.TextWidth("abcd", FaceLatin, 10); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := m.TextWidth("", FaceLatin, 10); got != 0 {
		t.Fatalf("expected 0 for empty text, got %v", got)
	}
}

func TestFixedMeasurerRatio(t *testing.T) {
	m := FixedMeasurer{EmRatio: 1}
	if got := m.TextWidth("ab", FaceLatinBold, 12); got != 24 {
		t.Fatalf("expected 24, got %v", got)
	}
}

func TestFixedMeasurerScalesWithSize(t *testing.T) {
	m := FixedMeasurer{}
	small := m.TextWidth("word", FaceLatin, 9)
	large := m.TextWidth("word", FaceLatin, 18)
	if large != 2*small {
		t.Fatalf("width must scale linearly with size: %v vs %v", small, large)
	}
}
