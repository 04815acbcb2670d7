package bhumi

import "unicode"

// Script identifies the writing system of a text span.
type Script uint8

const (
	// Latin covers ASCII/Latin letters and everything the fonts' Latin
	// faces are expected to carry.
	Latin Script = iota
	// Devanagari covers the Devanagari block and its extensions.
	Devanagari
)

// ScriptRun refines an InlineRun into a script-homogeneous span. The
// concatenation of a run's segments reproduces the source text exactly.
type ScriptRun struct {
	Text   string
	Script Script
	Style  StyleFlags
}

// scriptRanges is the sorted set of Unicode block ranges that classify as
// Devanagari. Table driven so future scripts are an entry, not a branch.
var scriptRanges = []struct {
	lo, hi rune
	script Script
}{
	{0x0900, 0x097F, Devanagari}, // Devanagari
	{0x1CD0, 0x1CFF, Devanagari}, // Vedic Extensions
	{0xA8E0, 0xA8FF, Devanagari}, // Devanagari Extended
}

// strongScript classifies a rune that unambiguously belongs to one script.
// Neutral characters (digits, punctuation, spaces, joiners) return ok=false
// and inherit the class of the preceding character.
func strongScript(r rune) (Script, bool) {
	for _, rng := range scriptRanges {
		if r < rng.lo {
			break
		}
		if r <= rng.hi {
			return rng.script, true
		}
	}
	if unicode.IsLetter(r) {
		return Latin, true
	}
	return Latin, false
}

// Segment splits an InlineRun into script-homogeneous sub-runs. Adjacent
// characters of the same class merge; neutral characters inherit the class
// of the preceding character (Latin when first), so "भूमि 123" stays one
// Devanagari run instead of fragmenting mid-number.
func Segment(run InlineRun) []ScriptRun {
	if run.Text == "" {
		return nil
	}
	var out []ScriptRun
	cur := Latin
	start := 0
	started := false
	for i, r := range run.Text {
		s, strong := strongScript(r)
		if !strong {
			continue
		}
		if !started {
			started = true
			if s != cur {
				// Leading neutral characters stay Latin.
				if i > start {
					out = append(out, ScriptRun{Text: run.Text[start:i], Script: cur, Style: run.Style})
					start = i
				}
				cur = s
			}
			continue
		}
		if s != cur {
			out = append(out, ScriptRun{Text: run.Text[start:i], Script: cur, Style: run.Style})
			start = i
			cur = s
		}
	}
	out = append(out, ScriptRun{Text: run.Text[start:], Script: cur, Style: run.Style})
	return out
}

// SegmentAll segments every run in a sequence, preserving order.
func SegmentAll(runs []InlineRun) []ScriptRun {
	var out []ScriptRun
	for _, run := range runs {
		out = append(out, Segment(run)...)
	}
	return out
}
