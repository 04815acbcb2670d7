package bhumi

import "strings"

// parseInline scans a line left to right and splits it into styled runs.
// Emphasis delimiters pair with the nearest closing delimiter of the same
// kind, first match wins. Unterminated delimiters are kept as literal text,
// never reported as errors.
func parseInline(text string) []InlineRun {
	var runs []InlineRun
	var cur strings.Builder
	var style StyleFlags
	italicDelim := byte(0)

	flush := func() {
		if cur.Len() > 0 {
			runs = append(runs, InlineRun{Text: cur.String(), Style: style})
			cur.Reset()
		}
	}

	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "**") {
			if style.Bold() {
				flush()
				style &^= StyleBold
				i += 2
				continue
			}
			if strings.Contains(text[i+2:], "**") {
				flush()
				style |= StyleBold
				i += 2
				continue
			}
			cur.WriteString("**")
			i += 2
			continue
		}
		c := text[i]
		if c == '*' || c == '_' {
			if style.Italic() && c == italicDelim {
				flush()
				style &^= StyleItalic
				italicDelim = 0
				i++
				continue
			}
			if !style.Italic() && strings.IndexByte(text[i+1:], c) >= 0 {
				flush()
				style |= StyleItalic
				italicDelim = c
				i++
				continue
			}
			cur.WriteByte(c)
			i++
			continue
		}
		cur.WriteByte(c)
		i++
	}
	flush()
	return runs
}
