package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"pkt.systems/bhumi"
)

// labels holds the fixed report strings for one output language.
type labels struct {
	title       string
	preparedFor string
	location    string
	footer      string
	disclaimer  string
}

var englishLabels = labels{
	title:       "Professional Land Use Report",
	preparedFor: "Prepared for",
	location:    "Location",
	footer:      "Page",
	disclaimer: "Disclaimer: This report is for informational purposes only. " +
		"Please consult with local zoning authorities, financial advisors, " +
		"and legal professionals before making any investment decisions.",
}

var hindiLabels = labels{
	title:       "पेशेवर भूमि उपयोग रिपोर्ट",
	preparedFor: "तैयार की गई",
	location:    "स्थान",
	footer:      "पृष्ठ",
	disclaimer: "अस्वीकरण: यह रिपोर्ट केवल सूचनात्मक उद्देश्यों के लिए है। " +
		"किसी भी निवेश निर्णय लेने से पहले कृपया स्थानीय जोनिंग अधिकारियों, " +
		"वित्तीय सलाहकारों और कानूनी पेशेवरों से परामर्श करें।",
}

// ReportOptions configures one generated report.
type ReportOptions struct {
	// Title replaces the default localized report title when set.
	Title    string
	Author   string
	Location string

	// LanguageTag is a BCP 47 tag. Hindi ("hi", "hi-IN") selects Hindi
	// labels; everything else, bad tags included, falls back to English.
	LanguageTag string

	Config Config
	Fonts  *FontSet
	Warn   func(string)
}

// GenerateReport converts report markdown to a finished PDF: a localized
// title block up front, the rendered body, and a closing disclaimer when
// the body carries none.
func GenerateReport(markdown string, opts ReportOptions) ([]byte, error) {
	cfg := DefaultConfig()
	applyConfig(&cfg, opts.Config)
	fonts := opts.Fonts
	if fonts == nil {
		var err error
		fonts, err = LoadFonts(cfg)
		if err != nil {
			return nil, fmt.Errorf("generate report: %w", err)
		}
	}
	lb := labelsFor(opts.LanguageTag)
	title := opts.Title
	if title == "" {
		title = lb.title
	}

	doc := bhumi.Document{&bhumi.Heading{Level: 1, Runs: boldRun(title)}}
	if opts.Author != "" {
		doc = append(doc, &bhumi.Heading{Level: 3, Runs: boldRun(lb.preparedFor + ": " + opts.Author)})
	}
	if opts.Location != "" {
		doc = append(doc, &bhumi.Heading{Level: 3, Runs: boldRun(lb.location + ": " + opts.Location)})
	}
	doc = append(doc, bhumi.Parse(markdown)...)
	if !hasDisclaimer(doc) {
		doc = append(doc, &bhumi.Paragraph{
			Runs:       []bhumi.InlineRun{{Text: lb.disclaimer}},
			Disclaimer: true,
		})
	}

	var buf bytes.Buffer
	if err := renderDocument(doc, cfg, fonts, lb.footer, opts.Warn, &buf); err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}
	return buf.Bytes(), nil
}

func labelsFor(tag string) labels {
	t, err := language.Parse(tag)
	if err != nil {
		return englishLabels
	}
	if base, _ := t.Base(); base.String() == "hi" {
		return hindiLabels
	}
	return englishLabels
}

// hasDisclaimer reports whether any heading or paragraph already mentions a
// disclaimer, in either language.
func hasDisclaimer(doc bhumi.Document) bool {
	for _, n := range doc {
		var text string
		switch node := n.(type) {
		case *bhumi.Heading:
			text = bhumi.PlainText(node.Runs)
		case *bhumi.Paragraph:
			if node.Disclaimer {
				return true
			}
			text = bhumi.PlainText(node.Runs)
		default:
			continue
		}
		if strings.Contains(text, "Disclaimer") || strings.Contains(text, "अस्वीकरण") {
			return true
		}
	}
	return false
}

func boldRun(text string) []bhumi.InlineRun {
	return []bhumi.InlineRun{{Text: text, Style: bhumi.StyleBold}}
}
