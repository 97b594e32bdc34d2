// Package highlight computes the style spans used to colour the Markdown
// source buffer in place.
//
// Every call rescans the whole text. Block rules tag whole lines, inline
// rules are independent global scans, and nothing is merged: spans from
// different rules may overlap, and painting them in the returned order lets
// the later rule win.
package highlight

import (
	"strings"

	"github.com/mdpro/mdpro/syntax"
	"github.com/mdpro/mdpro/theme"
)

// Span styles the byte range [Start, End) of the annotated text.
type Span struct {
	Category syntax.Category  `json:"category"`
	Start    int              `json:"start"`
	End      int              `json:"end"`
	Style    theme.Attributes `json:"style"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Annotate returns the spans for text in painting order: block spans first,
// then each inline rule in precedence order.
func Annotate(text string, cfg theme.Config) []Span {
	if text == "" {
		return nil
	}

	spans := annotateBlocks(text, cfg)
	for _, r := range syntax.InlineRules {
		spans = append(spans, annotateInline(text, r, cfg)...)
	}
	return spans
}

// annotateBlocks emits one whole-line span per line that starts with a block
// marker.
func annotateBlocks(text string, cfg theme.Config) []Span {
	var spans []Span
	offset := 0
	for _, line := range strings.Split(text, "\n") {
		if cat, _ := syntax.ClassifyLine(line); cat != syntax.Plain {
			spans = append(spans, Span{
				Category: cat,
				Start:    offset,
				End:      offset + len(line),
				Style:    cfg.Style(cat),
			})
		}
		offset += len(line) + 1
	}
	return spans
}

// annotateInline runs one inline rule across the whole text and emits a span
// over each match's content group.
func annotateInline(text string, r syntax.InlineRule, cfg theme.Config) []Span {
	var spans []Span
	for _, m := range r.Pattern.FindAllStringSubmatchIndex(text, -1) {
		if r.Rejected(text, m[0]) {
			continue
		}
		spans = append(spans, Span{
			Category: r.Category,
			Start:    m[2],
			End:      m[3],
			Style:    cfg.Style(r.Category),
		})
	}
	return spans
}
