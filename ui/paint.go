package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdpro/mdpro/highlight"
	"github.com/mdpro/mdpro/preview"
	"github.com/mdpro/mdpro/syntax"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const blockquoteIndent = 2

// segment is a byte range of the source painted by one span, or by none
// when span is -1.
type segment struct {
	start, end int
	span       int
}

// segments splits text into ranges that share the same topmost span. Spans
// are applied in order, so a later span wins where two overlap.
func segments(text string, spans []highlight.Span) []segment {
	if text == "" {
		return nil
	}
	owner := make([]int, len(text))
	for i := range owner {
		owner[i] = -1
	}
	for i, s := range spans {
		for j := max(s.Start, 0); j < min(s.End, len(text)); j++ {
			owner[j] = i
		}
	}

	var segs []segment
	start := 0
	for i := 1; i <= len(text); i++ {
		if i == len(text) || owner[i] != owner[start] {
			segs = append(segs, segment{start: start, end: i, span: owner[start]})
			start = i
		}
	}
	return segs
}

// PaintSpans renders the source text with each span's style applied.
func PaintSpans(text string, spans []highlight.Span) string {
	var b strings.Builder
	for _, seg := range segments(text, spans) {
		s := text[seg.start:seg.end]
		if seg.span < 0 {
			b.WriteString(s)
			continue
		}
		b.WriteString(renderLines(spans[seg.span].Style.Lipgloss(), s))
	}
	return b.String()
}

// renderLines styles each line separately so lipgloss does not pad lines of
// a multi-line segment to a common width.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// PaintBlocks renders the preview document, word-wrapped at width. A width
// of zero disables wrapping.
func PaintBlocks(blocks []preview.Block, width int) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, paintBlock(b, width))
	}
	return strings.Join(lines, "\n")
}

func paintBlock(b preview.Block, width int) string {
	var s strings.Builder
	for _, r := range b.Runs {
		s.WriteString(r.Style.Lipgloss().Render(r.Text))
	}
	line := s.String()

	switch {
	case b.Category == syntax.Blockquote:
		if width > blockquoteIndent {
			line = wordwrap.String(line, width-blockquoteIndent)
		}
		return indent.String(line, blockquoteIndent)
	case b.Category == syntax.CodeBlock:
		// Code keeps its own line breaks.
		return line
	case width > 0:
		return wordwrap.String(line, width)
	}
	return line
}
