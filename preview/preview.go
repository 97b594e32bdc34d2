// Package preview turns Markdown source into the styled blocks shown in the
// read-only preview pane.
//
// Unlike the highlighter, the renderer walks each line with a single cursor
// so that the runs of a block never overlap: every byte after the block
// marker belongs to exactly one run.
package preview

import (
	"strings"
	"unicode/utf8"

	"github.com/mdpro/mdpro/syntax"
	"github.com/mdpro/mdpro/theme"
)

// Run is a piece of a line rendered with one category. Start and End are the
// byte offsets, relative to the end of the block marker, of the source the
// run consumed, delimiters and link targets included.
type Run struct {
	Text     string           `json:"text"`
	Category syntax.Category  `json:"category"`
	Style    theme.Attributes `json:"style"`
	Start    int              `json:"start"`
	End      int              `json:"end"`
}

// Block is one rendered source line.
type Block struct {
	// Line is the zero-based index of the source line.
	Line     int              `json:"line"`
	Category syntax.Category  `json:"category"`
	Marker   string           `json:"marker,omitempty"`
	Style    theme.Attributes `json:"style"`
	Runs     []Run            `json:"runs"`
}

// Text returns the concatenated text of the block's runs.
func (b Block) Text() string {
	var s strings.Builder
	for _, r := range b.Runs {
		s.WriteString(r.Text)
	}
	return s.String()
}

// Render converts text into one block per line. Blank text yields no blocks.
func Render(text string, cfg theme.Config) []Block {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	fenced := syntax.FencedLines(lines)
	blocks := make([]Block, 0, len(lines))
	for i, line := range lines {
		var b Block
		if code, ok := syntax.OneLineFence(line); ok && !fenced[i] {
			b = renderOneLineCode(code, cfg)
		} else if fenced[i] {
			b = renderCode(line, cfg)
		} else {
			b = renderLine(line, cfg)
		}
		b.Line = i
		blocks = append(blocks, b)
	}
	return blocks
}

func renderCode(line string, cfg theme.Config) Block {
	b := Block{
		Category: syntax.CodeBlock,
		Style:    cfg.Style(syntax.CodeBlock),
	}
	if syntax.IsFence(line) {
		b.Marker = line
		return b
	}
	b.Runs = single(line, syntax.CodeBlock, cfg)
	return b
}

// renderOneLineCode renders a line that opens and closes a fence. The
// opening fence is the marker and the run consumes the closing one.
func renderOneLineCode(code string, cfg theme.Config) Block {
	b := Block{
		Category: syntax.CodeBlock,
		Marker:   syntax.FenceMarker,
		Style:    cfg.Style(syntax.CodeBlock),
		Runs:     single(code, syntax.CodeBlock, cfg),
	}
	b.Runs[0].End += len(syntax.FenceMarker)
	return b
}

func renderLine(line string, cfg theme.Config) Block {
	cat, n := syntax.ClassifyLine(line)
	if cat.IsHeader() || cat == syntax.Blockquote {
		return Block{
			Category: cat,
			Marker:   line[:n],
			Style:    cfg.Style(cat),
			Runs:     single(line[n:], cat, cfg),
		}
	}
	return Block{
		Category: syntax.Plain,
		Style:    cfg.Style(syntax.Plain),
		Runs:     scanInline(line, cfg),
	}
}

// single returns s as one run, or no runs when s is empty.
func single(s string, cat syntax.Category, cfg theme.Config) []Run {
	if s == "" {
		return nil
	}
	return []Run{{
		Text:     s,
		Category: cat,
		Style:    cfg.Style(cat),
		End:      len(s),
	}}
}

// scanInline walks line left to right. At each position it tries bold,
// italic, inline code, image and link in that order; the first construct
// that closes becomes a run and the cursor skips past it. Anything else is
// collected into plain runs.
func scanInline(line string, cfg theme.Config) []Run {
	var (
		runs  []Run
		plain int // start of the pending plain text
		pos   int
	)

	flushPlain := func() {
		if pos > plain {
			runs = append(runs, Run{
				Text:     line[plain:pos],
				Category: syntax.Plain,
				Style:    cfg.Style(syntax.Plain),
				Start:    plain,
				End:      pos,
			})
		}
	}

	for pos < len(line) {
		if text, end, cat, ok := matchInline(line, pos); ok {
			flushPlain()
			runs = append(runs, Run{
				Text:     text,
				Category: cat,
				Style:    cfg.Style(cat),
				Start:    pos,
				End:      end,
			})
			pos = end
			plain = end
			continue
		}
		_, size := utf8.DecodeRuneInString(line[pos:])
		pos += size
	}
	flushPlain()
	return runs
}

// matchInline tries every inline construct at pos and returns the display
// text, the end of the consumed source and the run category.
func matchInline(line string, pos int) (string, int, syntax.Category, bool) {
	switch c := line[pos]; c {
	case '*', '_':
		if text, end, ok := matchPair(line, pos, string([]byte{c, c})); ok {
			return text, end, syntax.Bold, true
		}
		if text, end, ok := matchItalic(line, pos, c); ok {
			return text, end, syntax.Italic, true
		}
	case '`':
		if text, end, ok := matchPair(line, pos, "`"); ok {
			return text, end, syntax.InlineCode, true
		}
	case '!':
		if pos+1 < len(line) && line[pos+1] == '[' {
			if text, end, ok := matchLink(line, pos+1); ok {
				return text, end, syntax.Image, true
			}
		}
	case '[':
		if text, end, ok := matchLink(line, pos); ok {
			return text, end, syntax.Link, true
		}
	}
	return "", 0, syntax.Plain, false
}

// matchPair matches delim, non-empty content, and the first following delim.
func matchPair(line string, pos int, delim string) (string, int, bool) {
	if !strings.HasPrefix(line[pos:], delim) {
		return "", 0, false
	}
	start := pos + len(delim)
	n := strings.Index(line[start:], delim)
	if n <= 0 {
		return "", 0, false
	}
	return line[start : start+n], start + n + len(delim), true
}

// matchItalic matches a single marker pair. Neither delimiter may touch a
// second marker, which would make it part of a bold pair.
func matchItalic(line string, pos int, marker byte) (string, int, bool) {
	if pos > 0 && line[pos-1] == marker {
		return "", 0, false
	}
	n := strings.IndexByte(line[pos+1:], marker)
	if n <= 0 {
		return "", 0, false
	}
	closing := pos + 1 + n
	if closing+1 < len(line) && line[closing+1] == marker {
		return "", 0, false
	}
	return line[pos+1 : closing], closing + 1, true
}

// matchLink matches [text](target) starting at the opening bracket. The
// target is consumed but not returned.
func matchLink(line string, pos int) (string, int, bool) {
	n := strings.IndexByte(line[pos:], ']')
	if n <= 1 {
		return "", 0, false
	}
	closing := pos + n
	if closing+1 >= len(line) || line[closing+1] != '(' {
		return "", 0, false
	}
	m := strings.IndexByte(line[closing+2:], ')')
	if m < 0 {
		return "", 0, false
	}
	return line[pos+1 : closing], closing + 2 + m + 1, true
}
