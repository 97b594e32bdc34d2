package editor

import (
	"strings"
	"unicode/utf8"
)

// Markup is a kind of inline formatting that can be wrapped around a
// selection.
type Markup int

const (
	Bold Markup = iota
	Italic
	Code
	Link
)

func (m Markup) delimiters() (string, string) {
	switch m {
	case Bold:
		return "**", "**"
	case Italic:
		return "*", "*"
	case Code:
		return "`", "`"
	default:
		return "[", "](url)"
	}
}

// linkTemplate is inserted when a link is requested without a selection.
const linkTemplate = "[text](url)"

// Edit is the result of applying markup: the new text and the byte offset
// where the cursor should be placed.
type Edit struct {
	Text   string
	Cursor int
}

// Wrap applies m to the byte range [start, end) of text. A non-empty
// selection is wrapped in the delimiters and the cursor is placed after the
// closing one. An empty selection inserts an empty pair with the cursor
// between the delimiters, or the link template with the cursor after it.
// Offsets are clamped to the text.
func Wrap(m Markup, text string, start, end int) Edit {
	start, end = clamp(start, len(text)), clamp(end, len(text))
	if start > end {
		start, end = end, start
	}

	open, closing := m.delimiters()
	var b strings.Builder
	b.WriteString(text[:start])

	var cursor int
	switch {
	case start < end:
		b.WriteString(open + text[start:end] + closing)
		cursor = b.Len()
	case m == Link:
		b.WriteString(linkTemplate)
		cursor = b.Len()
	default:
		b.WriteString(open)
		cursor = b.Len()
		b.WriteString(closing)
	}
	b.WriteString(text[end:])
	return Edit{Text: b.String(), Cursor: cursor}
}

// Insertion returns what to type at the cursor when there is no selection,
// and how many characters the cursor must then move back to sit between the
// delimiters.
func Insertion(m Markup) (string, int) {
	e := Wrap(m, "", 0, 0)
	return e.Text, utf8.RuneCountInString(e.Text[e.Cursor:])
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// Position returns the 1-based line and column of the byte offset in text.
// Columns count runes.
func Position(text string, offset int) (int, int) {
	offset = clamp(offset, len(text))
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1
	return line, col
}
