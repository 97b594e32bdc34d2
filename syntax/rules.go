// Package syntax holds the rule table shared by the highlighter and the
// preview renderer: which line prefixes start a block construct and which
// delimiter pairs mark an inline one.
package syntax

import (
	"regexp"
	"strings"
)

// BlockRule classifies a whole line by its prefix.
type BlockRule struct {
	Category Category

	// Prefix is the literal line prefix, including the trailing space.
	// Rules without a literal prefix use Pattern instead.
	Prefix  string
	Pattern *regexp.Regexp
}

// match returns the length of the marker if line starts with the rule's
// prefix.
func (r BlockRule) match(line string) (int, bool) {
	if r.Pattern != nil {
		loc := r.Pattern.FindStringIndex(line)
		if loc == nil {
			return 0, false
		}
		return loc[1], true
	}
	if strings.HasPrefix(line, r.Prefix) {
		return len(r.Prefix), true
	}
	return 0, false
}

// InlineRule is a delimiter pair scanned across the text with a regular
// expression. Group 1 of Pattern is the styled content.
type InlineRule struct {
	Category Category
	Pattern  *regexp.Regexp

	// Marker, when set, rejects matches whose preceding character is the
	// same marker. This keeps the inner half of a bold pair from being
	// reported as italic.
	Marker byte
}

// Rejected reports whether the match starting at start must be dropped
// because of the one-character lookback on Marker.
func (r InlineRule) Rejected(text string, start int) bool {
	return r.Marker != 0 && start > 0 && text[start-1] == r.Marker
}

// Block rules, in evaluation order. The first rule that matches a line wins.
var BlockRules = []BlockRule{
	{Category: Header1, Prefix: "# "},
	{Category: Header2, Prefix: "## "},
	{Category: Header3, Prefix: "### "},
	{Category: Header4, Prefix: "#### "},
	{Category: Header5, Prefix: "##### "},
	{Category: Header6, Prefix: "###### "},
	{Category: Blockquote, Prefix: "> "},
	{Category: ListItem, Pattern: regexp.MustCompile(`^(?:[*-]|\d+\.)\s+`)},
}

// Inline rules, in precedence order. Later rules paint over earlier ones
// where their ranges overlap.
var InlineRules = []InlineRule{
	{Category: Bold, Pattern: regexp.MustCompile(`\*\*(.+?)\*\*`)},
	{Category: Bold, Pattern: regexp.MustCompile(`__(.+?)__`)},
	{Category: Italic, Pattern: regexp.MustCompile(`\*(.+?)\*`), Marker: '*'},
	{Category: Italic, Pattern: regexp.MustCompile(`_(.+?)_`), Marker: '_'},
	{Category: InlineCode, Pattern: regexp.MustCompile("`(.+?)`")},
	{Category: Link, Pattern: regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)},
}

// FenceMarker opens and closes a fenced code block when it starts a line.
const FenceMarker = "```"

// ClassifyLine returns the block category of line and the length of its
// marker. Lines that match no block rule are Plain with a zero-length marker.
func ClassifyLine(line string) (Category, int) {
	for _, r := range BlockRules {
		if n, ok := r.match(line); ok {
			return r.Category, n
		}
	}
	return Plain, 0
}

// IsFence reports whether line opens or closes a fenced code block. A line
// that both opens and closes a fence is a one-line block, not a fence.
func IsFence(line string) bool {
	if !strings.HasPrefix(line, FenceMarker) {
		return false
	}
	_, ok := OneLineFence(line)
	return !ok
}

// OneLineFence returns the code of a line that opens and closes a fence,
// such as ```x := 1```. The code must not be empty.
func OneLineFence(line string) (string, bool) {
	n := len(FenceMarker)
	if len(line) <= 2*n || !strings.HasPrefix(line, FenceMarker) || !strings.HasSuffix(line, FenceMarker) {
		return "", false
	}
	return line[n : len(line)-n], true
}

// FencedLines marks which lines belong to a fenced code block, fence lines
// included. Fences pair up in order; a trailing unmatched fence is ignored.
func FencedLines(lines []string) []bool {
	in := make([]bool, len(lines))
	open := -1
	for i, l := range lines {
		if !IsFence(l) {
			continue
		}
		if open < 0 {
			open = i
			continue
		}
		for j := open; j <= i; j++ {
			in[j] = true
		}
		open = -1
	}
	return in
}
