// Package theme describes how each syntax category looks on a display
// surface.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdpro/mdpro/syntax"
)

// Attributes is the visual bundle applied to one syntax category.
type Attributes struct {
	Foreground string `json:"color"`
	Background string `json:"background_color,omitempty"`
	FontFamily string `json:"font_family"`
	FontSize   int    `json:"font_size"`
	Bold       bool   `json:"bold"`
	Italic     bool   `json:"italic"`
	Underline  bool   `json:"underline"`
}

// Config maps every syntax category to its attributes. It is resolved by the
// settings layer and only read by the renderers.
type Config map[syntax.Category]Attributes

// Style returns the attributes for c, falling back to the Plain entry.
func (c Config) Style(cat syntax.Category) Attributes {
	if a, ok := c[cat]; ok {
		return a
	}
	return c[syntax.Plain]
}

// ValidColor reports whether s is a #RRGGBB colour.
func ValidColor(s string) bool {
	if len(s) != 7 {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}

// Lipgloss converts the attributes into a terminal style. Font family and
// size have no terminal equivalent and are ignored.
func (a Attributes) Lipgloss() lipgloss.Style {
	s := lipgloss.NewStyle().
		TabWidth(lipgloss.NoTabConversion).
		Bold(a.Bold).
		Italic(a.Italic).
		Underline(a.Underline)
	if a.Foreground != "" {
		s = s.Foreground(lipgloss.Color(a.Foreground))
	}
	if a.Background != "" {
		s = s.Background(lipgloss.Color(a.Background))
	}
	return s
}

// CSS renders the attributes as a CSS declaration list.
func (a Attributes) CSS() string {
	var b strings.Builder
	if a.Foreground != "" {
		fmt.Fprintf(&b, "color: %s; ", a.Foreground)
	}
	if a.Background != "" {
		fmt.Fprintf(&b, "background-color: %s; ", a.Background)
	}
	if a.FontFamily != "" {
		fmt.Fprintf(&b, "font-family: '%s'; ", a.FontFamily)
	}
	if a.FontSize > 0 {
		fmt.Fprintf(&b, "font-size: %dpt; ", a.FontSize)
	}
	if a.Bold {
		b.WriteString("font-weight: bold; ")
	}
	if a.Italic {
		b.WriteString("font-style: italic; ")
	}
	if a.Underline {
		b.WriteString("text-decoration: underline; ")
	}
	return strings.TrimSpace(b.String())
}
