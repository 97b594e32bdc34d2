package syntax

import (
	"fmt"
)

// Category tags a range of Markdown source with the construct it belongs to.
type Category int

const (
	Plain Category = iota
	Header1
	Header2
	Header3
	Header4
	Header5
	Header6
	Bold
	Italic
	InlineCode
	CodeBlock
	Link
	Image
	ListItem
	Blockquote
)

var categoryKeys = [...]string{
	Plain:      "text",
	Header1:    "h1",
	Header2:    "h2",
	Header3:    "h3",
	Header4:    "h4",
	Header5:    "h5",
	Header6:    "h6",
	Bold:       "bold",
	Italic:     "italic",
	InlineCode: "code",
	CodeBlock:  "code_block",
	Link:       "link",
	Image:      "image",
	ListItem:   "list",
	Blockquote: "blockquote",
}

// Categories lists every category in declaration order.
func Categories() []Category {
	c := make([]Category, 0, len(categoryKeys))
	for i := range categoryKeys {
		c = append(c, Category(i))
	}
	return c
}

// String returns the settings key of the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryKeys) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryKeys[c]
}

// IsHeader reports whether c is one of the six header levels.
func (c Category) IsHeader() bool {
	return c >= Header1 && c <= Header6
}

// Level returns the header level (1-6), or 0 for other categories.
func (c Category) Level() int {
	if !c.IsHeader() {
		return 0
	}
	return int(c-Header1) + 1
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCategory maps a settings key back to its category.
func ParseCategory(key string) (Category, error) {
	for i, k := range categoryKeys {
		if k == key {
			return Category(i), nil
		}
	}
	return Plain, fmt.Errorf("invalid syntax category: %s", key)
}
