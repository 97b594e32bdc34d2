package highlight

import (
	"reflect"
	"testing"

	"github.com/mdpro/mdpro/syntax"
	"github.com/mdpro/mdpro/theme"
)

func span(c syntax.Category, start, end int) Span {
	return Span{Category: c, Start: start, End: end}
}

func TestAnnotate(t *testing.T) {
	tt := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "header",
			in:   "# Hello",
			want: []Span{span(syntax.Header1, 0, 7)},
		},
		{
			name: "blocks and inline",
			in:   "# **Big**\n- item with `code`",
			want: []Span{
				span(syntax.Header1, 0, 9),
				span(syntax.ListItem, 10, 28),
				span(syntax.Bold, 4, 7),
				span(syntax.Italic, 3, 7),
				span(syntax.InlineCode, 23, 27),
			},
		},
		{
			name: "blockquote and ordered list",
			in:   "> said\n3. third",
			want: []Span{
				span(syntax.Blockquote, 0, 6),
				span(syntax.ListItem, 7, 15),
			},
		},
		{
			name: "underscore emphasis",
			in:   "__strong__ snake_case",
			want: []Span{
				span(syntax.Bold, 2, 8),
				span(syntax.Italic, 1, 8),
			},
		},
		{
			name: "italic lookback rejects a match glued to the previous one",
			in:   "*a**b*",
			want: []Span{
				span(syntax.Italic, 1, 2),
			},
		},
		{
			name: "triple markers stay ambiguous",
			in:   "***text***",
			want: []Span{
				span(syntax.Bold, 2, 7),
				span(syntax.Italic, 1, 2),
				span(syntax.Italic, 8, 9),
			},
		},
		{
			name: "link styles the display text only",
			in:   "see [site](http://x.com) now",
			want: []Span{span(syntax.Link, 5, 9)},
		},
		{
			name: "delimiters do not cross lines",
			in:   "**a\nb** `c\nd`",
			want: nil,
		},
		{
			name: "unterminated markers",
			in:   "**open and `tick and [text](",
			want: nil,
		},
	}

	for _, v := range tt {
		t.Run(v.name, func(t *testing.T) {
			got := Annotate(v.in, theme.Config{})
			if !reflect.DeepEqual(got, v.want) {
				t.Fatalf("expected %+v; got %+v", v.want, got)
			}
		})
	}
}

func TestAnnotateOverlap(t *testing.T) {
	spans := Annotate("**[text](url)**", theme.Config{})

	var bold, link *Span
	for i := range spans {
		switch spans[i].Category {
		case syntax.Bold:
			bold = &spans[i]
		case syntax.Link:
			link = &spans[i]
		}
	}
	if bold == nil || link == nil {
		t.Fatalf("expected both a bold and a link span, got %+v", spans)
	}
	if !bold.Overlaps(*link) {
		t.Errorf("expected %+v and %+v to overlap", *bold, *link)
	}
	if *link != span(syntax.Link, 3, 7) {
		t.Errorf("unexpected link span %+v", *link)
	}
}

func TestAnnotateResolvesStyles(t *testing.T) {
	cfg := theme.Config{
		syntax.Plain:   {Foreground: "#d4d4d4"},
		syntax.Bold:    {Foreground: "#fab387", Bold: true},
		syntax.Header2: {Foreground: "#89b4fa", FontSize: 16, Bold: true},
	}
	spans := Annotate("## a **b** [c](d)", cfg)
	for _, s := range spans {
		if s.Style != cfg.Style(s.Category) {
			t.Errorf("span %v carries %+v; expected %+v", s.Category, s.Style, cfg.Style(s.Category))
		}
	}
	if len(spans) == 0 || spans[0].Style.FontSize != 16 {
		t.Errorf("expected the header span first, got %+v", spans)
	}
}

func TestAnnotateIdempotent(t *testing.T) {
	in := "# T\n\n*a* **b** `c` [d](e)\n> q\n- l"
	a := Annotate(in, theme.Config{})
	b := Annotate(in, theme.Config{})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("annotate is not idempotent:\n%+v\n%+v", a, b)
	}
	for _, s := range a {
		if s.Start < 0 || s.Start >= s.End || s.End > len(in) {
			t.Errorf("span out of bounds: %+v", s)
		}
	}
}
