package export

import (
	"strings"
	"testing"

	"github.com/mdpro/mdpro/syntax"
	"github.com/mdpro/mdpro/theme"
)

func TestHTML(t *testing.T) {
	cfg := theme.Config{
		syntax.Plain:   {Foreground: "#d4d4d4", FontFamily: "Arial", FontSize: 12},
		syntax.Header1: {Foreground: "#89b4fa", Bold: true},
		syntax.Link:    {Foreground: "#89b4fa", Underline: true},
	}
	src := []byte("# Title\n\nSome **bold** and [a link](https://example.com).\n\n> quoted\n")

	out, err := HTML(src, cfg, Options{Title: "Notes <draft>", Background: "#1e1e1e"})
	if err != nil {
		t.Fatal(err)
	}
	page := string(out)

	for _, want := range []string{
		"<title>Notes &lt;draft&gt;</title>",
		`<h1 id="title">Title</h1>`,
		"<strong>bold</strong>",
		`<a href="https://example.com">a link</a>`,
		"<blockquote>",
		"h1 { color: #89b4fa; font-weight: bold; }",
		"a { color: #89b4fa; text-decoration: underline; }",
		"background-color: #1e1e1e;",
		"font-family: 'Arial';",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("expected page to contain %q:\n%s", want, page)
		}
	}
}

func TestHTMLDefaults(t *testing.T) {
	out, err := HTML(nil, theme.Config{}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	page := string(out)
	if !strings.Contains(page, "<title>Untitled</title>") {
		t.Errorf("expected the default title:\n%s", page)
	}
	if strings.Contains(page, "strong {") {
		t.Errorf("expected no rules for an empty theme:\n%s", page)
	}
}
