// Package export converts Markdown documents into standalone HTML pages
// styled with the preview theme.
package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mdpro/mdpro/syntax"
	"github.com/mdpro/mdpro/theme"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Options control the generated page.
type Options struct {
	Title      string
	Background string
}

var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { {{.Body}} line-height: 1.6; padding: 20px;{{with .Background}} background-color: {{.}};{{end}} }
{{range .Rules}}{{.Selector}} { {{.Declarations}} }
{{end}}pre { padding: 16px; border-radius: 6px; overflow-x: auto; }
pre code { background-color: transparent; padding: 0; }
code { padding: 2px 6px; border-radius: 3px; }
blockquote { margin-left: 0; padding-left: 16px; }
img { max-width: 100%; height: auto; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`))

type rule struct {
	Selector     template.CSS
	Declarations template.CSS
}

// selectors maps categories to the HTML elements goldmark produces for them.
var selectors = []struct {
	category syntax.Category
	selector string
}{
	{syntax.Header1, "h1"},
	{syntax.Header2, "h2"},
	{syntax.Header3, "h3"},
	{syntax.Header4, "h4"},
	{syntax.Header5, "h5"},
	{syntax.Header6, "h6"},
	{syntax.Bold, "strong"},
	{syntax.Italic, "em"},
	{syntax.InlineCode, "code"},
	{syntax.CodeBlock, "pre"},
	{syntax.Link, "a"},
	{syntax.Image, "img"},
	{syntax.ListItem, "li"},
	{syntax.Blockquote, "blockquote"},
}

// HTML renders src as a complete HTML page using cfg for the stylesheet.
func HTML(src []byte, cfg theme.Config, opts Options) ([]byte, error) {
	var body bytes.Buffer
	if err := converter.Convert(src, &body); err != nil {
		return nil, fmt.Errorf("could not convert markdown: %w", err)
	}

	rules := make([]rule, 0, len(selectors))
	for _, s := range selectors {
		if css := cfg.Style(s.category).CSS(); css != "" {
			rules = append(rules, rule{Selector: template.CSS(s.selector), Declarations: template.CSS(css)})
		}
	}

	title := opts.Title
	if title == "" {
		title = "Untitled"
	}

	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title      string
		Body       template.CSS
		Background template.CSS
		Rules      []rule
		Content    template.HTML
	}{
		Title:      title,
		Body:       template.CSS(cfg.Style(syntax.Plain).CSS()),
		Background: template.CSS(opts.Background),
		Rules:      rules,
		Content:    template.HTML(body.String()), //nolint:gosec
	})
	if err != nil {
		return nil, fmt.Errorf("could not render page: %w", err)
	}
	return out.Bytes(), nil
}
