package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mdpro/mdpro/editor"
	"github.com/mdpro/mdpro/highlight"
	"github.com/mdpro/mdpro/syntax"
	"github.com/mdpro/mdpro/ui"
	"github.com/spf13/cobra"
)

var (
	listSpans bool

	highlightCmd = &cobra.Command{
		Use:   "highlight [SOURCE]",
		Short: "Print a markdown file with syntax highlighting",
		Long: paragraph(fmt.Sprintf("\n%s the markdown source in place, the way the editor colors it. Use --spans to list the styled ranges instead.",
			keyword("Highlight"))),
		Example: paragraph("mdpro highlight README.md\nmdpro highlight --spans notes.md"),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sourceFromArgs(args)
			if err != nil {
				return err
			}
			text, err := readSource(src)
			if err != nil {
				return err
			}
			return executeHighlight(text, cmd.OutOrStdout())
		},
	}
)

// spanRecord is a span as listed by --spans.
type spanRecord struct {
	Category syntax.Category `json:"category"`
	Start    int             `json:"start"`
	End      int             `json:"end"`
	Line     int             `json:"line"`
	Column   int             `json:"column"`
	Text     string          `json:"text"`
}

func executeHighlight(text string, w io.Writer) error {
	s, _, err := loadSettings()
	if err != nil {
		return err
	}
	spans := highlight.Annotate(text, s.Editor())

	if !listSpans {
		_, err := fmt.Fprintln(w, ui.PaintSpans(text, spans))
		return err
	}

	records := make([]spanRecord, 0, len(spans))
	for _, sp := range spans {
		line, col := editor.Position(text, sp.Start)
		records = append(records, spanRecord{
			Category: sp.Category,
			Start:    sp.Start,
			End:      sp.End,
			Line:     line,
			Column:   col,
			Text:     text[sp.Start:sp.End],
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func init() {
	highlightCmd.Flags().BoolVar(&listSpans, "spans", false, "list the highlight spans as JSON")
}
