package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mdpro/mdpro/preview"
	"github.com/mdpro/mdpro/ui"
	"github.com/mdpro/mdpro/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	useGlamour  bool
	previewJSON bool

	previewCmd = &cobra.Command{
		Use:   "preview [SOURCE]",
		Short: "Print the rendered preview of a markdown file",
		Long: paragraph(fmt.Sprintf("\n%s a markdown file the way the preview pane shows it. Pass - or pipe to read from stdin.",
			keyword("Render"))),
		Example: paragraph("mdpro preview README.md\ncat notes.md | mdpro preview --glamour"),
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
			useGlamour = viper.GetBool("glamour")
			return executePreview(text, cmd.OutOrStdout())
		},
	}
)

func executePreview(text string, w io.Writer) error {
	if useGlamour {
		return executeGlamour(text, w)
	}

	s, _, err := loadSettings()
	if err != nil {
		return err
	}
	blocks := preview.Render(text, s.Preview())

	if previewJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(blocks)
	}

	out := ui.PaintBlocks(blocks, int(width)) //nolint:gosec
	if out != "" {
		out += "\n"
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// executeGlamour renders the full CommonMark document instead of the
// line-based preview.
func executeGlamour(text string, w io.Writer) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithColorProfile(lipgloss.ColorProfile()),
		utils.GlamourStyle(style),
		glamour.WithWordWrap(int(width)), //nolint:gosec
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(text)
	if err != nil {
		return err
	}

	// trim lines
	lines := strings.Split(out, "\n")
	var content strings.Builder
	for i, s := range lines {
		content.WriteString(strings.TrimSpace(s))

		// don't add an artificial newline after the last split
		if i+1 < len(lines) {
			content.WriteByte('\n')
		}
	}
	_, err = fmt.Fprint(w, content.String())
	return err
}

func init() {
	previewCmd.Flags().BoolVarP(&useGlamour, "glamour", "g", false, "render the full document with glamour")
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "print the rendered blocks as JSON")
	_ = viper.BindPFlag("glamour", previewCmd.Flags().Lookup("glamour"))
}
