package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/mdpro/mdpro/export"
	"github.com/mdpro/mdpro/settings"
	"github.com/mdpro/mdpro/theme"
	"github.com/spf13/cobra"
)

var (
	outputFile  string
	toClipboard bool
	title       string

	exportCmd = &cobra.Command{
		Use:   "export [SOURCE]",
		Short: "Export a markdown file as a styled HTML page",
		Long: paragraph(fmt.Sprintf("\n%s a markdown file to a standalone HTML page using your preview colors and fonts.",
			keyword("Export"))),
		Example: paragraph("mdpro export notes.md -o notes.html\nmdpro export --clipboard notes.md"),
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
			page, err := exportHTML(text, src.name)
			if err != nil {
				return err
			}

			if toClipboard {
				if err := clipboard.WriteAll(string(page)); err != nil {
					return fmt.Errorf("could not copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied HTML to clipboard") //nolint:errcheck
			}
			if outputFile != "" {
				if err := os.WriteFile(outputFile, page, 0o644); err != nil { //nolint:gosec
					return fmt.Errorf("could not write %s: %w", outputFile, err)
				}
				log.Debug("Exported HTML", "path", outputFile)
				return nil
			}
			if toClipboard {
				return nil
			}
			_, err = cmd.OutOrStdout().Write(page)
			return err
		},
	}
)

func exportHTML(text, name string) ([]byte, error) {
	s, _, err := loadSettings()
	if err != nil {
		return nil, err
	}
	bg, err := s.Get(settings.BackgroundColor)
	if err != nil {
		return nil, err
	}
	if !theme.ValidColor(bg) {
		bg = ""
	}

	t := title
	if t == "" && name != "" {
		t = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return export.HTML([]byte(text), s.Preview(), export.Options{
		Title:      t,
		Background: bg,
	})
}

func init() {
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the page to a file")
	exportCmd.Flags().BoolVarP(&toClipboard, "clipboard", "c", false, "copy the page to the clipboard")
	exportCmd.Flags().StringVarP(&title, "title", "t", "", "page title (default: file name)")
}
