package main

import (
	"fmt"
	"io"
	"unicode"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/mdpro/mdpro/ui"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	filter       string
	showAllFiles bool

	lsCmd = &cobra.Command{
		Use:   "ls [DIR]",
		Short: "List markdown files",
		Long: paragraph(fmt.Sprintf("\n%s the markdown files beneath DIR, or beneath the folder you last saved a file in.",
			keyword("List"))),
		Example: paragraph("mdpro ls\nmdpro ls ~/notes -f todo"),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			} else if s, _, err := loadSettings(); err == nil && s.LastFolder() != "" {
				dir = s.LastFolder()
			}
			return listFiles(dir, cmd.OutOrStdout())
		},
	}
)

func listFiles(dir string, w io.Writer) error {
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}
	cfg.ShowAllFiles = showAllFiles

	files, err := ui.FindFiles(dir, cfg)
	if err != nil {
		return err
	}
	if filter != "" {
		files, err = filterFiles(files, filter)
		if err != nil {
			return err
		}
	}

	nameWidth := 0
	for _, f := range files {
		nameWidth = max(nameWidth, runewidth.StringWidth(f.Name))
	}
	nameWidth = min(nameWidth, 60)

	for _, f := range files {
		name := runewidth.FillRight(runewidth.Truncate(f.Name, nameWidth, "…"), nameWidth)
		size := runewidth.FillLeft(humanize.Bytes(uint64(f.Size)), 8) //nolint:gosec
		_, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			keyword(name), "  ", size, "  ", faint(humanize.Time(f.ModTime)),
		))
		if err != nil {
			return err
		}
	}
	return nil
}

// filterFiles keeps the files whose names fuzzy-match term, best match
// first. Accents are ignored on both sides.
func filterFiles(files []ui.File, term string) ([]ui.File, error) {
	targets := make([]string, len(files))
	for i, f := range files {
		n, err := normalize(f.Name)
		if err != nil {
			return nil, err
		}
		targets[i] = n
	}
	term, err := normalize(term)
	if err != nil {
		return nil, err
	}

	matches := fuzzy.Find(term, targets)
	res := make([]ui.File, 0, len(matches))
	for _, m := range matches {
		res = append(res, files[m.Index])
	}
	return res, nil
}

// Normalize text to aid in the filtering process. In particular, we remove
// diacritics, "ö" becomes "o". Note that Mn is the unicode key for nonspacing
// marks.
func normalize(in string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, in)
	return out, err
}

func init() {
	lsCmd.Flags().StringVarP(&filter, "filter", "f", "", "fuzzy filter on file names")
	lsCmd.Flags().BoolVarP(&showAllFiles, "all", "a", false, "show system files and directories")
}
