package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/mdpro/mdpro/ui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:     "watch FILE",
	Short:   "Re-render the preview whenever a file changes",
	Long:    paragraph(fmt.Sprintf("\n%s a markdown file and print its preview again each time it is saved.", keyword("Watch"))),
	Example: paragraph("mdpro watch notes.md"),
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watchFile(ctx, args[0], cmd.OutOrStdout())
	},
}

func watchFile(ctx context.Context, path string, w io.Writer) error {
	watcher, err := ui.NewWatcher(path)
	if err != nil {
		return err
	}
	defer watcher.Close() //nolint:errcheck

	out := termenv.NewOutput(w)
	for {
		if err := renderFile(path, out); err != nil {
			log.Warn("Could not render file", "path", path, "err", err)
		}
		if err := watcher.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

func renderFile(path string, out *termenv.Output) error {
	src, err := sourceFromArg(path)
	if err != nil {
		return err
	}
	text, err := readSource(src)
	if err != nil {
		return err
	}
	out.ClearScreen()
	if err := executePreview(text, out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, faint(fmt.Sprintf("watching %s, ctrl+c to quit", path)))
	return err
}
