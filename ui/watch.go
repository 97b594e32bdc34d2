package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

var errWatcherClosed = errors.New("watcher closed")

// Watcher reports changes to a single file. It watches the parent directory
// so that editors which replace the file on save are noticed too.
type Watcher struct {
	w    *fsnotify.Watcher
	path string
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("could not watch %s: %w", abs, err)
	}
	log.Debug("Watching file", "path", abs)
	return &Watcher{w: w, path: abs}, nil
}

// Wait blocks until the file is written or created, ctx is done, or the
// watcher fails.
func (w *Watcher) Wait(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.w.Events:
			if !ok {
				return errWatcherClosed
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				log.Debug("File changed", "path", ev.Name, "op", ev.Op.String())
				return nil
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return errWatcherClosed
			}
			return err
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}
