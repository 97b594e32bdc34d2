package ui

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/gitcha"
)

var markdownExtensions = []string{
	"*.md", "*.mdown", "*.mkdn", "*.mkd", "*.markdown",
}

// File is a Markdown document found on disk.
type File struct {
	Path    string
	Name    string // relative to the search root
	Size    int64
	ModTime time.Time
}

// FindFiles lists the Markdown files beneath dir, most recently modified
// first. Dot files and directories are skipped unless cfg.ShowAllFiles is set.
func FindFiles(dir string, cfg Config) ([]File, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	var ignore []string
	if !cfg.ShowAllFiles {
		ignore = ignorePatterns(cfg)
	}
	ch, err := gitcha.FindFilesExcept(root, markdownExtensions, ignore)
	if err != nil {
		return nil, err
	}

	var files []File
	for res := range ch {
		if !cfg.ShowAllFiles && isDotFileOrDir(root, res.Path) {
			continue
		}
		name, err := filepath.Rel(root, res.Path)
		if err != nil {
			name = res.Path
		}
		f := File{Path: res.Path, Name: name}
		if res.Info != nil {
			f.Size = res.Info.Size()
			f.ModTime = res.Info.ModTime()
		}
		files = append(files, f)
	}
	log.Debug("Found markdown files", "dir", root, "count", len(files))

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].Name < files[j].Name
		}
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}
