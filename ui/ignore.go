package ui

import (
	"os"
	"strings"
)

// isDotFileOrDir reports whether path has a hidden component below root.
// Components of root itself are ignored, so searching inside a dot directory
// still finds its files.
func isDotFileOrDir(root, path string) bool {
	p := strings.TrimPrefix(path, root)
	for _, v := range strings.Split(p, string(os.PathSeparator)) {
		if len(v) > 0 && v[0] == '.' {
			return true
		}
	}
	return false
}

func ignorePatterns(cfg Config) []string {
	p := []string{"node_modules", ".*"}
	if cfg.Gopath != "" {
		p = append(p, cfg.Gopath)
	}
	return p
}
