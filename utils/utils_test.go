package utils

import (
	"path/filepath"
	"testing"
)

func TestRemoveFrontmatter(t *testing.T) {
	tt := []struct {
		in   string
		want string
	}{
		{"---\ntitle: x\n---\n# Body", "# Body"},
		{"---\ntitle: x\n---\n\n# Body", "# Body"},
		{"# Body\n---\nnot front matter\n---\n", "# Body\n---\nnot front matter\n---\n"},
		{"---\nunclosed", "---\nunclosed"},
	}

	for _, v := range tt {
		if got := string(RemoveFrontmatter([]byte(v.in))); got != v.want {
			t.Errorf("RemoveFrontmatter(%q) = %q; expected %q", v.in, got, v.want)
		}
	}
}

func TestIsMarkdownFile(t *testing.T) {
	for k, v := range map[string]bool{
		"README":       true,
		"notes.md":     true,
		"notes.MD":     true,
		"doc.markdown": true,
		"main.go":      false,
		"image.png":    false,
	} {
		if got := IsMarkdownFile(k); got != v {
			t.Errorf("IsMarkdownFile(%q) = %t; expected %t", k, got, v)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MDPRO_TEST_DIR", "notes")

	if got, want := ExpandPath("~/docs"), filepath.Join(home, "docs"); got != want {
		t.Errorf("expected %s; got %s", want, got)
	}
	if got := ExpandPath("/tmp/$MDPRO_TEST_DIR"); got != "/tmp/notes" {
		t.Errorf("expected /tmp/notes; got %s", got)
	}
}

func TestWrapCodeBlock(t *testing.T) {
	for _, in := range []string{"x := 1\n", "x := 1"} {
		if got := WrapCodeBlock(in, "go"); got != "```go\nx := 1\n```" {
			t.Errorf("WrapCodeBlock(%q): unexpected code block %q", in, got)
		}
	}
}
