package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdpro/mdpro/settings"
	"github.com/mdpro/mdpro/ui"
	"github.com/muesli/termenv"
)

func testSettings(t *testing.T) string {
	t.Helper()
	p := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	path := filepath.Join(t.TempDir(), "settings.json")
	settingsFile = path
	t.Cleanup(func() {
		lipgloss.SetColorProfile(p)
		settingsFile = ""
	})
	return path
}

func TestMdproFlags(t *testing.T) {
	tt := []struct {
		args  []string
		check func() bool
	}{
		{
			args: []string{"-s", "light"},
			check: func() bool {
				return style == "light"
			},
		},
		{
			args: []string{"-w", "40"},
			check: func() bool {
				return width == 40
			},
		},
		{
			args: []string{"-m"},
			check: func() bool {
				return mouse
			},
		},
		{
			args: []string{"--line-numbers=false"},
			check: func() bool {
				return !lineNumbers
			},
		},
	}

	for _, v := range tt {
		err := rootCmd.ParseFlags(v.args)
		if err != nil {
			t.Fatal(err)
		}
		if !v.check() {
			t.Errorf("Parsing flag failed: %s", v.args)
		}
	}
}

func TestSourceFromArg(t *testing.T) {
	dir := t.TempDir()
	if _, err := sourceFromArg(dir); err == nil {
		t.Error("expected an error for a directory")
	}
	if _, err := sourceFromArg(filepath.Join(dir, "missing.md")); err == nil {
		t.Error("expected an error for a missing file")
	}

	code := filepath.Join(dir, "main.go")
	if err := os.WriteFile(code, []byte("package main\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := sourceFromArg(code)
	if err != nil {
		t.Fatal(err)
	}
	text, err := readSource(src)
	if err != nil {
		t.Fatal(err)
	}
	if text != "```go\npackage main\n```" {
		t.Errorf("expected a fenced code block, got %q", text)
	}
}

func TestPreview(t *testing.T) {
	testSettings(t)

	buf := &bytes.Buffer{}
	if err := executePreview("# Title\nSome **bold** [link](x)", buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "Title\nSome bold link\n"; got != want {
		t.Errorf("expected %q; got %q", want, got)
	}

	buf.Reset()
	if err := executePreview("   ", buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for blank text, got %q", buf.String())
	}
}

func TestPreviewJSON(t *testing.T) {
	testSettings(t)
	previewJSON = true
	t.Cleanup(func() { previewJSON = false })

	buf := &bytes.Buffer{}
	if err := executePreview("> quote", buf); err != nil {
		t.Fatal(err)
	}
	var blocks []struct {
		Category string `json:"category"`
		Marker   string `json:"marker"`
		Runs     []struct {
			Text string `json:"text"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &blocks); err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || blocks[0].Category != "blockquote" || blocks[0].Marker != "> " {
		t.Fatalf("unexpected blocks %+v", blocks)
	}
	if len(blocks[0].Runs) != 1 || blocks[0].Runs[0].Text != "quote" {
		t.Errorf("unexpected runs %+v", blocks[0].Runs)
	}
}

func TestHighlightSpans(t *testing.T) {
	testSettings(t)
	listSpans = true
	t.Cleanup(func() { listSpans = false })

	buf := &bytes.Buffer{}
	if err := executeHighlight("# A\nsee `code`", buf); err != nil {
		t.Fatal(err)
	}
	var got []spanRecord
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 spans, got %+v", got)
	}
	if got[0].Category.String() != "h1" || got[0].Text != "# A" || got[0].Line != 1 {
		t.Errorf("unexpected header span %+v", got[0])
	}
	if got[1].Text != "code" || got[1].Line != 2 || got[1].Column != 6 {
		t.Errorf("unexpected code span %+v", got[1])
	}
}

func TestHighlightPlain(t *testing.T) {
	testSettings(t)

	buf := &bytes.Buffer{}
	in := "# A\n*b* and `c`"
	if err := executeHighlight(in, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != in+"\n" {
		t.Errorf("expected the source back without colors, got %q", got)
	}
}

func TestExportHTML(t *testing.T) {
	testSettings(t)

	page, err := exportHTML("# Hi", filepath.Join("notes", "todo.md"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<title>todo</title>",
		"background-color: #1e1e1e;",
		`<h1 id="hi">Hi</h1>`,
	} {
		if !strings.Contains(string(page), want) {
			t.Errorf("expected %q in the page", want)
		}
	}
}

func TestConfigSetGet(t *testing.T) {
	path := testSettings(t)

	rootCmd.SetArgs([]string{"--settings", path, "config", "set", "heading_color", "#ff8800"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got, _ := settings.Load(path).Get(settings.HeadingColor); got != "#ff8800" {
		t.Errorf("expected the new heading color, got %q", got)
	}

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs([]string{"--settings", path, "config", "get", "heading_color"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "#ff8800" {
		t.Errorf("expected #ff8800; got %q", got)
	}

	rootCmd.SetArgs([]string{"--settings", path, "config", "set", "heading_color", "orange"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an invalid color to be rejected")
	}
}

func TestEnsureSettingsFile(t *testing.T) {
	want := testSettings(t)
	got, err := ensureSettingsFile()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("expected %s; got %s", want, got)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected the settings file to exist: %v", err)
	}
}

func TestFilterFiles(t *testing.T) {
	now := time.Now()
	files := []ui.File{
		{Name: "todo.md", ModTime: now},
		{Name: "réunion.md", ModTime: now},
		{Name: "notes/reading.md", ModTime: now},
	}

	got, err := filterFiles(files, "reu")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range got {
		names = append(names, f.Name)
	}
	if !reflect.DeepEqual(names, []string{"réunion.md"}) {
		t.Errorf("expected the accented file to match, got %v", names)
	}
}

func TestNormalize(t *testing.T) {
	tt := map[string]string{
		"réunion": "reunion",
		"Ölçü":    "Olcu",
		"plain":   "plain",
	}
	for in, want := range tt {
		got, err := normalize(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("normalize(%q): expected %q; got %q", in, want, got)
		}
	}
}

func TestListFiles(t *testing.T) {
	testSettings(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte("# a"), 0o600); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := listFiles(dir, buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "a.md") || !strings.Contains(buf.String(), "3 B") {
		t.Errorf("unexpected listing %q", buf.String())
	}
}

func TestManPage(t *testing.T) {
	buf := &bytes.Buffer{}
	manCmd.SetOut(buf)
	if err := manCmd.RunE(manCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "mdpro") {
		t.Error("expected the man page to mention mdpro")
	}
}
