// Package settings persists the user's colour and font preferences and the
// last folder used, and resolves them into a theme.Config for each display
// surface.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mdpro/mdpro/syntax"
	"github.com/mdpro/mdpro/theme"
	"github.com/mdpro/mdpro/utils"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/viper"
)

// Setting keys.
const (
	EditorFont       = "editor_font"
	EditorFontSize   = "editor_font_size"
	PreviewFont      = "preview_font"
	PreviewFontSize  = "preview_font_size"
	CodeFont         = "code_font"
	TextColor        = "text_color"
	BackgroundColor  = "background_color"
	HeadingColor     = "heading_color"
	BoldColor        = "bold_color"
	ItalicColor      = "italic_color"
	CodeColor        = "code_color"
	CodeBackground   = "code_background"
	LinkColor        = "link_color"
	ImageColor       = "image_color"
	ListColor        = "list_color"
	BlockquoteColor  = "blockquote_color"
	LastFolder       = "last_folder"
	settingsFileName = "settings.json"
)

var defaults = map[string]any{
	EditorFont:      "Menlo",
	EditorFontSize:  13,
	PreviewFont:     "Arial",
	PreviewFontSize: 12,
	CodeFont:        "Menlo",
	TextColor:       "#d4d4d4",
	BackgroundColor: "#1e1e1e",
	HeadingColor:    "#89b4fa",
	BoldColor:       "#fab387",
	ItalicColor:     "#94e2d5",
	CodeColor:       "#f38ba8",
	CodeBackground:  "#2b2b2b",
	LinkColor:       "#89b4fa",
	ImageColor:      "#89b4fa",
	ListColor:       "#f9e2af",
	BlockquoteColor: "#a6adc8",
	LastFolder:      "",
}

// Settings is the flat key/value preference record.
type Settings struct {
	v *viper.Viper
}

// Keys returns every known setting key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the per-user settings file. MDPRO_SETTINGS overrides it.
func Path() (string, error) {
	if p := os.Getenv("MDPRO_SETTINGS"); p != "" {
		return utils.ExpandPath(p), nil
	}
	return gap.NewScope(gap.User, "mdpro").ConfigPath(settingsFileName)
}

// Defaults returns settings holding only the default values.
func Defaults() *Settings {
	v := viper.New()
	v.SetConfigType("json")
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	return &Settings{v: v}
}

// Load reads the settings file at path. A missing or unreadable file yields
// the defaults; keys absent from the file keep their default values.
func Load(path string) *Settings {
	s := Defaults()
	s.v.SetConfigFile(path)
	if err := s.v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("No settings file, using defaults", "path", path)
		} else {
			log.Warn("Could not parse settings file, using defaults", "path", path, "err", err)
		}
		return Defaults()
	}
	log.Debug("Loaded settings", "path", path)
	return s
}

// Save writes every setting to path as a single JSON object.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("could not create settings directory: %w", err)
	}
	if err := s.v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("could not write settings: %w", err)
	}
	return nil
}

// Get returns the value of key formatted as a string.
func (s *Settings) Get(key string) (string, error) {
	if _, ok := defaults[key]; !ok {
		return "", fmt.Errorf("unknown setting: %s", key)
	}
	return s.v.GetString(key), nil
}

// Set validates and stores value under key.
func (s *Settings) Set(key, value string) error {
	d, ok := defaults[key]
	if !ok {
		return fmt.Errorf("unknown setting: %s", key)
	}
	switch {
	case isInt(d):
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", key, value)
		}
		s.v.Set(key, n)
	case isColorKey(key):
		if !theme.ValidColor(value) {
			return fmt.Errorf("%s must be a #RRGGBB color, got %q", key, value)
		}
		s.v.Set(key, value)
	default:
		s.v.Set(key, value)
	}
	return nil
}

// LastFolder returns the folder a file was last opened from or saved to,
// with a leading tilde and environment variables expanded.
func (s *Settings) LastFolder() string {
	dir := s.v.GetString(LastFolder)
	if dir == "" {
		return ""
	}
	return utils.ExpandPath(dir)
}

// Remember records the folder containing file as the last used folder.
func (s *Settings) Remember(file string) {
	abs, err := filepath.Abs(file)
	if err != nil {
		abs = file
	}
	s.v.Set(LastFolder, filepath.Dir(abs))
}

func (s *Settings) str(key string) string {
	return s.v.GetString(key)
}

// size returns a positive integer setting, repairing bad values.
func (s *Settings) size(key string) int {
	n := s.v.GetInt(key)
	if n <= 0 {
		log.Warn("Invalid font size, using default", "key", key, "value", s.v.Get(key))
		return defaults[key].(int)
	}
	return n
}

// color returns a colour setting, repairing malformed values.
func (s *Settings) color(key string) string {
	c := s.v.GetString(key)
	if !theme.ValidColor(c) {
		log.Warn("Invalid color, using default", "key", key, "value", c)
		return defaults[key].(string)
	}
	return c
}

func isInt(v any) bool {
	_, ok := v.(int)
	return ok
}

func isColorKey(key string) bool {
	switch key {
	case TextColor, BackgroundColor, HeadingColor, BoldColor, ItalicColor,
		CodeColor, CodeBackground, LinkColor, ImageColor, ListColor, BlockquoteColor:
		return true
	}
	return false
}

// headerSteps are the point sizes added to the base font for header levels
// one to six.
var (
	editorHeaderSteps  = [6]int{5, 3, 1, 0, 0, 0}
	previewHeaderSteps = [6]int{12, 8, 4, 2, 1, 0}
)

// Editor resolves the style used to highlight the source buffer.
func (s *Settings) Editor() theme.Config {
	return s.resolve(s.str(EditorFont), s.size(EditorFontSize), editorHeaderSteps)
}

// Preview resolves the style used by the preview pane.
func (s *Settings) Preview() theme.Config {
	return s.resolve(s.str(PreviewFont), s.size(PreviewFontSize), previewHeaderSteps)
}

func (s *Settings) resolve(font string, size int, steps [6]int) theme.Config {
	base := theme.Attributes{
		Foreground: s.color(TextColor),
		FontFamily: font,
		FontSize:   size,
	}
	code := base
	code.Background = s.color(CodeBackground)
	code.FontFamily = s.str(CodeFont)
	code.FontSize = size - 1

	bold := s.recolor(base, BoldColor)
	bold.Bold = true
	italic := s.recolor(base, ItalicColor)
	italic.Italic = true
	link := s.recolor(base, LinkColor)
	link.Underline = true
	image := s.recolor(base, ImageColor)
	image.Italic = true

	cfg := theme.Config{
		syntax.Plain:      base,
		syntax.Bold:       bold,
		syntax.Italic:     italic,
		syntax.InlineCode: s.recolor(code, CodeColor),
		syntax.CodeBlock:  code,
		syntax.Link:       link,
		syntax.Image:      image,
		syntax.ListItem:   s.recolor(base, ListColor),
		syntax.Blockquote: s.recolor(base, BlockquoteColor),
	}
	for i, step := range steps {
		h := s.recolor(base, HeadingColor)
		h.Bold = true
		h.FontSize = size + step
		cfg[syntax.Header1+syntax.Category(i)] = h
	}
	return cfg
}

func (s *Settings) recolor(a theme.Attributes, key string) theme.Attributes {
	a.Foreground = s.color(key)
	return a
}
