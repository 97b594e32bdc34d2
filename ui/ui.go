// Package ui implements the split-pane Markdown editor: a source editor on
// the left and a live preview on the right.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/mdpro/mdpro/editor"
	"github.com/mdpro/mdpro/highlight"
	"github.com/mdpro/mdpro/preview"
	"github.com/mdpro/mdpro/settings"
	"github.com/mdpro/mdpro/theme"
)

const (
	statusBarHeight = 1
	paneTitleHeight = 1
	untitled        = "untitled"
)

// NewProgram returns a new Tea program editing cfg.Path.
func NewProgram(cfg Config, s *settings.Settings) *tea.Program {
	log.Debug(
		"Starting mdpro",
		"path", cfg.Path,
		"settings", cfg.SettingsPath,
		"line_numbers", cfg.ShowLineNumbers,
		"mouse", cfg.EnableMouse,
	)

	m := newModel(cfg, s)
	if cfg.Path != "" {
		w, err := NewWatcher(cfg.Path)
		if err != nil {
			log.Warn("Could not watch file, live reload disabled", "err", err)
		} else {
			m.watcher = w
		}
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return tea.NewProgram(m, opts...)
}

// MESSAGES

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

type fileLoadedMsg struct{ content string }

type fileSavedMsg struct{ content string }

type fileChangedMsg struct{}

// MODEL

type model struct {
	cfg      Config
	settings *settings.Settings
	editor   theme.Config
	preview  theme.Config
	watcher  *Watcher
	ctx      context.Context
	cancel   context.CancelFunc

	textarea    textarea.Model
	sourceView  viewport.Model
	previewView viewport.Model
	showSource  bool

	// Content as last loaded from or written to disk.
	saved string
	// Content the panes were last rendered from.
	rendered string

	status string
	err    error
	width  int
	height int
}

func newModel(cfg Config, s *settings.Settings) model {
	ta := textarea.New()
	ta.ShowLineNumbers = cfg.ShowLineNumbers
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "Start writing Markdown..."
	ta.Focus()

	ctx, cancel := context.WithCancel(context.Background())
	m := model{
		cfg:         cfg,
		settings:    s,
		editor:      s.Editor(),
		preview:     s.Preview(),
		ctx:         ctx,
		cancel:      cancel,
		textarea:    ta,
		sourceView:  viewport.New(0, 0),
		previewView: viewport.New(0, 0),
		showSource:  cfg.SourcePane,
	}
	if m.showSource {
		m.textarea.Blur()
	}
	return m
}

func (m model) dirty() bool {
	return m.textarea.Value() != m.saved
}

func (m model) fileName() string {
	if m.cfg.Path == "" {
		return untitled
	}
	return filepath.Base(m.cfg.Path)
}

// INIT

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.cfg.Path != "" {
		cmds = append(cmds, loadFile(m.cfg.Path))
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.ctx, m.watcher))
	}
	return tea.Batch(cmds...)
}

// UPDATE

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			m.shutdown()
			return m, tea.Quit

		case "ctrl+s":
			return m, m.saveFile()

		case "ctrl+b":
			return m.insertMarkup(editor.Bold), nil
		case "alt+i":
			return m.insertMarkup(editor.Italic), nil
		case "alt+c":
			return m.insertMarkup(editor.Code), nil
		case "ctrl+k":
			return m.insertMarkup(editor.Link), nil

		case "ctrl+e":
			if m.cfg.Path == "" {
				m.status = "Save the file before opening an editor"
				return m, nil
			}
			return m, tea.Sequence(m.saveFile(), openEditor(m.cfg.Path))

		case "ctrl+p":
			m.showSource = !m.showSource
			if m.showSource {
				m.textarea.Blur()
			} else {
				cmds = append(cmds, m.textarea.Focus())
			}
			m.rendered = ""
			m.setSize(m.width, m.height)
			m.refresh()
			return m, tea.Batch(cmds...)

		case "alt+up":
			var cmd tea.Cmd
			m.previewView, cmd = m.previewView.Update(tea.KeyMsg{Type: tea.KeyPgUp})
			return m, cmd
		case "alt+down":
			var cmd tea.Cmd
			m.previewView, cmd = m.previewView.Update(tea.KeyMsg{Type: tea.KeyPgDown})
			return m, cmd
		}
		m.status = ""

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.previewView, cmd = m.previewView.Update(msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		m.rendered = ""
		m.refresh()

	case errMsg:
		log.Error("Editor error", "err", msg.err)
		m.err = msg.err
		return m, nil

	case fileLoadedMsg:
		m.saved = msg.content
		if msg.content != m.textarea.Value() {
			m.textarea.SetValue(msg.content)
		}
		m.err = nil
		m.refresh()
		return m, nil

	case fileSavedMsg:
		m.saved = msg.content
		m.err = nil
		m.status = "Saved " + m.fileName()
		m.settings.Remember(m.cfg.Path)
		if err := m.settings.Save(m.cfg.SettingsPath); err != nil {
			log.Warn("Could not save settings", "err", err)
		}
		return m, nil

	case fileChangedMsg:
		cmds = append(cmds, waitForChange(m.ctx, m.watcher))
		if m.dirty() {
			m.status = "File changed on disk"
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, loadFile(m.cfg.Path))
		return m, tea.Batch(cmds...)

	case editorFinishedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, loadFile(m.cfg.Path)
	}

	var cmd tea.Cmd
	if m.showSource {
		m.sourceView, cmd = m.sourceView.Update(msg)
	} else {
		m.textarea, cmd = m.textarea.Update(msg)
	}
	cmds = append(cmds, cmd)
	m.refresh()
	return m, tea.Batch(cmds...)
}

func (m *model) shutdown() {
	m.cancel()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			log.Debug("Could not close watcher", "err", err)
		}
	}
}

// insertMarkup types the markup at the cursor and moves the cursor between
// its delimiters.
func (m model) insertMarkup(mk editor.Markup) model {
	if m.showSource {
		m.status = "Switch to the editor to format text"
		return m
	}
	text, back := editor.Insertion(mk)
	m.textarea.InsertString(text)
	for range back {
		m.textarea, _ = m.textarea.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	m.refresh()
	return m
}

func (m *model) setSize(w, h int) {
	m.width, m.height = w, h

	left := w / 2
	right := max(w-left-1, 0) // divider
	paneHeight := max(h-statusBarHeight-paneTitleHeight, 0)

	m.textarea.SetWidth(left)
	m.textarea.SetHeight(paneHeight)
	m.sourceView.Width = left
	m.sourceView.Height = paneHeight
	m.previewView.Width = right
	m.previewView.Height = paneHeight
}

// refresh re-renders the panes when the buffer changed since the last call.
func (m *model) refresh() {
	v := m.textarea.Value()
	if v == m.rendered {
		return
	}
	m.rendered = v
	m.previewView.SetContent(PaintBlocks(preview.Render(v, m.preview), m.previewView.Width))
	if m.showSource {
		m.sourceView.SetContent(PaintSpans(v, highlight.Annotate(v, m.editor)))
	}
}

// COMMANDS

func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		b, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("New file", "path", path)
			return fileLoadedMsg{}
		}
		if err != nil {
			return errMsg{fmt.Errorf("could not read %s: %w", path, err)}
		}
		return fileLoadedMsg{content: string(b)}
	}
}

func (m model) saveFile() tea.Cmd {
	path, content := m.cfg.Path, m.textarea.Value()
	return func() tea.Msg {
		if path == "" {
			return errMsg{errors.New("no file name; start mdpro with a file to save")}
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec
			return errMsg{fmt.Errorf("could not save %s: %w", path, err)}
		}
		log.Debug("Saved file", "path", path, "size", len(content))
		return fileSavedMsg{content: content}
	}
}

func waitForChange(ctx context.Context, w *Watcher) tea.Cmd {
	return func() tea.Msg {
		if err := w.Wait(ctx); err != nil {
			if errors.Is(err, errWatcherClosed) || errors.Is(err, context.Canceled) {
				return nil
			}
			return errMsg{err}
		}
		return fileChangedMsg{}
	}
}

// VIEW

func (m model) View() string {
	if m.width == 0 {
		return ""
	}

	leftTitle, left := "Editor", m.textarea.View()
	if m.showSource {
		leftTitle, left = "Source", m.sourceView.View()
	}
	leftPane := paneStyle.Width(m.width / 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, paneTitleStyle.Render(leftTitle), left),
	)
	rightPane := lipgloss.JoinVertical(lipgloss.Left,
		paneTitleStyle.Render(" Preview"),
		m.previewView.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane),
		m.statusBarView(),
	)
}

func (m model) statusBarView() string {
	name := statusFileStyle.Render(runewidth.Truncate(m.fileName(), max(m.width/3, 8), "…"))

	var modified string
	if m.dirty() {
		modified = statusModifiedStyle.Render("modified")
	}

	var message string
	switch {
	case m.err != nil:
		message = errorTitleStyle.Render("ERROR") + statusBarStyle.Render(" "+m.err.Error())
	case m.status != "":
		message = statusMessageStyle.Render(m.status)
	}

	li := m.textarea.LineInfo()
	info := statusBarStyle.Render(fmt.Sprintf(
		" Line %d, Col %d  %s ",
		m.textarea.Line()+1,
		li.StartColumn+li.ColumnOffset+1,
		humanize.Bytes(uint64(len(m.textarea.Value()))),
	))

	used := lipgloss.Width(name) + lipgloss.Width(modified) + lipgloss.Width(message) + lipgloss.Width(info)
	fill := statusBarStyle.Render(strings.Repeat(" ", max(m.width-used, 0)))
	return name + modified + message + fill + info
}
