package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors.
var (
	cream        = lipgloss.AdaptiveColor{Light: "#FFFDF5", Dark: "#FFFDF5"}
	fuchsia      = lipgloss.Color("#EE6FF8")
	green        = lipgloss.Color("#04B575")
	red          = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	gray         = lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}
	statusBarFg  = lipgloss.AdaptiveColor{Light: "#656565", Dark: "#7D7D7D"}
	statusBarBg  = lipgloss.AdaptiveColor{Light: "#E6E6E6", Dark: "#242424"}
	dividerColor = lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"}
)

var (
	statusBarStyle      = lipgloss.NewStyle().Foreground(statusBarFg).Background(statusBarBg)
	statusFileStyle     = lipgloss.NewStyle().Foreground(cream).Background(fuchsia).Padding(0, 1)
	statusModifiedStyle = lipgloss.NewStyle().Foreground(cream).Background(red).Padding(0, 1)
	statusMessageStyle  = lipgloss.NewStyle().Foreground(cream).Background(green).Padding(0, 1)
	errorTitleStyle     = lipgloss.NewStyle().Foreground(cream).Background(red).Padding(0, 1)
	paneTitleStyle      = lipgloss.NewStyle().Foreground(gray).Bold(true)
	paneStyle           = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderRight(true).
				BorderForeground(dividerColor)
)
