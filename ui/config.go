package ui

// Config contains TUI-specific configuration.
type Config struct {
	ShowAllFiles    bool
	ShowLineNumbers bool   `env:"MDPRO_LINE_NUMBERS" envDefault:"true"`
	SourcePane      bool   `env:"MDPRO_SOURCE_PANE"`
	Gopath          string `env:"GOPATH"`
	HomeDir         string `env:"HOME"`
	EnableMouse     bool

	// File being edited. Empty for a new, unnamed buffer.
	Path string

	// Where preferences are loaded from and saved to.
	SettingsPath string
}
