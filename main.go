package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/log"
	"github.com/mdpro/mdpro/settings"
	"github.com/mdpro/mdpro/ui"
	"github.com/mdpro/mdpro/utils"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile   string
	settingsFile string
	style        string
	width        uint
	mouse        bool
	lineNumbers  bool

	rootCmd = &cobra.Command{
		Use:   "mdpro [FILE]",
		Short: "Edit markdown with a live preview",
		Long: paragraph(
			fmt.Sprintf("\nEdit markdown in the terminal, %s!", keyword("with a live preview")),
		),
		Example: paragraph("mdpro notes.md\nmdpro preview README.md\nmdpro config set heading_color #ff8800"),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

// source provides a readable markdown source.
type source struct {
	reader io.ReadCloser
	name   string
}

// sourceFromArg opens a file, or stdin for "-".
func sourceFromArg(arg string) (*source, error) {
	if arg == "-" {
		return &source{reader: io.NopCloser(os.Stdin)}, nil
	}
	st, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%s is a directory; try mdpro ls %s", arg, arg)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	return &source{reader: f, name: arg}, nil
}

// sourceFromArgs returns the single source argument, falling back to stdin
// when it is piped.
func sourceFromArgs(args []string) (*source, error) {
	if len(args) == 1 {
		return sourceFromArg(args[0])
	}
	yes, err := stdinIsPipe()
	if err != nil {
		return nil, err
	}
	if !yes {
		return nil, errors.New("missing markdown source")
	}
	return sourceFromArg("-")
}

// readSource reads the whole source. Files that are not markdown are wrapped
// in a fenced code block.
func readSource(src *source) (string, error) {
	defer src.reader.Close() //nolint:errcheck
	b, err := io.ReadAll(src.reader)
	if err != nil {
		return "", err
	}
	b = utils.RemoveFrontmatter(b)
	if src.name != "" && !utils.IsMarkdownFile(src.name) {
		return utils.WrapCodeBlock(string(b), strings.TrimPrefix(filepath.Ext(src.name), ".")), nil
	}
	return string(b), nil
}

func validateOptions(cmd *cobra.Command) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config %s: %w", configFile, err)
		}
	}

	// grab config values from Viper
	width = viper.GetUint("width")
	mouse = viper.GetBool("mouse")
	lineNumbers = viper.GetBool("lineNumbers")
	settingsFile = viper.GetString("settings")

	// validate the glamour style
	style = viper.GetString("style")
	if style != styles.AutoStyle && styles.DefaultStyles[style] == nil {
		style = utils.ExpandPath(style)
		if _, err := os.Stat(style); errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("Specified style does not exist: %s", style)
		} else if err != nil {
			return err
		}
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	// We want to use a special no-TTY style, when stdout is not a terminal
	// and there was no specific style passed by arg
	if !isTerminal && !cmd.Flags().Changed("style") {
		style = styles.NoTTYStyle
	}

	// Detect terminal width
	if isTerminal && width == 0 && !cmd.Flags().Changed("width") {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil {
			width = uint(w) //nolint:gosec
		}

		if width > 120 {
			width = 120
		}
	}
	if width == 0 {
		width = 80
	}
	return nil
}

func stdinIsPipe() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, err
	}
	if stat.Mode()&os.ModeCharDevice == 0 || stat.Size() > 0 {
		return true, nil
	}
	return false, nil
}

// loadSettings reads the settings file chosen by --settings, MDPRO_SETTINGS or
// the per-user default.
func loadSettings() (*settings.Settings, string, error) {
	path := settingsFile
	if path == "" {
		p, err := settings.Path()
		if err != nil {
			return nil, "", fmt.Errorf("could not locate settings: %w", err)
		}
		path = p
	}
	path = utils.ExpandPath(path)
	return settings.Load(path), path, nil
}

func execute(_ *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
		if st, err := os.Stat(path); err == nil && st.IsDir() {
			return fmt.Errorf("%s is a directory; try mdpro ls %s", path, path)
		}
	}
	return runTUI(path)
}

func runTUI(path string) error {
	// Read environment to get debugging stuff
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}

	s, settingsPath, err := loadSettings()
	if err != nil {
		return err
	}
	if path != "" {
		if path, err = filepath.Abs(path); err != nil {
			return err
		}
	}

	cfg.Path = path
	cfg.SettingsPath = settingsPath
	cfg.EnableMouse = mouse
	if viper.IsSet("lineNumbers") {
		cfg.ShowLineNumbers = lineNumbers
	}

	// Run Bubble Tea program
	if _, err := ui.NewProgram(cfg, s).Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file with colors and fonts")
	rootCmd.PersistentFlags().StringVarP(&style, "style", "s", styles.AutoStyle, "glamour style name or JSON path")
	rootCmd.PersistentFlags().UintVarP(&width, "width", "w", 0, "word-wrap at width")
	rootCmd.Flags().BoolVarP(&mouse, "mouse", "m", false, "enable mouse wheel in the preview")
	rootCmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "l", true, "show line numbers in the editor")

	// Config bindings
	_ = viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
	_ = viper.BindPFlag("style", rootCmd.PersistentFlags().Lookup("style"))
	_ = viper.BindPFlag("width", rootCmd.PersistentFlags().Lookup("width"))
	_ = viper.BindPFlag("mouse", rootCmd.Flags().Lookup("mouse"))
	_ = viper.BindPFlag("lineNumbers", rootCmd.Flags().Lookup("line-numbers"))

	viper.SetDefault("style", styles.AutoStyle)
	viper.SetDefault("width", 0)

	rootCmd.AddCommand(previewCmd, highlightCmd, watchCmd, exportCmd, lsCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "mdpro")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "mdpro")}, dirs...)
	}

	if c := os.Getenv("MDPRO_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("mdpro")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("mdpro")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", used)
	}
}
