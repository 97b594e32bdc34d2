package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/x/editor"
	"github.com/mdpro/mdpro/settings"
	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:    "config",
		Hidden: false,
		Short:  "Edit the mdpro settings file",
		Long: paragraph(fmt.Sprintf("\n%s the colors and fonts mdpro uses. We’ll use EDITOR to determine which editor to use. If the settings file doesn't exist, it will be created with the defaults.",
			keyword("Edit"))),
		Example: paragraph("mdpro config\nmdpro config get heading_color\nmdpro config set heading_color #ff8800"),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := ensureSettingsFile()
			if err != nil {
				return err
			}

			c, err := editor.Cmd("mdpro", path)
			if err != nil {
				return err
			}
			c.Stdin = os.Stdin
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			if err := c.Run(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Wrote settings file to:", path) //nolint:errcheck
			return nil
		},
	}

	configGetCmd = &cobra.Command{
		Use:   "get [KEY]",
		Short: "Print a setting, or all settings",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := loadSettings()
			if err != nil {
				return err
			}
			keys := settings.Keys()
			if len(args) == 1 {
				keys = args
			}
			for _, k := range keys {
				v, err := s.Get(k)
				if err != nil {
					return err
				}
				if len(args) == 1 {
					fmt.Fprintln(cmd.OutOrStdout(), v) //nolint:errcheck
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", keyword(k), v) //nolint:errcheck
			}
			return nil
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return settings.Keys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, path, err := loadSettings()
			if err != nil {
				return err
			}
			if err := s.Set(args[0], strings.TrimSpace(args[1])); err != nil {
				return err
			}
			return s.Save(path)
		},
	}
)

// ensureSettingsFile writes the default settings if no settings file exists
// yet and returns its path.
func ensureSettingsFile() (string, error) {
	s, path, err := loadSettings()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		// File doesn't exist yet, write every default so the user can see
		// what can be changed.
		if err := s.Save(path); err != nil {
			return "", fmt.Errorf("Could not write settings file: %w", err)
		}
	} else if err != nil { // some other error occurred
		return "", err
	}
	return path, nil
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd)
}
