package cli

import (
	"fmt"

	"taskdeck-cli/internal/store"

	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Theme preference",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the current theme preference",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			theme := cfg.Theme
			if theme == "" {
				theme = "auto"
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"theme": theme}})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <light|dark|auto>",
		Short: "Set the theme preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "light", "dark", "auto":
			default:
				return writeErr(cmd, fmt.Errorf("invalid theme: %q (expected light|dark|auto)", args[0]))
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg.Theme = args[0]
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"theme": args[0]}})
		},
	})

	return cmd
}
