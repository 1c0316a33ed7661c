package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Workspace settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show the workspace settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			db, err := st.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": db.Settings})
		},
	})

	var defaultPriority string
	var theme string
	set := &cobra.Command{
		Use:   "set",
		Short: "Update workspace settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("default-priority") && !cmd.Flags().Changed("theme") {
				return writeErr(cmd, fmt.Errorf("pass --default-priority and/or --theme"))
			}
			_, st, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			db, err := st.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("default-priority") {
				p, err := parsePriority(defaultPriority)
				if err != nil {
					return writeErr(cmd, err)
				}
				db.Settings.DefaultPriority = p
			}
			if cmd.Flags().Changed("theme") {
				switch strings.TrimSpace(theme) {
				case "light", "dark", "auto":
					db.Settings.Theme = strings.TrimSpace(theme)
				default:
					return writeErr(cmd, fmt.Errorf("invalid theme: %q (expected light|dark|auto)", theme))
				}
			}
			if err := st.Save(db); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": db.Settings})
		},
	}
	set.Flags().StringVar(&defaultPriority, "default-priority", "", "Priority applied to new tasks created without one")
	set.Flags().StringVar(&theme, "theme", "", "Workspace theme preference (light|dark|auto)")
	cmd.AddCommand(set)

	return cmd
}
