package cli

import (
	"fmt"
	"os"
	"strings"

	"taskdeck-cli/internal/engine"
	"taskdeck-cli/internal/format"
	"taskdeck-cli/internal/store"
	"taskdeck-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Workspace  string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskdeck",
		Short:        "Taskdeck (local-first) task manager CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  taskdeck

  # Scriptable commands
  taskdeck tasks add --title "Ship report" --due today --priority high
  taskdeck tasks list --due today

  # Direct task lookup (shortcut for: taskdeck tasks show <task-id>)
  taskdeck task-vth3kq2a
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKDECK_DIR", ""), "Path to store dir (advanced: overrides workspace resolution; use for fixtures/tests)")
	cmd.PersistentFlags().StringVar(&app.Workspace, "workspace", envOr("TASKDECK_WORKSPACE", ""), "Workspace name (default: 'default')")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newBulkCmd(app))
	cmd.AddCommand(newStatsCmd(app))
	cmd.AddCommand(newTagsCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newSettingsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	st, err := resolveStore(app)
	if err != nil {
		return err
	}
	return tui.Run(st)
}

// resolveStore picks the workspace directory:
// 1) --dir
// 2) --workspace
// 3) ~/.taskdeck/config.json currentWorkspace
// 4) the implicit "default" workspace
func resolveStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		if app.Workspace == "" {
			if cfg, err := store.LoadConfig(); err == nil && cfg.CurrentWorkspace != "" {
				app.Workspace = cfg.CurrentWorkspace
			} else {
				app.Workspace = "default"
			}
		}
		d, err := store.WorkspaceDir(app.Workspace)
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	return store.Store{Dir: dir}, nil
}

func loadService(app *App) (*engine.Service, store.Store, error) {
	st, err := resolveStore(app)
	if err != nil {
		return nil, store.Store{}, err
	}
	return engine.New(st), st, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
