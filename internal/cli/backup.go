package cli

import (
	"taskdeck-cli/internal/store"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks and settings as a backup envelope",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			env, err := st.Export()
			if err != nil {
				return writeErr(cmd, err)
			}
			if out != "" {
				if err := store.WriteEnvelope(out, env); err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"path": out, "tasks": len(env.Tasks)}})
			}
			return writeOut(cmd, app, map[string]any{"data": env})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the envelope to a file instead of stdout")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore tasks and settings from a backup envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			env, err := store.ReadEnvelope(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := st.Import(env)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]int{"imported": n}})
		},
	}
}
