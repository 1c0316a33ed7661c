package cli

import (
	"taskdeck-cli/internal/store"

	"github.com/spf13/cobra"
)

func newBulkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Bulk task operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "complete <task-id>...",
		Short: "Mark several tasks completed (missing ids are skipped)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			done := true
			n, err := svc.BulkUpdate(args, store.Patch{Completed: &done})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]int{"updated": n}})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <task-id>...",
		Short: "Delete several tasks (missing ids are skipped)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := svc.BulkDelete(args)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]int{"deleted": n}})
		},
	})

	return cmd
}
