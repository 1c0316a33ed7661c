package cli

import (
	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	var taskID string
	var limit int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the task activity log (most recent last)",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmd.Context()
			if taskID != "" {
				evs, err := st.ReadEventsForTask(ctx, taskID, limit)
				if err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, map[string]any{"data": evs})
			}
			evs, err := st.ReadEvents(ctx, limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": evs})
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Only events for this task id")
	cmd.Flags().IntVar(&limit, "limit", 50, "Max events (0 = all)")

	return cmd
}
