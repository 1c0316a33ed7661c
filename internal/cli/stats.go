package cli

import (
	"github.com/spf13/cobra"

	"taskdeck-cli/internal/engine"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Aggregate task statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st, err := svc.Statistics()
			if err != nil {
				return writeErr(cmd, err)
			}
			counts, err := svc.SidebarCounts()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": st, "counts": counts})
		},
	}
}

func newTagsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List all tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			tags, err := svc.AllTags()
			if err != nil {
				return writeErr(cmd, err)
			}
			if tags == nil {
				tags = []string{}
			}
			return writeOut(cmd, app, map[string]any{"data": tags})
		},
	}
}

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search active tasks by title/description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			out, err := svc.VisibleTasks(engine.SelectorAll, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}
