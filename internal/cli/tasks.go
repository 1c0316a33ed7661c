package cli

import (
	"fmt"
	"strings"

	"taskdeck-cli/internal/engine"
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}

	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksShowCmd(app))
	cmd.AddCommand(newTasksCompleteCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	cmd.AddCommand(newTasksSetTitleCmd(app))
	cmd.AddCommand(newTasksSetDescriptionCmd(app))
	cmd.AddCommand(newTasksSetDueCmd(app))
	cmd.AddCommand(newTasksSetPriorityCmd(app))
	cmd.AddCommand(newTasksSetTimeCmd(app))
	cmd.AddCommand(newTasksSetNotesCmd(app))
	cmd.AddCommand(newTasksTagsCmd(app))

	return cmd
}

func parsePriority(s string) (model.Priority, error) {
	p := model.Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority: %q (expected low|medium|high|urgent)", s)
	}
	return p, nil
}

func newTasksAddCmd(app *App) *cobra.Command {
	var title string
	var description string
	var due string
	var priority string
	var tags string
	var notes string
	var links []string
	var estimate int
	var actual int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			t := model.Task{
				Title:       strings.TrimSpace(title),
				Description: description,
				Notes:       notes,
				Links:       links,
				Tags:        model.NormalizeTags(tags),
			}
			if strings.TrimSpace(priority) != "" {
				p, err := parsePriority(priority)
				if err != nil {
					return writeErr(cmd, err)
				}
				t.Priority = p
			}
			if strings.TrimSpace(due) != "" {
				d, err := parseDueDate(due)
				if err != nil {
					return writeErr(cmd, err)
				}
				t.DueDate = d
			}
			if cmd.Flags().Changed("estimate") {
				t.EstimatedTime = &estimate
			}
			if cmd.Flags().Changed("actual") {
				t.ActualTime = &actual
			}

			stored, err := svc.Create(t)
			if err != nil {
				if verr, ok := err.(engine.ValidationError); ok {
					return writeErr(cmd, fmt.Errorf("validation failed: %s", strings.Join(verr.Errors, "; ")))
				}
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": stored})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Description (optional)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high|urgent; default medium)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes (optional)")
	cmd.Flags().StringArrayVar(&links, "link", nil, "Related URL (repeatable)")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes")
	cmd.Flags().IntVar(&actual, "actual", 0, "Actual minutes")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var completed string
	var priority string
	var due string
	var tags []string
	var search string
	var sortKey string
	var sortOrder string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			var f engine.Filters
			switch strings.ToLower(strings.TrimSpace(completed)) {
			case "":
			case "true", "yes":
				v := true
				f.Completed = &v
			case "false", "no":
				v := false
				f.Completed = &v
			default:
				return writeErr(cmd, fmt.Errorf("invalid --completed: %q (expected true|false)", completed))
			}
			if strings.TrimSpace(priority) != "" {
				p, err := parsePriority(priority)
				if err != nil {
					return writeErr(cmd, err)
				}
				f.Priority = &p
			}
			switch d := strings.ToLower(strings.TrimSpace(due)); d {
			case "", engine.DueToday, engine.DueUpcoming, engine.DueOverdue:
				f.Due = d
			default:
				return writeErr(cmd, fmt.Errorf("invalid --due: %q (expected today|upcoming|overdue)", due))
			}
			f.Tags = tags
			f.Search = search

			out, err := svc.FilteredTasks(f)
			if err != nil {
				return writeErr(cmd, err)
			}
			if strings.TrimSpace(sortKey) != "" {
				out, err = engine.SortTasks(out, sortKey, sortOrder)
				if err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}

	cmd.Flags().StringVar(&completed, "completed", "", "Filter by completion (true|false)")
	cmd.Flags().StringVar(&priority, "priority", "", "Filter by priority")
	cmd.Flags().StringVar(&due, "due", "", "Filter by due bucket (today|upcoming|overdue)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Filter by tag (repeatable; any match)")
	cmd.Flags().StringVar(&search, "search", "", "Substring match on title/description")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key ("+strings.Join(engine.SortKeys(), "|")+")")
	cmd.Flags().StringVar(&sortOrder, "order", "asc", "Sort order (asc|desc)")

	return cmd
}

func newTasksShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := svc.Get(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Toggle a task's completion state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := svc.Toggle(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := svc.Delete(args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": args[0]}})
		},
	}
}

func newTasksSetTitleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-title <task-id> <title>",
		Short: "Set the title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			title := strings.TrimSpace(args[1])
			t, err := svc.Update(args[0], store.Patch{Title: &title})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksSetDescriptionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-description <task-id> <description>",
		Short: "Set the description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := svc.Update(args[0], store.Patch{Description: &args[1]})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksSetDueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-due <task-id> <due>",
		Short: "Set or clear the due date (YYYY-MM-DD, today, tomorrow, none)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			due, err := parseDueDate(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			p := store.Patch{DueDate: due, ClearDueDate: due == nil}
			t, err := svc.Update(args[0], p)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksSetPriorityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-priority <task-id> <priority>",
		Short: "Set the priority (low|medium|high|urgent)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := parsePriority(args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := svc.Update(args[0], store.Patch{Priority: &p})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksSetTimeCmd(app *App) *cobra.Command {
	var estimate int
	var actual int

	cmd := &cobra.Command{
		Use:   "set-time <task-id>",
		Short: "Set estimated/actual minutes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			var p store.Patch
			if cmd.Flags().Changed("estimate") {
				p.EstimatedTime = &estimate
			}
			if cmd.Flags().Changed("actual") {
				p.ActualTime = &actual
			}
			if p.EstimatedTime == nil && p.ActualTime == nil {
				return writeErr(cmd, fmt.Errorf("pass --estimate and/or --actual"))
			}
			t, err := svc.Update(args[0], p)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes")
	cmd.Flags().IntVar(&actual, "actual", 0, "Actual minutes")

	return cmd
}

func newTasksSetNotesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-notes <task-id> <notes>",
		Short: "Set free-text notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := svc.Update(args[0], store.Patch{Notes: &args[1]})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}
}

func newTasksTagsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Tag commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <task-id> <tag>",
		Short: "Add a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := svc.AddTag(args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <task-id> <tag>",
		Short: "Remove a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			t, err := svc.RemoveTag(args[0], args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	})

	return cmd
}
