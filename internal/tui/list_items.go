package tui

import (
	"strings"
	"time"

	"taskdeck-cli/internal/model"
)

type taskRowItem struct {
	task model.Task
	now  time.Time
}

func (i taskRowItem) FilterValue() string { return i.task.Title }

func (i taskRowItem) Title() string {
	t := i.task

	checkbox := "☐"
	if t.Completed {
		checkbox = "☑"
	}

	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = "(untitled)"
	}
	if t.Completed {
		title = styleCompleted().Render(title)
	}

	parts := []string{checkbox, priorityStyle(t.Priority).Render(t.Priority.Icon()), title}

	var meta []string
	if due := t.FormattedDueDate(i.now); due != "" {
		label := "due " + due
		if t.IsOverdue(i.now) {
			label = "overdue " + due
			meta = append(meta, styleOverdue().Render(label))
		} else {
			meta = append(meta, styleMuted().Render(label))
		}
	}
	for _, tag := range t.Tags {
		meta = append(meta, styleMuted().Render("#"+tag))
	}
	if len(meta) > 0 {
		parts = append(parts, strings.Join(meta, " "))
	}

	return strings.Join(parts, " ")
}

func (i taskRowItem) Description() string { return "" }
