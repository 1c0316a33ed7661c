package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskdeck-cli/internal/model"
)

func renderTaskDetail(t model.Task, width, height int, now time.Time) string {
	var b []string

	title := strings.TrimSpace(t.Title)
	if title == "" {
		title = "(untitled)"
	}
	b = append(b, lipgloss.NewStyle().Bold(true).Width(width).Render(title))

	var status []string
	status = append(status, priorityStyle(t.Priority).Render(t.Priority.Icon()+" "+string(t.Priority)))
	if t.Completed {
		status = append(status, styleCompleted().Render("completed"))
	}
	if due := t.FormattedDueDate(now); due != "" {
		if t.IsOverdue(now) {
			status = append(status, styleOverdue().Render("overdue "+due))
		} else {
			status = append(status, styleMuted().Render("due "+due))
		}
	}
	b = append(b, strings.Join(status, "  "))

	if len(t.Tags) > 0 {
		tags := make([]string, 0, len(t.Tags))
		for _, tag := range t.Tags {
			tags = append(tags, "#"+tag)
		}
		b = append(b, styleMuted().Render(strings.Join(tags, " ")))
	}

	if t.EstimatedTime != nil || t.ActualTime != nil {
		est, act := "-", "-"
		if t.EstimatedTime != nil {
			est = fmt.Sprintf("%dm", *t.EstimatedTime)
		}
		if t.ActualTime != nil {
			act = fmt.Sprintf("%dm", *t.ActualTime)
		}
		b = append(b, styleMuted().Render(fmt.Sprintf("est %s  actual %s", est, act)))
	}

	if strings.TrimSpace(t.Description) != "" {
		b = append(b, "", renderMarkdown(t.Description, width))
	}
	if strings.TrimSpace(t.Notes) != "" {
		b = append(b, "", styleMuted().Render("Notes"), renderMarkdown(t.Notes, width))
	}
	if len(t.Links) > 0 {
		b = append(b, "", styleMuted().Render("Links"))
		for _, link := range t.Links {
			b = append(b, "  "+link)
		}
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(b, "\n"))
}
