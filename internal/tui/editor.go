package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck-cli/internal/model"
)

// editorModel is the task editor modal: title, description, due date,
// priority and a comma-separated tags field. It collects user-entered values
// and hands them back to the app model; it never mutates the store itself.

const (
	editorFieldTitle = iota
	editorFieldDescription
	editorFieldDue
	editorFieldTags
	editorFieldPriority
	editorFieldCount
)

type editorAction int

const (
	editorNone editorAction = iota
	editorCancel
	editorSave
)

type editorResult struct {
	Title       string
	Description string
	Due         string // raw input; parsed by the app model
	Priority    model.Priority
	Tags        []string
}

type editorModel struct {
	creating bool
	taskID   string

	inputs   []textinput.Model
	focus    int
	priority model.Priority

	errMsg string
}

func newEditorModel(task *model.Task, now time.Time) editorModel {
	mk := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Prompt = ""
		return in
	}

	m := editorModel{
		creating: task == nil,
		priority: model.PriorityMedium,
		inputs: []textinput.Model{
			mk("Title", 200),
			mk("Description", 0),
			mk("YYYY-MM-DD / today / tomorrow / none", 32),
			mk("comma, separated, tags", 0),
		},
	}

	if task != nil {
		m.taskID = task.ID
		m.inputs[editorFieldTitle].SetValue(task.Title)
		m.inputs[editorFieldDescription].SetValue(task.Description)
		if task.DueDate != nil {
			m.inputs[editorFieldDue].SetValue(task.DueDate.Local().Format("2006-01-02"))
		}
		m.inputs[editorFieldTags].SetValue(strings.Join(task.Tags, ", "))
		if task.Priority.Valid() {
			m.priority = task.Priority
		}
	}

	m.inputs[editorFieldTitle].Focus()
	return m
}

func (m editorModel) result() editorResult {
	return editorResult{
		Title:       strings.TrimSpace(m.inputs[editorFieldTitle].Value()),
		Description: m.inputs[editorFieldDescription].Value(),
		Due:         strings.TrimSpace(m.inputs[editorFieldDue].Value()),
		Priority:    m.priority,
		Tags:        model.NormalizeTags(m.inputs[editorFieldTags].Value()),
	}
}

func (m *editorModel) setFocus(idx int) {
	if idx < 0 {
		idx = editorFieldCount - 1
	}
	if idx >= editorFieldCount {
		idx = 0
	}
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *editorModel) cyclePriority(delta int) {
	idx := 0
	for i, p := range model.Priorities {
		if p == m.priority {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(model.Priorities)) % len(model.Priorities)
	m.priority = model.Priorities[idx]
}

func (m editorModel) update(msg tea.Msg) (editorModel, editorAction, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, editorCancel, nil
		case "ctrl+s":
			return m, editorSave, nil
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, editorNone, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, editorNone, nil
		case "enter":
			// Enter on the last field saves; otherwise advance.
			if m.focus == editorFieldCount-1 {
				return m, editorSave, nil
			}
			m.setFocus(m.focus + 1)
			return m, editorNone, nil
		case "left":
			if m.focus == editorFieldPriority {
				m.cyclePriority(-1)
				return m, editorNone, nil
			}
		case "right":
			if m.focus == editorFieldPriority {
				m.cyclePriority(1)
				return m, editorNone, nil
			}
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, editorNone, cmd
	}
	return m, editorNone, nil
}

func (m editorModel) view(width int) string {
	bodyW := modalBodyWidth(width)
	label := func(s string, focused bool) string {
		st := styleMuted()
		if focused {
			st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		return st.Render(s)
	}

	prio := string(m.priority)
	if m.focus == editorFieldPriority {
		prio = "◀ " + prio + " ▶"
	}
	prio = priorityStyle(m.priority).Render(prio)

	rows := []string{
		label("Title", m.focus == editorFieldTitle),
		m.inputs[editorFieldTitle].View(),
		"",
		label("Description", m.focus == editorFieldDescription),
		m.inputs[editorFieldDescription].View(),
		"",
		label("Due", m.focus == editorFieldDue),
		m.inputs[editorFieldDue].View(),
		"",
		label("Tags", m.focus == editorFieldTags),
		m.inputs[editorFieldTags].View(),
		"",
		label("Priority", m.focus == editorFieldPriority) + "  " + prio,
	}
	if m.errMsg != "" {
		rows = append(rows, "", styleOverdue().Render(m.errMsg))
	}
	rows = append(rows, "", styleMuted().Width(bodyW).Render("tab: next field   ctrl+s: save   esc: cancel"))

	title := "Edit task"
	if m.creating {
		title = "New task"
	}
	return renderModalBox(width, title, strings.Join(rows, "\n"))
}
