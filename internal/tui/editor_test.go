package tui

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskdeck-cli/internal/model"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewEditorModel_PrefillsFromTask(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	due := time.Date(2026, 6, 20, 23, 59, 59, 0, time.Local)
	task := model.Task{
		ID:          "task-1",
		Title:       "Prefilled",
		Description: "body",
		Priority:    model.PriorityUrgent,
		DueDate:     &due,
		Tags:        []string{"work", "deep"},
	}

	ed := newEditorModel(&task, now)
	if ed.creating {
		t.Fatalf("editing an existing task must not be in creating mode")
	}
	if ed.taskID != "task-1" {
		t.Fatalf("taskID = %q", ed.taskID)
	}

	res := ed.result()
	if res.Title != "Prefilled" || res.Description != "body" {
		t.Fatalf("result = %+v", res)
	}
	if res.Due != "2026-06-20" {
		t.Fatalf("Due = %q, want 2026-06-20", res.Due)
	}
	if res.Priority != model.PriorityUrgent {
		t.Fatalf("Priority = %q", res.Priority)
	}
	if !reflect.DeepEqual(res.Tags, []string{"work", "deep"}) {
		t.Fatalf("Tags = %v", res.Tags)
	}
}

func TestEditorModel_NewTaskDefaults(t *testing.T) {
	t.Parallel()

	ed := newEditorModel(nil, time.Now())
	if !ed.creating {
		t.Fatalf("nil task must start a create")
	}
	if ed.result().Priority != model.PriorityMedium {
		t.Fatalf("default priority = %q", ed.result().Priority)
	}
}

func TestEditorModel_ResultNormalizesTags(t *testing.T) {
	t.Parallel()

	ed := newEditorModel(nil, time.Now())
	ed.inputs[editorFieldTags].SetValue(" Work, work , HOME,, ")
	got := ed.result().Tags
	if !reflect.DeepEqual(got, []string{"work", "home"}) {
		t.Fatalf("Tags = %v", got)
	}
}

func TestEditorModel_KeyFlow(t *testing.T) {
	t.Parallel()

	ed := newEditorModel(nil, time.Now())

	ed, action, _ := ed.update(keyMsg("esc"))
	if action != editorCancel {
		t.Fatalf("esc must cancel; got %v", action)
	}

	ed, action, _ = ed.update(keyMsg("ctrl+s"))
	if action != editorSave {
		t.Fatalf("ctrl+s must save; got %v", action)
	}

	// Tab cycles forward; enter on the last field saves.
	for i := 0; i < editorFieldCount-1; i++ {
		ed, action, _ = ed.update(keyMsg("tab"))
		if action != editorNone {
			t.Fatalf("tab %d produced action %v", i, action)
		}
	}
	if ed.focus != editorFieldPriority {
		t.Fatalf("focus = %d, want priority field", ed.focus)
	}
	ed, action, _ = ed.update(keyMsg("enter"))
	if action != editorSave {
		t.Fatalf("enter on the last field must save; got %v", action)
	}
}

func TestEditorModel_PriorityCycling(t *testing.T) {
	t.Parallel()

	ed := newEditorModel(nil, time.Now())
	ed.setFocus(editorFieldPriority)

	ed, _, _ = ed.update(keyMsg("right"))
	if ed.result().Priority != model.PriorityHigh {
		t.Fatalf("after right: %q", ed.result().Priority)
	}
	ed, _, _ = ed.update(keyMsg("left"))
	ed, _, _ = ed.update(keyMsg("left"))
	if ed.result().Priority != model.PriorityLow {
		t.Fatalf("after two lefts: %q", ed.result().Priority)
	}
	// Wraps around past the first entry.
	ed, _, _ = ed.update(keyMsg("left"))
	if ed.result().Priority != model.PriorityUrgent {
		t.Fatalf("cycling must wrap; got %q", ed.result().Priority)
	}
}
