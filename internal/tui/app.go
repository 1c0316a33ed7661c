package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskdeck-cli/internal/engine"
	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeConfirmDelete
	modeEdit
)

// searchDebounce is the idle interval after the last keystroke before the
// list re-filters. A pending timer is superseded by any newer keystroke:
// last keystroke wins.
const searchDebounce = 300 * time.Millisecond

type searchDebounceMsg struct{ seq int }

const sidebarWidth = 26

type appModel struct {
	store store.Store
	svc   *engine.Service

	width  int
	height int
	mode   mode

	selectors []engine.Selector
	selIdx    int

	tasksList list.Model
	counts    engine.Counts

	search        textinput.Model
	searchFocused bool
	searchSeq     int
	query         string

	editor       editorModel
	confirmTask  model.Task
	confirmFocus confirmModalFocus

	errMsg string
}

func newAppModel(st store.Store) appModel {
	search := textinput.New()
	search.Placeholder = "Search tasks"
	search.Prompt = "/ "
	search.CharLimit = 200

	l := list.New([]list.Item{}, newCompactTaskDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// We drive filtering ourselves (selector + debounced search).
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetKeys("q")

	m := appModel{
		store:     st,
		svc:       engine.New(st),
		selectors: engine.Selectors(),
		tasksList: l,
		search:    search,
	}
	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) selector() engine.Selector {
	return m.selectors[m.selIdx]
}

// refresh runs one render cycle: resolve the visible set for the current
// selector + applied search, then recompute sidebar counts from the full
// unfiltered set.
func (m *appModel) refresh() {
	curID := ""
	if it, ok := m.tasksList.SelectedItem().(taskRowItem); ok {
		curID = it.task.ID
	}

	out, err := m.svc.Dispatch(engine.ChangeFilter{Selector: m.selector(), Search: m.query})
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""

	now := m.svc.Now()
	items := make([]list.Item, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		items = append(items, taskRowItem{task: t, now: now})
	}
	m.tasksList.SetItems(items)
	if curID != "" {
		for i, it := range items {
			if row, ok := it.(taskRowItem); ok && row.task.ID == curID {
				m.tasksList.Select(i)
				break
			}
		}
	}

	counts, err := m.svc.SidebarCounts()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.counts = counts
}

func (m *appModel) scheduleSearch() tea.Cmd {
	m.searchSeq++
	seq := m.searchSeq
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case searchDebounceMsg:
		// Stale timers (superseded by a newer keystroke) are dropped.
		if msg.seq != m.searchSeq {
			return m, nil
		}
		if m.query != m.search.Value() {
			m.query = m.search.Value()
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		case modeEdit:
			return m.updateEditor(msg)
		default:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	m.tasksList, cmd = m.tasksList.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.mode = modeList
		return m, nil
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		return m.commitDelete()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.commitDelete()
		}
		m.mode = modeList
		return m, nil
	}
	return m, nil
}

func (m appModel) commitDelete() (tea.Model, tea.Cmd) {
	// The modal is the confirmation step, so the delete intent commits here.
	if _, err := m.svc.Dispatch(engine.RequestDelete{ID: m.confirmTask.ID}); err != nil {
		m.errMsg = err.Error()
	}
	m.mode = modeList
	m.refresh()
	return m, nil
}

func (m appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed, action, cmd := m.editor.update(msg)
	m.editor = ed
	switch action {
	case editorCancel:
		m.mode = modeList
		return m, nil
	case editorSave:
		res := m.editor.result()
		due, err := parseDueInput(res.Due, m.svc.Now())
		if err != nil {
			m.editor.errMsg = err.Error()
			return m, nil
		}
		if m.editor.creating {
			t := model.Task{
				Title:       res.Title,
				Description: res.Description,
				Priority:    res.Priority,
				DueDate:     due,
				Tags:        res.Tags,
			}
			if _, err := m.svc.Create(t); err != nil {
				m.editor.errMsg = editorErrText(err)
				return m, nil
			}
		} else {
			p := store.Patch{
				Title:        &res.Title,
				Description:  &res.Description,
				Priority:     &res.Priority,
				DueDate:      due,
				ClearDueDate: due == nil,
				Tags:         res.Tags,
				HasTags:      true,
			}
			if _, err := m.svc.Update(m.editor.taskID, p); err != nil {
				m.editor.errMsg = editorErrText(err)
				return m, nil
			}
		}
		m.mode = modeList
		m.refresh()
		return m, nil
	}
	return m, cmd
}

func editorErrText(err error) string {
	if verr, ok := err.(engine.ValidationError); ok {
		return strings.Join(verr.Errors, "; ")
	}
	return err.Error()
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocused {
		switch msg.String() {
		case "esc":
			m.searchFocused = false
			m.search.Blur()
			if m.search.Value() != "" {
				m.search.SetValue("")
				m.query = ""
				m.refresh()
			}
			return m, nil
		case "enter":
			m.searchFocused = false
			m.search.Blur()
			if m.query != m.search.Value() {
				m.query = m.search.Value()
				m.refresh()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, tea.Batch(cmd, m.scheduleSearch())
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		m.search.Focus()
		return m, nil
	case "tab", "]":
		m.selIdx = (m.selIdx + 1) % len(m.selectors)
		m.refresh()
		return m, nil
	case "shift+tab", "[":
		m.selIdx = (m.selIdx - 1 + len(m.selectors)) % len(m.selectors)
		m.refresh()
		return m, nil
	case "r":
		// Reload from disk (CLI commands in another terminal are reflected).
		m.refresh()
		return m, nil
	case "n":
		m.editor = newEditorModel(nil, m.svc.Now())
		m.mode = modeEdit
		return m, nil
	case "e", "enter":
		if it, ok := m.tasksList.SelectedItem().(taskRowItem); ok {
			out, err := m.svc.Dispatch(engine.RequestEdit{ID: it.task.ID})
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.editor = newEditorModel(out.Task, m.svc.Now())
			m.mode = modeEdit
		}
		return m, nil
	case "x", " ":
		if it, ok := m.tasksList.SelectedItem().(taskRowItem); ok {
			if _, err := m.svc.Dispatch(engine.ToggleComplete{ID: it.task.ID}); err != nil {
				m.errMsg = err.Error()
			}
			m.refresh()
		}
		return m, nil
	case "d":
		if it, ok := m.tasksList.SelectedItem().(taskRowItem); ok {
			m.confirmTask = it.task
			m.confirmFocus = confirmFocusCancel
			m.mode = modeConfirmDelete
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tasksList, cmd = m.tasksList.Update(msg)
	return m, cmd
}

func (m *appModel) resize() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	listW := m.listWidth()
	m.tasksList.SetSize(listW, h)
	m.search.Width = listW - 4
}

func (m appModel) listWidth() int {
	w := m.width - sidebarWidth - 2
	if m.width >= 110 {
		w = (m.width - sidebarWidth - 4) / 2
	}
	if w < 40 {
		w = 40
	}
	return w
}

func selectorLabel(sel engine.Selector) string {
	s := string(sel)
	if strings.HasPrefix(s, "priority:") {
		return strings.TrimPrefix(s, "priority:")
	}
	switch sel {
	case engine.SelectorAll:
		return "all"
	case engine.SelectorToday:
		return "today"
	case engine.SelectorUpcoming:
		return "upcoming"
	case engine.SelectorCompleted:
		return "completed"
	}
	return s
}

func (m appModel) selectorCount(sel engine.Selector) int {
	s := string(sel)
	if strings.HasPrefix(s, "priority:") {
		return m.counts.Priority[model.Priority(strings.TrimPrefix(s, "priority:"))]
	}
	switch sel {
	case engine.SelectorToday:
		return m.counts.Today
	case engine.SelectorUpcoming:
		return m.counts.Upcoming
	case engine.SelectorCompleted:
		return m.counts.Completed
	default:
		return m.counts.All
	}
}

func (m appModel) viewSidebar(height int) string {
	var rows []string
	rows = append(rows, lipgloss.NewStyle().Bold(true).Render("Filters"))
	for i, sel := range m.selectors {
		label := fmt.Sprintf("%-10s %3d", selectorLabel(sel), m.selectorCount(sel))
		if i == m.selIdx {
			label = lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true).
				Render(label)
		} else {
			label = lipgloss.NewStyle().Foreground(colorSidebarFg).Render(label)
		}
		rows = append(rows, label)
	}
	if m.counts.Overdue > 0 {
		rows = append(rows, "", styleOverdue().Render(fmt.Sprintf("%d overdue", m.counts.Overdue)))
	}
	return lipgloss.NewStyle().Width(sidebarWidth).Height(height).Render(strings.Join(rows, "\n"))
}

func (m appModel) viewBody(height int) string {
	listW := m.listWidth()

	var center string
	if len(m.tasksList.Items()) == 0 {
		// Empty state: hide the list, show the placeholder.
		msg := "No tasks match the current filter."
		if strings.TrimSpace(m.query) != "" {
			msg = fmt.Sprintf("No tasks match %q.", m.query)
		}
		center = lipgloss.NewStyle().
			Width(listW).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(styleMuted().Render(msg))
	} else {
		center = m.tasksList.View()
	}

	cols := []string{m.viewSidebar(height), center}
	if m.width >= 110 {
		detailW := m.width - sidebarWidth - listW - 4
		if it, ok := m.tasksList.SelectedItem().(taskRowItem); ok {
			cols = append(cols, renderTaskDetail(it.task, detailW, height, m.svc.Now()))
		} else {
			cols = append(cols, lipgloss.NewStyle().Width(detailW).Height(height).Render(""))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m appModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("Taskdeck") +
		"  " + styleMuted().Render(m.store.Dir)

	searchLine := m.search.View()
	if !m.searchFocused && strings.TrimSpace(m.search.Value()) == "" {
		searchLine = styleMuted().Render("/ to search")
	}

	bodyH := m.height - 6
	if bodyH < 8 {
		bodyH = 8
	}

	var body string
	switch m.mode {
	case modeConfirmDelete:
		title := strings.TrimSpace(m.confirmTask.Title)
		if title == "" {
			title = m.confirmTask.ID
		}
		body = renderConfirmModal(m.width, "Delete task",
			fmt.Sprintf("Delete %q? This cannot be undone.", title),
			"Delete", "Cancel", m.confirmFocus)
	case modeEdit:
		body = m.editor.view(m.width)
	default:
		body = m.viewBody(bodyH)
	}

	footer := styleMuted().Render("tab: filter  /: search  n: new  e: edit  x: toggle  d: delete  q: quit")
	if m.errMsg != "" {
		footer = styleOverdue().Render(m.errMsg)
	}

	return strings.Join([]string{header, searchLine, body, footer}, "\n")
}
