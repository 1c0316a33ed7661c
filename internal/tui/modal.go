package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func modalBodyWidth(width int) int {
	w := width - 8
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

func renderModalBox(width int, title, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Background(colorControlBg).
		Foreground(colorSurfaceFg).
		Width(bodyW).
		Padding(0, 1).
		Render(title)

	body := lipgloss.NewStyle().
		Width(bodyW).
		Padding(0, 1).
		Render(content)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Render(strings.Join([]string{header, body}, "\n"))

	return box
}

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// renderConfirmModal draws a two-button prompt; the focused button is
// highlighted. Delete prompts open with focus on cancel.
func renderConfirmModal(width int, title, body, confirmLabel, cancelLabel string, focus confirmModalFocus) string {
	gap := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		modalButton(confirmLabel, focus == confirmFocusConfirm),
		gap,
		modalButton(cancelLabel, focus == confirmFocusCancel),
	)

	hint := styleMuted().
		Width(modalBodyWidth(width)).
		Render("tab: focus   enter: select   esc: cancel")

	content := body + "\n\n" + row + "\n\n" + hint
	return renderModalBox(width, title, content)
}

func modalButton(label string, active bool) string {
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if active {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return st.Render(label)
}
