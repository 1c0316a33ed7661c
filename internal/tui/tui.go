package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck-cli/internal/store"
)

// Run starts the interactive board over the given workspace and blocks until
// the user quits.
func Run(st store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	p := tea.NewProgram(newAppModel(st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
