package tui

import (
	"shade-cli/internal/prefs"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive settings screen over the given preference store.
func Run(store *prefs.Store) error {
	applyColorProfilePreference()
	applyGlyphPreference()

	m := newAppModel(store, terminalWindow{})
	m.screen.layout()

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
