package tui

import (
	"strings"

	"shade-cli/internal/prefs"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type appModel struct {
	screen *screen

	width  int
	height int

	cursorSection int
	cursorRow     int

	keys keyMap
	help help.Model
}

func newAppModel(store *prefs.Store, window styleApplier) appModel {
	return appModel{
		screen: newScreen(store, window),
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Layout pass: pick up preference changes made outside this process.
		m.screen.layout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
			return m, nil
		case key.Matches(msg, m.keys.Select):
			m.screen.selectRow(m.cursorSection, m.cursorRow)
			return m, nil
		}
	}
	return m, nil
}

// moveCursor steps across section boundaries so the two sections feel like
// one continuous table.
func (m *appModel) moveCursor(delta int) {
	sec, idx := m.cursorSection, m.cursorRow+delta
	for {
		if idx < 0 {
			if sec == 0 {
				return
			}
			sec--
			idx = m.screen.rowCount(sec) - 1
			continue
		}
		if idx >= m.screen.rowCount(sec) {
			if sec == m.screen.sectionCount()-1 {
				return
			}
			sec++
			idx = 0
			continue
		}
		break
	}
	m.cursorSection, m.cursorRow = sec, idx
}

func (m appModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("Display Settings")

	rowWidth := m.width - 2
	if rowWidth < 40 {
		rowWidth = 40
	}

	var out []string
	out = append(out, title, "")
	for sec := 0; sec < m.screen.sectionCount(); sec++ {
		if h := m.screen.sections[sec].header; h != "" {
			out = append(out, styleSectionHeader().Render(h))
		}
		for idx := 0; idx < m.screen.rowCount(sec); idx++ {
			focused := sec == m.cursorSection && idx == m.cursorRow
			out = append(out, m.screen.renderRow(sec, idx, rowWidth, focused))
		}
		if f := m.screen.sections[sec].footer; f != "" {
			out = append(out, styleSectionFooter().Render(f))
		}
		out = append(out, "")
	}
	out = append(out, m.help.View(m.keys))

	return strings.Join(out, "\n")
}
