package tui

import (
	"strings"

	"shade-cli/internal/prefs"
	"shade-cli/internal/settings"

	xansi "github.com/charmbracelet/x/ansi"
)

const (
	sectionAppearance = iota
	sectionTextSize
)

type row struct {
	title string
	desc  string

	// hasMark rows carry a radio marker; selected is reconciled against the
	// preference store by refreshAppearance.
	hasMark  bool
	selected bool
}

type section struct {
	header string
	footer string
	rows   []row

	// renderSeq bumps whenever this section's rows are rebuilt. Selecting an
	// appearance row must re-render only the Appearance section.
	renderSeq int
}

// screen is the settings list presenter: two fixed sections whose only
// external state is the preference store.
type screen struct {
	store  *prefs.Store
	window styleApplier

	sections [2]section
}

func newScreen(store *prefs.Store, window styleApplier) *screen {
	s := &screen{store: store, window: window}

	appearanceRows := make([]row, 0, len(settings.AppearanceRows))
	for _, v := range settings.AppearanceRows {
		appearanceRows = append(appearanceRows, row{
			title:   v.Name(),
			desc:    v.Description(),
			hasMark: true,
		})
	}
	s.sections[sectionAppearance] = section{
		header: "Appearance",
		rows:   appearanceRows,
	}
	s.sections[sectionTextSize] = section{
		footer: "Adjust text size",
		rows:   []row{{title: "Text Size"}},
	}

	s.refreshAppearance()
	return s
}

func (s *screen) sectionCount() int { return len(s.sections) }

func (s *screen) rowCount(sec int) int {
	if sec < 0 || sec >= len(s.sections) {
		return 0
	}
	return len(s.sections[sec].rows)
}

// refreshAppearance reconciles the Appearance markers with the store. Exactly
// one row ends up selected: the one matching Get().
func (s *screen) refreshAppearance() {
	current := s.store.Get()
	sec := &s.sections[sectionAppearance]
	for i, v := range settings.AppearanceRows {
		sec.rows[i].selected = v == current
	}
	sec.renderSeq++
}

// selectRow is the row-tap handler. Appearance rows persist the choice,
// re-render their own section and restyle the window; the Text Size row is a
// placeholder and does nothing.
func (s *screen) selectRow(sec, idx int) {
	if sec != sectionAppearance {
		return
	}
	if idx < 0 || idx >= len(settings.AppearanceRows) {
		return
	}
	v := settings.AppearanceRows[idx]
	s.store.Set(v)
	s.refreshAppearance()
	s.window.Apply(v.Style())
}

// layout runs on every size/layout pass: re-read the store and re-apply the
// style so changes made outside this process (CLI, another instance) are
// picked up without explicit invalidation.
func (s *screen) layout() {
	s.refreshAppearance()
	s.window.Apply(s.store.Get().Style())
}

// renderRow produces one display line: marker, name, then the description as
// secondary text, padded/cut to width.
func (s *screen) renderRow(sec, idx, width int, focused bool) string {
	if sec < 0 || sec >= len(s.sections) || idx < 0 || idx >= len(s.sections[sec].rows) {
		return ""
	}
	r := s.sections[sec].rows[idx]

	var b strings.Builder
	if r.hasMark {
		if r.selected {
			b.WriteString(styleAccent().Render(glyphRadioOn()))
		} else {
			b.WriteString(styleMuted().Render(glyphRadioOff()))
		}
		b.WriteString(" ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(r.title)
	if r.desc != "" {
		b.WriteString("  ")
		b.WriteString(styleMuted().Render(r.desc))
	}

	line := b.String()
	if width > 0 {
		lineW := xansi.StringWidth(line)
		if lineW < width {
			line += strings.Repeat(" ", width-lineW)
		} else if lineW > width {
			line = xansi.Cut(line, 0, width)
		}
	}
	if focused {
		return styleFocusedRow().Render(line)
	}
	return line
}
