package tui

import (
	"os"
	"strings"
	"sync"
)

// Terminal apps can't change the user's actual font, and not every font
// renders the radio glyphs cleanly. We offer Unicode and ASCII glyph sets.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SHADE_TUI_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

// glyphRadioOn marks the currently selected appearance row.
func glyphRadioOn() string {
	if glyphs() == glyphSetASCII {
		return "(*)"
	}
	return "●"
}

func glyphRadioOff() string {
	if glyphs() == glyphSetASCII {
		return "( )"
	}
	return "○"
}
