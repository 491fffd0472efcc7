package settings

import (
	"fmt"
	"strings"
)

// DisplaySetting is the persisted appearance choice. The ordinal values are
// the on-disk wire format; do not reorder.
type DisplaySetting int

const (
	Light DisplaySetting = iota
	Dark
	Automatic
)

// Default is the effective value whenever the stored preference is absent or
// out of range.
const Default = Automatic

// Key is the fixed identifier the preference is stored under.
const Key = "displaySetting"

// InterfaceStyle is the rendering mode a DisplaySetting maps to. Unspecified
// means "follow the terminal/OS".
type InterfaceStyle int

const (
	StyleUnspecified InterfaceStyle = iota
	StyleLight
	StyleDark
)

type attributes struct {
	id          string
	name        string
	description string
	style       InterfaceStyle
}

// Per-variant attributes live in one table rather than being scattered across
// switches.
var table = [...]attributes{
	Light:     {id: "light", name: "Light", description: "Always use the light appearance", style: StyleLight},
	Dark:      {id: "dark", name: "Dark", description: "Always use the dark appearance", style: StyleDark},
	Automatic: {id: "automatic", name: "Automatic", description: "Match the system appearance", style: StyleUnspecified},
}

// AppearanceRows is the settings screen's row order. It is deliberately not
// the declaration order of the enum; the UI lists Dark first.
var AppearanceRows = []DisplaySetting{Dark, Light, Automatic}

func (s DisplaySetting) valid() bool {
	return s >= 0 && int(s) < len(table)
}

func (s DisplaySetting) String() string {
	if !s.valid() {
		return "automatic"
	}
	return table[s].id
}

func (s DisplaySetting) Name() string {
	if !s.valid() {
		return table[Default].name
	}
	return table[s].name
}

func (s DisplaySetting) Description() string {
	if !s.valid() {
		return table[Default].description
	}
	return table[s].description
}

// Style returns the interface style the variant applies to the terminal.
func (s DisplaySetting) Style() InterfaceStyle {
	if !s.valid() {
		return table[Default].style
	}
	return table[s].style
}

// Ordinal is the integer persisted in the preference store.
func (s DisplaySetting) Ordinal() int64 { return int64(s) }

// FromOrdinal decodes a stored integer. Anything outside the known variants
// folds into the default; there is no error channel on the read path.
func FromOrdinal(v int64) DisplaySetting {
	s := DisplaySetting(v)
	if !s.valid() {
		return Default
	}
	return s
}

// Parse resolves a user-supplied name (CLI input). Unlike FromOrdinal it
// reports bad input instead of defaulting, so typos don't silently flip the
// preference.
func Parse(v string) (DisplaySetting, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	case "automatic", "auto":
		return Automatic, nil
	default:
		return Default, fmt.Errorf("unknown display setting %q (expected light, dark or automatic)", v)
	}
}

// All lists the variants in declaration (ordinal) order.
func All() []DisplaySetting {
	return []DisplaySetting{Light, Dark, Automatic}
}
