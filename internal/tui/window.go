package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"shade-cli/internal/settings"

	"github.com/charmbracelet/lipgloss"
)

// styleApplier is the "active window" boundary: applying an interface style
// switches the terminal rendering between the light and dark palette.
// Abstracted so tests can observe what was applied.
type styleApplier interface {
	Apply(settings.InterfaceStyle)
}

// terminalWindow applies styles to the real terminal via Lip Gloss's
// background flag, which flips every AdaptiveColor in the palette.
type terminalWindow struct{}

func (terminalWindow) Apply(st settings.InterfaceStyle) {
	switch st {
	case settings.StyleLight:
		lipgloss.SetHasDarkBackground(false)
	case settings.StyleDark:
		lipgloss.SetHasDarkBackground(true)
	default:
		lipgloss.SetHasDarkBackground(detectDarkBackground())
	}
}

// detectDarkBackground resolves the "automatic" style.
//
// Some terminals don't reliably report their background, which can cause
// lipgloss.AdaptiveColor to pick the wrong variant. Priority:
// 1) SHADE_TUI_THEME=light|dark
// 2) SHADE_TUI_DARKBG=true|false
// 3) COLORFGBG heuristic (format like "15;0" = fg;bg)
// 4) macOS appearance
// 5) whatever Lip Gloss detected at startup
func detectDarkBackground() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SHADE_TUI_THEME"))) {
	case "light":
		return false
	case "dark":
		return true
	}

	if v := strings.TrimSpace(os.Getenv("SHADE_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}

	// COLORFGBG is often "fg;bg" (sometimes more segments); use the last
	// segment as bg. Treat lighter backgrounds as non-dark.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			return bg < 7
		}
	}

	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			return dark
		}
	}

	return lipgloss.HasDarkBackground()
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and
	// exits 1 in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
