package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/store"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor and "faint" styling is only applied on
// dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorSurfaceFg   lipgloss.TerminalColor = ac("235", "252")
	colorControlBg   lipgloss.TerminalColor = ac("252", "235")
	colorAccent      lipgloss.TerminalColor = ac("27", "62") // blue
	colorSidebarFg   lipgloss.TerminalColor = ac("240", "245")
	colorBadgeFg     lipgloss.TerminalColor = ac("241", "245")
	colorCompletedFg lipgloss.TerminalColor = ac("245", "242")

	// Semantic colors for priority badges.
	colorSuccess lipgloss.TerminalColor = ac("28", "77")   // green
	colorWarning lipgloss.TerminalColor = ac("130", "214") // amber
	colorError   lipgloss.TerminalColor = ac("124", "203") // red
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleCompleted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorCompletedFg).Strikethrough(true)
}

func styleOverdue() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError).Bold(true)
}

// priorityStyle resolves a priority's semantic color name to a style.
func priorityStyle(p model.Priority) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	switch p.Color() {
	case "success":
		return st.Foreground(colorSuccess)
	case "warning":
		return st.Foreground(colorWarning)
	case "error":
		return st.Foreground(colorError)
	default:
		return st.Foreground(colorMuted)
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. Only NO_COLOR is honored; otherwise the terminal's
// capabilities win (CLICOLOR is for non-interactive output and can
// accidentally disable colors in a TUI).
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) TASKDECK_TUI_THEME=light|dark|auto
// 2) the persisted theme preference (taskdeck theme set ...)
// 3) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference() {
	if applied := applyThemeValue(os.Getenv("TASKDECK_TUI_THEME")); applied {
		return
	}

	if cfg, err := store.LoadConfig(); err == nil {
		if applied := applyThemeValue(cfg.Theme); applied {
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			// Treat "lighter" backgrounds as non-dark. Heuristic, but better
			// than consistently choosing the wrong palette.
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}

func applyThemeValue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return true
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return true
	default:
		// "auto", empty or unknown: fall through to heuristics.
		return false
	}
}
