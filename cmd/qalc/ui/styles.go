// Package ui provides the visual styling and viewport pages for the
// qalc interactive calculator.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Light and dark variants share the semantic colors.
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1b2733")
	LightPrimary    = lipgloss.Color("#1b2733")
	LightAccent     = lipgloss.Color("#2196F3")
	LightMuted      = lipgloss.Color("#8a949e")
	LightBorder     = lipgloss.Color("#dce0e5")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#141d2b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#64B5F6")
	DarkAccent     = lipgloss.Color("#2196F3")
	DarkMuted      = lipgloss.Color("#5c6a7a")
	DarkBorder     = lipgloss.Color("#2a3850")
	DarkCard       = lipgloss.Color("#1a2536")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeFromName resolves a configured theme name; "auto" detects from
// the terminal environment.
func ThemeFromName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects based on terminal hints or returns light mode.
func DetectTheme() Theme {
	// COLORFGBG is usually "foreground;background"; low background
	// indices indicate a dark terminal.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("QALC_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Display
	Display      lipgloss.Style // the big current-value line
	DisplayUpper lipgloss.Style // the small "previous op" line above it
	DisplayBox   lipgloss.Style

	// Buttons
	Button       lipgloss.Style
	ButtonAccent lipgloss.Style
	ButtonActive lipgloss.Style

	// Text
	Title       lipgloss.Style
	Muted       lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
}

// NewStyles builds the component styles for a theme.
func NewStyles(theme Theme) Styles {
	s := Styles{Theme: theme}

	s.App = lipgloss.NewStyle().Padding(1, 2)
	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Border)
	s.Footer = lipgloss.NewStyle().Foreground(theme.Muted)

	s.Display = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Foreground).
		Align(lipgloss.Right)
	s.DisplayUpper = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Align(lipgloss.Right)
	s.DisplayBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	s.Button = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Padding(0, 1)
	s.ButtonAccent = lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Padding(0, 1)
	s.ButtonActive = lipgloss.NewStyle().
		Foreground(theme.Background).
		Background(theme.Accent).
		Padding(0, 1)

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	s.Muted = lipgloss.NewStyle().Foreground(theme.Muted)
	s.StatusError = lipgloss.NewStyle().Bold(true).Foreground(Destructive)
	s.StatusInfo = lipgloss.NewStyle().Foreground(theme.Accent)

	return s
}
