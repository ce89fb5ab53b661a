package tui

import (
	"github.com/charmbracelet/lipgloss"

	"hyprtodo/internal/models"
)

// Theme is the resolved color set for one palette. Every style in the TUI
// derives from it so switching palettes restyles the whole dashboard.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Subtle    lipgloss.Color
}

var themes = map[models.ThemePalette]Theme{
	models.PaletteBlueCyanTeal: {
		Primary:   lipgloss.Color("#60A5FA"),
		Secondary: lipgloss.Color("#22D3EE"),
		Accent:    lipgloss.Color("#2DD4BF"),
	},
	models.PalettePinkRedOrange: {
		Primary:   lipgloss.Color("#F472B6"),
		Secondary: lipgloss.Color("#F87171"),
		Accent:    lipgloss.Color("#FB923C"),
	},
	models.PaletteTealCyanBlue: {
		Primary:   lipgloss.Color("#2DD4BF"),
		Secondary: lipgloss.Color("#22D3EE"),
		Accent:    lipgloss.Color("#60A5FA"),
	},
	models.PaletteDeepBlue: {
		Primary:   lipgloss.Color("#2563EB"),
		Secondary: lipgloss.Color("#38BDF8"),
		Accent:    lipgloss.Color("#22D3EE"),
	},
}

// NewTheme resolves a palette into a full theme. The neutral colors are
// shared across palettes.
func NewTheme(palette models.ThemePalette) Theme {
	theme, ok := themes[palette]
	if !ok {
		theme = themes[models.DefaultThemePalette]
	}
	theme.Muted = lipgloss.Color("#666666")
	theme.Success = lipgloss.Color("#2ECC71")
	theme.Warning = lipgloss.Color("#F39C12")
	theme.Error = lipgloss.Color("#E74C3C")
	theme.Subtle = lipgloss.Color("#414868")
	return theme
}

// Styles bundles the lipgloss styles used by the dashboard views.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Current     lipgloss.Style
	Done        lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Warning     lipgloss.Style
	Critical    lipgloss.Style
	Help        lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(theme.Primary).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Subtle).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Secondary),
		Current: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),
		Done: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Strikethrough(true),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Accent: lipgloss.NewStyle().
			Foreground(theme.Accent),
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Warning),
		Critical: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),
		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}
