package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI. It is resolved once at
// startup from the configured theme name and never re-applied.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string

	Border      string
	BorderFocus string
	SelectionBg string
}

var themes = map[string]Theme{
	"dark": {
		Name:        "dark",
		Text:        "#c9d1d9",
		Muted:       "#8b949e",
		Accent:      "#58a6ff",
		Success:     "#3fb950",
		Warning:     "#d29922",
		Danger:      "#f85149",
		Border:      "#30363d",
		BorderFocus: "#58a6ff",
		SelectionBg: "#1f3a5f",
	},
	"light": {
		Name:        "light",
		Text:        "#1f2328",
		Muted:       "#636c76",
		Accent:      "#0969da",
		Success:     "#1a7f37",
		Warning:     "#9a6700",
		Danger:      "#cf222e",
		Border:      "#d0d7de",
		BorderFocus: "#0969da",
		SelectionBg: "#ddf4ff",
	},
}

// ThemeByName resolves a theme name, falling back to dark.
func ThemeByName(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes["dark"]
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 2).
			Underline(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.SelectionBg)).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 2),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles bundles the lipgloss styles derived from a Theme.
type Styles struct {
	Title        lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Success      lipgloss.Style
	Danger       lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Modal        lipgloss.Style
	Help         lipgloss.Style
}
