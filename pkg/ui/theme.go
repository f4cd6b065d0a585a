package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles a lipgloss renderer with the palette used across the
// UI. Every view renders through theme.Renderer so the whole program
// restyles when the user toggles dark/light.
type Theme struct {
	Name string

	Renderer *lipgloss.Renderer

	Text      lipgloss.Color
	Subtext   lipgloss.Color
	Muted     lipgloss.Color
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Border    lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color // selection background
}

// DarkTheme is the Dracula-inspired default.
func DarkTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:      "dark",
		Renderer:  r,
		Text:      lipgloss.Color("#F8F8F2"),
		Subtext:   lipgloss.Color("#BFBFBF"),
		Muted:     lipgloss.Color("#6272A4"),
		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#6272A4"),
		Border:    lipgloss.Color("#44475A"),
		Success:   lipgloss.Color("#50FA7B"),
		Danger:    lipgloss.Color("#FF5555"),
		Accent:    lipgloss.Color("#8BE9FD"),
		Highlight: lipgloss.Color("#44475A"),
	}
}

// LightTheme mirrors the dark palette for light terminals.
func LightTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:      "light",
		Renderer:  r,
		Text:      lipgloss.Color("#282A36"),
		Subtext:   lipgloss.Color("#44475A"),
		Muted:     lipgloss.Color("#6272A4"),
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#6272A4"),
		Border:    lipgloss.Color("#B0B4C4"),
		Success:   lipgloss.Color("#1A7F37"),
		Danger:    lipgloss.Color("#C62828"),
		Accent:    lipgloss.Color("#0369A1"),
		Highlight: lipgloss.Color("#E3E6F0"),
	}
}

// ThemeByName returns the theme for a stored preference name,
// defaulting to dark. A nil renderer uses the process default.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if name == "light" {
		return LightTheme(r)
	}
	return DarkTheme(r)
}

// Toggle returns the other theme, keeping the renderer.
func (t Theme) Toggle() Theme {
	if t.Name == "dark" {
		return LightTheme(t.Renderer)
	}
	return DarkTheme(t.Renderer)
}
