package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlayModel shows keyboard shortcuts help
type HelpOverlayModel struct {
	visible bool
	width   int
	height  int
	theme   Theme
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	return HelpOverlayModel{
		theme: theme,
	}
}

// Show makes the help overlay visible
func (m *HelpOverlayModel) Show() {
	m.visible = true
}

// Hide makes the help overlay invisible
func (m *HelpOverlayModel) Hide() {
	m.visible = false
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *HelpOverlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme restyles the overlay
func (m *HelpOverlayModel) SetTheme(theme Theme) {
	m.theme = theme
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}

	return m, nil
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("Scalemate Help"))
	b.WriteString("\n\n")

	sectionStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Secondary)
	keyStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Width(12)
	descStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)

	b.WriteString(sectionStyle.Render("MODES") + "\n")
	modes := []struct{ key, desc string }{
		{"Tab", "Switch converter"},
		{"i or /", "Edit the focused field"},
		{"Esc/Enter", "Stop editing"},
	}
	for _, s := range modes {
		b.WriteString("  " + keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("MEASUREMENT") + "\n")
	measurement := []struct{ key, desc string }{
		{"u/U", "Cycle unit"},
		{"s", "Pick a scale"},
		{"+/-", "Adjust scale"},
		{"p/P", "Decimal precision"},
		{"d/D", "Fraction denominator"},
	}
	for _, s := range measurement {
		b.WriteString("  " + keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("SCALE TO SCALE") + "\n")
	ratio := []struct{ key, desc string }{
		{"h/l", "Focus from/to scale"},
		{"s", "Pick focused scale"},
		{"x", "Swap scales"},
	}
	for _, s := range ratio {
		b.WriteString("  " + keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("GENERAL") + "\n")
	general := []struct{ key, desc string }{
		{"c", "Copy metric / percentage"},
		{"C", "Copy imperial"},
		{"t", "Toggle dark/light theme"},
		{"?", "Toggle this help"},
		{"q/Ctrl+C", "Quit"},
	}
	for _, g := range general {
		b.WriteString("  " + keyStyle.Render(g.key) + descStyle.Render(g.desc) + "\n")
	}

	b.WriteString("\n")
	hintStyle := m.theme.Renderer.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}
