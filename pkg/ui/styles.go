package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// RenderDivider renders a horizontal divider line.
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// RenderSubtleDivider renders a more subtle divider using dots.
func RenderSubtleDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Muted).
		Render(strings.Repeat("·", width))
}

// padLabel right-pads (or truncates) a label to width, rune-aware so
// unit names line up in the results column.
func padLabel(label string, width int) string {
	w := runewidth.StringWidth(label)
	if w > width {
		return runewidth.Truncate(label, width, "…")
	}
	return label + strings.Repeat(" ", width-w)
}

// RenderKeyHint renders a "[key] description" footer hint.
func RenderKeyHint(key, desc string, t Theme) string {
	k := t.Renderer.NewStyle().Foreground(t.Primary).Render("[" + key + "]")
	d := t.Renderer.NewStyle().Foreground(t.Muted).Render(" " + desc)
	return k + d
}
