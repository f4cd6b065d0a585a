package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modelforge/scalemate/pkg/convert"
)

// RatioModel is the scale-to-scale tab: two scales in, the percentage
// to type into slicer software out.
type RatioModel struct {
	from    textinput.Model
	to      textinput.Model
	focus   int // 0 = from, 1 = to
	percent float64

	insertMode bool
	width      int
	theme      Theme
}

// NewRatioModel creates the scale-to-scale tab. It starts on a common
// RC conversion (1:18 die-cast to 1:14 semi) so the output is
// immediately meaningful.
func NewRatioModel(theme Theme) RatioModel {
	from := textinput.New()
	from.Placeholder = "n"
	from.CharLimit = 3
	from.Width = 4
	from.SetValue("18")

	to := textinput.New()
	to.Placeholder = "n"
	to.CharLimit = 3
	to.Width = 4
	to.SetValue("14")

	m := RatioModel{from: from, to: to, theme: theme}
	m.recompute()
	return m
}

// parseScale reads a typed scale. Non-numeric input becomes 0, which
// RatioPercent maps to a defined 0% output; anything positive is held
// to the picker's 1-72 range.
func parseScale(raw string) int {
	n := int(convert.ParseValue(raw))
	if n <= 0 {
		return 0
	}
	return convert.ClampScale(n)
}

func (m *RatioModel) recompute() {
	m.percent = convert.RatioPercent(parseScale(m.from.Value()), parseScale(m.to.Value()))
}

func (m *RatioModel) focused() *textinput.Model {
	if m.focus == 1 {
		return &m.to
	}
	return &m.from
}

// Update handles input for this tab.
func (m RatioModel) Update(msg tea.Msg) (RatioModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.insertMode {
		switch keyMsg.String() {
		case "esc", "enter":
			m.insertMode = false
			m.focused().Blur()
			return m, nil
		case "tab":
			m.focused().Blur()
			m.focus = 1 - m.focus
			m.focused().Focus()
			return m, textinput.Blink
		}
		var cmd tea.Cmd
		if m.focus == 1 {
			m.to, cmd = m.to.Update(msg)
		} else {
			m.from, cmd = m.from.Update(msg)
		}
		m.recompute()
		return m, cmd
	}

	switch keyMsg.String() {
	case "i", "/":
		m.insertMode = true
		m.focused().Focus()
		return m, textinput.Blink
	case "h", "left":
		m.focus = 0
	case "l", "right":
		m.focus = 1
	case "x":
		// Swap the two scales.
		fromVal, toVal := m.from.Value(), m.to.Value()
		m.from.SetValue(toVal)
		m.to.SetValue(fromVal)
		m.recompute()
	}
	return m, nil
}

// InsertMode reports whether keystrokes are going to a scale field.
func (m RatioModel) InsertMode() bool {
	return m.insertMode
}

// FocusedField returns 0 for the from-scale, 1 for the to-scale.
func (m RatioModel) FocusedField() int {
	return m.focus
}

// SetScale applies a picker selection to the focused field.
func (m *RatioModel) SetScale(n int) {
	m.focused().SetValue(fmt.Sprintf("%d", convert.ClampScale(n)))
	m.recompute()
}

// SetTheme restyles the tab.
func (m *RatioModel) SetTheme(theme Theme) {
	m.theme = theme
}

// SetWidth sets the rendering width.
func (m *RatioModel) SetWidth(width int) {
	m.width = width
}

// Percent exposes the computed resize percentage.
func (m RatioModel) Percent() float64 {
	return m.percent
}

// CopyPercent returns the clipboard text for the percentage.
func (m RatioModel) CopyPercent() string {
	return convert.FormatFixed(m.percent, 2)
}

// View renders the tab.
func (m RatioModel) View() string {
	var b strings.Builder
	t := m.theme

	labelStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	focusMark := t.Renderer.NewStyle().Foreground(t.Primary).Render("▸ ")
	blank := "  "

	fromMark, toMark := blank, blank
	if m.focus == 0 {
		fromMark = focusMark
	} else {
		toMark = focusMark
	}

	b.WriteString(fromMark)
	b.WriteString(labelStyle.Render("Model built for  1:"))
	b.WriteString(m.from.View())
	b.WriteString("\n")
	b.WriteString(toMark)
	b.WriteString(labelStyle.Render("Resize to scale  1:"))
	b.WriteString(m.to.View())
	b.WriteString("\n\n")

	resultStyle := t.Renderer.NewStyle().Foreground(t.Text).Bold(true)
	hintStyle := t.Renderer.NewStyle().Foreground(t.Muted)

	var hint string
	switch {
	case m.percent == 0:
		hint = "enter both scales"
	case m.percent > 100:
		hint = "enlarge in the slicer"
	case m.percent < 100:
		hint = "shrink in the slicer"
	default:
		hint = "same size"
	}

	body := resultStyle.Render(convert.FormatFixed(m.percent, 2)+" %") +
		"\n" + hintStyle.Render(hint)

	box := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, SpaceSM)
	b.WriteString(box.Render(body))

	return b.String()
}
