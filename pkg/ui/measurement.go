package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modelforge/scalemate/pkg/convert"
)

// MeasureModel is the measurement-converter tab: one real-world length
// plus a 1:n scale, re-expressed in every unit of both systems. All
// selections live here; every change re-runs the pure core from
// scratch.
type MeasureModel struct {
	input     textinput.Model
	units     []convert.Unit
	unitIdx   int
	scale     int
	precision int
	denomIdx  int // index into convert.FractionDenominators

	result convert.Result

	insertMode bool
	width      int
	theme      Theme
}

// NewMeasureModel creates the measurement tab with its defaults:
// millimetres in, 1:24, two decimals, sixteenths.
func NewMeasureModel(theme Theme) MeasureModel {
	ti := textinput.New()
	ti.Placeholder = "real-world length"
	ti.CharLimit = 32
	ti.Width = 20
	ti.Focus()

	m := MeasureModel{
		input:     ti,
		units:     convert.AllUnits(),
		scale:     24,
		precision: 2,
		theme:     theme,
	}
	for i, d := range convert.FractionDenominators {
		if d == convert.DefaultDenominator {
			m.denomIdx = i
		}
	}
	m.recompute()
	return m
}

// recompute re-runs the conversion from the current inputs. Called on
// every change; there is no incremental path.
func (m *MeasureModel) recompute() {
	m.result = convert.Convert(convert.Request{
		Value:       convert.ParseValue(m.input.Value()),
		Unit:        m.units[m.unitIdx],
		Scale:       m.scale,
		Precision:   m.precision,
		Denominator: convert.FractionDenominators[m.denomIdx],
	})
}

// Update handles input for this tab. In insert mode keystrokes go to
// the value field; in normal mode single keys adjust the selections.
func (m MeasureModel) Update(msg tea.Msg) (MeasureModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.insertMode {
		switch keyMsg.String() {
		case "esc", "enter":
			m.insertMode = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.recompute()
		return m, cmd
	}

	switch keyMsg.String() {
	case "i", "/":
		m.insertMode = true
		m.input.Focus()
		return m, textinput.Blink
	case "u":
		m.unitIdx = (m.unitIdx + 1) % len(m.units)
	case "U":
		m.unitIdx = (m.unitIdx + len(m.units) - 1) % len(m.units)
	case "+", "=":
		m.scale = convert.ClampScale(m.scale + 1)
	case "-", "_":
		m.scale = convert.ClampScale(m.scale - 1)
	case "p":
		m.precision = convert.ClampPrecision(m.precision + 1)
	case "P":
		m.precision = convert.ClampPrecision(m.precision - 1)
	case "d":
		m.denomIdx = (m.denomIdx + 1) % len(convert.FractionDenominators)
	case "D":
		m.denomIdx = (m.denomIdx + len(convert.FractionDenominators) - 1) % len(convert.FractionDenominators)
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

// InsertMode reports whether keystrokes are going to the value field.
func (m MeasureModel) InsertMode() bool {
	return m.insertMode
}

// Scale returns the current 1:n divisor.
func (m MeasureModel) Scale() int {
	return m.scale
}

// SetScale applies a scale chosen in the picker.
func (m *MeasureModel) SetScale(n int) {
	m.scale = convert.ClampScale(n)
	m.recompute()
}

// SetTheme restyles the tab.
func (m *MeasureModel) SetTheme(theme Theme) {
	m.theme = theme
}

// SetWidth sets the rendering width.
func (m *MeasureModel) SetWidth(width int) {
	m.width = width
}

// Result exposes the current conversion for copying and testing.
func (m MeasureModel) Result() convert.Result {
	return m.result
}

// CopyMetric returns the clipboard text for the metric result: the
// scaled value in millimetres.
func (m MeasureModel) CopyMetric() string {
	return convert.FormatFixed(m.result.MM, m.precision)
}

// CopyImperial returns the clipboard text for the imperial result: the
// fractional-inch form.
func (m MeasureModel) CopyImperial() string {
	return m.result.Frac.String()
}

// View renders the tab.
func (m MeasureModel) View() string {
	var b strings.Builder
	t := m.theme

	labelStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	valueStyle := t.Renderer.NewStyle().Foreground(t.Text).Bold(true)
	unitStyle := t.Renderer.NewStyle().Foreground(t.Accent)
	settingStyle := t.Renderer.NewStyle().Foreground(t.Muted)

	unit := m.units[m.unitIdx]
	b.WriteString(labelStyle.Render("Real-world size: "))
	b.WriteString(m.input.View())
	b.WriteString(" " + unitStyle.Render(unit.Key))
	b.WriteString(settingStyle.Render(fmt.Sprintf("   at scale 1:%d", m.scale)))
	b.WriteString("\n\n")

	denom := convert.FractionDenominators[m.denomIdx]
	rows := []struct{ label, value string }{
		{"millimetres", convert.FormatFixed(m.result.MM, m.precision)},
		{"centimetres", convert.FormatFixed(m.result.CM, m.precision)},
		{"metres", convert.FormatFixed(m.result.M, m.precision)},
		{"", ""},
		{"inches", convert.FormatFixed(m.result.Inches, m.precision)},
		{"feet", convert.FormatFixed(m.result.Feet, m.precision)},
		{"fractional", fmt.Sprintf("%s in (1/%d)", m.result.Frac, denom)},
	}

	var body strings.Builder
	for i, row := range rows {
		if row.label == "" {
			body.WriteString(RenderSubtleDivider(30, t))
		} else {
			body.WriteString(labelStyle.Render(padLabel(row.label, 14)))
			body.WriteString(valueStyle.Render(row.value))
		}
		if i < len(rows)-1 {
			body.WriteString("\n")
		}
	}

	box := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, SpaceSM)
	b.WriteString(box.Render(body.String()))
	b.WriteString("\n")
	b.WriteString(settingStyle.Render(fmt.Sprintf("precision %d · fractions to 1/%d", m.precision, denom)))

	return b.String()
}
