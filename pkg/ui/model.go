package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modelforge/scalemate/pkg/config"
)

// tab identifies the two converter modes.
type tab int

const (
	tabMeasure tab = iota
	tabRatio
)

// statusLevel distinguishes the success and failure toast styles.
type statusLevel int

const (
	statusSuccess statusLevel = iota
	statusError
)

// toastDuration is how long a transient status stays on screen before
// it fades on its own.
const toastDuration = 1200 * time.Millisecond

// statusMsg sets the transient toast.
type statusMsg struct {
	text  string
	level statusLevel
}

// clearStatusMsg clears the toast. The sequence number ensures a stale
// timer never wipes a newer toast.
type clearStatusMsg struct {
	seq uint64
}

// Model is the root calculator model: a thin stateful shell that owns
// the current selections and re-invokes the pure conversion core on
// every change.
type Model struct {
	tab     tab
	measure MeasureModel
	ratio   RatioModel
	picker  ScalePickerModel
	help    HelpOverlayModel

	showPicker bool

	status      string
	statusLevel statusLevel
	statusSeq   uint64

	theme  Theme
	width  int
	height int
}

// NewModel creates the calculator with the given theme.
func NewModel(theme Theme) Model {
	return Model{
		tab:     tabMeasure,
		measure: NewMeasureModel(theme),
		ratio:   NewRatioModel(theme),
		picker:  NewScalePickerModel(theme),
		help:    NewHelpOverlayModel(theme),
		theme:   theme,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// copyToClipboard writes text to the system clipboard as a
// fire-and-forget command; success and failure each surface as a
// distinct transient toast.
func copyToClipboard(label, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{text: "Copy failed: " + err.Error(), level: statusError}
		}
		return statusMsg{text: label + " copied: " + text, level: statusSuccess}
	}
}

// saveTheme persists the theme preference without blocking the UI.
func saveTheme(name string) tea.Cmd {
	return func() tea.Msg {
		if err := config.Save(config.Config{Theme: name}); err != nil {
			return statusMsg{text: "Could not save theme: " + err.Error(), level: statusError}
		}
		return nil
	}
}

// setTheme restyles the whole program.
func (m *Model) setTheme(theme Theme) {
	m.theme = theme
	m.measure.SetTheme(theme)
	m.ratio.SetTheme(theme)
	m.picker.SetTheme(theme)
	m.help.SetTheme(theme)
}

// activeInsertMode reports whether the active tab is capturing text.
func (m Model) activeInsertMode() bool {
	if m.tab == tabRatio {
		return m.ratio.InsertMode()
	}
	return m.measure.InsertMode()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.measure.SetWidth(msg.Width)
		m.ratio.SetWidth(msg.Width)
		m.picker.SetSize(msg.Width, msg.Height)
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case statusMsg:
		m.status = msg.text
		m.statusLevel = msg.level
		m.statusSeq++
		seq := m.statusSeq
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	if m.showPicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		switch {
		case m.picker.IsConfirmed():
			n := m.picker.Selected()
			if m.tab == tabRatio {
				m.ratio.SetScale(n)
			} else {
				m.measure.SetScale(n)
			}
			m.showPicker = false
			m.picker.Reset()
		case m.picker.IsCancelled():
			m.showPicker = false
			m.picker.Reset()
		}
		return m, cmd
	}

	// While a field is capturing text, everything except the global
	// quit goes to the active tab.
	if m.activeInsertMode() {
		return m.updateTab(msg)
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "?":
		m.help.Toggle()
		return m, nil

	case "tab", "shift+tab":
		if m.tab == tabMeasure {
			m.tab = tabRatio
		} else {
			m.tab = tabMeasure
		}
		return m, nil

	case "t":
		theme := m.theme.Toggle()
		m.setTheme(theme)
		return m, saveTheme(theme.Name)

	case "s":
		m.showPicker = true
		m.picker.Reset()
		return m, textinput.Blink

	case "c":
		if m.tab == tabRatio {
			return m, copyToClipboard("Percentage", m.ratio.CopyPercent())
		}
		return m, copyToClipboard("Metric value", m.measure.CopyMetric())

	case "C":
		if m.tab == tabMeasure {
			return m, copyToClipboard("Imperial value", m.measure.CopyImperial())
		}
		return m, nil
	}

	return m.updateTab(msg)
}

func (m Model) updateTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.tab == tabRatio {
		m.ratio, cmd = m.ratio.Update(msg)
	} else {
		m.measure, cmd = m.measure.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	t := m.theme

	if m.help.IsVisible() {
		return m.overlay(m.help.View())
	}
	if m.showPicker {
		return m.overlay(m.picker.View())
	}

	var b strings.Builder

	titleStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary)
	b.WriteString(titleStyle.Render("Scalemate"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.tab == tabRatio {
		b.WriteString(m.ratio.View())
	} else {
		b.WriteString(m.measure.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderTabs() string {
	t := m.theme
	active := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Underline(true)
	inactive := t.Renderer.NewStyle().Foreground(t.Muted)

	measure := inactive.Render("Measurement")
	ratio := inactive.Render("Scale to Scale")
	if m.tab == tabRatio {
		ratio = active.Render("Scale to Scale")
	} else {
		measure = active.Render("Measurement")
	}
	return measure + t.Renderer.NewStyle().Foreground(t.Border).Render("  │  ") + ratio
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	t := m.theme
	color := t.Success
	if m.statusLevel == statusError {
		color = t.Danger
	}
	return t.Renderer.NewStyle().Foreground(color).Render(m.status)
}

func (m Model) renderFooter() string {
	t := m.theme
	hints := []string{
		RenderKeyHint("i", "edit", t),
		RenderKeyHint("tab", "mode", t),
		RenderKeyHint("s", "scale", t),
		RenderKeyHint("c", "copy", t),
		RenderKeyHint("t", "theme", t),
		RenderKeyHint("?", "help", t),
		RenderKeyHint("q", "quit", t),
	}
	return strings.Join(hints, "  ")
}

// overlay centers an overlay within the window.
func (m Model) overlay(view string) string {
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// Tab exposes the active tab for testing.
func (m Model) Tab() int {
	return int(m.tab)
}

// Status exposes the current toast text for testing.
func (m Model) Status() string {
	return m.status
}

// ThemeName exposes the active theme name.
func (m Model) ThemeName() string {
	return m.theme.Name
}
