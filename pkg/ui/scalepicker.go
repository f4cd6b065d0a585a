package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/modelforge/scalemate/pkg/convert"
)

// ScaleOption is one selectable entry in the scale picker.
type ScaleOption struct {
	N   int    // the divisor in 1:n
	Use string // conventional hobby use
}

// CommonScales lists the scales a model maker actually meets, with
// their conventional uses. Typing a number not in the list still
// works; the picker accepts any custom scale in range.
var CommonScales = []ScaleOption{
	{N: 6, Use: "large-scale RC"},
	{N: 8, Use: "garden railway"},
	{N: 10, Use: "RC crawlers, touring cars"},
	{N: 12, Use: "dollhouse, large figures"},
	{N: 14, Use: "RC semi trucks"},
	{N: 16, Use: "classic car kits"},
	{N: 18, Use: "die-cast cars"},
	{N: 20, Use: "mecha kits"},
	{N: 24, Use: "plastic car kits"},
	{N: 25, Use: "plastic car kits"},
	{N: 32, Use: "aircraft, slot cars"},
	{N: 35, Use: "military armour"},
	{N: 43, Use: "die-cast model cars"},
	{N: 48, Use: "aircraft kits"},
	{N: 64, Use: "S gauge, farm models"},
	{N: 72, Use: "small aircraft kits"},
}

// ScalePickerModel is the overlay for choosing a model scale, fuzzy
// searched the same way as every other picker in this codebase.
type ScalePickerModel struct {
	searchInput   textinput.Model
	filtered      []ScaleOption
	selectedIndex int

	confirmed bool
	cancelled bool
	selected  int

	width  int
	height int
	theme  Theme
}

// NewScalePickerModel creates a picker over the common hobby scales.
func NewScalePickerModel(theme Theme) ScalePickerModel {
	ti := textinput.New()
	ti.Placeholder = "Search scales or type a number..."
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 34

	m := ScalePickerModel{
		searchInput: ti,
		theme:       theme,
	}
	m.filterItems()
	return m
}

func (m *ScalePickerModel) filterItems() {
	query := strings.TrimSpace(m.searchInput.Value())

	if query == "" {
		m.filtered = append([]ScaleOption{}, CommonScales...)
		m.selectedIndex = 0
		return
	}

	searchStrings := make([]string, len(CommonScales))
	for i, opt := range CommonScales {
		searchStrings[i] = fmt.Sprintf("1:%d %s", opt.N, opt.Use)
	}

	matches := fuzzy.Find(query, searchStrings)
	m.filtered = make([]ScaleOption, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, CommonScales[match.Index])
	}
	m.selectedIndex = 0
}

// customScale parses the query as a bare divisor, for scales not in
// the common list. Returns 0 when the query is not a number.
func (m ScalePickerModel) customScale() int {
	query := strings.TrimSpace(m.searchInput.Value())
	query = strings.TrimPrefix(query, "1:")
	n, err := strconv.Atoi(query)
	if err != nil || n <= 0 {
		return 0
	}
	return convert.ClampScale(n)
}

// Update handles input.
func (m ScalePickerModel) Update(msg tea.Msg) (ScalePickerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.cancelled = true
		return m, nil
	case "up", "ctrl+k":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
		return m, nil
	case "down", "ctrl+j":
		if m.selectedIndex < len(m.filtered)-1 {
			m.selectedIndex++
		}
		return m, nil
	case "enter":
		if len(m.filtered) > 0 {
			m.confirmed = true
			m.selected = m.filtered[m.selectedIndex].N
			return m, nil
		}
		if n := m.customScale(); n > 0 {
			m.confirmed = true
			m.selected = n
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filterItems()
	return m, cmd
}

// IsConfirmed reports whether a scale was chosen.
func (m ScalePickerModel) IsConfirmed() bool {
	return m.confirmed
}

// IsCancelled reports whether the user backed out.
func (m ScalePickerModel) IsCancelled() bool {
	return m.cancelled
}

// Selected returns the chosen 1:n divisor.
func (m ScalePickerModel) Selected() int {
	return m.selected
}

// SetSize sets the overlay dimensions.
func (m *ScalePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme restyles the picker.
func (m *ScalePickerModel) SetTheme(theme Theme) {
	m.theme = theme
}

// View renders the picker overlay.
func (m ScalePickerModel) View() string {
	var b strings.Builder
	t := m.theme

	titleStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary)
	b.WriteString(titleStyle.Render("Choose a scale"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		emptyStyle := t.Renderer.NewStyle().Foreground(t.Muted).Italic(true)
		if n := m.customScale(); n > 0 {
			b.WriteString(emptyStyle.Render(fmt.Sprintf("Press enter for custom scale 1:%d", n)))
		} else {
			b.WriteString(emptyStyle.Render("No matching scales"))
		}
	}

	rowStyle := t.Renderer.NewStyle().Foreground(t.Subtext)
	selectedStyle := t.Renderer.NewStyle().
		Foreground(t.Text).
		Background(t.Highlight).
		Bold(true)

	for i, opt := range m.filtered {
		row := padLabel(fmt.Sprintf("1:%d", opt.N), 6) + opt.Use
		if i == m.selectedIndex {
			b.WriteString(selectedStyle.Render("▸ " + row))
		} else {
			b.WriteString(rowStyle.Render("  " + row))
		}
		if i < len(m.filtered)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	hintStyle := t.Renderer.NewStyle().Faint(true)
	b.WriteString(hintStyle.Render("[↑/↓] Navigate  [Enter] Select  [Esc] Cancel"))

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}

// Reset prepares the picker for reuse.
func (m *ScalePickerModel) Reset() {
	m.confirmed = false
	m.cancelled = false
	m.selected = 0
	m.searchInput.Reset()
	m.filterItems()
}
