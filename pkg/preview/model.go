// Package preview shows a built inventory in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/JWeinelt/codelib/pkg/gui"
	"github.com/JWeinelt/codelib/pkg/item"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center)

	fillerStyle = cellStyle.
			Foreground(lipgloss.Color("241"))

	cursorStyle = cellStyle.
			Reverse(true)

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	tooltipStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().Bold(true)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the bubbletea model drawing one inventory.
type Model struct {
	inv    *gui.Inventory
	cursor int
	keys   keyMap
	help   help.Model
	closed bool
}

// NewModel creates a model with the cursor on the first slot.
func NewModel(inv *gui.Inventory) *Model {
	return &Model{
		inv:  inv,
		keys: keys,
		help: help.New(),
	}
}

// Cursor returns the hovered slot index.
func (m *Model) Cursor() int { return m.cursor }

// Hovered returns the item under the cursor, or nil.
func (m *Model) Hovered() *item.Item { return m.inv.Item(m.cursor) }

// Closed reports whether the user closed the preview.
func (m *Model) Closed() bool { return m.closed }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.closed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.move(-gui.SlotsPerRow)
		case key.Matches(msg, m.keys.Down):
			m.move(gui.SlotsPerRow)
		case key.Matches(msg, m.keys.Left):
			if m.cursor%gui.SlotsPerRow > 0 {
				m.move(-1)
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor%gui.SlotsPerRow < gui.SlotsPerRow-1 {
				m.move(1)
			}
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if next := m.cursor + delta; next >= 0 && next < m.inv.Size() {
		m.cursor = next
	}
}

func (m *Model) View() string {
	title := titleStyle.Render(m.inv.Title().Text)
	info := infoStyle.Render(fmt.Sprintf("%s, %d slots, slot %d", m.inv.Type(), m.inv.Size(), m.cursor))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		gridStyle.Render(m.renderGrid()),
		m.renderTooltip(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, info, body, m.help.View(m.keys))
}

func (m *Model) renderGrid() string {
	rows := make([]string, 0, m.inv.Rows())
	for r := range m.inv.Rows() {
		cells := make([]string, 0, gui.SlotsPerRow)
		for c := range gui.SlotsPerRow {
			i := gui.SlotIndex(r, c)
			if i >= m.inv.Size() {
				break
			}
			it := m.inv.Item(i)
			style := cellStyle
			switch {
			case i == m.cursor:
				style = cursorStyle
			case it != nil && it.Name() == gui.FillerName:
				style = fillerStyle
			}
			cells = append(cells, style.Render(label(it)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderTooltip() string {
	lines := Tooltip(m.Hovered())
	if len(lines) == 0 {
		return ""
	}
	lines[0] = nameStyle.Render(lines[0])
	return tooltipStyle.Render(strings.Join(lines, "\n"))
}

// label abbreviates an item for a grid cell: the initials of the material
// name followed by the amount when it is above one.
func label(it *item.Item) string {
	if it.IsEmpty() {
		return "·"
	}
	var sb strings.Builder
	for _, word := range strings.Split(it.Material.Key(), "_") {
		if word != "" && sb.Len() < 3 {
			sb.WriteString(strings.ToUpper(word[:1]))
		}
	}
	if it.Amount > 1 {
		fmt.Fprint(&sb, it.Amount)
	}
	return sb.String()
}
