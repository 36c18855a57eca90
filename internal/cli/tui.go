package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/orgchart/pkg/access"
	"github.com/matzehuels/orgchart/pkg/orgtree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Width(44)
)

// =============================================================================
// BrowseModel - Interactive chart browser
// =============================================================================

// browseRow is one visible line of the browser.
type browseRow struct {
	node  *orgtree.Node
	depth int
}

// BrowseModel is the bubbletea model for exploring a chart. Subtrees
// expand and collapse in place; the selected employee's card is shown
// beside the tree.
type BrowseModel struct {
	Chart    *orgtree.Chart
	Caps     access.Capabilities
	Expanded map[string]bool
	Cursor   int
	Offset   int
	Height   int

	rows  []browseRow
	names map[string]string
}

// NewBrowseModel creates a browser with the top two levels expanded.
func NewBrowseModel(c *orgtree.Chart, caps access.Capabilities) BrowseModel {
	m := BrowseModel{
		Chart:    c,
		Caps:     caps,
		Expanded: make(map[string]bool),
		Height:   20,
		names:    make(map[string]string, len(c.Nodes)),
	}
	for _, n := range c.Nodes {
		m.names[n.ID()] = n.Employee.FullName()
		if n.Level == 0 {
			m.Expanded[n.ID()] = true
		}
	}
	m.refresh()
	return m
}

// refresh recomputes the visible rows from the expansion state.
func (m *BrowseModel) refresh() {
	m.rows = m.rows[:0]
	var walk func(n *orgtree.Node, depth int)
	walk = func(n *orgtree.Node, depth int) {
		m.rows = append(m.rows, browseRow{node: n, depth: depth})
		if !m.Expanded[n.ID()] {
			return
		}
		for _, ch := range n.Children {
			walk(ch, depth+1)
		}
	}
	for _, r := range m.Chart.Roots {
		walk(r, 0)
	}
	if m.Cursor >= len(m.rows) {
		m.Cursor = max(len(m.rows)-1, 0)
	}
	m.scroll()
}

func (m *BrowseModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

// Selected returns the node under the cursor, or nil for an empty chart.
func (m BrowseModel) Selected() *orgtree.Node {
	if len(m.rows) == 0 {
		return nil
	}
	return m.rows[m.Cursor].node
}

// Visible returns the IDs of the visible rows in order.
func (m BrowseModel) Visible() []string {
	ids := make([]string, len(m.rows))
	for i, r := range m.rows {
		ids[i] = r.node.ID()
	}
	return ids
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.rows)-1 {
				m.Cursor++
			}
		case "right", "l", "enter", " ":
			if n := m.Selected(); n != nil && !n.IsLeaf() {
				m.Expanded[n.ID()] = msg.String() == "right" || msg.String() == "l" || !m.Expanded[n.ID()]
				m.refresh()
			}
		case "left", "h":
			n := m.Selected()
			if n == nil {
				break
			}
			if m.Expanded[n.ID()] && !n.IsLeaf() {
				m.Expanded[n.ID()] = false
			} else {
				m.moveTo(n.Parent)
			}
			m.refresh()
		case "e":
			for _, n := range m.Chart.Nodes {
				if !n.IsLeaf() {
					m.Expanded[n.ID()] = true
				}
			}
			m.refresh()
		case "c":
			sel := m.Selected()
			clear(m.Expanded)
			m.refresh()
			for sel != nil && sel.Level > 0 {
				sel = m.find(sel.Parent)
			}
			if sel != nil {
				m.moveTo(sel.ID())
			}
		}
		m.scroll()
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		m.scroll()
	}
	return m, nil
}

func (m *BrowseModel) moveTo(id string) {
	for i, r := range m.rows {
		if r.node.ID() == id {
			m.Cursor = i
			return
		}
	}
}

func (m BrowseModel) find(id string) *orgtree.Node {
	n, _ := m.Chart.Find(id)
	return n
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Organization Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  →/← expand/collapse  e expand all  c collapse all  q quit"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(listDimStyle.Render("  no employees placed"))
		return b.String()
	}

	var list strings.Builder
	end := min(m.Offset+m.Height, len(m.rows))
	for i := m.Offset; i < end; i++ {
		r := m.rows[i]
		marker := "  "
		if !r.node.IsLeaf() {
			marker = "▸ "
			if m.Expanded[r.node.ID()] {
				marker = "▾ "
			}
		}
		line := strings.Repeat("  ", r.depth) + marker + r.node.Employee.FullName()
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render(line))
		} else {
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", m.detail(m.Selected())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.rows))))
	return b.String()
}

// detail renders the card of n. Contact details need view_details.
func (m BrowseModel) detail(n *orgtree.Node) string {
	e := n.Employee
	status := statusStyle(e.Status).Render(string(e.Status))

	lines := []string{
		styleTreeName.Render(e.FullName()),
		StyleDim.Render(e.Title()),
		"",
		kv("Department", e.Department),
		kv("Status", status),
		kv("Reports", fmt.Sprintf("%d", len(n.Children))),
	}
	if m.Caps.Has(access.CapViewDetails) {
		manager := "Unknown"
		if name, ok := m.names[e.ManagerID]; ok {
			manager = name
		}
		if !e.HasManager() {
			manager = "—"
		}
		lines = append(lines,
			kv("Email", e.Email),
			kv("Started", e.StartDate),
			kv("Reports to", manager),
		)
		if p, ok := e.Progress(); ok {
			lines = append(lines, kv("Onboarding", fmt.Sprintf("%d%%", p)))
		}
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}

func kv(key, value string) string {
	if value == "" {
		value = "—"
	}
	return lipgloss.NewStyle().Foreground(colorGray).Width(12).Render(key) + value
}
