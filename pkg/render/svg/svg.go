package svg

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/roster"
)

const nodeInteractionCSS = `
    .node rect.card { transition: stroke-width 0.2s ease; }
    .node.highlight rect.card { stroke-width: 4; }
    .connector.highlight { stroke: #94a3b8; }`

const nodeInteractionJS = `
    function highlight(id) {
      document.querySelectorAll('.connector').forEach(c => c.classList.toggle('highlight', c.dataset.from === id || c.dataset.to === id));
      document.querySelectorAll('.node').forEach(n => n.classList.toggle('highlight', n.dataset.id === id));
    }
    function clearHighlight() {
      document.querySelectorAll('.node, .connector').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.node').forEach(el => {
      el.addEventListener('mouseenter', () => highlight(el.dataset.id));
      el.addEventListener('mouseleave', clearHighlight);
    });`

const headerHeight = 56.0

// Option configures SVG rendering.
type Option func(*renderer)

type renderer struct {
	popups bool
	legend bool
	title  string
	names  map[string]string
}

// WithPopups adds a hover card with contact details and onboarding
// progress to every node.
func WithPopups() Option { return func(r *renderer) { r.popups = true } }

// WithLegend adds the status legend to the header.
func WithLegend() Option { return func(r *renderer) { r.legend = true } }

// WithTitle adds a heading to the header.
func WithTitle(s string) Option { return func(r *renderer) { r.title = s } }

// WithRoster resolves manager names for the popups' "Reports to" line,
// including managers that are not on the chart.
func WithRoster(rs *roster.Roster) Option {
	return func(r *renderer) {
		for _, e := range rs.Employees {
			r.names[e.ID] = e.FullName()
		}
	}
}

// Render draws the chart. The document is the chart canvas plus a header
// band when a title, legend or department labels are present.
func Render(c *orgtree.Chart, opts ...Option) []byte {
	r := renderer{names: make(map[string]string)}
	for _, n := range c.Nodes {
		r.names[n.ID()] = n.Employee.FullName()
	}
	for _, opt := range opts {
		opt(&r)
	}

	header := 0.0
	if r.title != "" || r.legend || c.Departments != nil {
		header = headerHeight
	}
	width, height := c.Canvas.Width, c.Canvas.Height+header

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="Inter, system-ui, sans-serif">`+"\n",
		width, height, width, height)
	renderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")

	if header > 0 {
		r.renderHeader(&buf, c, width)
	}

	fmt.Fprintf(&buf, `  <g class="chart" transform="translate(0,%.1f)">`+"\n", header)
	for _, conn := range c.Connections {
		renderConnector(&buf, conn)
	}
	for _, n := range c.Nodes {
		renderNode(&buf, n)
	}
	if r.popups {
		for _, n := range c.Nodes {
			r.renderPopup(&buf, n)
		}
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", nodeInteractionCSS)
	fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", nodeInteractionJS)
	if r.popups {
		renderPopupScript(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <linearGradient id="badge" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0%" stop-color="#3b82f6"/>
      <stop offset="100%" stop-color="#2563eb"/>
    </linearGradient>
    <linearGradient id="progress" x1="0" y1="0" x2="1" y2="0">
      <stop offset="0%" stop-color="#60a5fa"/>
      <stop offset="100%" stop-color="#3b82f6"/>
    </linearGradient>
    <filter id="shadow" x="-10%" y="-10%" width="120%" height="130%">
      <feDropShadow dx="0" dy="4" stdDeviation="6" flood-color="#0f172a" flood-opacity="0.12"/>
    </filter>
  </defs>
`)
}

// ConnectorPath returns the path data from a manager's bottom-center to a
// report's top-center: two quadratic curves meeting at the midpoint of the
// vertical gap.
func ConnectorPath(c orgtree.Connection) string {
	sx, sy := c.Start.X, c.Start.Y
	ex, ey := c.End.X, c.End.Y
	midY := sy + (ey-sy)/2
	return fmt.Sprintf("M %.1f %.1f Q %.1f %.1f %.1f %.1f Q %.1f %.1f %.1f %.1f",
		sx, sy, sx, midY, (sx+ex)/2, midY, ex, midY, ex, ey)
}

func renderConnector(buf *bytes.Buffer, c orgtree.Connection) {
	fmt.Fprintf(buf, `    <path class="connector" data-from="%s" data-to="%s" d="%s" stroke="%s" stroke-width="2" fill="none"/>`+"\n",
		escape(c.From), escape(c.To), ConnectorPath(c), connectorColor)
}

func renderNode(buf *bytes.Buffer, n *orgtree.Node) {
	e := n.Employee
	p := StatusPalette(e.Status)
	const (
		pad     = 16.0
		badge   = 48.0
		textGap = 12.0
	)
	bx := n.X + pad
	by := n.Y + (n.Height-badge)/2
	tx := bx + badge + textGap
	textW := n.Width - (tx - n.X) - pad/2

	fmt.Fprintf(buf, `    <g class="node" id="node-%s" data-id="%s" data-status="%s">`+"\n", escape(e.ID), escape(e.ID), escape(string(e.Status)))
	fmt.Fprintf(buf, `      <rect class="card" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="12" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		n.X, n.Y, n.Width, n.Height, p.Fill, p.Border)
	fmt.Fprintf(buf, `      <rect x="%.1f" y="%.1f" width="%.0f" height="%.0f" rx="12" fill="url(#badge)"/>`+"\n", bx, by, badge, badge)
	fmt.Fprintf(buf, `      <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-size="14" font-weight="600" fill="#ffffff">%s</text>`+"\n",
		bx+badge/2, by+badge/2, escape(e.Initials()))
	fmt.Fprintf(buf, `      <circle cx="%.1f" cy="%.1f" r="10" fill="#ffffff" filter="url(#shadow)"/>`+"\n", bx+badge, by)
	fmt.Fprintf(buf, `      <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-size="11" fill="%s">%s</text>`+"\n",
		bx+badge, by, textMuted, RoleGlyph(e.RoleKind()))

	lines := []struct {
		text   string
		size   float64
		weight string
		color  string
	}{
		{e.FullName(), 14, "600", textStrong},
		{e.Title(), 12, "400", textMuted},
		{e.Department, 12, "400", textFaint},
	}
	y := n.Y + n.Height/2 - 18
	for _, l := range lines {
		if l.text != "" {
			fmt.Fprintf(buf, `      <text x="%.1f" y="%.1f" font-size="%.0f" font-weight="%s" fill="%s">%s</text>`+"\n",
				tx, y, l.size, l.weight, l.color, escape(truncate(l.text, textW, l.size)))
		}
		y += 18
	}
	buf.WriteString("    </g>\n")
}

func (r *renderer) renderHeader(buf *bytes.Buffer, c *orgtree.Chart, width float64) {
	buf.WriteString(`  <g class="header">` + "\n")
	if r.title != "" {
		fmt.Fprintf(buf, `    <text x="16" y="30" font-size="20" font-weight="700" fill="%s">%s</text>`+"\n", textStrong, escape(r.title))
	}
	if r.legend {
		renderLegend(buf, width)
	}
	for _, d := range c.Departments {
		if d.Placed == 0 {
			continue
		}
		name := d.Name
		if name == "" {
			name = "Unassigned"
		}
		fmt.Fprintf(buf, `    <text class="department" x="%.1f" y="%.1f" font-size="13" font-weight="600" fill="%s">%s</text>`+"\n",
			d.MinX, headerHeight-10, textMuted, escape(truncate(name, d.MaxX-d.MinX, 13)))
	}
	buf.WriteString("  </g>\n")
}

var legendEntries = []struct {
	status roster.Status
	label  string
}{
	{roster.StatusActive, "Active"},
	{roster.StatusOnboarding, "Onboarding"},
	{roster.StatusPending, "Pending"},
}

func renderLegend(buf *bytes.Buffer, width float64) {
	const entryWidth = 104.0
	x := width - 16 - entryWidth*float64(len(legendEntries))
	for _, e := range legendEntries {
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="24" r="6" fill="%s"/>`+"\n", x+6, StatusPalette(e.status).Dot)
		fmt.Fprintf(buf, `    <text x="%.1f" y="28" font-size="13" fill="%s">%s</text>`+"\n", x+18, textMuted, e.label)
		x += entryWidth
	}
}
