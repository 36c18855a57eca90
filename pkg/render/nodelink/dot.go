package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/render/svg"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds title, department and status lines to node labels.
	// When false, only the full name is shown.
	Detailed bool
	// Clusters groups nodes into one subgraph per department.
	Clusters bool
}

// ToDOT converts the placed nodes and connections of a chart to Graphviz
// DOT. Nodes keep chart pre-order, so dot sees siblings in roster order.
func ToDOT(c *orgtree.Chart, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\", penwidth=2];\n")
	buf.WriteString("  edge [color=\"#94a3b8\", arrowsize=0.7];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if opts.Clusters {
		order, groups := byDepartment(c.Nodes)
		for i, dept := range order {
			fmt.Fprintf(&buf, "  subgraph %q {\n", "cluster_"+clusterID(dept, i))
			fmt.Fprintf(&buf, "    label=%q;\n", clusterLabel(dept))
			buf.WriteString("    style=\"rounded,dashed\";\n    color=\"#cbd5e1\";\n    fontname=\"Helvetica\";\n")
			for _, n := range groups[dept] {
				writeNode(&buf, "    ", n, opts.Detailed)
			}
			buf.WriteString("  }\n")
		}
	} else {
		for _, n := range c.Nodes {
			writeNode(&buf, "  ", n, opts.Detailed)
		}
	}

	buf.WriteString("\n")
	for _, conn := range c.Connections {
		fmt.Fprintf(&buf, "  %q -> %q;\n", conn.From, conn.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func byDepartment(nodes []*orgtree.Node) ([]string, map[string][]*orgtree.Node) {
	var order []string
	groups := make(map[string][]*orgtree.Node)
	for _, n := range nodes {
		d := n.Employee.Department
		if _, ok := groups[d]; !ok {
			order = append(order, d)
		}
		groups[d] = append(groups[d], n)
	}
	return order, groups
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]+`)

func clusterID(dept string, i int) string {
	id := strings.Trim(nonIdent.ReplaceAllString(dept, "_"), "_")
	if id == "" {
		id = "unassigned"
	}
	return fmt.Sprintf("%d_%s", i, id)
}

func clusterLabel(dept string) string {
	if dept == "" {
		return "Unassigned"
	}
	return dept
}

func writeNode(buf *bytes.Buffer, indent string, n *orgtree.Node, detailed bool) {
	e := n.Employee
	p := svg.StatusPalette(e.Status)
	fmt.Fprintf(buf, "%s%q [label=%q, fillcolor=%q, color=%q];\n",
		indent, e.ID, fmtLabel(n, detailed), p.Fill, p.Border)
}

func fmtLabel(n *orgtree.Node, detailed bool) string {
	e := n.Employee
	if !detailed {
		return e.FullName()
	}
	parts := []string{e.FullName()}
	if t := e.Title(); t != "" {
		parts = append(parts, t)
	}
	if e.Department != "" {
		parts = append(parts, e.Department)
	}
	if e.Status != "" {
		parts = append(parts, "status: "+string(e.Status))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// The viewBox is normalized so the output scales like the native chart.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(data []byte) []byte {
	match := viewBoxRe.FindSubmatch(data)
	if match == nil {
		return data
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return data
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(data, []byte(tag))
}
