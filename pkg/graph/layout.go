package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// =============================================================================
// Layout - Positioned Chart Format
// =============================================================================

// Layout is the serialization format of a computed chart.
//
// VizType tells which view produced it:
//
//	Chart ("chart"): a single forest.
//	Departments ("departments"): one forest per department, side by side,
//	  with Departments describing each frame.
//
// Blocks are in pre-order and Edges in the order of [orgtree.Connections].
type Layout struct {
	VizType string  `json:"viz_type"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Depth   int     `json:"depth"`

	Config      orgtree.Config      `json:"config"`
	Blocks      []Block             `json:"blocks"`
	Edges       []Edge              `json:"edges"`
	Departments []Department        `json:"departments,omitempty"`
	Diagnostics orgtree.Diagnostics `json:"diagnostics"`
}

// IsChart returns true for a single-forest layout.
func (l *Layout) IsChart() bool { return l.VizType == VizTypeChart }

// IsDepartments returns true for a department-grouped layout.
func (l *Layout) IsDepartments() bool { return l.VizType == VizTypeDepartments }

// Block is one positioned employee box.
type Block struct {
	ID           string          `json:"id"`
	Parent       string          `json:"parent,omitempty"`
	Level        int             `json:"level"`
	X            float64         `json:"x"`
	Y            float64         `json:"y"`
	Width        float64         `json:"width"`
	Height       float64         `json:"height"`
	SubtreeWidth float64         `json:"subtree_width"`
	Employee     roster.Employee `json:"employee"`
}

// Department is one frame of a department-grouped layout.
type Department struct {
	Name      string   `json:"name"`
	Roots     []string `json:"roots"`
	Employees int      `json:"employees"`
	Placed    int      `json:"placed"`
	Depth     int      `json:"depth"`
	MinX      float64  `json:"min_x"`
	MaxX      float64  `json:"max_x"`
}

// =============================================================================
// Conversion
// =============================================================================

// FromChart exports a computed chart.
func FromChart(c *orgtree.Chart) Layout {
	l := Layout{
		VizType:     VizTypeChart,
		Width:       c.Canvas.Width,
		Height:      c.Canvas.Height,
		Depth:       c.Depth,
		Config:      c.Config,
		Blocks:      make([]Block, 0, len(c.Nodes)),
		Edges:       make([]Edge, 0, len(c.Connections)),
		Diagnostics: c.Diagnostics,
	}
	for _, n := range c.Nodes {
		l.Blocks = append(l.Blocks, Block{
			ID:           n.ID(),
			Parent:       n.Parent,
			Level:        n.Level,
			X:            n.X,
			Y:            n.Y,
			Width:        n.Width,
			Height:       n.Height,
			SubtreeWidth: n.SubtreeWidth,
			Employee:     n.Employee,
		})
	}
	for _, conn := range c.Connections {
		l.Edges = append(l.Edges, Edge{
			From: conn.From, To: conn.To,
			X1: conn.Start.X, Y1: conn.Start.Y,
			X2: conn.End.X, Y2: conn.End.Y,
		})
	}
	if c.Departments != nil {
		l.VizType = VizTypeDepartments
		for _, d := range c.Departments {
			roots := make([]string, len(d.Roots))
			for i, r := range d.Roots {
				roots[i] = r.ID()
			}
			l.Departments = append(l.Departments, Department{
				Name: d.Name, Roots: roots,
				Employees: d.Employees, Placed: d.Placed, Depth: d.Depth,
				MinX: d.MinX, MaxX: d.MaxX,
			})
		}
	}
	return l
}

// ToChart rebuilds the positioned forest of a layout. Parents are resolved
// against the blocks that precede each block.
func ToChart(l Layout) (*orgtree.Chart, error) {
	c := &orgtree.Chart{
		Config:      l.Config,
		Canvas:      orgtree.Canvas{Width: l.Width, Height: l.Height},
		Depth:       l.Depth,
		Diagnostics: l.Diagnostics,
		Nodes:       make([]*orgtree.Node, 0, len(l.Blocks)),
	}
	seen := make(map[string]*orgtree.Node, len(l.Blocks))
	for i, b := range l.Blocks {
		n := &orgtree.Node{
			Employee:     b.Employee,
			Parent:       b.Parent,
			Level:        b.Level,
			X:            b.X,
			Y:            b.Y,
			Width:        b.Width,
			Height:       b.Height,
			SubtreeWidth: b.SubtreeWidth,
		}
		if n.Employee.ID == "" {
			n.Employee.ID = b.ID
		}
		if b.Parent == "" {
			c.Roots = append(c.Roots, n)
		} else {
			parent, ok := seen[b.Parent]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidFormat, "block #%d (%s): parent %q not found before it", i+1, b.ID, b.Parent)
			}
			parent.Children = append(parent.Children, n)
		}
		seen[b.ID] = n
		c.Nodes = append(c.Nodes, n)
	}
	for _, e := range l.Edges {
		c.Connections = append(c.Connections, orgtree.Connection{
			From:  e.From,
			To:    e.To,
			Start: orgtree.Point{X: e.X1, Y: e.Y1},
			End:   orgtree.Point{X: e.X2, Y: e.Y2},
		})
	}
	if l.IsDepartments() {
		c.Departments = []orgtree.Department{}
		for _, d := range l.Departments {
			dept := orgtree.Department{
				Name: d.Name, Employees: d.Employees, Placed: d.Placed,
				Depth: d.Depth, MinX: d.MinX, MaxX: d.MaxX,
			}
			for _, id := range d.Roots {
				root, ok := seen[id]
				if !ok {
					return nil, errors.New(errors.ErrCodeInvalidFormat, "department %q: root %q not found", d.Name, id)
				}
				dept.Roots = append(dept.Roots, root)
			}
			c.Departments = append(c.Departments, dept)
		}
	}
	return c, nil
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and checks that the
// viz type is known and the canvas is not degenerate.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal layout")
	}

	if l.VizType == "" {
		l.VizType = VizTypeChart
	}
	if !l.IsChart() && !l.IsDepartments() {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "unknown viz type %q", l.VizType)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "layout canvas must be positive (got %gx%g)", l.Width, l.Height)
	}
	for i, b := range l.Blocks {
		if b.ID == "" {
			return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "block #%d has no id", i+1)
		}
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
