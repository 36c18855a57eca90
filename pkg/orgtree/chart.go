package orgtree

import "github.com/matzehuels/orgchart/pkg/roster"

// Chart is a fully computed org chart: the positioned forest, its
// pre-order flattening, the connectors and the canvas that holds them.
type Chart struct {
	Config      Config       `json:"config"`
	Roots       []*Node      `json:"-"`
	Nodes       []*Node      `json:"nodes"`
	Connections []Connection `json:"connections"`
	Canvas      Canvas       `json:"canvas"`
	Depth       int          `json:"depth"`
	Diagnostics Diagnostics  `json:"diagnostics"`
	// Departments is set by [ComputeByDepartment] only.
	Departments []Department `json:"departments,omitempty"`
}

// Compute builds, positions and flattens employees in one pass. The result
// shares no state with earlier calls.
func Compute(employees []roster.Employee, cfg Config) *Chart {
	cfg = cfg.WithDefaults()
	roots, diag := newBuilder(employees, nil).build(cfg)
	position(roots, cfg, 0)
	return assemble(cfg, roots, diag)
}

func assemble(cfg Config, roots []*Node, diag Diagnostics) *Chart {
	nodes := Flatten(roots)
	return &Chart{
		Config:      cfg,
		Roots:       roots,
		Nodes:       nodes,
		Connections: Connections(roots),
		Canvas:      CanvasFor(nodes, cfg),
		Depth:       Depth(nodes),
		Diagnostics: diag,
	}
}

// Find returns the first placed node with the given employee ID.
func (c *Chart) Find(id string) (*Node, bool) {
	for _, n := range c.Nodes {
		if n.ID() == id {
			return n, true
		}
	}
	return nil, false
}

// Empty reports whether no employee was placed.
func (c *Chart) Empty() bool { return len(c.Nodes) == 0 }
