package orgtree

import "github.com/matzehuels/orgchart/pkg/roster"

// Department is one department forest of a grouped chart.
type Department struct {
	Name  string  `json:"name"`
	Roots []*Node `json:"-"`
	// Employees counts the department's input records, Placed its nodes.
	Employees int `json:"employees"`
	Placed    int `json:"placed"`
	Depth     int `json:"depth"`
	// MinX and MaxX bound the department's nodes horizontally.
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
}

// ComputeByDepartment lays out one forest per department, in order of first
// appearance, side by side with DepartmentGap between them. An employee
// whose manager belongs to another department is a root of its own
// department's forest. Levels restart at 0 in every department.
func ComputeByDepartment(employees []roster.Employee, cfg Config) *Chart {
	cfg = cfg.WithDefaults()

	all := make(map[string]bool, len(employees))
	var order []string
	groups := make(map[string][]roster.Employee)
	for _, e := range employees {
		all[e.ID] = true
		if _, ok := groups[e.Department]; !ok {
			order = append(order, e.Department)
		}
		groups[e.Department] = append(groups[e.Department], e)
	}

	var (
		roots  []*Node
		diag   Diagnostics
		depts  []Department
		cursor float64
	)
	for _, name := range order {
		members := groups[name]
		deptRoots, deptDiag := newBuilder(members, all).build(cfg)
		diag.merge(deptDiag)

		start := cursor
		end := position(deptRoots, cfg, start)
		nodes := Flatten(deptRoots)
		d := Department{
			Name:      name,
			Roots:     deptRoots,
			Employees: len(members),
			Placed:    len(nodes),
			Depth:     Depth(nodes),
			MinX:      start,
			MaxX:      start,
		}
		if len(deptRoots) > 0 {
			d.MaxX = end - cfg.HorizontalSpacing
			cursor = d.MaxX + cfg.DepartmentGap
		}
		depts = append(depts, d)
		roots = append(roots, deptRoots...)
	}

	chart := assemble(cfg, roots, diag)
	chart.Departments = depts
	return chart
}
