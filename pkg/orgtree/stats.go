package orgtree

import "github.com/matzehuels/orgchart/pkg/roster"

// Stats summarizes a roster and the chart computed from it.
type Stats struct {
	Employees   int `json:"employees"`
	Departments int `json:"departments"`
	Managers    int `json:"managers"`
	Levels      int `json:"levels"`
	Placed      int `json:"placed"`
	Orphans     int `json:"orphans"`
	Unreachable int `json:"unreachable"`
	Cycles      int `json:"cycles"`
}

// ComputeStats counts employees, departments and managers of the input and
// levels, placements and problems of the chart.
func ComputeStats(employees []roster.Employee, c *Chart) Stats {
	r := roster.New(employees...)
	return Stats{
		Employees:   len(employees),
		Departments: len(r.Departments()),
		Managers:    len(r.Managers()),
		Levels:      c.Depth,
		Placed:      len(c.Nodes),
		Orphans:     len(c.Diagnostics.Orphans),
		Unreachable: len(c.Diagnostics.Unreachable),
		Cycles:      len(c.Diagnostics.Cycles),
	}
}
