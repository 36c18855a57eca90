package pipeline

import (
	"github.com/matzehuels/orgchart/pkg/graph"
	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes the chart of a roster and exports it as a Layout.
// The roster is assumed to be filtered already. It never fails on bad
// manager references; those end up in the layout's Diagnostics.
func GenerateLayout(r *roster.Roster, opts Options) (graph.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, err
	}
	cfg := opts.LayoutConfig()

	var c *orgtree.Chart
	if opts.IsDepartments() {
		c = orgtree.ComputeByDepartment(r.Employees, cfg)
	} else {
		c = orgtree.Compute(r.Employees, cfg)
	}
	return graph.FromChart(c), nil
}

// logDiagnostics reports what the core left out or repaired.
func logDiagnostics(opts Options, d orgtree.Diagnostics) {
	if d.Empty() {
		return
	}
	logger := opts.Logger
	if len(d.Orphans) > 0 {
		logger.Warn("employees reference unknown managers", "ids", d.Orphans, "policy", opts.Orphans)
	}
	for _, cycle := range d.Cycles {
		logger.Warn("manager cycle", "ids", cycle)
	}
	if len(d.Promoted) > 0 {
		logger.Warn("promoted to roots", "ids", d.Promoted)
	}
	if len(d.Unreachable) > 0 {
		logger.Warn("employees not reachable from any root", "ids", d.Unreachable)
	}
	if len(d.Duplicates) > 0 {
		logger.Warn("duplicate employee ids", "ids", d.Duplicates)
	}
	for _, l := range d.Skipped {
		logger.Debug("skipped reporting line", "manager", l.ManagerID, "employee", l.EmployeeID, "reason", l.Reason)
	}
}
