package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/graph"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

// layoutFlags are shared by every command that computes a chart. Only
// flags the user set override the config file.
type layoutFlags struct {
	grouped     bool
	nodeWidth   float64
	nodeHeight  float64
	hGap        float64
	vGap        float64
	deptGap     float64
	orphans     string
	breakCycles bool

	department string
	status     string
	search     string

	role    string
	refresh bool
	noCache bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVarP(&f.grouped, "grouped", "g", false, "lay out one tree per department, side by side")
	fs.Float64Var(&f.nodeWidth, "node-width", 0, "node box width (default 200)")
	fs.Float64Var(&f.nodeHeight, "node-height", 0, "node box height (default 120)")
	fs.Float64Var(&f.hGap, "h-gap", 0, "horizontal gap between siblings (default 40, grouped 50)")
	fs.Float64Var(&f.vGap, "v-gap", 0, "vertical gap between levels (default 80, grouped 150)")
	fs.Float64Var(&f.deptGap, "department-gap", 0, "gap between department trees (default 100)")
	fs.StringVar(&f.orphans, "orphans", "", "employees with an unknown manager: drop (default), promote")
	fs.BoolVar(&f.breakCycles, "break-cycles", false, "promote one member of each manager cycle to a root")
	fs.StringVar(&f.department, "department", "", "only employees of this department")
	fs.StringVar(&f.status, "status", "", "only employees with this status")
	fs.StringVar(&f.search, "search", "", "only employees whose name, email, position or role contains this")
	fs.StringVar(&f.role, "role", "", "viewer role: admin, hr_manager, it_admin, employee")
	fs.BoolVar(&f.refresh, "refresh", false, "recompute the layout even if cached")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	registerLayoutCompletions(cmd)
}

func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fs := cmd.Flags()
	if fs.Changed("grouped") {
		opts.VizType = graph.VizTypeChart
		if f.grouped {
			opts.VizType = graph.VizTypeDepartments
		}
	}
	if fs.Changed("node-width") {
		opts.NodeWidth = f.nodeWidth
	}
	if fs.Changed("node-height") {
		opts.NodeHeight = f.nodeHeight
	}
	if fs.Changed("h-gap") {
		opts.HorizontalSpacing = f.hGap
	}
	if fs.Changed("v-gap") {
		opts.VerticalSpacing = f.vGap
	}
	if fs.Changed("department-gap") {
		opts.DepartmentGap = f.deptGap
	}
	if fs.Changed("orphans") {
		opts.Orphans = f.orphans
	}
	if fs.Changed("break-cycles") {
		opts.BreakCycles = f.breakCycles
	}
	if fs.Changed("role") {
		opts.Role = f.role
	}
	opts.Department = f.department
	opts.Status = f.status
	opts.Search = f.search
	opts.Refresh = f.refresh
}

// renderFlags control artifact output.
type renderFlags struct {
	formats  string
	output   string
	title    string
	legend   bool
	popups   bool
	clusters bool
	detailed bool
	scale    float64
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, dot, gvsvg, pdf, png, graph (comma-separated)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	fs.StringVar(&f.title, "title", "", "chart title")
	fs.BoolVar(&f.legend, "legend", true, "draw the status legend")
	fs.BoolVar(&f.popups, "popups", true, "hover popups with contact details (needs view_details)")
	fs.BoolVar(&f.clusters, "clusters", false, "group Graphviz nodes by department")
	fs.BoolVar(&f.detailed, "detailed", false, "title, department and status in Graphviz labels")
	fs.Float64Var(&f.scale, "scale", 0, "PNG scale factor (default 2)")
	registerRenderCompletions(cmd)
}

func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fs := cmd.Flags()
	if fs.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if fs.Changed("title") {
		opts.Title = f.title
	}
	if fs.Changed("legend") {
		opts.Legend = f.legend
	}
	if fs.Changed("popups") {
		opts.Popups = f.popups
	}
	if fs.Changed("clusters") {
		opts.Clusters = f.clusters
	}
	if fs.Changed("detailed") {
		opts.Detailed = f.detailed
	}
	if fs.Changed("scale") {
		opts.Scale = f.scale
	}
}
