// Package pkg provides the core libraries for orgchart.
//
// # Overview
//
// Orgchart turns a flat employee roster, where each record names its
// manager, into a positioned organization chart. The pkg directory is
// organized into four areas:
//
//  1. Domain: [roster] and [orgtree]
//  2. Output: [render] and [graph]
//  3. Orchestration: [pipeline], [access] and [config]
//  4. Infrastructure: [cache], [observability], [errors] and [buildinfo]
//
// # Architecture
//
// The data flow through orgchart:
//
//	roster.yaml / roster.json
//	         ↓
//	    [roster] package (load, validate, filter)
//	         ↓
//	    [orgtree] package (build forest, position, flatten)
//	         ↓
//	    [graph] package (layout.json)
//	         ↓
//	    [render] packages (SVG, Graphviz, PDF, PNG)
//
// # Quick Start
//
//	rs, _ := roster.Load("roster.yaml")
//	chart := orgtree.Compute(rs.Employees, orgtree.DefaultConfig())
//	out := svg.Render(chart, svg.WithLegend(), svg.WithRoster(rs))
//
// Or run every stage with caching through a [pipeline.Runner]:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Roster:  "roster.yaml",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatJSON},
//	    Role:    "hr_manager",
//	})
//
// # Main Packages
//
// [roster] - Employee records, YAML/JSON loading and validation, and
// department/status/search filters.
//
// [orgtree] - The layout engine. Build links employees to managers and
// reports orphans, cycles and duplicates; Position assigns coordinates so
// that every manager is centered over its reports; Flatten produces the
// pre-order node list and connectors. ComputeByDepartment places one
// forest per department side by side.
//
// [graph] - The layout.json interchange format and a node-link export of
// the roster.
//
// [render] - rsvg-convert based PDF/PNG conversion, with [render/svg] for
// the native chart and [render/nodelink] for Graphviz output.
//
// [access] - Role to capability resolution backed by a casbin policy.
//
// [pipeline] - load → layout → render with layout memoization and
// content-addressed caching. Used by every CLI command.
//
// [config] - orgchart.toml plus ORGCHART_* environment overrides.
//
// [cache] - File, Redis, in-memory LRU and null backends.
//
// [observability] - Hooks for pipeline, cache and watch events.
//
// [roster]: github.com/matzehuels/orgchart/pkg/roster
// [orgtree]: github.com/matzehuels/orgchart/pkg/orgtree
// [graph]: github.com/matzehuels/orgchart/pkg/graph
// [render]: github.com/matzehuels/orgchart/pkg/render
// [render/svg]: github.com/matzehuels/orgchart/pkg/render/svg
// [render/nodelink]: github.com/matzehuels/orgchart/pkg/render/nodelink
// [access]: github.com/matzehuels/orgchart/pkg/access
// [pipeline]: github.com/matzehuels/orgchart/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/orgchart/pkg/pipeline#Runner
// [config]: github.com/matzehuels/orgchart/pkg/config
// [cache]: github.com/matzehuels/orgchart/pkg/cache
// [observability]: github.com/matzehuels/orgchart/pkg/observability
// [errors]: github.com/matzehuels/orgchart/pkg/errors
// [buildinfo]: github.com/matzehuels/orgchart/pkg/buildinfo
package pkg
