// Package graph provides serialization types for reporting graphs and chart
// layouts.
//
// This package defines the wire format for orgchart data, used for JSON
// files, the layout cache and interoperability with other tools.
//
// # Architecture
//
// The package sits at the serialization boundary between the in-memory
// representations and external formats:
//
//   - [Graph], [Layout]: serialization types (this package)
//   - pkg/roster.Roster: the employee list
//   - pkg/orgtree.Chart: the positioned forest
//
// Use [FromRoster]/[ToRoster] and [FromChart]/[ToChart] to convert.
//
// # Graph Serialization
//
// A reporting graph is plain node-link JSON with one edge per manager and
// report pair:
//
//	{
//	  "nodes": [{"id": "6", "label": "Lisa Anderson"}, {"id": "4"}],
//	  "edges": [{"from": "6", "to": "4"}]
//	}
//
// # Layout Serialization
//
// A [Layout] carries every positioned block, every connector with its
// anchor points, the canvas and the diagnostics. Layouts are discriminated
// by VizType:
//
//	layout, _ := graph.ReadLayoutFile("chart.json")
//	if layout.IsDepartments() {
//	    // layout.Departments holds one frame per department
//	}
//	chart, _ := graph.ToChart(layout)
//
// Blocks are stored in pre-order, so a block's parent always precedes it.
//
// # Concurrency
//
// All functions are safe for concurrent use.
package graph
