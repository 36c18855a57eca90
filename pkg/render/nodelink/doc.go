// Package nodelink renders org charts as Graphviz node-link diagrams.
//
// # Overview
//
// Instead of the native card layout, this package hands placement to
// Graphviz: every employee becomes a rounded box, every reporting line an
// arrow, and every department a cluster. It is useful for very wide
// organizations where dot's crossing minimization reads better than a
// strict tidy tree.
//
// # Usage
//
//	dot := nodelink.ToDOT(chart, nodelink.Options{Clusters: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The generated DOT uses top-to-bottom layout (rankdir=TB). Node fill and
// border follow the employee status, matching the SVG cards. With
// Options.Clusters each department is a "cluster_<name>" subgraph.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
