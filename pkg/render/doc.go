// Package render turns computed org charts into visual outputs.
//
// # Overview
//
// The subpackages draw a positioned [orgtree.Chart]:
//
//   - [svg]: the native chart, one card per employee with curved connectors
//   - [nodelink]: a Graphviz digraph with one cluster per department
//
// This package holds the format conversion shared by both.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg):
//
//	out := svg.Render(chart, svg.WithLegend())
//	pdf, err := render.ToPDF(ctx, out)
//	png, err := render.ToPNG(ctx, out, 2.0) // 2x scale
//
// [orgtree.Chart]: github.com/matzehuels/orgchart/pkg/orgtree
// [svg]: github.com/matzehuels/orgchart/pkg/render/svg
// [nodelink]: github.com/matzehuels/orgchart/pkg/render/nodelink
package render
