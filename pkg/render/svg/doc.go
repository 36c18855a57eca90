// Package svg draws a positioned org chart as a standalone SVG document.
//
// Every placed employee becomes a card colored by status, with an initials
// badge, a role glyph and up to three lines of text. Connectors use the
// anchor points computed by orgtree and bend through two quadratic curves
// meeting halfway between the levels.
//
// Hover popups with contact details are opt-in through [WithPopups]; callers
// decide whether the viewer may see them.
//
//	out := svg.Render(chart, svg.WithLegend(), svg.WithTitle("Acme"))
package svg
