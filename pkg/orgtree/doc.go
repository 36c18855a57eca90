// Package orgtree turns a flat employee list into a positioned org chart.
//
// The computation is a pure three-stage pipeline, re-run from scratch on
// every roster change:
//
//  1. [Build] groups employees by manager and returns a forest of [Node]
//     roots. The adjacency map is built once and never mutated; nodes are
//     fresh values on every call.
//  2. [Position] assigns X, Y and Width. Leaves are placed left to right at
//     a moving cursor; a parent is centered between its first and last
//     child. Y depends only on depth.
//  3. [Flatten], [Connections], [CanvasFor] and [Depth] walk the positioned
//     forest for renderers and stat displays.
//
// [Compute] runs all three stages and returns a [Chart].
// [ComputeByDepartment] runs them once per department and places the
// department forests side by side.
//
// # Malformed input
//
// Nothing in this package returns an error for bad roster data. A manager
// reference that does not resolve makes the employee an orphan, handled by
// [Config.Orphans]: [OrphanDrop] (the default) leaves it out of the chart,
// [OrphanPromote] makes it a root. Manager cycles never reach a root, so
// their members are left out and reported in [Diagnostics.Cycles] unless
// [Config.BreakCycles] promotes the first member of each cycle. The descent
// refuses to revisit an employee already on the current path or already
// placed, so duplicate IDs cannot make it loop either.
//
// # Coordinates
//
// Coordinates are layout units with the origin at the top left. A node
// occupies the box (X, Y)-(X+Width, Y+Height). Connectors run from the
// parent's bottom-center to the child's top-center; drawing the actual path
// is left to the renderer.
//
// # Example
//
//	chart := orgtree.Compute(employees, orgtree.DefaultConfig())
//	for _, n := range chart.Nodes {
//	    fmt.Println(n.ID(), n.Level, n.X, n.Y)
//	}
package orgtree
