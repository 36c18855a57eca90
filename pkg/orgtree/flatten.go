package orgtree

// Flatten returns every node of the forest in pre-order: a node before its
// reports, siblings in order.
func Flatten(roots []*Node) []*Node {
	var out []*Node
	Walk(roots, func(n *Node) { out = append(out, n) })
	return out
}

// Walk calls fn for every node of the forest in pre-order.
func Walk(roots []*Node, fn func(*Node)) {
	for _, n := range roots {
		fn(n)
		Walk(n.Children, fn)
	}
}

// Connections returns one connector per manager-report pair in pre-order of
// the manager, from its bottom-center to the report's top-center.
func Connections(roots []*Node) []Connection {
	var out []Connection
	Walk(roots, func(n *Node) {
		for _, c := range n.Children {
			out = append(out, Connection{
				From:  n.ID(),
				To:    c.ID(),
				Start: Point{X: n.Center(), Y: n.Y + n.Height},
				End:   Point{X: c.Center(), Y: c.Y},
			})
		}
	})
	return out
}

// Depth returns the number of levels, 0 for no nodes.
func Depth(nodes []*Node) int {
	depth := 0
	for _, n := range nodes {
		depth = max(depth, n.Level+1)
	}
	return depth
}

// CanvasFor sizes the drawing area to the right- and bottom-most node plus
// the margin, never below the configured minimum.
func CanvasFor(nodes []*Node, cfg Config) Canvas {
	cfg = cfg.WithDefaults()
	if len(nodes) == 0 {
		return Canvas{Width: cfg.MinWidth, Height: cfg.MinHeight}
	}
	var maxX, maxY float64
	for _, n := range nodes {
		maxX = max(maxX, n.X+n.Width)
		maxY = max(maxY, n.Y+n.Height)
	}
	return Canvas{
		Width:  max(maxX+cfg.Margin, cfg.MinWidth),
		Height: max(maxY+cfg.Margin, cfg.MinHeight),
	}
}
