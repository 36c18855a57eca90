package orgtree

// Position lays out the forest left to right starting at startX and returns
// the cursor after the last subtree, including its trailing spacing.
//
// A leaf is placed at the cursor, which then advances by NodeWidth plus
// HorizontalSpacing. A parent lays out its children first and is centered
// between the first and the last of them; the cursor moves to the end of
// the children, never backwards. Y is the level times the level height.
func Position(roots []*Node, cfg Config, startX float64) float64 {
	cfg = cfg.WithDefaults()
	return position(roots, cfg, startX)
}

func position(nodes []*Node, cfg Config, cursor float64) float64 {
	for _, n := range nodes {
		start := cursor
		n.Width = cfg.NodeWidth
		n.Height = cfg.NodeHeight
		if n.IsLeaf() {
			n.X = cursor
			cursor += cfg.NodeWidth + cfg.HorizontalSpacing
		} else {
			end := position(n.Children, cfg, cursor)
			first, last := n.Children[0], n.Children[len(n.Children)-1]
			n.X = first.X + (last.X-first.X)/2
			cursor = max(cursor, end)
		}
		n.Y = float64(n.Level) * cfg.LevelHeight()
		n.SubtreeWidth = cursor - start - cfg.HorizontalSpacing
	}
	return cursor
}
