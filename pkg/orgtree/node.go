package orgtree

import "github.com/matzehuels/orgchart/pkg/roster"

// Node is one employee placed in the chart.
type Node struct {
	Employee roster.Employee `json:"employee"`
	Children []*Node         `json:"-"`
	// Parent is the ID of the node this one is drawn under, empty for roots.
	// It differs from Employee.ManagerID for promoted and cross-department
	// roots.
	Parent string `json:"parent,omitempty"`
	// Level is the depth below the node's root, 0 for roots.
	Level int `json:"level"`

	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// SubtreeWidth is the horizontal span consumed by the node's subtree.
	SubtreeWidth float64 `json:"subtree_width"`
}

// ID returns the employee ID.
func (n *Node) ID() string { return n.Employee.ID }

// IsLeaf reports whether the node has no placed reports.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Center returns the horizontal center of the node box.
func (n *Node) Center() float64 { return n.X + n.Width/2 }

// Point is a position in layout units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Connection links a manager to one direct report.
type Connection struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Start Point  `json:"start"`
	End   Point  `json:"end"`
}

// Canvas is the size of the drawing area.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
