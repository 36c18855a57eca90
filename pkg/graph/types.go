package graph

import (
	"fmt"
	"strings"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// Visualization types.
const (
	VizTypeChart       = "chart"
	VizTypeDepartments = "departments"
)

// =============================================================================
// Graph - Reporting Graph Serialization
// =============================================================================

// Graph is the node-link form of a roster. Edges run from manager to report.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one employee of a [Graph].
type Node struct {
	ID         string        `json:"id"`
	Label      string        `json:"label,omitempty"`
	Title      string        `json:"title,omitempty"`
	Department string        `json:"department,omitempty"`
	Status     roster.Status `json:"status,omitempty"`
}

// Edge connects two employees. In a [Layout] it also carries the connector
// anchor points.
type Edge struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	X1   float64 `json:"x1,omitempty"`
	Y1   float64 `json:"y1,omitempty"`
	X2   float64 `json:"x2,omitempty"`
	Y2   float64 `json:"y2,omitempty"`
}

// FromRoster converts a roster to a graph. Manager references that do not
// resolve produce no edge.
func FromRoster(r *roster.Roster) Graph {
	known := make(map[string]bool, r.Len())
	for _, e := range r.Employees {
		known[e.ID] = true
	}
	g := Graph{Nodes: make([]Node, 0, r.Len()), Edges: []Edge{}}
	for _, e := range r.Employees {
		g.Nodes = append(g.Nodes, Node{
			ID:         e.ID,
			Label:      strings.TrimSpace(e.FirstName + " " + e.LastName),
			Title:      e.Title(),
			Department: e.Department,
			Status:     e.Status,
		})
		if e.HasManager() && known[e.ManagerID] {
			g.Edges = append(g.Edges, Edge{From: e.ManagerID, To: e.ID})
		}
	}
	return g
}

// ToRoster converts a graph back to a roster. The label is split at the
// first space into first and last name. An employee with more than one
// incoming edge is rejected.
func ToRoster(g Graph) (*roster.Roster, error) {
	managers := make(map[string]string, len(g.Edges))
	for _, e := range g.Edges {
		if prev, ok := managers[e.To]; ok && prev != e.From {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "employee %q has two managers (%q, %q)", e.To, prev, e.From)
		}
		managers[e.To] = e.From
	}

	r := roster.New()
	for _, n := range g.Nodes {
		first, last := splitLabel(n.Label)
		r.Employees = append(r.Employees, roster.Employee{
			ID:         n.ID,
			ManagerID:  managers[n.ID],
			FirstName:  first,
			LastName:   last,
			Position:   n.Title,
			Department: n.Department,
			Status:     n.Status,
		})
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("graph to roster: %w", err)
	}
	return r, nil
}

func splitLabel(label string) (string, string) {
	first, last, _ := strings.Cut(label, " ")
	return first, last
}
