package orgtree

import (
	"slices"

	"github.com/matzehuels/orgchart/pkg/roster"
)

// Reasons recorded on a [Link] the descent refused to follow.
const (
	ReasonCycle     = "cycle"
	ReasonDuplicate = "duplicate"
)

// Link is a manager-to-report edge that was not placed.
type Link struct {
	ManagerID  string `json:"manager_id"`
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

// Diagnostics reports everything about the input that kept an employee off
// the chart or changed where it went. All IDs are in input order.
type Diagnostics struct {
	// Orphans reference a manager that does not exist. They are listed
	// whatever the orphan policy.
	Orphans []string `json:"orphans,omitempty"`
	// Promoted were made roots by the orphan policy or by cycle breaking.
	Promoted []string `json:"promoted,omitempty"`
	// Unreachable are neither roots nor attached to a root, excluding
	// dropped orphans themselves.
	Unreachable []string `json:"unreachable,omitempty"`
	// Cycles lists each manager cycle, starting at its first member in
	// input order and following manager references.
	Cycles     [][]string `json:"cycles,omitempty"`
	Duplicates []string   `json:"duplicates,omitempty"`
	Skipped    []Link     `json:"skipped,omitempty"`
}

// Empty reports whether the input was a clean forest.
func (d Diagnostics) Empty() bool {
	return len(d.Orphans) == 0 && len(d.Unreachable) == 0 && len(d.Cycles) == 0 &&
		len(d.Duplicates) == 0 && len(d.Skipped) == 0
}

func (d *Diagnostics) merge(o Diagnostics) {
	d.Orphans = append(d.Orphans, o.Orphans...)
	d.Promoted = append(d.Promoted, o.Promoted...)
	d.Unreachable = append(d.Unreachable, o.Unreachable...)
	d.Cycles = append(d.Cycles, o.Cycles...)
	d.Duplicates = append(d.Duplicates, o.Duplicates...)
	d.Skipped = append(d.Skipped, o.Skipped...)
}

// Build groups employees under their managers and returns the roots in input
// order. Reports keep input order under each manager. Levels are set; X, Y
// and Width are left for [Position].
func Build(employees []roster.Employee, cfg Config) ([]*Node, Diagnostics) {
	return newBuilder(employees, nil).build(cfg.WithDefaults())
}

type builder struct {
	employees []roster.Employee
	index     map[string]int   // id -> index of its last record
	reports   map[string][]int // manager id -> report indices
	// outside holds IDs that exist beyond this subset of employees. A
	// reference to one makes a root instead of an orphan.
	outside map[string]bool

	placed []bool
	onPath map[string]bool
	diag   Diagnostics
}

func newBuilder(employees []roster.Employee, outside map[string]bool) *builder {
	b := &builder{
		employees: employees,
		index:     make(map[string]int, len(employees)),
		reports:   make(map[string][]int),
		outside:   outside,
		placed:    make([]bool, len(employees)),
		onPath:    make(map[string]bool),
	}
	for i, e := range employees {
		if _, dup := b.index[e.ID]; dup && !slices.Contains(b.diag.Duplicates, e.ID) {
			b.diag.Duplicates = append(b.diag.Duplicates, e.ID)
		}
		b.index[e.ID] = i
	}
	for i, e := range employees {
		if !e.HasManager() {
			continue
		}
		if _, ok := b.index[e.ManagerID]; ok {
			b.reports[e.ManagerID] = append(b.reports[e.ManagerID], i)
		}
	}
	return b
}

// manager returns the index of the manager of employee i, or -1.
func (b *builder) manager(i int) int {
	e := b.employees[i]
	if !e.HasManager() {
		return -1
	}
	if j, ok := b.index[e.ManagerID]; ok {
		return j
	}
	return -1
}

func (b *builder) build(cfg Config) ([]*Node, Diagnostics) {
	isRoot := make([]bool, len(b.employees))
	dropped := make([]bool, len(b.employees))
	for i, e := range b.employees {
		switch {
		case !e.HasManager():
			isRoot[i] = true
		case b.manager(i) >= 0:
		case b.outside[e.ManagerID]:
			isRoot[i] = true
		default:
			b.diag.Orphans = append(b.diag.Orphans, e.ID)
			if cfg.Orphans == OrphanPromote {
				isRoot[i] = true
				b.diag.Promoted = append(b.diag.Promoted, e.ID)
			} else {
				dropped[i] = true
			}
		}
	}

	for _, cycle := range b.findCycles() {
		ids := make([]string, len(cycle))
		for k, i := range cycle {
			ids[k] = b.employees[i].ID
		}
		b.diag.Cycles = append(b.diag.Cycles, ids)
		if cfg.BreakCycles {
			isRoot[cycle[0]] = true
			b.diag.Promoted = append(b.diag.Promoted, ids[0])
		}
	}

	var roots []*Node
	for i := range b.employees {
		if isRoot[i] && !b.placed[i] {
			roots = append(roots, b.descend(i, 0, ""))
		}
	}

	for i, e := range b.employees {
		if !b.placed[i] && !dropped[i] {
			b.diag.Unreachable = append(b.diag.Unreachable, e.ID)
		}
	}
	return roots, b.diag
}

func (b *builder) descend(i, level int, parent string) *Node {
	e := b.employees[i]
	b.placed[i] = true
	b.onPath[e.ID] = true
	defer delete(b.onPath, e.ID)

	n := &Node{Employee: e, Parent: parent, Level: level}
	for _, c := range b.reports[e.ID] {
		child := b.employees[c]
		switch {
		case b.onPath[child.ID]:
			b.diag.Skipped = append(b.diag.Skipped, Link{ManagerID: e.ID, EmployeeID: child.ID, Reason: ReasonCycle})
		case b.placed[c]:
			b.diag.Skipped = append(b.diag.Skipped, Link{ManagerID: e.ID, EmployeeID: child.ID, Reason: ReasonDuplicate})
		default:
			n.Children = append(n.Children, b.descend(c, level+1, e.ID))
		}
	}
	return n
}

// findCycles walks manager references from every employee and returns each
// cycle once, rotated so its first member in input order leads. A loop
// through a duplicated ID comes from the duplicate, not from the manager
// references, and is left to Duplicates.
func (b *builder) findCycles() [][]int {
	const (
		unvisited = iota
		walking
		done
	)
	state := make([]uint8, len(b.employees))
	var cycles [][]int
	for start := range b.employees {
		if state[start] != unvisited {
			continue
		}
		var chain []int
		i := start
		for i >= 0 && state[i] == unvisited {
			state[i] = walking
			chain = append(chain, i)
			i = b.manager(i)
		}
		if i >= 0 && state[i] == walking {
			k := slices.Index(chain, i)
			if !b.touchesDuplicate(chain[k:]) {
				cycles = append(cycles, rotateToMin(chain[k:]))
			}
		}
		for _, c := range chain {
			state[c] = done
		}
	}
	return cycles
}

func rotateToMin(cycle []int) []int {
	k := slices.Index(cycle, slices.Min(cycle))
	out := make([]int, 0, len(cycle))
	out = append(out, cycle[k:]...)
	return append(out, cycle[:k]...)
}

func (b *builder) touchesDuplicate(members []int) bool {
	for _, i := range members {
		if slices.Contains(b.diag.Duplicates, b.employees[i].ID) {
			return true
		}
	}
	return false
}
