package roster

import (
	"strings"
)

// FilterAll is the wildcard value for Department and Status filters.
const FilterAll = "all"

// Filter narrows a roster. Zero values and "all" match everything.
type Filter struct {
	Department string
	Status     string
	Search     string
}

// IsZero reports whether the filter matches every employee.
func (f Filter) IsZero() bool {
	return isWildcard(f.Department) && isWildcard(f.Status) && strings.TrimSpace(f.Search) == ""
}

// Match reports whether e passes the filter. Department and status compare
// case-insensitively; search matches name, email, position or role.
func (f Filter) Match(e Employee) bool {
	if !isWildcard(f.Department) && !strings.EqualFold(f.Department, e.Department) {
		return false
	}
	if !isWildcard(f.Status) && !strings.EqualFold(f.Status, string(e.Status)) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	for _, field := range []string{e.FullName(), e.Email, e.Position, e.Role} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Apply returns a new roster holding the matching employees in order.
// The receiver is not modified.
func (f Filter) Apply(r *Roster) *Roster {
	if f.IsZero() {
		return &Roster{Employees: append([]Employee(nil), r.Employees...)}
	}
	out := &Roster{}
	for _, e := range r.Employees {
		if f.Match(e) {
			out.Employees = append(out.Employees, e)
		}
	}
	return out
}

func isWildcard(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, FilterAll)
}
