package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/roster"
)

func TestRenderTree(t *testing.T) {
	out := renderTree(testChart())

	for _, want := range []string{"Dana Reyes", "Sam Ito", "Kim Park", "Lee Moss", "CEO"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}
	// Pre-order: a report is printed after its manager and before the
	// manager's next sibling.
	if !(strings.Index(out, "Sam Ito") < strings.Index(out, "Kim Park") &&
		strings.Index(out, "Kim Park") < strings.Index(out, "Lee Moss")) {
		t.Errorf("tree not in pre-order:\n%s", out)
	}
}

func TestRenderTreeDepartments(t *testing.T) {
	employees := []roster.Employee{
		{ID: "1", FirstName: "Dana", LastName: "Reyes", Department: "Executive"},
		{ID: "2", ManagerID: "1", FirstName: "Sam", LastName: "Ito", Department: "Engineering"},
		{ID: "3", FirstName: "Pat", LastName: "Lane"},
	}
	out := renderTree(orgtree.ComputeByDepartment(employees, orgtree.DepartmentConfig()))

	for _, want := range []string{"Executive", "Engineering", "Unassigned", "Pat Lane"} {
		if !strings.Contains(out, want) {
			t.Errorf("department tree missing %q:\n%s", want, out)
		}
	}
}
