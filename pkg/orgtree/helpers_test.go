package orgtree

import "github.com/matzehuels/orgchart/pkg/roster"

func emp(id, manager string) roster.Employee {
	return roster.Employee{ID: id, ManagerID: manager}
}

func empIn(id, manager, dept string) roster.Employee {
	return roster.Employee{ID: id, ManagerID: manager, Department: dept}
}

// sampleEmployees mirrors testdata of the roster package: 6 is the CEO,
// 4 and 5 report to 6, 1 and 7 to 4, and 2, 3 and 8 to 5.
func sampleEmployees() []roster.Employee {
	return []roster.Employee{
		empIn("1", "4", "Engineering"),
		empIn("2", "5", "Product"),
		empIn("3", "5", "Design"),
		empIn("4", "6", "Engineering"),
		empIn("5", "6", "Product"),
		empIn("6", "", "Executive"),
		empIn("7", "4", "Engineering"),
		empIn("8", "5", "Product"),
	}
}

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}
