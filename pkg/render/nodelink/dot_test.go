package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/roster"
)

func chart() *orgtree.Chart {
	return orgtree.Compute([]roster.Employee{
		{ID: "6", FirstName: "Lisa", LastName: "Anderson", Position: "CEO", Department: "Executive", Status: roster.StatusActive},
		{ID: "4", ManagerID: "6", FirstName: "David", LastName: "Kim", Department: "R&D / Eng", Status: roster.StatusOnboarding},
		{ID: "1", ManagerID: "4", FirstName: "John", LastName: "Smith", Department: "R&D / Eng", Status: roster.StatusPending},
		{ID: "2", ManagerID: "6", FirstName: "Sam", LastName: "\"Q\" Lee"},
	}, orgtree.DefaultConfig())
}

func TestToDOTBasic(t *testing.T) {
	dot := ToDOT(chart(), Options{})

	for _, want := range []string{"digraph G", `"6" [label="Lisa Anderson"`, `"6" -> "4";`, `"4" -> "1";`, `"6" -> "2";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}
	if strings.Contains(dot, "subgraph") {
		t.Error("ToDOT() without clusters emitted a subgraph")
	}
	if !strings.Contains(dot, `\"Q\" Lee`) {
		t.Error("ToDOT() did not quote label")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(chart(), Options{Detailed: true})
	if !strings.Contains(dot, `Lisa Anderson\nCEO\nExecutive\nstatus: active`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOTClusters(t *testing.T) {
	dot := ToDOT(chart(), Options{Clusters: true})

	for _, want := range []string{`subgraph "cluster_0_Executive"`, `subgraph "cluster_1_R_D_Eng"`, `subgraph "cluster_2_unassigned"`, `label="R&D / Eng"`, `label="Unassigned"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "subgraph"); got != 3 {
		t.Errorf("subgraphs = %d, want 3", got)
	}
}

func TestToDOTStatusColors(t *testing.T) {
	dot := ToDOT(chart(), Options{})
	for _, c := range []string{"#34d399", "#60a5fa", "#fbbf24"} {
		if !strings.Contains(dot, c) {
			t.Errorf("missing status color %s", c)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := string(normalizeViewBox([]byte("<svg/>"))); got != "<svg/>" {
		t.Errorf("normalizeViewBox without viewBox changed input: %s", got)
	}
}
