package svg

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/roster"
)

func sampleChart() (*roster.Roster, *orgtree.Chart) {
	r := roster.New(
		roster.Employee{ID: "6", FirstName: "Lisa", LastName: "Anderson", Role: "CEO", Position: "Chief Executive Officer", Department: "Executive", Status: roster.StatusActive, Email: "lisa@example.com", StartDate: "2019-01-15"},
		roster.Employee{ID: "4", ManagerID: "6", FirstName: "David", LastName: "Kim", Role: "Engineering Manager", Department: "Engineering", Status: roster.StatusActive},
		roster.Employee{ID: "3", ManagerID: "4", FirstName: "Emily", LastName: "Davis", Role: "Designer", Department: "Design", Status: roster.StatusOnboarding, OnboardingProgress: roster.IntPtr(45)},
		roster.Employee{ID: "9", ManagerID: "4", FirstName: "Tom", LastName: "<Brown>", Status: roster.StatusPending},
	)
	return r, orgtree.Compute(r.Employees, orgtree.DefaultConfig())
}

func wellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("invalid XML: %v", err)
		}
	}
}

func TestRenderBasic(t *testing.T) {
	_, chart := sampleChart()
	out := Render(chart)
	wellFormed(t, out)
	s := string(out)

	if got := strings.Count(s, `class="node"`); got != 4 {
		t.Errorf("nodes = %d, want 4", got)
	}
	if got := strings.Count(s, `class="connector"`); got != 3 {
		t.Errorf("connectors = %d, want 3", got)
	}
	if strings.Contains(s, `class="popup"`) {
		t.Error("popups rendered without WithPopups")
	}
	if !strings.Contains(s, `width="800" height="620"`) {
		t.Errorf("unexpected document size in %q", s[:200])
	}
	if !strings.Contains(s, "&lt;Brown&gt;") {
		t.Error("names are not escaped")
	}
	if !strings.Contains(s, "♛") || !strings.Contains(s, "★") {
		t.Error("missing role glyphs")
	}
}

func TestRenderStatusColors(t *testing.T) {
	_, chart := sampleChart()
	s := string(Render(chart))
	for _, st := range []roster.Status{roster.StatusActive, roster.StatusOnboarding, roster.StatusPending} {
		if !strings.Contains(s, StatusPalette(st).Border) {
			t.Errorf("missing border color for %s", st)
		}
	}
	if StatusPalette("bogus") != StatusPalette(roster.StatusInactive) {
		t.Error("unknown status should fall back to inactive")
	}
}

func TestRenderPopups(t *testing.T) {
	r, chart := sampleChart()
	out := Render(chart, WithPopups(), WithRoster(r))
	wellFormed(t, out)
	s := string(out)

	if got := strings.Count(s, `class="popup"`); got != 4 {
		t.Errorf("popups = %d, want 4", got)
	}
	for _, want := range []string{"Reports to: David Kim", "Started 2019-01-15", "lisa@example.com", "Onboarding Progress", "45%"} {
		if !strings.Contains(s, want) {
			t.Errorf("popup missing %q", want)
		}
	}
}

func TestRenderPopupUnknownManager(t *testing.T) {
	chart := orgtree.Compute([]roster.Employee{{ID: "a", ManagerID: "ghost", FirstName: "A"}}, orgtree.Config{Orphans: orgtree.OrphanPromote})
	s := string(Render(chart, WithPopups()))
	if !strings.Contains(s, "Reports to: Unknown") {
		t.Error("dangling manager should read Unknown")
	}
}

func TestRenderHeader(t *testing.T) {
	_, chart := sampleChart()
	s := string(Render(chart, WithTitle("Acme & Co"), WithLegend()))
	if !strings.Contains(s, "Acme &amp; Co") {
		t.Error("missing escaped title")
	}
	for _, label := range []string{"Active", "Onboarding", "Pending"} {
		if !strings.Contains(s, ">"+label+"<") {
			t.Errorf("legend missing %s", label)
		}
	}
	if !strings.Contains(s, `height="676"`) {
		t.Error("header band not added to the document height")
	}
}

func TestRenderDepartments(t *testing.T) {
	r, _ := sampleChart()
	chart := orgtree.ComputeByDepartment(r.Employees, orgtree.DepartmentConfig())
	out := Render(chart)
	wellFormed(t, out)
	s := string(out)
	if got := strings.Count(s, `class="department"`); got != 4 {
		t.Errorf("department labels = %d, want 4", got)
	}
	for _, name := range []string{"Executive", "Engineering", "Design", "Unassigned"} {
		if !strings.Contains(s, ">"+name+"</text>") {
			t.Errorf("missing department label %s", name)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	out := Render(orgtree.Compute(nil, orgtree.DefaultConfig()))
	wellFormed(t, out)
	if !strings.Contains(string(out), `viewBox="0 0 800.0 600.0"`) {
		t.Error("empty chart should use the minimum canvas")
	}
}

func TestConnectorPath(t *testing.T) {
	c := orgtree.Connection{Start: orgtree.Point{X: 100, Y: 120}, End: orgtree.Point{X: 300, Y: 200}}
	want := "M 100.0 120.0 Q 100.0 160.0 200.0 160.0 Q 300.0 160.0 300.0 200.0"
	if got := ConnectorPath(c); got != want {
		t.Errorf("ConnectorPath() = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 200, 12); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	got := truncate("a very long position title indeed", 66, 12)
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("truncate(long) = %q", got)
	}
}
