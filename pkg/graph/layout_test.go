package graph

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgtree"
)

func TestLayoutRoundTrip(t *testing.T) {
	employees := sampleRoster().Employees

	tests := []struct {
		name    string
		chart   *orgtree.Chart
		vizType string
	}{
		{"chart", orgtree.Compute(employees, orgtree.DefaultConfig()), VizTypeChart},
		{"departments", orgtree.ComputeByDepartment(employees, orgtree.DepartmentConfig()), VizTypeDepartments},
		{"empty", orgtree.Compute(nil, orgtree.DefaultConfig()), VizTypeChart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromChart(tt.chart)
			if l.VizType != tt.vizType {
				t.Errorf("VizType = %q, want %q", l.VizType, tt.vizType)
			}

			path := filepath.Join(t.TempDir(), "layout.json")
			if err := WriteLayoutFile(l, path); err != nil {
				t.Fatalf("WriteLayoutFile: %v", err)
			}
			read, err := ReadLayoutFile(path)
			if err != nil {
				t.Fatalf("ReadLayoutFile: %v", err)
			}
			got, err := ToChart(read)
			if err != nil {
				t.Fatalf("ToChart: %v", err)
			}
			if diff := cmp.Diff(tt.chart, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromChartEdges(t *testing.T) {
	l := FromChart(orgtree.Compute(sampleRoster().Employees, orgtree.DefaultConfig()))
	if len(l.Edges) != 2 {
		t.Fatalf("len(Edges) = %d, want 2", len(l.Edges))
	}
	e := l.Edges[0]
	if e.From != "6" || e.To != "4" || e.Y1 != 120 || e.Y2 != 200 || e.X1 != e.X2 {
		t.Errorf("edge = %+v", e)
	}
	if len(l.Blocks) != 3 {
		t.Errorf("len(Blocks) = %d, want 3 (orphan dropped)", len(l.Blocks))
	}
	if diff := cmp.Diff([]string{"9"}, l.Diagnostics.Orphans); diff != "" {
		t.Errorf("orphans mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"unknown viz", `{"viz_type":"tower","width":800,"height":600}`},
		{"zero canvas", `{"viz_type":"chart"}`},
		{"block without id", `{"width":800,"height":600,"blocks":[{"x":1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLayout([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("UnmarshalLayout error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestUnmarshalLayoutDefaultsVizType(t *testing.T) {
	l, err := UnmarshalLayout([]byte(`{"width":800,"height":600}`))
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}
	if !l.IsChart() {
		t.Errorf("VizType = %q, want chart", l.VizType)
	}
}

func TestToChartMissingParent(t *testing.T) {
	l := Layout{VizType: VizTypeChart, Width: 800, Height: 600, Blocks: []Block{{ID: "b", Parent: "a"}}}
	if _, err := ToChart(l); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ToChart error = %v, want INVALID_FORMAT", err)
	}
}

func TestReadLayoutFileMissing(t *testing.T) {
	_, err := ReadLayoutFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadLayoutFile error = %v, want FILE_NOT_FOUND", err)
	}
}
