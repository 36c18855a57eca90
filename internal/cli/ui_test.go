package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/orgchart/pkg/orgtree"
)

func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := uiOut
	uiOut = &buf
	t.Cleanup(func() { uiOut = old })
	return &buf
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		name              string
		employees, placed int
		cached            bool
		want, notWant     []string
	}{
		{"all placed", 12, 12, false, []string{"12 employees", "fresh"}, []string{"placed", "cached"}},
		{"some dropped", 12, 10, true, []string{"12 employees", "10 placed", "cached"}, []string{"fresh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureUI(t)
			printStats(tt.employees, tt.placed, tt.cached)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q missing %q", buf.String(), w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(buf.String(), w) {
					t.Errorf("output %q should not contain %q", buf.String(), w)
				}
			}
		})
	}
}

func TestPrintDiagnostics(t *testing.T) {
	buf := captureUI(t)
	printDiagnostics(orgtree.Diagnostics{
		Orphans:  []string{"7"},
		Cycles:   [][]string{{"3", "4"}},
		Promoted: []string{"9"},
	})
	out := buf.String()
	for _, want := range []string{"1 with unknown manager: 7", "manager cycle: 3 → 4", "promoted to roots: 9"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostics %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "duplicate") {
		t.Error("empty duplicate list should print nothing")
	}
}

func TestPrintDiagnosticsEmpty(t *testing.T) {
	buf := captureUI(t)
	printDiagnostics(orgtree.Diagnostics{})
	if buf.Len() != 0 {
		t.Errorf("clean layout printed %q", buf.String())
	}
}
