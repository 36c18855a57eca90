package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/orgchart/pkg/access"
	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/graph"
)

const testRoster = `employees:
  - id: "1"
    firstName: Dana
    lastName: Reyes
    role: CEO
    department: Executive
    status: active
  - id: "2"
    firstName: Sam
    lastName: Ito
    role: Engineering Manager
    department: Engineering
    email: sam@example.com
    status: active
    managerId: "1"
  - id: "3"
    firstName: Kim
    lastName: Park
    role: Software Engineer
    department: Engineering
    status: onboarding
    onboardingProgress: 40
    managerId: "2"
  - id: "4"
    firstName: Lee
    lastName: Moss
    role: Designer
    department: Design
    status: pending
    managerId: "1"
`

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"dot", false},
		{"gvsvg", false},
		{"png", false},
		{"pdf", false},
		{"graph", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "dot"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Invalid format should fail with INVALID_FORMAT, got %v", err)
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"chart", false},
		{"departments", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, JSON,,dot,svg ")
	want := []string{"svg", "json", "dot"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseFormats mismatch (-want +got):\n%s", diff)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Roster: "roster.yaml"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}

	if opts.VizType != DefaultVizType {
		t.Errorf("VizType = %q, want %q", opts.VizType, DefaultVizType)
	}
	if diff := cmp.Diff([]string{FormatSVG}, opts.Formats); diff != "" {
		t.Errorf("Formats mismatch (-want +got):\n%s", diff)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Orphans != "drop" {
		t.Errorf("Orphans = %q, want drop", opts.Orphans)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing roster", Options{}, errors.ErrCodeInvalidInput},
		{"bad viz type", Options{Roster: "r.yaml", VizType: "tower"}, errors.ErrCodeInvalidInput},
		{"bad orphan policy", Options{Roster: "r.yaml", Orphans: "adopt"}, errors.ErrCodeInvalidPolicy},
		{"bad format", Options{Roster: "r.yaml", Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad role", Options{Roster: "r.yaml", Role: "ceo"}, errors.ErrCodeInvalidRole},
		{"negative size", Options{Roster: "r.yaml", NodeWidth: -1}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLayoutConfig(t *testing.T) {
	opts := Options{VizType: graph.VizTypeDepartments, NodeWidth: 180, Orphans: "Promote"}
	cfg := opts.LayoutConfig()

	if cfg.NodeWidth != 180 {
		t.Errorf("NodeWidth = %v, want 180", cfg.NodeWidth)
	}
	if cfg.HorizontalSpacing != 50 || cfg.VerticalSpacing != 150 {
		t.Errorf("spacing = %v/%v, want department defaults 50/150", cfg.HorizontalSpacing, cfg.VerticalSpacing)
	}
	if cfg.Orphans != "promote" {
		t.Errorf("Orphans = %q, want promote", cfg.Orphans)
	}
}

func TestLayoutKeyOptsChangeWithLayoutInputs(t *testing.T) {
	keyer := cache.NewDefaultKeyer()
	base := Options{Roster: "r.yaml"}
	base.SetLayoutDefaults()

	variants := map[string]Options{
		"orphans":     {Roster: "r.yaml", Orphans: "promote"},
		"grouped":     {Roster: "r.yaml", VizType: graph.VizTypeDepartments},
		"node width":  {Roster: "r.yaml", NodeWidth: 240},
		"filter":      {Roster: "r.yaml", Department: "Engineering"},
		"breakCycles": {Roster: "r.yaml", BreakCycles: true},
	}
	baseKey := keyer.LayoutKey("h", base.LayoutKeyOpts())
	for name, v := range variants {
		v.SetLayoutDefaults()
		if keyer.LayoutKey("h", v.LayoutKeyOpts()) == baseKey {
			t.Errorf("%s: layout key did not change", name)
		}
	}
}

func TestGenerateLayout(t *testing.T) {
	path := writeRoster(t, testRoster)
	r := NewRunner(nil, nil, nil)
	opts := Options{Roster: path}
	rs, err := r.Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	l, err := GenerateLayout(rs, opts)
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	if !l.IsChart() {
		t.Errorf("VizType = %q, want chart", l.VizType)
	}
	if len(l.Blocks) != 4 || len(l.Edges) != 3 {
		t.Errorf("blocks/edges = %d/%d, want 4/3", len(l.Blocks), len(l.Edges))
	}
	if l.Depth != 3 {
		t.Errorf("Depth = %d, want 3", l.Depth)
	}

	opts.VizType = graph.VizTypeDepartments
	grouped, err := GenerateLayout(rs, opts)
	if err != nil {
		t.Fatalf("GenerateLayout grouped: %v", err)
	}
	var names []string
	for _, d := range grouped.Departments {
		names = append(names, d.Name)
	}
	if diff := cmp.Diff([]string{"Executive", "Engineering", "Design"}, names); diff != "" {
		t.Errorf("departments mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerExecute(t *testing.T) {
	path := writeRoster(t, testRoster)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	opts := Options{
		Roster:  path,
		Formats: []string{FormatSVG, FormatJSON, FormatDOT, FormatGraph},
		Title:   "Acme",
	}

	r := NewRunner(fc, nil, nil)
	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.RunID == "" {
		t.Error("RunID should be set")
	}
	if res.Stats.Employees != 4 || res.Stats.Placed != 4 {
		t.Errorf("Stats = %+v, want 4 employees placed", res.Stats)
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Errorf("first run should miss, got %+v", res.CacheInfo)
	}
	for _, f := range opts.Formats {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("artifact %s is empty", f)
		}
	}
	if !strings.HasPrefix(string(res.Artifacts[FormatDOT]), "digraph") {
		t.Errorf("dot artifact does not start with digraph")
	}
	if _, err := graph.UnmarshalLayout(res.Artifacts[FormatJSON]); err != nil {
		t.Errorf("json artifact is not a layout: %v", err)
	}

	// Same runner: the memo answers.
	again, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute again: %v", err)
	}
	if !again.CacheInfo.MemoHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want memo and render hits", again.CacheInfo)
	}
	if again.RunID == res.RunID {
		t.Error("each run should get its own RunID")
	}

	// Fresh runner, same cache: layout from disk.
	fresh, err := NewRunner(fc, nil, nil).Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute fresh: %v", err)
	}
	if fresh.CacheInfo.MemoHit || !fresh.CacheInfo.LayoutHit {
		t.Errorf("fresh runner CacheInfo = %+v, want cache hit without memo", fresh.CacheInfo)
	}
	if diff := cmp.Diff(res.Layout, fresh.Layout); diff != "" {
		t.Errorf("cached layout differs (-first +cached):\n%s", diff)
	}

	// Refresh skips the layout caches.
	opts.Refresh = true
	refreshed, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute refresh: %v", err)
	}
	if refreshed.CacheInfo.LayoutHit {
		t.Error("Refresh should recompute the layout")
	}
}

func TestRunnerFilter(t *testing.T) {
	path := writeRoster(t, testRoster)
	res, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Roster:     path,
		Department: "engineering",
		Orphans:    "promote",
		Formats:    []string{FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Stats.Employees != 2 {
		t.Errorf("Employees = %d, want 2", res.Stats.Employees)
	}
	// Sam's manager is filtered out, so Sam becomes a root.
	if len(res.Layout.Blocks) != 2 || res.Layout.Blocks[0].Parent != "" {
		t.Errorf("blocks = %+v, want Sam promoted to root", res.Layout.Blocks)
	}
	if diff := cmp.Diff([]string{"2"}, res.Layout.Diagnostics.Orphans); diff != "" {
		t.Errorf("orphans mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerPopupsRequireViewDetails(t *testing.T) {
	path := writeRoster(t, testRoster)
	r := NewRunner(nil, nil, nil)
	ctx := context.Background()

	tests := []struct {
		role       access.Role
		wantPopups bool
	}{
		{access.RoleHRManager, true},
		{access.RoleAdmin, true},
		{access.RoleITAdmin, false},
		{access.RoleEmployee, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			res, err := r.Execute(ctx, Options{Roster: path, Popups: true, Role: string(tt.role)})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			got := strings.Contains(string(res.Artifacts[FormatSVG]), `class="popup"`)
			if got != tt.wantPopups {
				t.Errorf("popups rendered = %v, want %v", got, tt.wantPopups)
			}
			if res.Capabilities.Role != tt.role {
				t.Errorf("Capabilities.Role = %q, want %q", res.Capabilities.Role, tt.role)
			}
		})
	}
}

func TestRunnerForbidden(t *testing.T) {
	policy := filepath.Join(t.TempDir(), "policy.csv")
	if err := os.WriteFile(policy, []byte("p, role:admin, view, chart\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	en, err := access.LoadEnforcer(policy)
	if err != nil {
		t.Fatalf("LoadEnforcer: %v", err)
	}

	_, err = NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Roster:   writeRoster(t, testRoster),
		Role:     "employee",
		Enforcer: en,
	})
	if !errors.Is(err, errors.ErrCodeForbidden) {
		t.Errorf("Execute error = %v, want FORBIDDEN", err)
	}
}

func TestRunnerMissingRoster(t *testing.T) {
	_, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{
		Roster: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Execute error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestRenderLayoutWithoutRoster(t *testing.T) {
	path := writeRoster(t, testRoster)
	r := NewRunner(nil, nil, nil)
	ctx := context.Background()
	res, err := r.Execute(ctx, Options{Roster: path, Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	artifacts, err := r.Render(ctx, res.Layout, nil, Options{Formats: []string{FormatSVG, FormatDOT}})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(artifacts[FormatSVG]), "Dana Reyes") {
		t.Error("svg rendered from layout should contain employee names")
	}

	_, err = r.Render(ctx, res.Layout, nil, Options{Formats: []string{FormatGraph}})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("graph without roster error = %v, want UNSUPPORTED", err)
	}
}
