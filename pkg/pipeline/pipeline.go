// Package pipeline provides the load → layout → render pipeline for orgchart.
//
// The CLI commands and the watch loop all run charts through a [Runner], so
// option defaults, cache keys and access checks are decided in one place.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read and validate a roster file, then apply the filter
//  2. Layout: build and position the chart ([orgtree.Compute] or
//     [orgtree.ComputeByDepartment])
//  3. Render: produce the requested formats (SVG, JSON, DOT, PDF, PNG)
//
// Layouts are memoized in-process by roster content and cached across runs
// by the runner's [cache.Cache]; rendered artifacts are cached by layout
// content.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Roster:  "roster.yaml",
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/orgchart/pkg/access"
	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/graph"
	"github.com/matzehuels/orgchart/pkg/orgtree"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultVizType is the default visualization type.
const DefaultVizType = graph.VizTypeChart

// DefaultScale is the PNG scale factor.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG   = "svg"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatGVSVG = "gvsvg"
	FormatPDF   = "pdf"
	FormatPNG   = "png"
	FormatGraph = "graph"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:   true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatGVSVG: true,
	FormatPDF:   true,
	FormatPNG:   true,
	FormatGraph: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	graph.VizTypeChart:       true,
	graph.VizTypeDepartments: true,
}

// FormatExt maps a format to the file extension the CLI writes.
var FormatExt = map[string]string{
	FormatSVG:   ".svg",
	FormatJSON:  ".layout.json",
	FormatDOT:   ".dot",
	FormatGVSVG: ".graphviz.svg",
	FormatPDF:   ".pdf",
	FormatPNG:   ".png",
	FormatGraph: ".graph.json",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// Zero layout sizes fall back to the defaults of the chosen viz type.
type Options struct {
	// Load options
	Roster     string `json:"roster,omitempty"`
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
	Search     string `json:"search,omitempty"`
	Refresh    bool   `json:"refresh,omitempty"`

	// Layout options
	VizType           string  `json:"viz_type,omitempty"`
	NodeWidth         float64 `json:"node_width,omitempty"`
	NodeHeight        float64 `json:"node_height,omitempty"`
	HorizontalSpacing float64 `json:"horizontal_spacing,omitempty"`
	VerticalSpacing   float64 `json:"vertical_spacing,omitempty"`
	DepartmentGap     float64 `json:"department_gap,omitempty"`
	Orphans           string  `json:"orphans,omitempty"`
	BreakCycles       bool    `json:"break_cycles,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Title    string   `json:"title,omitempty"`
	Legend   bool     `json:"legend,omitempty"`
	Popups   bool     `json:"popups,omitempty"`
	Clusters bool     `json:"clusters,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Role     string   `json:"role,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	// Enforcer overrides the default access policy.
	Enforcer *access.Enforcer `json:"-"`

	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Roster is the filtered roster the chart was computed from.
	Roster *roster.Roster

	// RosterHash is the content hash of Roster.
	RosterHash string

	// Layout is the positioned chart.
	Layout graph.Layout

	// Capabilities are the viewer's resolved capabilities.
	Capabilities access.Capabilities

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Employees  int
	Placed     int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	MemoHit   bool // Layout came from the in-process memo
	LayoutHit bool // Layout came from the memo or the cache
	RenderHit bool // All artifacts came from the cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, dot, gvsvg, pdf, png, graph)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid viz_type: %q (must be one of: chart, departments)", vizType)
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the roster path.
func (o *Options) ValidateForLoad() error {
	if o.Roster == "" {
		return errors.New(errors.ErrCodeInvalidInput, "roster path is required")
	}
	if err := errors.ValidatePath(o.Roster); err != nil {
		return err
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Orphans == "" {
		o.Orphans = string(orgtree.OrphanDrop)
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if _, err := orgtree.ParseOrphanPolicy(o.Orphans); err != nil {
		return err
	}
	return o.LayoutConfig().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive (got %g)", o.Scale)
	}
	_, err := access.ParseRole(o.Role)
	return err
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsDepartments returns true for the department-grouped view.
func (o *Options) IsDepartments() bool {
	return o.VizType == graph.VizTypeDepartments
}

// Filter returns the roster filter.
func (o *Options) Filter() roster.Filter {
	return roster.Filter{Department: o.Department, Status: o.Status, Search: o.Search}
}

// LayoutConfig resolves the layout configuration: the viz type's defaults
// with every non-zero option applied on top.
func (o *Options) LayoutConfig() orgtree.Config {
	cfg := orgtree.DefaultConfig()
	if o.IsDepartments() {
		cfg = orgtree.DepartmentConfig()
	}
	if o.NodeWidth != 0 {
		cfg.NodeWidth = o.NodeWidth
	}
	if o.NodeHeight != 0 {
		cfg.NodeHeight = o.NodeHeight
	}
	if o.HorizontalSpacing != 0 {
		cfg.HorizontalSpacing = o.HorizontalSpacing
	}
	if o.VerticalSpacing != 0 {
		cfg.VerticalSpacing = o.VerticalSpacing
	}
	if o.DepartmentGap != 0 {
		cfg.DepartmentGap = o.DepartmentGap
	}
	if o.Orphans != "" {
		cfg.Orphans = orgtree.OrphanPolicy(strings.ToLower(strings.TrimSpace(o.Orphans)))
	}
	cfg.BreakCycles = o.BreakCycles
	return cfg
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	cfg := o.LayoutConfig()
	f := o.Filter()
	return cache.LayoutKeyOpts{
		VizType:           o.VizType,
		NodeWidth:         cfg.NodeWidth,
		NodeHeight:        cfg.NodeHeight,
		HorizontalSpacing: cfg.HorizontalSpacing,
		VerticalSpacing:   cfg.VerticalSpacing,
		DepartmentGap:     cfg.DepartmentGap,
		Orphans:           string(cfg.Orphans),
		BreakCycles:       cfg.BreakCycles,
		Filter:            strings.ToLower(strings.Join([]string{f.Department, f.Status, strings.TrimSpace(f.Search)}, "|")),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// popups is the effective setting after the access check.
func (o *Options) ArtifactKeyOpts(format string, popups bool) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Popups:   popups,
		Legend:   o.Legend,
		Title:    o.Title,
		Clusters: o.Clusters,
		Detailed: o.Detailed,
		Scale:    o.Scale,
	}
}
